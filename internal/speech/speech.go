// Package speech synthesizes spoken audio for interview questions. Speech is
// an enhancement: when synthesis cannot be completed the session continues
// text-only, it never aborts.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/abhisek/jobprep/internal/resilient"
)

// DefaultModel is the Gemini TTS model used when none is configured.
const DefaultModel = "gemini-2.5-flash-preview-tts"

// DefaultVoice is the prebuilt voice used when none is configured.
const DefaultVoice = "Kore"

// Audio is one synthesized utterance.
type Audio struct {
	Data     []byte
	MIMEType string
}

// Backend performs one raw synthesis call.
type Backend interface {
	Synthesize(ctx context.Context, text string) (*Audio, error)
}

// Config for the speech synthesizer.
type Config struct {
	APIKey string
	Model  string
	Voice  string
}

// ConfigFromEnv reads speech settings from the environment. The Gemini key
// doubles as the speech key unless JOBPREP_SPEECH_API_KEY overrides it.
func ConfigFromEnv() Config {
	cfg := Config{
		APIKey: os.Getenv("JOBPREP_SPEECH_API_KEY"),
		Model:  os.Getenv("JOBPREP_SPEECH_MODEL"),
		Voice:  os.Getenv("JOBPREP_SPEECH_VOICE"),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("JOBPREP_GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Voice == "" {
		cfg.Voice = DefaultVoice
	}
	return cfg
}

// Synthesizer wraps a Backend with the resilient executor and the degrade
// contract: exhausted retries and an open circuit yield (nil, nil), not an
// error.
type Synthesizer struct {
	backend Backend
	exec    *resilient.Executor
}

// NewSynthesizer creates a Synthesizer on the Gemini TTS backend.
func NewSynthesizer(ctx context.Context, cfg Config, exec *resilient.Executor) (*Synthesizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("speech API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create speech client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	voice := cfg.Voice
	if voice == "" {
		voice = DefaultVoice
	}

	return &Synthesizer{
		backend: &geminiTTS{client: client, model: model, voice: voice},
		exec:    exec,
	}, nil
}

// NewSynthesizerWithBackend creates a Synthesizer on a custom backend.
func NewSynthesizerWithBackend(backend Backend, exec *resilient.Executor) *Synthesizer {
	return &Synthesizer{backend: backend, exec: exec}
}

// Synthesize produces audio for text. A nil, nil return means synthesis
// degraded; the caller proceeds without audio.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (*Audio, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("nothing to synthesize")
	}

	audio, err := resilient.Do(ctx, s.exec, "synthesize", func(ctx context.Context) (*Audio, error) {
		return s.backend.Synthesize(ctx, text)
	})
	if err != nil {
		var fe *resilient.FailureError
		if errors.As(err, &fe) {
			fmt.Fprintf(os.Stderr, "warning: speech synthesis degraded (%s), continuing without audio\n", fe.Reason)
			return nil, nil
		}
		return nil, err
	}
	return audio, nil
}

// geminiTTS is the Gemini TTS backend.
type geminiTTS struct {
	client *genai.Client
	model  string
	voice  string
}

func (g *geminiTTS) Synthesize(ctx context.Context, text string) (*Audio, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: g.voice,
				},
			},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(text), config)
	if err != nil {
		return nil, mapTTSError(err)
	}

	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &Audio{
					Data:     part.InlineData.Data,
					MIMEType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}
	return nil, fmt.Errorf("no audio in response")
}

func mapTTSError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return fmt.Errorf("speech rate limited: %w", err)
	}
	return fmt.Errorf("speech synthesis: %w", err)
}

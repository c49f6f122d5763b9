// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/jobprep/ent/answerevent"
	"github.com/abhisek/jobprep/ent/interviewevent"
	"github.com/abhisek/jobprep/ent/llmrequestevent"
	"github.com/abhisek/jobprep/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescCategory is the schema descriptor for category field.
	answereventDescCategory := answereventFields[3].Descriptor()
	// answerevent.DefaultCategory holds the default value on creation for the category field.
	answerevent.DefaultCategory = answereventDescCategory.Default.(string)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[4].Descriptor()
	// answerevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	answerevent.DefaultDifficulty = answereventDescDifficulty.Default.(int)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[5].Descriptor()
	// answerevent.DefaultQuestionText holds the default value on creation for the question_text field.
	answerevent.DefaultQuestionText = answereventDescQuestionText.Default.(string)
	// answereventDescAnswerText is the schema descriptor for answer_text field.
	answereventDescAnswerText := answereventFields[6].Descriptor()
	// answerevent.DefaultAnswerText holds the default value on creation for the answer_text field.
	answerevent.DefaultAnswerText = answereventDescAnswerText.Default.(string)
	// answereventDescScore is the schema descriptor for score field.
	answereventDescScore := answereventFields[7].Descriptor()
	// answerevent.DefaultScore holds the default value on creation for the score field.
	answerevent.DefaultScore = answereventDescScore.Default.(int)
	// answereventDescSkipped is the schema descriptor for skipped field.
	answereventDescSkipped := answereventFields[8].Descriptor()
	// answerevent.DefaultSkipped holds the default value on creation for the skipped field.
	answerevent.DefaultSkipped = answereventDescSkipped.Default.(bool)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[9].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int64)
	intervieweventMixin := schema.InterviewEvent{}.Mixin()
	intervieweventMixinFields0 := intervieweventMixin[0].Fields()
	_ = intervieweventMixinFields0
	intervieweventFields := schema.InterviewEvent{}.Fields()
	_ = intervieweventFields
	// intervieweventDescTimestamp is the schema descriptor for timestamp field.
	intervieweventDescTimestamp := intervieweventMixinFields0[1].Descriptor()
	// interviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interviewevent.DefaultTimestamp = intervieweventDescTimestamp.Default.(func() time.Time)
	// intervieweventDescJobTitle is the schema descriptor for job_title field.
	intervieweventDescJobTitle := intervieweventFields[2].Descriptor()
	// interviewevent.DefaultJobTitle holds the default value on creation for the job_title field.
	interviewevent.DefaultJobTitle = intervieweventDescJobTitle.Default.(string)
	// intervieweventDescInterviewType is the schema descriptor for interview_type field.
	intervieweventDescInterviewType := intervieweventFields[3].Descriptor()
	// interviewevent.DefaultInterviewType holds the default value on creation for the interview_type field.
	interviewevent.DefaultInterviewType = intervieweventDescInterviewType.Default.(string)
	// intervieweventDescDifficulty is the schema descriptor for difficulty field.
	intervieweventDescDifficulty := intervieweventFields[4].Descriptor()
	// interviewevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	interviewevent.DefaultDifficulty = intervieweventDescDifficulty.Default.(string)
	// intervieweventDescQuestionsTotal is the schema descriptor for questions_total field.
	intervieweventDescQuestionsTotal := intervieweventFields[5].Descriptor()
	// interviewevent.DefaultQuestionsTotal holds the default value on creation for the questions_total field.
	interviewevent.DefaultQuestionsTotal = intervieweventDescQuestionsTotal.Default.(int)
	// intervieweventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	intervieweventDescQuestionsAnswered := intervieweventFields[6].Descriptor()
	// interviewevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	interviewevent.DefaultQuestionsAnswered = intervieweventDescQuestionsAnswered.Default.(int)
	// intervieweventDescQuestionsSkipped is the schema descriptor for questions_skipped field.
	intervieweventDescQuestionsSkipped := intervieweventFields[7].Descriptor()
	// interviewevent.DefaultQuestionsSkipped holds the default value on creation for the questions_skipped field.
	interviewevent.DefaultQuestionsSkipped = intervieweventDescQuestionsSkipped.Default.(int)
	// intervieweventDescAverageScore is the schema descriptor for average_score field.
	intervieweventDescAverageScore := intervieweventFields[8].Descriptor()
	// interviewevent.DefaultAverageScore holds the default value on creation for the average_score field.
	interviewevent.DefaultAverageScore = intervieweventDescAverageScore.Default.(int)
	// intervieweventDescBestScore is the schema descriptor for best_score field.
	intervieweventDescBestScore := intervieweventFields[9].Descriptor()
	// interviewevent.DefaultBestScore holds the default value on creation for the best_score field.
	interviewevent.DefaultBestScore = intervieweventDescBestScore.Default.(int)
	// intervieweventDescClassification is the schema descriptor for classification field.
	intervieweventDescClassification := intervieweventFields[10].Descriptor()
	// interviewevent.DefaultClassification holds the default value on creation for the classification field.
	interviewevent.DefaultClassification = intervieweventDescClassification.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
}

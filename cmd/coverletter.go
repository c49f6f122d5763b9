package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/jobprep/internal/coverletter"
	"github.com/abhisek/jobprep/internal/interview"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Draft a tailored cover letter",
	RunE:  runCoverLetter,
}

func init() {
	coverLetterCmd.Flags().String("resume", "", "Path to a resume or background summary file (required)")
	coverLetterCmd.Flags().String("jd", "", "Path to the job description file (required)")
	coverLetterCmd.Flags().StringP("tone", "t", coverletter.ToneFormal, "Tone: formal, conversational, enthusiastic")
	coverLetterCmd.MarkFlagRequired("resume")
	coverLetterCmd.MarkFlagRequired("jd")
}

func runCoverLetter(cmd *cobra.Command, args []string) error {
	resumePath, _ := cmd.Flags().GetString("resume")
	jdPath, _ := cmd.Flags().GetString("jd")
	tone, _ := cmd.Flags().GetString("tone")

	resumeText, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	jdText, err := os.ReadFile(jdPath)
	if err != nil {
		return fmt.Errorf("read job description: %w", err)
	}

	st, provider, exec, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := coverletter.New(provider, exec, interview.DefaultGenConfig())
	letter, err := svc.Draft(cmd.Context(), string(resumeText), string(jdText), tone)
	if err != nil {
		return err
	}

	fmt.Println(letter.Body)
	if len(letter.TalkingPoints) > 0 {
		fmt.Println("\nTalking points for the interview:")
		for _, p := range letter.TalkingPoints {
			fmt.Println("  •", p)
		}
	}
	return nil
}

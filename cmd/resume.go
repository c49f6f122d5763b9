package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/jobprep/internal/interview"
	"github.com/abhisek/jobprep/internal/resume"
)

var resumeCmd = &cobra.Command{
	Use:   "resume <file>",
	Short: "Critique a resume",
	Long:  "Reviews a resume file and prints a structured critique: score, strengths, improvements, and ATS keyword suggestions.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResume,
}

func init() {
	resumeCmd.Flags().StringP("role", "r", "", "Target role to review against")
}

func runResume(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	role, _ := cmd.Flags().GetString("role")

	st, provider, exec, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := resume.New(provider, exec, interview.DefaultGenConfig())
	critique, err := svc.Critique(cmd.Context(), string(text), role)
	if err != nil {
		return err
	}

	fmt.Printf("Score: %d/100\n\n", critique.Score)
	fmt.Println(critique.Summary)
	if len(critique.Strengths) > 0 {
		fmt.Println("\nStrengths:")
		for _, s := range critique.Strengths {
			fmt.Println("  +", s)
		}
	}
	if len(critique.Improvements) > 0 {
		fmt.Println("\nImprovements:")
		for _, s := range critique.Improvements {
			fmt.Println("  -", s)
		}
	}
	if len(critique.ATSKeywords) > 0 {
		fmt.Printf("\nATS keywords to work in: %s\n", strings.Join(critique.ATSKeywords, ", "))
	}
	return nil
}

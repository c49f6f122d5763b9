package cmd

import (
	"github.com/abhisek/jobprep/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobprep",
	Short: "AI job-search coach",
	Long:  "Jobprep — mock interviews, resume critique, cover letters, and job matching from the terminal.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides JOBPREP_DB env var)")

	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(coverLetterCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then JOBPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/jobprep/internal/interview"
	"github.com/abhisek/jobprep/internal/speech"
	"github.com/abhisek/jobprep/internal/store"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a mock interview session",
	RunE:  runInterview,
}

var interviewHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List past interview sessions",
	RunE:  runInterviewHistory,
}

func init() {
	interviewCmd.Flags().StringP("role", "r", "", "Job title to rehearse for (required)")
	interviewCmd.Flags().String("company", "", "Company name")
	interviewCmd.Flags().StringP("type", "t", "mixed", "Interview type: behavioral, technical, mixed")
	interviewCmd.Flags().StringP("difficulty", "d", "mid", "Difficulty: entry, mid, senior")
	interviewCmd.Flags().IntP("count", "n", interview.DefaultQuestionCount, "Number of questions (1-10)")
	interviewCmd.Flags().StringSlice("focus", nil, "Focus areas, comma-separated")
	interviewCmd.Flags().String("jd", "", "Path to a job description file")
	interviewCmd.Flags().String("resume", "", "Path to a resume summary file")
	interviewCmd.Flags().Bool("speak", false, "Read questions aloud (requires a Gemini API key)")
	interviewCmd.MarkFlagRequired("role")

	interviewHistoryCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
	interviewCmd.AddCommand(interviewHistoryCmd)
}

func runInterview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, provider, exec, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	repo := st.EventRepo()

	engine := interview.NewEngine(
		interview.NewGenerator(provider, exec, interview.DefaultGenConfig()),
		interview.NewEvaluator(provider, exec, interview.DefaultGenConfig()),
		repo,
	)

	var synth *speech.Synthesizer
	if speak, _ := cmd.Flags().GetBool("speak"); speak {
		synth, err = speech.NewSynthesizer(ctx, speech.ConfigFromEnv(), exec)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Speech unavailable:", err)
		}
	}

	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}

	normalized := criteria.Normalize()
	fmt.Printf("Preparing %d %s questions for %s...\n\n",
		normalized.QuestionCount, normalized.InterviewType, criteria.JobTitle)

	sess, err := engine.Start(ctx, criteria)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		snap, err := engine.Snapshot(sess.ID)
		if err != nil {
			return err
		}
		if snap.Status == interview.StatusCompleted {
			break
		}

		q := snap.CurrentQuestion
		fmt.Printf("Question %d/%d [%s, difficulty %d/5]\n",
			snap.QuestionIndex+1, snap.TotalQuestions, q.Category, q.Difficulty)
		fmt.Println(q.Prompt)
		if q.Hint != "" {
			fmt.Printf("(hint: %s)\n", q.Hint)
		}
		fmt.Printf("You have %d seconds. Type your answer, then a single '.' on its own line. '/skip' skips, '/quit' abandons.\n\n",
			int(q.TimeLimit.Seconds()))

		speakQuestion(ctx, synth, q.Prompt)

		answer, action, err := readAnswer(reader)
		if err != nil {
			return err
		}
		switch action {
		case "quit":
			fmt.Println("Session abandoned.")
			return nil
		case "skip":
			if _, err := engine.Skip(ctx, sess.ID, q.ID); err != nil {
				return fmt.Errorf("skip: %w", err)
			}
			fmt.Println("Skipped.")
			fmt.Println()
			continue
		}
		if strings.TrimSpace(answer) == "" {
			fmt.Println("Empty answer; type something or /skip.")
			fmt.Println()
			continue
		}

		eval, err := engine.SubmitAnswer(ctx, sess.ID, q.ID, answer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Evaluation failed: %v\n", err)
			fmt.Fprintln(os.Stderr, "Press enter to retry with the same answer, or type /skip.")
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) == "/skip" {
				if _, err := engine.Skip(ctx, sess.ID, q.ID); err != nil {
					return fmt.Errorf("skip: %w", err)
				}
				continue
			}
			if eval, err = engine.SubmitAnswer(ctx, sess.ID, q.ID, answer); err != nil {
				return fmt.Errorf("evaluation failed again: %w", err)
			}
		}

		printEvaluation(eval)
	}

	summary, err := engine.Finalize(ctx, sess.ID)
	if err != nil {
		return fmt.Errorf("finalize: %w", err)
	}
	printSummary(summary)
	return nil
}

func criteriaFromFlags(cmd *cobra.Command) (interview.Criteria, error) {
	role, _ := cmd.Flags().GetString("role")
	company, _ := cmd.Flags().GetString("company")
	itype, _ := cmd.Flags().GetString("type")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	focus, _ := cmd.Flags().GetStringSlice("focus")

	criteria := interview.Criteria{
		JobTitle:      role,
		CompanyName:   company,
		InterviewType: itype,
		Difficulty:    difficulty,
		QuestionCount: count,
		FocusAreas:    focus,
	}

	if path, _ := cmd.Flags().GetString("jd"); path != "" {
		text, err := os.ReadFile(path)
		if err != nil {
			return criteria, fmt.Errorf("read job description: %w", err)
		}
		criteria.JobDescription = string(text)
	}
	if path, _ := cmd.Flags().GetString("resume"); path != "" {
		text, err := os.ReadFile(path)
		if err != nil {
			return criteria, fmt.Errorf("read resume: %w", err)
		}
		criteria.ResumeSummary = string(text)
	}
	return criteria, nil
}

// readAnswer collects lines until a lone "." terminator. Returns the action
// "skip" or "quit" when the first line is a command.
func readAnswer(reader *bufio.Reader) (answer, action string, err error) {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("read answer: %w", err)
		}
		trimmed := strings.TrimRight(line, "\n")
		if len(lines) == 0 {
			switch strings.TrimSpace(trimmed) {
			case "/skip":
				return "", "skip", nil
			case "/quit":
				return "", "quit", nil
			}
		}
		if strings.TrimSpace(trimmed) == "." {
			return strings.Join(lines, "\n"), "", nil
		}
		lines = append(lines, trimmed)
	}
}

func speakQuestion(ctx context.Context, synth *speech.Synthesizer, text string) {
	if synth == nil {
		return
	}
	audio, err := synth.Synthesize(ctx, text)
	if err != nil || audio == nil {
		return
	}
	// No audio device plumbing in the CLI; drop the clip next to the DB so
	// a player can pick it up.
	path := fmt.Sprintf("%s/jobprep-question.pcm", os.TempDir())
	if err := os.WriteFile(path, audio.Data, 0o644); err == nil {
		fmt.Printf("(audio written to %s)\n", path)
	}
}

func printEvaluation(eval *interview.Evaluation) {
	fmt.Println()
	fmt.Printf("Score: %d/100\n", eval.Score)
	fmt.Println(eval.Feedback)
	if len(eval.Strengths) > 0 {
		fmt.Println("\nStrengths:")
		for _, s := range eval.Strengths {
			fmt.Println("  +", s)
		}
	}
	if len(eval.Improvements) > 0 {
		fmt.Println("\nImprove:")
		for _, s := range eval.Improvements {
			fmt.Println("  -", s)
		}
	}
	if eval.ModelAnswer != "" {
		fmt.Println("\nA strong answer:")
		fmt.Println(" ", eval.ModelAnswer)
	}
	fmt.Println()
}

func printSummary(s *interview.Summary) {
	fmt.Println(strings.Repeat("─", 48))
	fmt.Printf("Session complete — %s\n", s.JobTitle)
	fmt.Printf("Answered: %d/%d (%d skipped)\n", s.QuestionsAnswered, s.QuestionsTotal, s.QuestionsSkipped)
	fmt.Printf("Average score: %d (%s)\n", s.AverageScore, s.Classification)
	fmt.Printf("Best score: %d\n", s.BestScore)
}

func runInterviewHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	records, err := st.EventRepo().QueryInterviewEvents(cmd.Context(), store.QueryOpts{Limit: limit})
	if err != nil {
		return fmt.Errorf("query history: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No interview sessions recorded yet.")
		return nil
	}

	fmt.Printf("%-19s  %-12s  %-24s  %-9s  %-5s  %s\n",
		"Timestamp", "Action", "Role", "Answered", "Avg", "Class")
	fmt.Println(strings.Repeat("─", 84))
	for _, r := range records {
		answered := fmt.Sprintf("%d/%d", r.QuestionsAnswered, r.QuestionsTotal)
		fmt.Printf("%-19s  %-12s  %-24s  %-9s  %-5d  %s\n",
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.Action, truncate(r.JobTitle, 24), answered, r.AverageScore, r.Classification)
	}
	return nil
}

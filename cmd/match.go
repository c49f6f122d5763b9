package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/jobprep/internal/interview"
	"github.com/abhisek/jobprep/internal/jobs"
)

var matchCmd = &cobra.Command{
	Use:   "match <posting-file>...",
	Short: "Score job postings against your background",
	Long: `Scores each posting file against the resume summary and prints a fit
verdict per posting. The first line of a posting file is its title, optionally
"Title @ Company"; the rest is the description.`,
	Args: cobra.RangeArgs(1, jobs.MaxJobsPerMatch),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().String("resume", "", "Path to a resume or background summary file (required)")
	matchCmd.MarkFlagRequired("resume")
}

func runMatch(cmd *cobra.Command, args []string) error {
	resumePath, _ := cmd.Flags().GetString("resume")
	resumeText, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}

	postings := make([]jobs.Posting, 0, len(args))
	for _, path := range args {
		p, err := readPosting(path)
		if err != nil {
			return err
		}
		postings = append(postings, p)
	}

	st, provider, exec, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := jobs.New(provider, exec, interview.DefaultGenConfig())
	matches, err := svc.MatchJobs(cmd.Context(), string(resumeText), postings)
	if err != nil {
		return err
	}

	byID := make(map[string]jobs.Posting, len(postings))
	for _, p := range postings {
		byID[p.ID] = p
	}

	for i, m := range matches {
		if i > 0 {
			fmt.Println()
		}
		p := byID[m.PostingID]
		title := p.Title
		if p.Company != "" {
			title += " @ " + p.Company
		}
		fmt.Printf("%s — %d/100 (%s)\n", title, m.FitScore, m.Verdict)
		fmt.Println(" ", m.Rationale)
		if len(m.MatchedSkills) > 0 {
			fmt.Printf("  have: %s\n", strings.Join(m.MatchedSkills, ", "))
		}
		if len(m.MissingSkills) > 0 {
			fmt.Printf("  missing: %s\n", strings.Join(m.MissingSkills, ", "))
		}
	}
	return nil
}

// readPosting parses a posting file: the first non-empty line is the title,
// optionally "Title @ Company"; everything after it is the description. The
// file name (without extension) becomes the posting ID.
func readPosting(path string) (jobs.Posting, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return jobs.Posting{}, fmt.Errorf("read posting: %w", err)
	}

	base := filepath.Base(path)
	p := jobs.Posting{ID: strings.TrimSuffix(base, filepath.Ext(base))}

	lines := strings.Split(strings.TrimSpace(string(text)), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if title, company, ok := strings.Cut(line, " @ "); ok {
			p.Title = strings.TrimSpace(title)
			p.Company = strings.TrimSpace(company)
		} else {
			p.Title = line
		}
		p.Description = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		break
	}

	if p.Title == "" {
		return p, fmt.Errorf("posting %s: empty file", path)
	}
	if p.Description == "" {
		// Single-line postings: treat the title line as the description too.
		p.Description = p.Title
	}
	return p, nil
}

package interview

import (
	"fmt"
	"strings"
	"time"
)

const generationSystemPrompt = `You are an experienced hiring manager preparing interview questions for a specific candidate and role.

Rules:
- Generate exactly the requested number of questions, each self-contained and answerable verbally in about two minutes.
- Tailor questions to the job title, the job description, and the candidate's background when provided.
- Respect the interview type: "behavioral" uses behavioral and situational questions only, "technical" uses technical questions only, "mixed" blends all three categories.
- Match the difficulty level: entry-level questions probe fundamentals, senior-level questions probe depth, trade-offs, and leadership.
- Each hint should name a useful answering approach (for example the STAR method), never give away the answer.
- Expected topics are short phrases a strong answer would cover, not full sentences.
- Never repeat a question or produce near-duplicates within the set.`

const evaluationSystemPrompt = `You are an experienced interview coach scoring a candidate's answer to one interview question.

Rules:
- Score from 0 to 100: below 50 is a weak answer, 50-69 adequate, 70-84 good, 85+ excellent.
- Judge content, structure, and relevance to the question. Do not judge grammar or accent.
- An empty or off-topic answer scores below 30.
- Feedback is direct and constructive, two to four sentences, addressed to the candidate as "you".
- Strengths and improvements are short, concrete bullet points; at most five of each.
- The model answer is a brief sketch of a strong response, not a full essay.
- Base the assessment only on what the candidate actually said, never invent details.`

// buildGenerationMessage renders the criteria into the generation prompt.
func buildGenerationMessage(c Criteria) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Job title: %s\n", c.JobTitle)
	if c.CompanyName != "" {
		fmt.Fprintf(&b, "Company: %s\n", c.CompanyName)
	}
	fmt.Fprintf(&b, "Interview type: %s\n", c.InterviewType)
	fmt.Fprintf(&b, "Difficulty level: %s\n", c.Difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", c.QuestionCount)

	if len(c.FocusAreas) > 0 {
		fmt.Fprintf(&b, "Focus areas: %s\n", strings.Join(c.FocusAreas, ", "))
	}
	if c.JobDescription != "" {
		b.WriteString("\nJob description:\n")
		b.WriteString(c.JobDescription)
		b.WriteString("\n")
	}
	if c.ResumeSummary != "" {
		b.WriteString("\nCandidate background:\n")
		b.WriteString(c.ResumeSummary)
		b.WriteString("\n")
	}

	return b.String()
}

// buildEvaluationMessage renders one question/answer pair for scoring.
func buildEvaluationMessage(c Criteria, q Question, answerText string, elapsed time.Duration) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Role: %s", c.JobTitle)
	if c.CompanyName != "" {
		fmt.Fprintf(&b, " at %s", c.CompanyName)
	}
	fmt.Fprintf(&b, " (%s level)\n", c.Difficulty)

	fmt.Fprintf(&b, "\nQuestion (%s, difficulty %d/5):\n%s\n", q.Category, q.Difficulty, q.Prompt)
	if len(q.ExpectedTopics) > 0 {
		fmt.Fprintf(&b, "\nTopics a strong answer covers: %s\n", strings.Join(q.ExpectedTopics, ", "))
	}

	b.WriteString("\nCandidate's answer:\n")
	if strings.TrimSpace(answerText) == "" {
		b.WriteString("(no answer given)\n")
	} else {
		b.WriteString(answerText)
		b.WriteString("\n")
	}

	if elapsed > 0 {
		fmt.Fprintf(&b, "\nTime taken: %d seconds of %d allowed\n",
			int(elapsed.Seconds()), int(q.TimeLimit.Seconds()))
	}

	return b.String()
}

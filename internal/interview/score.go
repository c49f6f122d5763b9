package interview

import "math"

// Classification bands for a final average score.
const (
	ScoreExcellent = 85
	ScoreGood      = 70
	ScoreAverage   = 50
)

// Classification labels.
const (
	ClassExcellent = "excellent"
	ClassGood      = "good"
	ClassAverage   = "average"
	ClassPoor      = "poor"
)

// Classify maps a score to its band label.
func Classify(score int) string {
	switch {
	case score >= ScoreExcellent:
		return ClassExcellent
	case score >= ScoreGood:
		return ClassGood
	case score >= ScoreAverage:
		return ClassAverage
	default:
		return ClassPoor
	}
}

// summarize computes the final stats from the answer records. Skipped
// questions are excluded from the average; a session with no evaluated
// answers scores zero.
func summarize(records []AnswerRecord) (answered, skipped, average, best int) {
	sum := 0
	for _, r := range records {
		if r.Skipped || r.Evaluation == nil {
			skipped++
			continue
		}
		answered++
		sum += r.Evaluation.Score
		if r.Evaluation.Score > best {
			best = r.Evaluation.Score
		}
	}
	if answered > 0 {
		average = int(math.Round(float64(sum) / float64(answered)))
	}
	return answered, skipped, average, best
}

package interview

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, ClassExcellent},
		{85, ClassExcellent},
		{84, ClassGood},
		{70, ClassGood},
		{69, ClassAverage},
		{50, ClassAverage},
		{49, ClassPoor},
		{0, ClassPoor},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestSummarize_ExcludesSkips(t *testing.T) {
	records := []AnswerRecord{
		{Evaluation: &Evaluation{Score: 80}},
		{Skipped: true},
		{Evaluation: &Evaluation{Score: 60}},
	}

	answered, skipped, average, best := summarize(records)
	if answered != 2 {
		t.Errorf("answered = %d, want 2", answered)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if average != 70 {
		t.Errorf("average = %d, want 70", average)
	}
	if best != 80 {
		t.Errorf("best = %d, want 80", best)
	}
}

func TestSummarize_AllSkipped(t *testing.T) {
	records := []AnswerRecord{
		{Skipped: true},
		{Skipped: true},
	}

	answered, skipped, average, best := summarize(records)
	if answered != 0 || skipped != 2 {
		t.Fatalf("answered/skipped = %d/%d, want 0/2", answered, skipped)
	}
	if average != 0 || best != 0 {
		t.Fatalf("average/best = %d/%d, want 0/0", average, best)
	}
	if got := Classify(average); got != ClassPoor {
		t.Fatalf("all-skipped classification = %q, want %q", got, ClassPoor)
	}
}

func TestSummarize_RoundsAverage(t *testing.T) {
	records := []AnswerRecord{
		{Evaluation: &Evaluation{Score: 70}},
		{Evaluation: &Evaluation{Score: 71}},
	}

	_, _, average, _ := summarize(records)
	// 70.5 rounds to 71.
	if average != 71 {
		t.Errorf("average = %d, want 71", average)
	}
}

package interview

import (
	"errors"
	"testing"
)

func TestCriteria_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Criteria
		wantType  string
		wantDiff  string
		wantCount int
	}{
		{
			name:      "defaults",
			in:        Criteria{JobTitle: "Backend Engineer"},
			wantType:  TypeMixed,
			wantDiff:  DifficultyMid,
			wantCount: DefaultQuestionCount,
		},
		{
			name:      "valid values pass through",
			in:        Criteria{JobTitle: "SRE", InterviewType: "technical", Difficulty: "senior", QuestionCount: 3},
			wantType:  TypeTechnical,
			wantDiff:  DifficultySenior,
			wantCount: 3,
		},
		{
			name:      "case and whitespace tolerated",
			in:        Criteria{JobTitle: "PM", InterviewType: " Behavioral ", Difficulty: "ENTRY"},
			wantType:  TypeBehavioral,
			wantDiff:  DifficultyEntry,
			wantCount: DefaultQuestionCount,
		},
		{
			name:      "unknown enums fall back",
			in:        Criteria{JobTitle: "PM", InterviewType: "casual", Difficulty: "impossible"},
			wantType:  TypeMixed,
			wantDiff:  DifficultyMid,
			wantCount: DefaultQuestionCount,
		},
		{
			name:      "count clamped high",
			in:        Criteria{JobTitle: "PM", QuestionCount: 50},
			wantType:  TypeMixed,
			wantDiff:  DifficultyMid,
			wantCount: MaxQuestionCount,
		},
		{
			name:      "count clamped low",
			in:        Criteria{JobTitle: "PM", QuestionCount: -2},
			wantType:  TypeMixed,
			wantDiff:  DifficultyMid,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.InterviewType != tt.wantType {
				t.Errorf("InterviewType = %q, want %q", got.InterviewType, tt.wantType)
			}
			if got.Difficulty != tt.wantDiff {
				t.Errorf("Difficulty = %q, want %q", got.Difficulty, tt.wantDiff)
			}
			if got.QuestionCount != tt.wantCount {
				t.Errorf("QuestionCount = %d, want %d", got.QuestionCount, tt.wantCount)
			}
		})
	}
}

func TestCriteria_Validate(t *testing.T) {
	c := Criteria{JobTitle: "  "}.Normalize()
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error for empty job title")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Field != "job_title" {
		t.Fatalf("expected field job_title, got %q", verr.Field)
	}

	if err := (Criteria{JobTitle: "Data Engineer"}).Normalize().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

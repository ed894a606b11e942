package grading

import (
	"testing"

	"github.com/google/uuid"
)

func TestGrade(t *testing.T) {
	tests := []struct {
		name    string
		score   float64
		max     float64
		wantPct float64
		letter  string
		label   string
	}{
		{name: "92/100 A+", score: 92, max: 100, wantPct: 92, letter: "A+", label: "Excellent"},
		{name: "70/100 B", score: 70, max: 100, wantPct: 70, letter: "B", label: "Average"},
		{name: "39/100 F", score: 39, max: 100, wantPct: 39, letter: "F", label: "Fail"},
		{name: "scaled 45/50 A+", score: 45, max: 50, wantPct: 90, letter: "A+", label: "Excellent"},
		{name: "boundary exactly 90 is A+", score: 90, max: 100, wantPct: 90, letter: "A+", label: "Excellent"},
		{name: "just under 90 is A", score: 89.999, max: 100, wantPct: 89.999, letter: "A", label: "Very Good"},
		{name: "just under 40 is F", score: 39.999, max: 100, wantPct: 39.999, letter: "F", label: "Fail"},
		{name: "boundary exactly 40 is D", score: 40, max: 100, wantPct: 40, letter: "D", label: "Fail"},
		{name: "boundary exactly 85 is A", score: 85, max: 100, wantPct: 85, letter: "A", label: "Very Good"},
		{name: "zero", score: 0, max: 100, wantPct: 0, letter: "F", label: "Fail"},
		{name: "above max is not clamped", score: 110, max: 100, wantPct: 110, letter: "A+", label: "Excellent"},
		{name: "max <= 0 falls back to 100", score: 80, max: 0, wantPct: 80, letter: "A-", label: "Good"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grade(tt.score, tt.max)
			if got.Percentage != tt.wantPct {
				t.Errorf("Grade() percentage = %v, want %v", got.Percentage, tt.wantPct)
			}
			if got.Letter != tt.letter {
				t.Errorf("Grade() letter = %q, want %q", got.Letter, tt.letter)
			}
			if got.Label != tt.label {
				t.Errorf("Grade() label = %q, want %q", got.Label, tt.label)
			}
		})
	}
}

func TestAssessmentRef(t *testing.T) {
	examID := uuid.New()
	asgID := uuid.New()

	exam := ExamRef(examID, "Midterm")
	if exam.Kind != KindExam || exam.MaxScore != 100 {
		t.Fatalf("ExamRef = %+v, want kind=exam max=100", exam)
	}

	pts := 50.0
	asg := AssignmentRef(asgID, "Homework 3", &pts)
	if asg.Kind != KindAssignment || asg.MaxScore != 50 {
		t.Fatalf("AssignmentRef = %+v, want kind=assignment max=50", asg)
	}

	// missing totalPoints defaults to 100
	def := AssignmentRef(asgID, "Homework 4", nil)
	if def.MaxScore != 100 {
		t.Fatalf("AssignmentRef(nil points).MaxScore = %v, want 100", def.MaxScore)
	}

	got := asg.GradeFor(45)
	if got.Percentage != 90 || got.Letter != "A+" {
		t.Fatalf("GradeFor(45) against max 50 = %+v, want 90%% A+", got)
	}
}

// file: internals/features/assessments/grading/assessment_ref.go
package grading

import "github.com/google/uuid"

/* =========================================================
   Assessment variant

   A result references exactly one of exam/assignment. The
   variant is pinned with an explicit discriminant at load
   time instead of structural probing of the row shape.
========================================================= */

type AssessmentKind string

const (
	KindExam       AssessmentKind = "exam"
	KindAssignment AssessmentKind = "assignment"
)

type AssessmentRef struct {
	Kind     AssessmentKind
	ID       uuid.UUID
	Title    string
	MaxScore float64
}

// ExamRef: exams always score out of 100.
func ExamRef(id uuid.UUID, title string) AssessmentRef {
	return AssessmentRef{Kind: KindExam, ID: id, Title: title, MaxScore: DefaultMaxScore}
}

// AssignmentRef: totalPoints may be absent, defaulting to 100.
func AssignmentRef(id uuid.UUID, title string, totalPoints *float64) AssessmentRef {
	max := float64(DefaultMaxScore)
	if totalPoints != nil && *totalPoints > 0 {
		max = *totalPoints
	}
	return AssessmentRef{Kind: KindAssignment, ID: id, Title: title, MaxScore: max}
}

// GradeFor derives the display grade for a score against this
// assessment.
func (a AssessmentRef) GradeFor(score float64) GradeResult {
	return Grade(score, a.MaxScore)
}

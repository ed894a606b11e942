package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/assessments/grading"
	model "schoolku_backend/internals/features/assessments/result/model"
)

/* ===================== RESULT ===================== */

// Exactly one of result_exam_id / result_assignment_id must be set.
type CreateResultRequest struct {
	ResultScore        float64    `json:"result_score" validate:"min=0"`
	ResultStudentID    uuid.UUID  `json:"result_student_id" validate:"required"`
	ResultExamID       *uuid.UUID `json:"result_exam_id" validate:"omitempty"`
	ResultAssignmentID *uuid.UUID `json:"result_assignment_id" validate:"omitempty"`
}

func (r CreateResultRequest) HasOneAssessment() bool {
	return (r.ResultExamID != nil) != (r.ResultAssignmentID != nil)
}

func (r CreateResultRequest) ToModel() *model.ResultModel {
	return &model.ResultModel{
		ResultScore:        r.ResultScore,
		ResultStudentID:    r.ResultStudentID,
		ResultExamID:       r.ResultExamID,
		ResultAssignmentID: r.ResultAssignmentID,
	}
}

// Only the score is mutable; moving a result to another student or
// assessment means deleting and re-entering it.
type UpdateResultRequest struct {
	ResultScore *float64 `json:"result_score" validate:"omitempty,min=0"`
}

func (r *UpdateResultRequest) ApplyToModel(m *model.ResultModel) {
	if r.ResultScore != nil {
		m.ResultScore = *r.ResultScore
	}
}

type ResultResponse struct {
	ResultID        uuid.UUID `json:"result_id"`
	ResultScore     float64   `json:"result_score"`
	ResultStudentID uuid.UUID `json:"result_student_id"`
	StudentName     string    `json:"student_name"`

	AssessmentKind     grading.AssessmentKind `json:"assessment_kind"`
	AssessmentID       uuid.UUID              `json:"assessment_id"`
	AssessmentTitle    string                 `json:"assessment_title"`
	AssessmentMaxScore float64                `json:"assessment_max_score"`

	Grade grading.GradeResult `json:"grade"`

	ResultCreatedAt time.Time `json:"result_created_at"`
}

func NewResultResponse(m *model.ResultModel, ref grading.AssessmentRef, studentName string) *ResultResponse {
	if m == nil {
		return nil
	}
	return &ResultResponse{
		ResultID:           m.ResultID,
		ResultScore:        m.ResultScore,
		ResultStudentID:    m.ResultStudentID,
		StudentName:        studentName,
		AssessmentKind:     ref.Kind,
		AssessmentID:       ref.ID,
		AssessmentTitle:    ref.Title,
		AssessmentMaxScore: ref.MaxScore,
		Grade:              ref.GradeFor(m.ResultScore),
		ResultCreatedAt:    m.ResultCreatedAt,
	}
}

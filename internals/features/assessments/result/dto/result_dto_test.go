package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestCreateResultRequestHasOneAssessment(t *testing.T) {
	exam := uuid.New()
	assignment := uuid.New()

	cases := []struct {
		name         string
		examID       *uuid.UUID
		assignmentID *uuid.UUID
		want         bool
	}{
		{"exam only", &exam, nil, true},
		{"assignment only", nil, &assignment, true},
		{"neither", nil, nil, false},
		{"both", &exam, &assignment, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := CreateResultRequest{ResultExamID: tc.examID, ResultAssignmentID: tc.assignmentID}
			if got := req.HasOneAssessment(); got != tc.want {
				t.Errorf("HasOneAssessment() = %v, want %v", got, tc.want)
			}
		})
	}
}

package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/finance/fees/model"
)

func TestCreateFeeRequestHasSingleTarget(t *testing.T) {
	student := uuid.New()
	class := uuid.New()

	cases := []struct {
		name      string
		studentID *uuid.UUID
		classID   *uuid.UUID
		want      bool
	}{
		{"school-wide", nil, nil, true},
		{"student only", &student, nil, true},
		{"class only", nil, &class, true},
		{"both set", &student, &class, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := CreateFeeRequest{FeeStudentID: tc.studentID, FeeClassID: tc.classID}
			if got := req.HasSingleTarget(); got != tc.want {
				t.Errorf("HasSingleTarget() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUpdateFeeRequestMarksPaidAt(t *testing.T) {
	paid := "paid"
	m := &model.FeeModel{FeeStatus: model.FeeStatusPending}

	req := UpdateFeeRequest{FeeStatus: &paid}
	req.ApplyToModel(m)

	if m.FeeStatus != model.FeeStatusPaid {
		t.Fatalf("FeeStatus = %q, want paid", m.FeeStatus)
	}
	if m.FeePaidAt == nil {
		t.Fatal("FeePaidAt should be set when status flips to paid")
	}
	if time.Since(*m.FeePaidAt) > time.Minute {
		t.Error("FeePaidAt should be recent")
	}

	// re-applying paid must not overwrite the original timestamp
	orig := *m.FeePaidAt
	req.ApplyToModel(m)
	if !m.FeePaidAt.Equal(orig) {
		t.Error("FeePaidAt must not change on a repeated paid update")
	}
}

package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/finance/fees/model"
)

/* ===================== FEE ===================== */

// At most one of fee_student_id / fee_class_id may be set; both empty
// bills the whole school.
type CreateFeeRequest struct {
	FeeTitle     string     `json:"fee_title" validate:"required,min=2,max=150"`
	FeeAmountIDR int        `json:"fee_amount_idr" validate:"required,gt=0"`
	FeeDueDate   time.Time  `json:"fee_due_date" validate:"required"`
	FeeStudentID *uuid.UUID `json:"fee_student_id" validate:"omitempty"`
	FeeClassID   *uuid.UUID `json:"fee_class_id" validate:"omitempty"`
}

func (r CreateFeeRequest) HasSingleTarget() bool {
	return r.FeeStudentID == nil || r.FeeClassID == nil
}

func (r CreateFeeRequest) ToModel() *model.FeeModel {
	return &model.FeeModel{
		FeeTitle:     strings.TrimSpace(r.FeeTitle),
		FeeAmountIDR: r.FeeAmountIDR,
		FeeDueDate:   r.FeeDueDate,
		FeeStatus:    model.FeeStatusPending,
		FeeStudentID: r.FeeStudentID,
		FeeClassID:   r.FeeClassID,
	}
}

type UpdateFeeRequest struct {
	FeeTitle     *string    `json:"fee_title" validate:"omitempty,min=2,max=150"`
	FeeAmountIDR *int       `json:"fee_amount_idr" validate:"omitempty,gt=0"`
	FeeDueDate   *time.Time `json:"fee_due_date" validate:"omitempty"`
	FeeStatus    *string    `json:"fee_status" validate:"omitempty,oneof=pending paid overdue"`
}

func (r *UpdateFeeRequest) ApplyToModel(m *model.FeeModel) {
	if r.FeeTitle != nil {
		m.FeeTitle = strings.TrimSpace(*r.FeeTitle)
	}
	if r.FeeAmountIDR != nil {
		m.FeeAmountIDR = *r.FeeAmountIDR
	}
	if r.FeeDueDate != nil {
		m.FeeDueDate = *r.FeeDueDate
	}
	if r.FeeStatus != nil {
		m.FeeStatus = model.FeeStatus(*r.FeeStatus)
		if m.FeeStatus == model.FeeStatusPaid && m.FeePaidAt == nil {
			now := time.Now()
			m.FeePaidAt = &now
		}
	}
}

type FeeResponse struct {
	FeeID        uuid.UUID       `json:"fee_id"`
	FeeTitle     string          `json:"fee_title"`
	FeeAmountIDR int             `json:"fee_amount_idr"`
	FeeDueDate   time.Time       `json:"fee_due_date"`
	FeeStatus    model.FeeStatus `json:"fee_status"`
	FeePaidAt    *time.Time      `json:"fee_paid_at,omitempty"`
	FeeStudentID *uuid.UUID      `json:"fee_student_id,omitempty"`
	FeeClassID   *uuid.UUID      `json:"fee_class_id,omitempty"`
	FeeCreatedAt time.Time       `json:"fee_created_at"`
}

func NewFeeResponse(m *model.FeeModel) *FeeResponse {
	if m == nil {
		return nil
	}
	return &FeeResponse{
		FeeID:        m.FeeID,
		FeeTitle:     m.FeeTitle,
		FeeAmountIDR: m.FeeAmountIDR,
		FeeDueDate:   m.FeeDueDate,
		FeeStatus:    m.FeeStatus,
		FeePaidAt:    m.FeePaidAt,
		FeeStudentID: m.FeeStudentID,
		FeeClassID:   m.FeeClassID,
		FeeCreatedAt: m.FeeCreatedAt,
	}
}

type CheckoutResponse struct {
	FeeID       uuid.UUID `json:"fee_id"`
	OrderID     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	academicsModel "schoolku_backend/internals/features/school/academics/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
)

type FeeStatus string

const (
	FeeStatusPending FeeStatus = "pending"
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusOverdue FeeStatus = "overdue"
)

// A fee is billed to a single student, to a whole class, or — both
// refs NULL — school-wide.
type FeeModel struct {
	FeeID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fee_id" json:"fee_id"`
	FeeTitle     string    `gorm:"size:150;not null;column:fee_title" json:"fee_title"`
	FeeAmountIDR int       `gorm:"not null;column:fee_amount_idr" json:"fee_amount_idr"`
	FeeDueDate   time.Time `gorm:"type:date;not null;column:fee_due_date" json:"fee_due_date"`

	FeeStatus FeeStatus  `gorm:"type:varchar(16);not null;default:'pending';column:fee_status" json:"fee_status"`
	FeePaidAt *time.Time `gorm:"column:fee_paid_at" json:"fee_paid_at,omitempty"`

	FeeStudentID *uuid.UUID `gorm:"type:uuid;index;column:fee_student_id" json:"fee_student_id,omitempty"`
	FeeClassID   *uuid.UUID `gorm:"type:uuid;index;column:fee_class_id" json:"fee_class_id,omitempty"`

	// payment gateway bookkeeping
	FeeExternalID       *string        `gorm:"size:100;uniqueIndex;column:fee_external_id" json:"fee_external_id,omitempty"`
	FeeCheckoutURL      *string        `gorm:"type:text;column:fee_checkout_url" json:"fee_checkout_url,omitempty"`
	FeeGatewayReference *string        `gorm:"size:100;column:fee_gateway_reference" json:"fee_gateway_reference,omitempty"`
	FeePaymentMeta      datatypes.JSON `gorm:"type:jsonb;column:fee_payment_meta" json:"fee_payment_meta,omitempty"`

	FeeCreatedAt time.Time      `gorm:"autoCreateTime;column:fee_created_at" json:"fee_created_at"`
	FeeUpdatedAt time.Time      `gorm:"autoUpdateTime;column:fee_updated_at" json:"fee_updated_at"`
	FeeDeletedAt gorm.DeletedAt `gorm:"column:fee_deleted_at;index" json:"-"`

	Student *peopleModel.StudentModel  `gorm:"foreignKey:FeeStudentID;references:StudentID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
	Class   *academicsModel.ClassModel `gorm:"foreignKey:FeeClassID;references:ClassID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
}

func (FeeModel) TableName() string { return "fees" }

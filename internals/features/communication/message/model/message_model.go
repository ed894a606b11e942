package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userModel "schoolku_backend/internals/features/users/user/model"
)

type MessageModel struct {
	MessageID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:message_id" json:"message_id"`
	MessageSubject string    `gorm:"size:150;not null;column:message_subject" json:"message_subject"`
	MessageBody    string    `gorm:"type:text;not null;column:message_body" json:"message_body"`

	MessageSenderID    uuid.UUID `gorm:"type:uuid;not null;index;column:message_sender_id" json:"message_sender_id"`
	MessageRecipientID uuid.UUID `gorm:"type:uuid;not null;index;column:message_recipient_id" json:"message_recipient_id"`

	MessageRead   bool       `gorm:"not null;default:false;column:message_read" json:"message_read"`
	MessageReadAt *time.Time `gorm:"column:message_read_at" json:"message_read_at,omitempty"`

	// [{"name":"...","url":"...","size":...}, ...]
	MessageAttachments datatypes.JSON `gorm:"type:jsonb;column:message_attachments" json:"message_attachments,omitempty"`

	MessageCreatedAt time.Time      `gorm:"autoCreateTime;column:message_created_at" json:"message_created_at"`
	MessageUpdatedAt time.Time      `gorm:"autoUpdateTime;column:message_updated_at" json:"message_updated_at"`
	MessageDeletedAt gorm.DeletedAt `gorm:"column:message_deleted_at;index" json:"-"`

	Sender    *userModel.UserModel `gorm:"foreignKey:MessageSenderID;references:UserID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
	Recipient *userModel.UserModel `gorm:"foreignKey:MessageRecipientID;references:UserID;constraint:OnUpdate:RESTRICT,OnDelete:CASCADE" json:"-"`
}

func (MessageModel) TableName() string { return "messages" }

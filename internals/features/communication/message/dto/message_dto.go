package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "schoolku_backend/internals/features/communication/message/model"
)

/* ===================== MESSAGE ===================== */

type AttachmentInput struct {
	Name string `json:"name" validate:"required,max=200"`
	URL  string `json:"url" validate:"required,url"`
	Size int64  `json:"size" validate:"omitempty,min=0"`
}

type CreateMessageRequest struct {
	MessageSubject     string            `json:"message_subject" validate:"required,min=1,max=150"`
	MessageBody        string            `json:"message_body" validate:"required,min=1"`
	MessageRecipientID uuid.UUID         `json:"message_recipient_id" validate:"required"`
	MessageAttachments []AttachmentInput `json:"message_attachments" validate:"omitempty,max=10,dive"`
}

func (r CreateMessageRequest) ToModel(senderID uuid.UUID) *model.MessageModel {
	m := &model.MessageModel{
		MessageSubject:     strings.TrimSpace(r.MessageSubject),
		MessageBody:        r.MessageBody,
		MessageSenderID:    senderID,
		MessageRecipientID: r.MessageRecipientID,
	}
	if len(r.MessageAttachments) > 0 {
		if raw, err := json.Marshal(r.MessageAttachments); err == nil {
			m.MessageAttachments = datatypes.JSON(raw)
		}
	}
	return m
}

type MessageResponse struct {
	MessageID          uuid.UUID       `json:"message_id"`
	MessageSubject     string          `json:"message_subject"`
	MessageBody        string          `json:"message_body"`
	MessageSenderID    uuid.UUID       `json:"message_sender_id"`
	MessageRecipientID uuid.UUID       `json:"message_recipient_id"`
	MessageRead        bool            `json:"message_read"`
	MessageReadAt      *time.Time      `json:"message_read_at,omitempty"`
	MessageAttachments json.RawMessage `json:"message_attachments,omitempty"`
	MessageCreatedAt   time.Time       `json:"message_created_at"`
}

func NewMessageResponse(m *model.MessageModel) *MessageResponse {
	if m == nil {
		return nil
	}
	return &MessageResponse{
		MessageID:          m.MessageID,
		MessageSubject:     m.MessageSubject,
		MessageBody:        m.MessageBody,
		MessageSenderID:    m.MessageSenderID,
		MessageRecipientID: m.MessageRecipientID,
		MessageRead:        m.MessageRead,
		MessageReadAt:      m.MessageReadAt,
		MessageAttachments: json.RawMessage(m.MessageAttachments),
		MessageCreatedAt:   m.MessageCreatedAt,
	}
}

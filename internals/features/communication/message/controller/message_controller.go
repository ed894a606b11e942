package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/communication/message/dto"
	"schoolku_backend/internals/features/communication/message/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/scope"
)

var validate = validator.New()

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

// POST /api/u/messages
func (ctrl *MessageController) Create(c *fiber.Ctx) error {
	senderID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not logged in")
	}

	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.MessageRecipientID == senderID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot send a message to yourself")
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("users").
		Where("user_id = ? AND user_is_active AND user_deleted_at IS NULL", req.MessageRecipientID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check recipient")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Recipient not found")
	}

	m := req.ToModel(senderID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send message")
	}
	return helper.JsonCreated(c, "Message sent successfully", dto.NewMessageResponse(m))
}

// GET /api/u/messages
func (ctrl *MessageController) List(c *fiber.Ctx) error {
	rc := helper.ScopeRequestContext(c)
	sc := scope.ComposeMessageScope(rc, helper.ScopeParams(c, "userId", "search"))

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.MessageModel{})
	if unread := c.Query("unread"); unread == "true" {
		q = q.Where("messages.message_read = false")
	}
	q = sc.Apply(q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var rows []model.MessageModel
	if err := q.Order("messages.message_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}

	resp := make([]*dto.MessageResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewMessageResponse(&rows[i]))
	}
	return helper.JsonList(c, "Messages fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/u/messages/:id
// Reading as the recipient marks the message read.
func (ctrl *MessageController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid message ID")
	}

	rc := helper.ScopeRequestContext(c)
	sc := scope.ComposeMessageScope(rc, nil)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.MessageModel{}).
		Where("messages.message_id = ?", id)
	q = sc.Apply(q)

	var m model.MessageModel
	if err := q.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch message")
	}

	if !m.MessageRead && rc.UserID == m.MessageRecipientID {
		now := time.Now()
		m.MessageRead = true
		m.MessageReadAt = &now
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&model.MessageModel{}).
			Where("message_id = ?", m.MessageID).
			Updates(map[string]any{"message_read": true, "message_read_at": now}).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark message read")
		}
	}

	return helper.JsonOK(c, "Message fetched successfully", dto.NewMessageResponse(&m))
}

// DELETE /api/u/messages/:id (sender or admin)
func (ctrl *MessageController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid message ID")
	}

	var m model.MessageModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "message_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch message")
	}

	rc := helper.ScopeRequestContext(c)
	if rc.Role != constants.RoleAdmin && rc.UserID != m.MessageSenderID {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the sender may delete a message")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete message")
	}
	return helper.JsonDeleted(c, "Message deleted successfully", fiber.Map{"message_id": id})
}

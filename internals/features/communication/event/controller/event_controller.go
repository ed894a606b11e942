package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/communication/event/dto"
	"schoolku_backend/internals/features/communication/event/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/scope"
)

var validate = validator.New()

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// POST /api/a/events
func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.EventClassID != nil {
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).
			Table("classes").
			Where("class_id = ? AND class_deleted_at IS NULL", *req.EventClassID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Class not found")
		}
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created successfully", dto.NewEventResponse(m))
}

// GET /api/u/events
func (ctrl *EventController) List(c *fiber.Ctx) error {
	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeEventScope(rc, helper.ScopeParams(c, "classId", "search"), rs)

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.EventModel{})
	q = sc.Apply(q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var rows []model.EventModel
	if err := q.Order("events.event_start_time DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	resp := make([]*dto.EventResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewEventResponse(&rows[i]))
	}
	return helper.JsonList(c, "Events fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// PUT /api/a/events/:id
func (ctrl *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.EventModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "event_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	req.ApplyToModel(&m)
	if !m.EventEndTime.After(m.EventStartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event end time must be after start time")
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event updated successfully", dto.NewEventResponse(&m))
}

// DELETE /api/a/events/:id
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var m model.EventModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "event_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.JsonDeleted(c, "Event deleted successfully", fiber.Map{"event_id": id})
}

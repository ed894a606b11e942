package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/communication/announcement/dto"
	"schoolku_backend/internals/features/communication/announcement/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/scope"
)

var validate = validator.New()

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

// canPublishTo: admin anywhere; a teacher only to classes they
// supervise or teach in. School-wide (nil class) is admin-only.
func canPublishTo(db *gorm.DB, c *fiber.Ctx, classID *uuid.UUID) (bool, error) {
	role := helper.GetRoleFromToken(c)
	if role == constants.RoleAdmin {
		return true, nil
	}
	if role != constants.RoleTeacher || classID == nil {
		return false, nil
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return false, nil
	}

	var count int64
	err = db.WithContext(c.Context()).
		Table("teachers").
		Joins("LEFT JOIN classes ON classes.class_supervisor_id = teachers.teacher_id AND classes.class_deleted_at IS NULL").
		Joins("LEFT JOIN lessons ON lessons.lesson_teacher_id = teachers.teacher_id AND lessons.lesson_deleted_at IS NULL").
		Where("teachers.teacher_user_id = ? AND teachers.teacher_deleted_at IS NULL", userID).
		Where("classes.class_id = ? OR lessons.lesson_class_id = ?", *classID, *classID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// POST /api/u/announcements (teacher or admin)
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ok, err := canPublishTo(ctrl.DB, c, req.AnnouncementClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only announce to your own classes")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement created successfully", dto.NewAnnouncementResponse(m))
}

// GET /api/u/announcements
func (ctrl *AnnouncementController) List(c *fiber.Ctx) error {
	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeAnnouncementScope(rc, helper.ScopeParams(c, "classId", "search"), rs)

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.AnnouncementModel{})
	q = sc.Apply(q)

	// audience filter: empty array means everyone
	if rc.Role != constants.RoleAdmin && rc.Role != "" {
		q = q.Where("announcements.announcement_audience_roles IS NULL"+
			" OR cardinality(announcements.announcement_audience_roles) = 0"+
			" OR ? = ANY(announcements.announcement_audience_roles)", rc.Role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count announcements")
	}

	var rows []model.AnnouncementModel
	if err := q.Order("announcements.announcement_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	resp := make([]*dto.AnnouncementResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewAnnouncementResponse(&rows[i]))
	}
	return helper.JsonList(c, "Announcements fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// PUT /api/u/announcements/:id
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement ID")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.AnnouncementModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "announcement_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcement")
	}

	ok, err := canPublishTo(ctrl.DB, c, m.AnnouncementClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only edit announcements for your own classes")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.JsonUpdated(c, "Announcement updated successfully", dto.NewAnnouncementResponse(&m))
}

// DELETE /api/u/announcements/:id
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement ID")
	}

	var m model.AnnouncementModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "announcement_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcement")
	}

	ok, err := canPublishTo(ctrl.DB, c, m.AnnouncementClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only delete announcements for your own classes")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	return helper.JsonDeleted(c, "Announcement deleted successfully", fiber.Map{"announcement_id": id})
}

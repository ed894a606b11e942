package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/assessments/assignment/dto"
	"schoolku_backend/internals/features/assessments/assignment/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/scope"
)

var validate = validator.New()

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

func canManageLesson(db *gorm.DB, c *fiber.Ctx, lessonID uuid.UUID) (bool, error) {
	role := helper.GetRoleFromToken(c)
	if role == constants.RoleAdmin {
		return true, nil
	}
	if role != constants.RoleTeacher {
		return false, nil
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return false, nil
	}

	var count int64
	err = db.WithContext(c.Context()).
		Table("lessons").
		Joins("JOIN teachers ON teachers.teacher_id = lessons.lesson_teacher_id AND teachers.teacher_deleted_at IS NULL").
		Where("lessons.lesson_id = ? AND teachers.teacher_user_id = ? AND lessons.lesson_deleted_at IS NULL", lessonID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// POST /api/u/assignments (teacher or admin)
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ok, err := canManageLesson(ctrl.DB, c, req.AssignmentLessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only create assignments for your own lessons")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}
	return helper.JsonCreated(c, "Assignment created successfully", dto.NewAssignmentResponse(m))
}

// GET /api/u/assignments
func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeAssignmentScope(rc, helper.ScopeParams(c, "classId", "teacherId", "search"), rs)

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.AssignmentModel{}).
		Joins("JOIN lessons ON lessons.lesson_id = assignments.assignment_lesson_id AND lessons.lesson_deleted_at IS NULL")
	q = sc.Apply(q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count assignments")
	}

	var rows []model.AssignmentModel
	if err := q.Order("assignments.assignment_due_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	resp := make([]*dto.AssignmentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewAssignmentResponse(&rows[i]))
	}
	return helper.JsonList(c, "Assignments fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/u/assignments/:id
func (ctrl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeAssignmentScope(rc, nil, rs)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.AssignmentModel{}).
		Joins("JOIN lessons ON lessons.lesson_id = assignments.assignment_lesson_id AND lessons.lesson_deleted_at IS NULL").
		Where("assignments.assignment_id = ?", id)
	q = sc.Apply(q)

	var m model.AssignmentModel
	if err := q.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignment")
	}
	return helper.JsonOK(c, "Assignment fetched successfully", dto.NewAssignmentResponse(&m))
}

// PUT /api/u/assignments/:id
func (ctrl *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.AssignmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "assignment_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignment")
	}

	ok, err := canManageLesson(ctrl.DB, c, m.AssignmentLessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only update assignments for your own lessons")
	}

	req.ApplyToModel(&m)
	if !m.AssignmentDueDate.After(m.AssignmentStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Assignment due date must be after start date")
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update assignment")
	}
	return helper.JsonUpdated(c, "Assignment updated successfully", dto.NewAssignmentResponse(&m))
}

// DELETE /api/u/assignments/:id
func (ctrl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	var m model.AssignmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "assignment_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignment")
	}

	ok, err := canManageLesson(ctrl.DB, c, m.AssignmentLessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only delete assignments for your own lessons")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	return helper.JsonDeleted(c, "Assignment deleted successfully", fiber.Map{"assignment_id": id})
}

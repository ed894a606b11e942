package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/assessments/exam/dto"
	"schoolku_backend/internals/features/assessments/exam/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/scope"
)

var validate = validator.New()

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

// canManageLesson: admin always, a teacher only for lessons they teach.
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

// POST /api/u/exams (teacher or admin)
func (ctrl *ExamController) Create(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ok, err := canManageLesson(ctrl.DB, c, req.ExamLessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only create exams for your own lessons")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create exam")
	}
	return helper.JsonCreated(c, "Exam created successfully", dto.NewExamResponse(m))
}

// GET /api/u/exams
func (ctrl *ExamController) List(c *fiber.Ctx) error {
	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeExamScope(rc, helper.ScopeParams(c, "classId", "teacherId", "search"), rs)

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.ExamModel{}).
		Joins("JOIN lessons ON lessons.lesson_id = exams.exam_lesson_id AND lessons.lesson_deleted_at IS NULL")
	q = sc.Apply(q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count exams")
	}

	var rows []model.ExamModel
	if err := q.Order("exams.exam_start_time DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exams")
	}

	resp := make([]*dto.ExamResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewExamResponse(&rows[i]))
	}
	return helper.JsonList(c, "Exams fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/u/exams/:id
func (ctrl *ExamController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam ID")
	}

	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeExamScope(rc, nil, rs)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.ExamModel{}).
		Joins("JOIN lessons ON lessons.lesson_id = exams.exam_lesson_id AND lessons.lesson_deleted_at IS NULL").
		Where("exams.exam_id = ?", id)
	q = sc.Apply(q)

	var m model.ExamModel
	if err := q.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}
	return helper.JsonOK(c, "Exam fetched successfully", dto.NewExamResponse(&m))
}

// PUT /api/u/exams/:id
func (ctrl *ExamController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam ID")
	}

	var req dto.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ExamModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "exam_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}

	ok, err := canManageLesson(ctrl.DB, c, m.ExamLessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only update exams for your own lessons")
	}

	req.ApplyToModel(&m)
	if !m.ExamEndTime.After(m.ExamStartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Exam end time must be after start time")
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update exam")
	}
	return helper.JsonUpdated(c, "Exam updated successfully", dto.NewExamResponse(&m))
}

// DELETE /api/u/exams/:id
func (ctrl *ExamController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam ID")
	}

	var m model.ExamModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "exam_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch exam")
	}

	ok, err := canManageLesson(ctrl.DB, c, m.ExamLessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only delete exams for your own lessons")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete exam")
	}
	return helper.JsonDeleted(c, "Exam deleted successfully", fiber.Map{"exam_id": id})
}

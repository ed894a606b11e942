package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/dto"
	"schoolku_backend/internals/features/school/academics/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/scope"
)

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

// POST /api/a/lessons
func (ctrl *LessonController) Create(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var subjectCount int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.SubjectModel{}).
		Where("subject_id = ?", req.LessonSubjectID).
		Count(&subjectCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check subject")
	}
	if subjectCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subject not found")
	}

	var classCount int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.ClassModel{}).
		Where("class_id = ?", req.LessonClassID).
		Count(&classCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class")
	}
	if classCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Class not found")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}
	return helper.JsonCreated(c, "Lesson created successfully", dto.NewLessonResponse(m))
}

// GET /api/u/lessons
// Visibility follows the actor's role: admin sees everything, a teacher
// their own lessons plus supervised classes, a student their class, a
// parent their children's classes.
func (ctrl *LessonController) List(c *fiber.Ctx) error {
	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeLessonScope(rc, helper.ScopeParams(c, "classId", "teacherId", "search"), rs)

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.LessonModel{}).
		Joins("JOIN subjects ON subjects.subject_id = lessons.lesson_subject_id AND subjects.subject_deleted_at IS NULL")
	q = sc.Apply(q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count lessons")
	}

	var rows []model.LessonModel
	if err := q.Order("lessons.lesson_day ASC, lessons.lesson_start_time ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lessons")
	}

	resp := make([]*dto.LessonResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewLessonResponse(&rows[i]))
	}
	return helper.JsonList(c, "Lessons fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/u/lessons/:id
func (ctrl *LessonController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson ID")
	}

	var m model.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "lesson_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lesson")
	}
	return helper.JsonOK(c, "Lesson fetched successfully", dto.NewLessonResponse(&m))
}

// PUT /api/a/lessons/:id
func (ctrl *LessonController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson ID")
	}

	var req dto.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "lesson_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lesson")
	}

	req.ApplyToModel(&m)
	if !m.LessonEndTime.After(m.LessonStartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Lesson end time must be after start time")
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lesson")
	}
	return helper.JsonUpdated(c, "Lesson updated successfully", dto.NewLessonResponse(&m))
}

// DELETE /api/a/lessons/:id
func (ctrl *LessonController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson ID")
	}

	var m model.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "lesson_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lesson")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lesson")
	}
	return helper.JsonDeleted(c, "Lesson deleted successfully", fiber.Map{"lesson_id": id})
}

package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/dto"
	"schoolku_backend/internals/features/school/academics/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// POST /api/a/classes
func (ctrl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.ClassModel{}).
		Where("LOWER(class_name) = LOWER(?)", req.ClassName).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class name")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Class name already exists")
	}

	var gradeCount int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.GradeModel{}).
		Where("grade_id = ?", req.ClassGradeID).
		Count(&gradeCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check grade")
	}
	if gradeCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Grade not found")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class created successfully", dto.NewClassResponse(m))
}

// GET /api/u/classes
func (ctrl *ClassController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.ClassModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("class_name ILIKE ?", "%"+search+"%")
	}
	if gradeID, err := uuid.Parse(c.Query("gradeId")); err == nil {
		q = q.Where("class_grade_id = ?", gradeID)
	}
	if supervisorID, err := uuid.Parse(c.Query("supervisorId")); err == nil {
		q = q.Where("class_supervisor_id = ?", supervisorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var rows []model.ClassModel
	if err := q.Order("class_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	resp := make([]*dto.ClassResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewClassResponse(&rows[i]))
	}
	return helper.JsonList(c, "Classes fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/u/classes/:id
func (ctrl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "class_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}
	return helper.JsonOK(c, "Class fetched successfully", dto.NewClassResponse(&m))
}

// PUT /api/a/classes/:id
func (ctrl *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "class_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}
	return helper.JsonUpdated(c, "Class updated successfully", dto.NewClassResponse(&m))
}

// DELETE /api/a/classes/:id
func (ctrl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var m model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "class_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	return helper.JsonDeleted(c, "Class deleted successfully", fiber.Map{"class_id": id})
}

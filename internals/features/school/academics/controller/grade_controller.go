package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/dto"
	"schoolku_backend/internals/features/school/academics/model"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

// POST /api/a/grades
func (ctrl *GradeController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.GradeModel{}).
		Where("grade_level = ?", req.GradeLevel).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check grade level")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Grade level already exists")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create grade")
	}
	return helper.JsonCreated(c, "Grade created successfully", dto.NewGradeResponse(m))
}

// GET /api/u/grades
func (ctrl *GradeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.GradeModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count grades")
	}

	var rows []model.GradeModel
	if err := q.Order("grade_level ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grades")
	}

	resp := make([]*dto.GradeResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewGradeResponse(&rows[i]))
	}
	return helper.JsonList(c, "Grades fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/u/grades/:id
func (ctrl *GradeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade ID")
	}

	var m model.GradeModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "grade_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grade")
	}
	return helper.JsonOK(c, "Grade fetched successfully", dto.NewGradeResponse(&m))
}

// PUT /api/a/grades/:id
func (ctrl *GradeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade ID")
	}

	var req dto.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.GradeModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "grade_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grade")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update grade")
	}
	return helper.JsonUpdated(c, "Grade updated successfully", dto.NewGradeResponse(&m))
}

// DELETE /api/a/grades/:id
func (ctrl *GradeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade ID")
	}

	var m model.GradeModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "grade_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch grade")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete grade")
	}
	return helper.JsonDeleted(c, "Grade deleted successfully", fiber.Map{"grade_id": id})
}

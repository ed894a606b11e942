package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/dto"
	"schoolku_backend/internals/features/school/academics/model"
	helper "schoolku_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// POST /api/a/subjects
func (ctrl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.SubjectModel{}).
		Where("LOWER(subject_name) = LOWER(?)", req.SubjectName).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check subject name")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Subject name already exists")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject created successfully", dto.NewSubjectResponse(m))
}

// GET /api/u/subjects
func (ctrl *SubjectController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.SubjectModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("subject_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count subjects")
	}

	var rows []model.SubjectModel
	if err := q.Order("subject_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}

	resp := make([]*dto.SubjectResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewSubjectResponse(&rows[i]))
	}
	return helper.JsonList(c, "Subjects fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/u/subjects/:id
func (ctrl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	var m model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "subject_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}
	return helper.JsonOK(c, "Subject fetched successfully", dto.NewSubjectResponse(&m))
}

// PUT /api/a/subjects/:id
func (ctrl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "subject_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.JsonUpdated(c, "Subject updated successfully", dto.NewSubjectResponse(&m))
}

// DELETE /api/a/subjects/:id
func (ctrl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	var m model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "subject_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	return helper.JsonDeleted(c, "Subject deleted successfully", fiber.Map{"subject_id": id})
}

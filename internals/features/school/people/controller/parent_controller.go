package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/people/dto"
	"schoolku_backend/internals/features/school/people/model"
	helper "schoolku_backend/internals/helpers"
)

type ParentController struct {
	DB *gorm.DB
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db}
}

// POST /api/a/parents
func (ctrl *ParentController) Create(c *fiber.Ctx) error {
	var req dto.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := checkUserRole(ctrl.DB, c, req.ParentUserID, "parent"); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.ParentModel{}).
		Where("parent_user_id = ?", req.ParentUserID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check parent profile")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Parent profile already exists for this user")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create parent")
	}
	return helper.JsonCreated(c, "Parent created successfully", dto.NewParentResponse(m))
}

// GET /api/a/parents
func (ctrl *ParentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.ParentModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("parent_name ILIKE ? OR parent_surname ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count parents")
	}

	var rows []model.ParentModel
	if err := q.Order("parent_surname ASC, parent_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parents")
	}

	resp := make([]*dto.ParentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewParentResponse(&rows[i]))
	}
	return helper.JsonList(c, "Parents fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/a/parents/:id
func (ctrl *ParentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parent ID")
	}

	var m model.ParentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "parent_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parent")
	}
	return helper.JsonOK(c, "Parent fetched successfully", dto.NewParentResponse(&m))
}

// PUT /api/a/parents/:id
func (ctrl *ParentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parent ID")
	}

	var req dto.UpdateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ParentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "parent_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parent")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update parent")
	}
	return helper.JsonUpdated(c, "Parent updated successfully", dto.NewParentResponse(&m))
}

// DELETE /api/a/parents/:id
func (ctrl *ParentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parent ID")
	}

	var m model.ParentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "parent_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch parent")
	}

	var childCount int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudentModel{}).
		Where("student_parent_id = ?", id).
		Count(&childCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check children")
	}
	if childCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Parent still has registered students")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete parent")
	}
	return helper.JsonDeleted(c, "Parent deleted successfully", fiber.Map{"parent_id": id})
}

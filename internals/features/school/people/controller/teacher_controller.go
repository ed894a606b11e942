package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/people/dto"
	"schoolku_backend/internals/features/school/people/model"
	helper "schoolku_backend/internals/helpers"
)

var validate = validator.New()

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// checkUserRole verifies the linked user account exists and carries the
// expected role before a profile row is created for it.
func checkUserRole(db *gorm.DB, c *fiber.Ctx, userID uuid.UUID, wantRole string) error {
	type userRow struct {
		UserRole string `gorm:"column:user_role"`
	}
	var row userRow
	err := db.WithContext(c.Context()).
		Table("users").
		Select("user_role").
		Where("user_id = ? AND user_deleted_at IS NULL", userID).
		Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusBadRequest, "User account not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check user account")
	}
	if row.UserRole != wantRole {
		return fiber.NewError(fiber.StatusBadRequest, "User account role mismatch")
	}
	return nil
}

// POST /api/a/teachers
func (ctrl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := checkUserRole(ctrl.DB, c, req.TeacherUserID, "teacher"); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.TeacherModel{}).
		Where("teacher_user_id = ?", req.TeacherUserID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check teacher profile")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Teacher profile already exists for this user")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return helper.JsonCreated(c, "Teacher created successfully", dto.NewTeacherResponse(m))
}

// GET /api/u/teachers
func (ctrl *TeacherController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.TeacherModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("teacher_name ILIKE ? OR teacher_surname ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var rows []model.TeacherModel
	if err := q.Order("teacher_surname ASC, teacher_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}

	resp := make([]*dto.TeacherResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewTeacherResponse(&rows[i]))
	}
	return helper.JsonList(c, "Teachers fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/u/teachers/:id
func (ctrl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var m model.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "teacher_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	return helper.JsonOK(c, "Teacher fetched successfully", dto.NewTeacherResponse(&m))
}

// PUT /api/a/teachers/:id
func (ctrl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "teacher_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.JsonUpdated(c, "Teacher updated successfully", dto.NewTeacherResponse(&m))
}

// DELETE /api/a/teachers/:id
func (ctrl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var m model.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "teacher_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return helper.JsonDeleted(c, "Teacher deleted successfully", fiber.Map{"teacher_id": id})
}

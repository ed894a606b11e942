package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/people/dto"
	"schoolku_backend/internals/features/school/people/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/scope"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// POST /api/a/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := checkUserRole(ctrl.DB, c, req.StudentUserID, "student"); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudentModel{}).
		Where("student_user_id = ?", req.StudentUserID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check student profile")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Student profile already exists for this user")
	}

	var parentCount int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.ParentModel{}).
		Where("parent_id = ?", req.StudentParentID).
		Count(&parentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check parent")
	}
	if parentCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parent not found")
	}

	// class capacity guard
	type classRow struct {
		ClassCapacity int `gorm:"column:class_capacity"`
	}
	var cls classRow
	err := ctrl.DB.WithContext(c.Context()).
		Table("classes").
		Select("class_capacity").
		Where("class_id = ? AND class_deleted_at IS NULL", req.StudentClassID).
		Take(&cls).Error
	if err == gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusBadRequest, "Class not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class")
	}
	var enrolled int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudentModel{}).
		Where("student_class_id = ?", req.StudentClassID).
		Count(&enrolled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class occupancy")
	}
	if enrolled >= int64(cls.ClassCapacity) {
		return helper.JsonError(c, fiber.StatusConflict, "Class is already at capacity")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.JsonCreated(c, "Student created successfully", dto.NewStudentResponse(m))
}

// GET /api/u/students
// Admin sees everyone, a teacher their classes, a student themselves,
// a parent their children.
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeStudentScope(rc, helper.ScopeParams(c, "classId", "search"), rs)

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.StudentModel{})
	q = sc.Apply(q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var rows []model.StudentModel
	if err := q.Order("students.student_surname ASC, students.student_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	resp := make([]*dto.StudentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewStudentResponse(&rows[i]))
	}
	return helper.JsonList(c, "Students fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/u/students/:id
// The same role layer as the list applies, so a student cannot read
// another student's record by id.
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeStudentScope(rc, nil, rs)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudentModel{}).
		Where("students.student_id = ?", id)
	q = sc.Apply(q)

	var m model.StudentModel
	if err := q.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helper.JsonOK(c, "Student fetched successfully", dto.NewStudentResponse(&m))
}

// PUT /api/a/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "student_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonUpdated(c, "Student updated successfully", dto.NewStudentResponse(&m))
}

// DELETE /api/a/students/:id
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var m model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "student_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.JsonDeleted(c, "Student deleted successfully", fiber.Map{"student_id": id})
}

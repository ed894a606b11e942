package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/attendance/dto"
	"schoolku_backend/internals/features/attendance/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/scope"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
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

// POST /api/u/attendances (teacher or admin)
func (ctrl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ok, err := canManageLesson(ctrl.DB, c, req.AttendanceLessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only record attendance for your own lessons")
	}

	var studentCount int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("students").
		Where("student_id = ? AND student_deleted_at IS NULL", req.AttendanceStudentID).
		Count(&studentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check student")
	}
	if studentCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student not found")
	}

	// one record per student/lesson/day
	var dup int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_lesson_id = ? AND attendance_date = ?",
			req.AttendanceStudentID, req.AttendanceLessonID, req.AttendanceDate.Format("2006-01-02")).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing attendance")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Attendance already recorded for this student, lesson and date")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attendance")
	}
	return helper.JsonCreated(c, "Attendance recorded successfully", dto.NewAttendanceResponse(m))
}

// GET /api/u/attendances
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeAttendanceScope(rc, helper.ScopeParams(c, "studentId", "lessonId"), rs)

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.AttendanceModel{})
	if date := c.Query("date"); date != "" {
		q = q.Where("attendances.attendance_date = ?", date)
	}
	q = sc.Apply(q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attendance records")
	}

	var rows []model.AttendanceModel
	if err := q.Order("attendances.attendance_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance records")
	}

	resp := make([]*dto.AttendanceResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewAttendanceResponse(&rows[i]))
	}
	return helper.JsonList(c, "Attendance records fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// PUT /api/u/attendances/:id (present flag only)
func (ctrl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance ID")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "attendance_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance record")
	}

	ok, err := canManageLesson(ctrl.DB, c, m.AttendanceLessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only update attendance for your own lessons")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update attendance record")
	}
	return helper.JsonUpdated(c, "Attendance updated successfully", dto.NewAttendanceResponse(&m))
}

// DELETE /api/u/attendances/:id
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance ID")
	}

	var m model.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "attendance_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance record")
	}

	ok, err := canManageLesson(ctrl.DB, c, m.AttendanceLessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only delete attendance for your own lessons")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete attendance record")
	}
	return helper.JsonDeleted(c, "Attendance deleted successfully", fiber.Map{"attendance_id": id})
}

package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/assessments/grading"
	"schoolku_backend/internals/features/assessments/result/dto"
	"schoolku_backend/internals/features/assessments/result/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/scope"
)

var validate = validator.New()

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

/* ===== joined row shape shared by list & detail ===== */

type resultRow struct {
	ResultID           uuid.UUID  `gorm:"column:result_id"`
	ResultScore        float64    `gorm:"column:result_score"`
	ResultStudentID    uuid.UUID  `gorm:"column:result_student_id"`
	ResultExamID       *uuid.UUID `gorm:"column:result_exam_id"`
	ResultAssignmentID *uuid.UUID `gorm:"column:result_assignment_id"`
	ResultCreatedAt    time.Time  `gorm:"column:result_created_at"`

	StudentName    string `gorm:"column:student_name"`
	StudentSurname string `gorm:"column:student_surname"`

	ExamTitle             *string  `gorm:"column:exam_title"`
	AssignmentTitle       *string  `gorm:"column:assignment_title"`
	AssignmentTotalPoints *float64 `gorm:"column:assignment_total_points"`
}

const resultSelect = "results.result_id, results.result_score, results.result_student_id, " +
	"results.result_exam_id, results.result_assignment_id, results.result_created_at, " +
	"students.student_name, students.student_surname, " +
	"exams.exam_title, assignments.assignment_title, assignments.assignment_total_points"

func resultBaseQuery(db *gorm.DB, c *fiber.Ctx) *gorm.DB {
	return db.WithContext(c.Context()).
		Table("results").
		Joins("JOIN students ON students.student_id = results.result_student_id AND students.student_deleted_at IS NULL").
		Joins("LEFT JOIN exams ON exams.exam_id = results.result_exam_id AND exams.exam_deleted_at IS NULL").
		Joins("LEFT JOIN assignments ON assignments.assignment_id = results.result_assignment_id AND assignments.assignment_deleted_at IS NULL").
		Where("results.result_deleted_at IS NULL")
}

// toResponse maps a joined row to the response, deriving the display
// grade. Returns nil for rows whose assessment reference resolved to
// neither variant (orphaned by a hard delete or bad import).
func (row resultRow) toResponse() *dto.ResultResponse {
	var ref grading.AssessmentRef
	switch {
	case row.ResultExamID != nil && row.ExamTitle != nil:
		ref = grading.ExamRef(*row.ResultExamID, *row.ExamTitle)
	case row.ResultAssignmentID != nil && row.AssignmentTitle != nil:
		ref = grading.AssignmentRef(*row.ResultAssignmentID, *row.AssignmentTitle, row.AssignmentTotalPoints)
	default:
		return nil
	}

	m := &model.ResultModel{
		ResultID:           row.ResultID,
		ResultScore:        row.ResultScore,
		ResultStudentID:    row.ResultStudentID,
		ResultExamID:       row.ResultExamID,
		ResultAssignmentID: row.ResultAssignmentID,
		ResultCreatedAt:    row.ResultCreatedAt,
	}
	name := strings.TrimSpace(row.StudentName + " " + row.StudentSurname)
	return dto.NewResultResponse(m, ref, name)
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

// assessmentLessonID loads the owning lesson of the referenced
// exam/assignment, so ownership checks work for either variant.
func (ctrl *ResultController) assessmentLessonID(c *fiber.Ctx, examID, assignmentID *uuid.UUID) (uuid.UUID, error) {
	type lessonRow struct {
		LessonID uuid.UUID `gorm:"column:lesson_id"`
	}
	var row lessonRow

	var err error
	switch {
	case examID != nil:
		err = ctrl.DB.WithContext(c.Context()).
			Table("exams").
			Select("exam_lesson_id AS lesson_id").
			Where("exam_id = ? AND exam_deleted_at IS NULL", *examID).
			Take(&row).Error
	case assignmentID != nil:
		err = ctrl.DB.WithContext(c.Context()).
			Table("assignments").
			Select("assignment_lesson_id AS lesson_id").
			Where("assignment_id = ? AND assignment_deleted_at IS NULL", *assignmentID).
			Take(&row).Error
	default:
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return row.LessonID, nil
}

// POST /api/u/results (teacher or admin)
func (ctrl *ResultController) Create(c *fiber.Ctx) error {
	var req dto.CreateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.HasOneAssessment() {
		return helper.JsonError(c, fiber.StatusBadRequest, "A result must reference exactly one exam or assignment")
	}

	lessonID, err := ctrl.assessmentLessonID(c, req.ResultExamID, req.ResultAssignmentID)
	if err == gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusBadRequest, "Referenced assessment not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check assessment")
	}

	ok, err := canManageLesson(ctrl.DB, c, lessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only record results for your own lessons")
	}

	var studentCount int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("students").
		Where("student_id = ? AND student_deleted_at IS NULL", req.ResultStudentID).
		Count(&studentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check student")
	}
	if studentCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student not found")
	}

	var dup int64
	dupQ := ctrl.DB.WithContext(c.Context()).
		Model(&model.ResultModel{}).
		Where("result_student_id = ?", req.ResultStudentID)
	if req.ResultExamID != nil {
		dupQ = dupQ.Where("result_exam_id = ?", *req.ResultExamID)
	} else {
		dupQ = dupQ.Where("result_assignment_id = ?", *req.ResultAssignmentID)
	}
	if err := dupQ.Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing result")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "A result for this student and assessment already exists")
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create result")
	}
	return ctrl.respondWithRow(c, m.ResultID, helper.JsonCreated, "Result created successfully")
}

// GET /api/u/results
// Every row carries the derived grade (percentage + letter + label).
func (ctrl *ResultController) List(c *fiber.Ctx) error {
	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeResultScope(rc, helper.ScopeParams(c, "studentId", "classId", "search"), rs)

	p := helper.ResolvePaging(c, 20, 100)

	q := resultBaseQuery(ctrl.DB, c)
	q = sc.Apply(q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count results")
	}

	var rows []resultRow
	if err := q.Select(resultSelect).
		Order("results.result_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}

	resp := make([]*dto.ResultResponse, 0, len(rows))
	for _, row := range rows {
		r := row.toResponse()
		if r == nil {
			log.Printf("[WARN] skipping result %s: dangling assessment reference", row.ResultID)
			continue
		}
		resp = append(resp, r)
	}
	return helper.JsonList(c, "Results fetched successfully", resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(resp)))
}

// GET /api/u/results/:id
func (ctrl *ResultController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid result ID")
	}

	rc := helper.ScopeRequestContext(c)
	rs, err := scope.NewResolver(ctrl.DB).Resolve(c.Context(), rc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve access scope")
	}
	sc := scope.ComposeResultScope(rc, nil, rs)

	q := resultBaseQuery(ctrl.DB, c).Where("results.result_id = ?", id)
	q = sc.Apply(q)

	var row resultRow
	if err := q.Select(resultSelect).Take(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch result")
	}

	r := row.toResponse()
	if r == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Result assessment no longer exists")
	}
	return helper.JsonOK(c, "Result fetched successfully", r)
}

// PUT /api/u/results/:id (score only)
func (ctrl *ResultController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid result ID")
	}

	var req dto.UpdateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ResultModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "result_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch result")
	}

	lessonID, err := ctrl.assessmentLessonID(c, m.ResultExamID, m.ResultAssignmentID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check assessment")
	}
	ok, err := canManageLesson(ctrl.DB, c, lessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only update results for your own lessons")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update result")
	}
	return ctrl.respondWithRow(c, m.ResultID, helper.JsonUpdated, "Result updated successfully")
}

// DELETE /api/u/results/:id
func (ctrl *ResultController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid result ID")
	}

	var m model.ResultModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "result_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch result")
	}

	lessonID, err := ctrl.assessmentLessonID(c, m.ResultExamID, m.ResultAssignmentID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check assessment")
	}
	ok, err := canManageLesson(ctrl.DB, c, lessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check lesson ownership")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only delete results for your own lessons")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete result")
	}
	return helper.JsonDeleted(c, "Result deleted successfully", fiber.Map{"result_id": id})
}

// respondWithRow re-reads the joined row so create/update responses
// include the derived grade and the student/assessment labels.
func (ctrl *ResultController) respondWithRow(c *fiber.Ctx, id uuid.UUID,
	respond func(*fiber.Ctx, string, any) error, msg string) error {

	var row resultRow
	if err := resultBaseQuery(ctrl.DB, c).
		Where("results.result_id = ?", id).
		Select(resultSelect).
		Take(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch result")
	}
	r := row.toResponse()
	if r == nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Result assessment reference is invalid")
	}
	return respond(c, msg, r)
}

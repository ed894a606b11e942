// file: internals/helpers/scope/resolver.go
package scope

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
)

/* =========================================================
   Resolver

   Resolves the per-role ownership lookups the composers need
   (teacher's supervised classes + taught lessons, student's
   class, parent's children). Kept separate from the composers
   so those stay free of I/O.

   A lookup miss (no teacher/student/parent row for the actor)
   returns an empty RoleScopes entry for that role; composers
   turn that into default-deny. Only real DB failures are
   returned as errors.
========================================================= */

type Resolver struct {
	DB *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{DB: db}
}

func (r *Resolver) Resolve(ctx context.Context, rc RequestContext) (RoleScopes, error) {
	var rs RoleScopes
	if rc.UserID == uuid.Nil {
		return rs, nil
	}

	switch rc.Role {
	case constants.RoleTeacher:
		t, err := r.resolveTeacher(ctx, rc.UserID)
		if err != nil {
			return rs, err
		}
		rs.Teacher = t
	case constants.RoleStudent:
		st, err := r.resolveStudent(ctx, rc.UserID)
		if err != nil {
			return rs, err
		}
		rs.Student = st
	case constants.RoleParent:
		p, err := r.resolveParent(ctx, rc.UserID)
		if err != nil {
			return rs, err
		}
		rs.Parent = p
	}
	return rs, nil
}

func (r *Resolver) resolveTeacher(ctx context.Context, userID uuid.UUID) (*TeacherScope, error) {
	type teacherRow struct {
		TeacherID uuid.UUID `gorm:"column:teacher_id"`
	}
	var trow teacherRow
	err := r.DB.WithContext(ctx).
		Table("teachers").
		Select("teacher_id").
		Where("teacher_user_id = ? AND teacher_deleted_at IS NULL", userID).
		Take(&trow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	ts := &TeacherScope{TeacherID: trow.TeacherID}

	if err := r.DB.WithContext(ctx).
		Table("classes").
		Where("class_supervisor_id = ? AND class_deleted_at IS NULL", trow.TeacherID).
		Pluck("class_id", &ts.ClassIDs).Error; err != nil {
		return nil, err
	}

	type lessonRow struct {
		LessonID      uuid.UUID `gorm:"column:lesson_id"`
		LessonClassID uuid.UUID `gorm:"column:lesson_class_id"`
	}
	var rows []lessonRow
	if err := r.DB.WithContext(ctx).
		Table("lessons").
		Select("lesson_id, lesson_class_id").
		Where("lesson_teacher_id = ? AND lesson_deleted_at IS NULL", trow.TeacherID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		ts.LessonIDs = append(ts.LessonIDs, row.LessonID)
		ts.LessonClassIDs = append(ts.LessonClassIDs, row.LessonClassID)
	}
	return ts, nil
}

func (r *Resolver) resolveStudent(ctx context.Context, userID uuid.UUID) (*StudentScope, error) {
	type studentRow struct {
		StudentID      uuid.UUID `gorm:"column:student_id"`
		StudentClassID uuid.UUID `gorm:"column:student_class_id"`
	}
	var row studentRow
	err := r.DB.WithContext(ctx).
		Table("students").
		Select("student_id, student_class_id").
		Where("student_user_id = ? AND student_deleted_at IS NULL", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &StudentScope{StudentID: row.StudentID, ClassID: row.StudentClassID}, nil
}

func (r *Resolver) resolveParent(ctx context.Context, userID uuid.UUID) (*ParentScope, error) {
	type parentRow struct {
		ParentID uuid.UUID `gorm:"column:parent_id"`
	}
	var prow parentRow
	err := r.DB.WithContext(ctx).
		Table("parents").
		Select("parent_id").
		Where("parent_user_id = ? AND parent_deleted_at IS NULL", userID).
		Take(&prow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	ps := &ParentScope{ParentID: prow.ParentID}

	type childRow struct {
		StudentID      uuid.UUID `gorm:"column:student_id"`
		StudentClassID uuid.UUID `gorm:"column:student_class_id"`
	}
	var rows []childRow
	if err := r.DB.WithContext(ctx).
		Table("students").
		Select("student_id, student_class_id").
		Where("student_parent_id = ? AND student_deleted_at IS NULL", prow.ParentID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		ps.ChildStudentIDs = append(ps.ChildStudentIDs, row.StudentID)
		ps.ChildClassIDs = append(ps.ChildClassIDs, row.StudentClassID)
	}
	return ps, nil
}

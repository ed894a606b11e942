// file: internals/helpers/scope/compose.go
package scope

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

/* =========================================================
   Request context & resolved role lookups

   RequestContext is passed explicitly into every composer:
   no ambient session state, so the composition stays a pure
   function of its inputs.
========================================================= */

type RequestContext struct {
	UserID uuid.UUID
	Role   string
}

// TeacherScope: what the teacher actor owns. ClassIDs are the
// classes they supervise, LessonIDs the lessons they teach,
// LessonClassIDs the classes those lessons belong to.
type TeacherScope struct {
	TeacherID      uuid.UUID
	ClassIDs       []uuid.UUID
	LessonIDs      []uuid.UUID
	LessonClassIDs []uuid.UUID
}

// AllClassIDs: supervised ∪ taught-in classes.
func (t TeacherScope) AllClassIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(t.ClassIDs)+len(t.LessonClassIDs))
	out := make([]uuid.UUID, 0, len(t.ClassIDs)+len(t.LessonClassIDs))
	for _, id := range t.ClassIDs {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	for _, id := range t.LessonClassIDs {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

type StudentScope struct {
	StudentID uuid.UUID
	ClassID   uuid.UUID
}

type ParentScope struct {
	ParentID        uuid.UUID
	ChildStudentIDs []uuid.UUID
	ChildClassIDs   []uuid.UUID
}

// RoleScopes carries whichever lookup the actor's role needed.
// A nil entry for the active role means the lookup missed —
// composers must degrade to None (default-deny), never to
// an unrestricted query.
type RoleScopes struct {
	Teacher *TeacherScope
	Student *StudentScope
	Parent  *ParentScope
}

/* =========================================================
   Param helpers — unrecognized/malformed params are ignored
========================================================= */

func uuidParam(params map[string]string, key string) (uuid.UUID, bool) {
	raw, ok := params[key]
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func searchParam(params map[string]string) (string, bool) {
	q := strings.TrimSpace(params["search"])
	return q, q != ""
}

func searchOr(q string, cols ...string) Predicate {
	preds := make([]Predicate, 0, len(cols))
	for _, col := range cols {
		preds = append(preds, ILike{Col: col, Val: q})
	}
	return Or{Preds: preds}
}

/* =========================================================
   Composers — one per list page

   Shared shape:
     1. allow-listed FK params          → Eq
     2. search                          → OR of ILike over text cols
     3. role layer AND'd on top; URL filter and role restriction
        on the same field both stay (narrowing, never overriding)
     4. missing actor id / failed role lookup → None
========================================================= */

// ComposeLessonScope scopes the lesson list.
// Expected join: subjects ON lessons.lesson_subject_id = subjects.subject_id.
func ComposeLessonScope(rc RequestContext, params map[string]string, rs RoleScopes) Scope {
	var s Scope
	if id, ok := uuidParam(params, "classId"); ok {
		s.Add(Eq{Col: "lessons.lesson_class_id", Val: id})
	}
	if id, ok := uuidParam(params, "teacherId"); ok {
		s.Add(Eq{Col: "lessons.lesson_teacher_id", Val: id})
	}
	if q, ok := searchParam(params); ok {
		s.Add(searchOr(q, "lessons.lesson_name", "subjects.subject_name"))
	}

	switch rc.Role {
	case constants.RoleAdmin:
		// no extra restriction
	case constants.RoleTeacher:
		if rc.UserID == uuid.Nil || rs.Teacher == nil {
			s.Add(None{})
			break
		}
		s.Add(Or{Preds: []Predicate{
			In[uuid.UUID]{Col: "lessons.lesson_id", Vals: rs.Teacher.LessonIDs},
			In[uuid.UUID]{Col: "lessons.lesson_class_id", Vals: rs.Teacher.ClassIDs},
		}})
	case constants.RoleStudent:
		if rc.UserID == uuid.Nil || rs.Student == nil {
			s.Add(None{})
			break
		}
		s.Add(Eq{Col: "lessons.lesson_class_id", Val: rs.Student.ClassID})
	case constants.RoleParent:
		if rc.UserID == uuid.Nil || rs.Parent == nil {
			s.Add(None{})
			break
		}
		s.Add(In[uuid.UUID]{Col: "lessons.lesson_class_id", Vals: rs.Parent.ChildClassIDs})
	default:
		s.Add(None{})
	}
	return s
}

// ComposeExamScope scopes the exam list.
// Expected join: lessons ON exams.exam_lesson_id = lessons.lesson_id.
func ComposeExamScope(rc RequestContext, params map[string]string, rs RoleScopes) Scope {
	var s Scope
	if id, ok := uuidParam(params, "classId"); ok {
		s.Add(Eq{Col: "lessons.lesson_class_id", Val: id})
	}
	if id, ok := uuidParam(params, "teacherId"); ok {
		s.Add(Eq{Col: "lessons.lesson_teacher_id", Val: id})
	}
	if q, ok := searchParam(params); ok {
		s.Add(searchOr(q, "exams.exam_title"))
	}
	addLessonRoleLayer(&s, rc, rs, "exams.exam_lesson_id", "lessons.lesson_class_id")
	return s
}

// ComposeAssignmentScope scopes the assignment list.
// Expected join: lessons ON assignments.assignment_lesson_id = lessons.lesson_id.
func ComposeAssignmentScope(rc RequestContext, params map[string]string, rs RoleScopes) Scope {
	var s Scope
	if id, ok := uuidParam(params, "classId"); ok {
		s.Add(Eq{Col: "lessons.lesson_class_id", Val: id})
	}
	if id, ok := uuidParam(params, "teacherId"); ok {
		s.Add(Eq{Col: "lessons.lesson_teacher_id", Val: id})
	}
	if q, ok := searchParam(params); ok {
		s.Add(searchOr(q, "assignments.assignment_title"))
	}
	addLessonRoleLayer(&s, rc, rs, "assignments.assignment_lesson_id", "lessons.lesson_class_id")
	return s
}

// addLessonRoleLayer: shared role layer for assessment-like
// entities owned by a lesson.
func addLessonRoleLayer(s *Scope, rc RequestContext, rs RoleScopes, lessonCol, classCol string) {
	switch rc.Role {
	case constants.RoleAdmin:
	case constants.RoleTeacher:
		if rc.UserID == uuid.Nil || rs.Teacher == nil {
			s.Add(None{})
			return
		}
		s.Add(Or{Preds: []Predicate{
			In[uuid.UUID]{Col: lessonCol, Vals: rs.Teacher.LessonIDs},
			In[uuid.UUID]{Col: classCol, Vals: rs.Teacher.ClassIDs},
		}})
	case constants.RoleStudent:
		if rc.UserID == uuid.Nil || rs.Student == nil {
			s.Add(None{})
			return
		}
		s.Add(Eq{Col: classCol, Val: rs.Student.ClassID})
	case constants.RoleParent:
		if rc.UserID == uuid.Nil || rs.Parent == nil {
			s.Add(None{})
			return
		}
		s.Add(In[uuid.UUID]{Col: classCol, Vals: rs.Parent.ChildClassIDs})
	default:
		s.Add(None{})
	}
}

// ComposeResultScope scopes the result list.
// Expected joins: students, LEFT exams, LEFT assignments. The owning
// lesson id is COALESCE'd across the two assessment variants.
func ComposeResultScope(rc RequestContext, params map[string]string, rs RoleScopes) Scope {
	const lessonExpr = "COALESCE(exams.exam_lesson_id, assignments.assignment_lesson_id)"

	var s Scope
	if id, ok := uuidParam(params, "studentId"); ok {
		s.Add(Eq{Col: "results.result_student_id", Val: id})
	}
	if id, ok := uuidParam(params, "classId"); ok {
		s.Add(Eq{Col: "students.student_class_id", Val: id})
	}
	if q, ok := searchParam(params); ok {
		s.Add(searchOr(q, "exams.exam_title", "assignments.assignment_title", "students.student_name"))
	}

	switch rc.Role {
	case constants.RoleAdmin:
	case constants.RoleTeacher:
		if rc.UserID == uuid.Nil || rs.Teacher == nil {
			s.Add(None{})
			break
		}
		s.Add(Or{Preds: []Predicate{
			In[uuid.UUID]{Col: lessonExpr, Vals: rs.Teacher.LessonIDs},
			In[uuid.UUID]{Col: "students.student_class_id", Vals: rs.Teacher.ClassIDs},
		}})
	case constants.RoleStudent:
		if rc.UserID == uuid.Nil || rs.Student == nil {
			s.Add(None{})
			break
		}
		// a student only ever sees their own results
		s.Add(Eq{Col: "results.result_student_id", Val: rs.Student.StudentID})
	case constants.RoleParent:
		if rc.UserID == uuid.Nil || rs.Parent == nil {
			s.Add(None{})
			break
		}
		s.Add(In[uuid.UUID]{Col: "results.result_student_id", Vals: rs.Parent.ChildStudentIDs})
	default:
		s.Add(None{})
	}
	return s
}

// ComposeAttendanceScope scopes the attendance list.
func ComposeAttendanceScope(rc RequestContext, params map[string]string, rs RoleScopes) Scope {
	var s Scope
	if id, ok := uuidParam(params, "studentId"); ok {
		s.Add(Eq{Col: "attendances.attendance_student_id", Val: id})
	}
	if id, ok := uuidParam(params, "lessonId"); ok {
		s.Add(Eq{Col: "attendances.attendance_lesson_id", Val: id})
	}

	switch rc.Role {
	case constants.RoleAdmin:
	case constants.RoleTeacher:
		if rc.UserID == uuid.Nil || rs.Teacher == nil {
			s.Add(None{})
			break
		}
		s.Add(In[uuid.UUID]{Col: "attendances.attendance_lesson_id", Vals: rs.Teacher.LessonIDs})
	case constants.RoleStudent:
		if rc.UserID == uuid.Nil || rs.Student == nil {
			s.Add(None{})
			break
		}
		s.Add(Eq{Col: "attendances.attendance_student_id", Val: rs.Student.StudentID})
	case constants.RoleParent:
		if rc.UserID == uuid.Nil || rs.Parent == nil {
			s.Add(None{})
			break
		}
		s.Add(In[uuid.UUID]{Col: "attendances.attendance_student_id", Vals: rs.Parent.ChildStudentIDs})
	default:
		s.Add(None{})
	}
	return s
}

// ComposeAnnouncementScope scopes the announcement list. A NULL
// class id means school-wide: visible to every role on top of
// their other restrictions.
func ComposeAnnouncementScope(rc RequestContext, params map[string]string, rs RoleScopes) Scope {
	return composeClassOwnedScope(rc, params, rs, classOwnedSpec{
		ClassCol:   "announcements.announcement_class_id",
		SearchCols: []string{"announcements.announcement_title", "announcements.announcement_description"},
	})
}

// ComposeEventScope scopes the event list (same visibility shape
// as announcements).
func ComposeEventScope(rc RequestContext, params map[string]string, rs RoleScopes) Scope {
	return composeClassOwnedScope(rc, params, rs, classOwnedSpec{
		ClassCol:   "events.event_class_id",
		SearchCols: []string{"events.event_title", "events.event_description"},
	})
}

type classOwnedSpec struct {
	ClassCol   string
	SearchCols []string
}

func composeClassOwnedScope(rc RequestContext, params map[string]string, rs RoleScopes, spec classOwnedSpec) Scope {
	var s Scope
	if id, ok := uuidParam(params, "classId"); ok {
		s.Add(Eq{Col: spec.ClassCol, Val: id})
	}
	if q, ok := searchParam(params); ok {
		s.Add(searchOr(q, spec.SearchCols...))
	}

	switch rc.Role {
	case constants.RoleAdmin:
	case constants.RoleTeacher:
		if rc.UserID == uuid.Nil || rs.Teacher == nil {
			s.Add(None{})
			break
		}
		s.Add(Or{Preds: []Predicate{
			In[uuid.UUID]{Col: spec.ClassCol, Vals: rs.Teacher.AllClassIDs()},
			IsNull{Col: spec.ClassCol},
		}})
	case constants.RoleStudent:
		if rc.UserID == uuid.Nil || rs.Student == nil {
			// lookup miss: school-wide only, never unrestricted
			s.Add(IsNull{Col: spec.ClassCol})
			break
		}
		s.Add(Or{Preds: []Predicate{
			Eq{Col: spec.ClassCol, Val: rs.Student.ClassID},
			IsNull{Col: spec.ClassCol},
		}})
	case constants.RoleParent:
		if rc.UserID == uuid.Nil || rs.Parent == nil {
			s.Add(IsNull{Col: spec.ClassCol})
			break
		}
		s.Add(Or{Preds: []Predicate{
			In[uuid.UUID]{Col: spec.ClassCol, Vals: rs.Parent.ChildClassIDs},
			IsNull{Col: spec.ClassCol},
		}})
	default:
		s.Add(None{})
	}
	return s
}

// ComposeFeeScope scopes the fee list. Fees may be attached to a
// student, to a class, or school-wide (both NULL).
func ComposeFeeScope(rc RequestContext, params map[string]string, rs RoleScopes) Scope {
	var s Scope
	if id, ok := uuidParam(params, "studentId"); ok {
		s.Add(Eq{Col: "fees.fee_student_id", Val: id})
	}
	if id, ok := uuidParam(params, "classId"); ok {
		s.Add(Eq{Col: "fees.fee_class_id", Val: id})
	}
	if status, ok := params["status"]; ok {
		switch strings.ToLower(strings.TrimSpace(status)) {
		case "pending", "paid", "overdue":
			s.Add(Eq{Col: "fees.fee_status", Val: strings.ToLower(strings.TrimSpace(status))})
		}
	}
	if q, ok := searchParam(params); ok {
		s.Add(searchOr(q, "fees.fee_title"))
	}

	switch rc.Role {
	case constants.RoleAdmin:
	case constants.RoleTeacher:
		if rc.UserID == uuid.Nil || rs.Teacher == nil {
			s.Add(None{})
			break
		}
		s.Add(Or{Preds: []Predicate{
			In[uuid.UUID]{Col: "fees.fee_class_id", Vals: rs.Teacher.AllClassIDs()},
			IsNull{Col: "fees.fee_class_id"},
		}})
	case constants.RoleStudent:
		if rc.UserID == uuid.Nil || rs.Student == nil {
			s.Add(None{})
			break
		}
		s.Add(Or{Preds: []Predicate{
			Eq{Col: "fees.fee_student_id", Val: rs.Student.StudentID},
			Eq{Col: "fees.fee_class_id", Val: rs.Student.ClassID},
			IsNull{Col: "fees.fee_class_id"},
		}})
	case constants.RoleParent:
		if rc.UserID == uuid.Nil || rs.Parent == nil {
			s.Add(None{})
			break
		}
		s.Add(Or{Preds: []Predicate{
			In[uuid.UUID]{Col: "fees.fee_student_id", Vals: rs.Parent.ChildStudentIDs},
			In[uuid.UUID]{Col: "fees.fee_class_id", Vals: rs.Parent.ChildClassIDs},
			IsNull{Col: "fees.fee_class_id"},
		}})
	default:
		s.Add(None{})
	}
	return s
}

// ComposeStudentScope scopes the student list.
func ComposeStudentScope(rc RequestContext, params map[string]string, rs RoleScopes) Scope {
	var s Scope
	if id, ok := uuidParam(params, "classId"); ok {
		s.Add(Eq{Col: "students.student_class_id", Val: id})
	}
	if q, ok := searchParam(params); ok {
		s.Add(searchOr(q, "students.student_name", "students.student_surname"))
	}

	switch rc.Role {
	case constants.RoleAdmin:
	case constants.RoleTeacher:
		if rc.UserID == uuid.Nil || rs.Teacher == nil {
			s.Add(None{})
			break
		}
		s.Add(In[uuid.UUID]{Col: "students.student_class_id", Vals: rs.Teacher.AllClassIDs()})
	case constants.RoleStudent:
		if rc.UserID == uuid.Nil || rs.Student == nil {
			s.Add(None{})
			break
		}
		s.Add(Eq{Col: "students.student_id", Val: rs.Student.StudentID})
	case constants.RoleParent:
		if rc.UserID == uuid.Nil || rs.Parent == nil {
			s.Add(None{})
			break
		}
		s.Add(Eq{Col: "students.student_parent_id", Val: rs.Parent.ParentID})
	default:
		s.Add(None{})
	}
	return s
}

// ComposeMessageScope scopes the message list: admin sees all,
// everyone else only what they sent or received.
func ComposeMessageScope(rc RequestContext, params map[string]string) Scope {
	var s Scope
	if id, ok := uuidParam(params, "userId"); ok {
		s.Add(Or{Preds: []Predicate{
			Eq{Col: "messages.message_sender_id", Val: id},
			Eq{Col: "messages.message_recipient_id", Val: id},
		}})
	}
	if q, ok := searchParam(params); ok {
		s.Add(searchOr(q, "messages.message_subject", "messages.message_body"))
	}

	if rc.Role == constants.RoleAdmin {
		return s
	}
	if rc.UserID == uuid.Nil {
		s.Add(None{})
		return s
	}
	s.Add(Or{Preds: []Predicate{
		Eq{Col: "messages.message_sender_id", Val: rc.UserID},
		Eq{Col: "messages.message_recipient_id", Val: rc.UserID},
	}})
	return s
}

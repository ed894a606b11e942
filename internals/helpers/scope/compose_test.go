package scope

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// renderScope flattens the AND'd fragments for assertions.
func renderScope(s Scope) (string, []any) {
	parts := make([]string, 0, len(s.Predicates()))
	var args []any
	for _, p := range s.Predicates() {
		sql, a := p.SQL()
		parts = append(parts, sql)
		args = append(args, a...)
	}
	return strings.Join(parts, " AND "), args
}

func adminCtx() RequestContext {
	return RequestContext{UserID: uuid.New(), Role: constants.RoleAdmin}
}

func TestComposeExamScope_AdminUnrestricted(t *testing.T) {
	s := ComposeExamScope(adminCtx(), nil, RoleScopes{})
	if len(s.Predicates()) != 0 {
		t.Fatalf("admin with no params should add no predicates, got %d", len(s.Predicates()))
	}
}

// Every non-admin role must produce a strict narrowing of what admin
// sees: at least one more predicate than the admin scope for the same
// params, never fewer.
func TestComposeExamScope_RolesNarrowAdmin(t *testing.T) {
	params := map[string]string{"search": "term"}
	adminLen := len(ComposeExamScope(adminCtx(), params, RoleScopes{}).Predicates())

	userID := uuid.New()
	scopes := RoleScopes{
		Teacher: &TeacherScope{TeacherID: uuid.New(), LessonIDs: []uuid.UUID{uuid.New()}},
		Student: &StudentScope{StudentID: uuid.New(), ClassID: uuid.New()},
		Parent:  &ParentScope{ParentID: uuid.New(), ChildClassIDs: []uuid.UUID{uuid.New()}},
	}
	for _, role := range []string{constants.RoleTeacher, constants.RoleStudent, constants.RoleParent} {
		s := ComposeExamScope(RequestContext{UserID: userID, Role: role}, params, scopes)
		if len(s.Predicates()) <= adminLen {
			t.Errorf("role %s: predicates = %d, want > admin's %d", role, len(s.Predicates()), adminLen)
		}
	}
}

func TestComposeExamScope_TeacherWithoutIdentityDenied(t *testing.T) {
	tests := []struct {
		name string
		rc   RequestContext
		rs   RoleScopes
	}{
		{
			name: "missing actor id",
			rc:   RequestContext{UserID: uuid.Nil, Role: constants.RoleTeacher},
			rs:   RoleScopes{Teacher: &TeacherScope{}},
		},
		{
			name: "teacher lookup missed",
			rc:   RequestContext{UserID: uuid.New(), Role: constants.RoleTeacher},
			rs:   RoleScopes{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComposeExamScope(tt.rc, nil, tt.rs)
			if !s.Denied() {
				t.Fatalf("scope = %+v, want default-deny", s.Predicates())
			}
		})
	}
}

// Teacher with a resolved row but zero owned lessons/classes must
// still match nothing: the OR-group over empty IN lists renders
// always-false, not always-true.
func TestComposeExamScope_TeacherWithNoOwnershipMatchesNothing(t *testing.T) {
	rc := RequestContext{UserID: uuid.New(), Role: constants.RoleTeacher}
	s := ComposeExamScope(rc, nil, RoleScopes{Teacher: &TeacherScope{TeacherID: uuid.New()}})

	sql, _ := renderScope(s)
	if sql != "(1 = 0 OR 1 = 0)" {
		t.Fatalf("rendered scope = %q, want an always-false OR group", sql)
	}
}

// URL classId filter for a class the teacher does not own is AND'd
// with the teacher's own restriction: both survive, yielding zero
// rows rather than the foreign class's data.
func TestComposeExamScope_ParamAndRoleNarrow(t *testing.T) {
	ownClass := uuid.New()
	foreignClass := uuid.New()
	rc := RequestContext{UserID: uuid.New(), Role: constants.RoleTeacher}
	rs := RoleScopes{Teacher: &TeacherScope{
		TeacherID: uuid.New(),
		ClassIDs:  []uuid.UUID{ownClass},
		LessonIDs: []uuid.UUID{uuid.New()},
	}}
	params := map[string]string{"classId": foreignClass.String()}

	s := ComposeExamScope(rc, params, rs)
	sql, args := renderScope(s)

	if !strings.Contains(sql, "lessons.lesson_class_id = ?") {
		t.Fatalf("URL class filter dropped: %q", sql)
	}
	if !strings.Contains(sql, " AND ") {
		t.Fatalf("role layer not AND'd on top of URL filter: %q", sql)
	}
	if args[0] != foreignClass {
		t.Fatalf("first arg = %v, want the URL classId %v", args[0], foreignClass)
	}
	// role layer still references the teacher's own classes
	found := false
	for _, a := range args[1:] {
		if ids, ok := a.([]uuid.UUID); ok {
			for _, id := range ids {
				if id == ownClass {
					found = true
				}
			}
		}
	}
	if !found {
		t.Fatalf("teacher's own class restriction missing from args: %#v", args)
	}
}

func TestComposeAnnouncementScope_LookupMissFallsBackToSchoolWide(t *testing.T) {
	for _, role := range []string{constants.RoleStudent, constants.RoleParent} {
		rc := RequestContext{UserID: uuid.New(), Role: role}
		s := ComposeAnnouncementScope(rc, nil, RoleScopes{})

		sql, _ := renderScope(s)
		if sql != "announcements.announcement_class_id IS NULL" {
			t.Errorf("role %s: scope = %q, want school-wide-only restriction", role, sql)
		}
	}
}

func TestComposeAnnouncementScope_UnknownRoleDenied(t *testing.T) {
	for _, role := range []string{"", "owner", "superuser"} {
		rc := RequestContext{UserID: uuid.New(), Role: role}
		s := ComposeAnnouncementScope(rc, nil, RoleScopes{})
		if !s.Denied() {
			t.Errorf("role %q: want default-deny", role)
		}
	}
}

func TestComposeResultScope_StudentOnlyOwnRows(t *testing.T) {
	studentID := uuid.New()
	rc := RequestContext{UserID: uuid.New(), Role: constants.RoleStudent}
	rs := RoleScopes{Student: &StudentScope{StudentID: studentID, ClassID: uuid.New()}}

	// student asking for somebody else's studentId keeps both filters:
	// the AND of the two equality predicates matches nothing.
	other := uuid.New()
	s := ComposeResultScope(rc, map[string]string{"studentId": other.String()}, rs)

	sql, args := renderScope(s)
	if strings.Count(sql, "results.result_student_id = ?") != 2 {
		t.Fatalf("scope = %q, want both the URL and the role student filters", sql)
	}
	if args[0] != other || args[1] != studentID {
		t.Fatalf("args = %v, want [url id, own id] = [%v %v]", args, other, studentID)
	}
}

func TestComposeMessageScope(t *testing.T) {
	userID := uuid.New()

	s := ComposeMessageScope(RequestContext{UserID: userID, Role: constants.RoleStudent}, nil)
	sql, args := renderScope(s)
	want := "(messages.message_sender_id = ? OR messages.message_recipient_id = ?)"
	if sql != want {
		t.Fatalf("scope = %q, want %q", sql, want)
	}
	if args[0] != userID || args[1] != userID {
		t.Fatalf("args = %v, want own user id twice", args)
	}

	if got := ComposeMessageScope(adminCtx(), nil); len(got.Predicates()) != 0 {
		t.Fatalf("admin message scope should be unrestricted")
	}

	if got := ComposeMessageScope(RequestContext{Role: constants.RoleStudent}, nil); !got.Denied() {
		t.Fatalf("missing actor id must deny")
	}
}

func TestMalformedParamsIgnored(t *testing.T) {
	params := map[string]string{
		"classId": "not-a-uuid",
		"bogus":   "x",
		"search":  "   ",
	}
	s := ComposeExamScope(adminCtx(), params, RoleScopes{})
	if len(s.Predicates()) != 0 {
		t.Fatalf("malformed/unknown params must be ignored, got %+v", s.Predicates())
	}
}

func TestComposeFeeScope_StatusAllowList(t *testing.T) {
	s := ComposeFeeScope(adminCtx(), map[string]string{"status": "PAID"}, RoleScopes{})
	sql, args := renderScope(s)
	if sql != "fees.fee_status = ?" || args[0] != "paid" {
		t.Fatalf("scope = %q %v, want normalized status filter", sql, args)
	}

	s = ComposeFeeScope(adminCtx(), map[string]string{"status": "weird"}, RoleScopes{})
	if len(s.Predicates()) != 0 {
		t.Fatalf("unknown status value must be ignored")
	}
}

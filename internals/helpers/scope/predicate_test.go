package scope

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestPredicateSQL(t *testing.T) {
	id := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	tests := []struct {
		name     string
		pred     Predicate
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "eq",
			pred:     Eq{Col: "lessons.lesson_class_id", Val: id},
			wantSQL:  "lessons.lesson_class_id = ?",
			wantArgs: []any{id},
		},
		{
			name:     "ilike wraps substring",
			pred:     ILike{Col: "exams.exam_title", Val: "mid"},
			wantSQL:  "exams.exam_title ILIKE ?",
			wantArgs: []any{"%mid%"},
		},
		{
			name:    "is null",
			pred:    IsNull{Col: "events.event_class_id"},
			wantSQL: "events.event_class_id IS NULL",
		},
		{
			name:     "in",
			pred:     In[uuid.UUID]{Col: "c", Vals: ids},
			wantSQL:  "c IN ?",
			wantArgs: []any{ids},
		},
		{
			name:    "empty in matches nothing",
			pred:    In[uuid.UUID]{Col: "c"},
			wantSQL: "1 = 0",
		},
		{
			name: "or group",
			pred: Or{Preds: []Predicate{
				Eq{Col: "a", Val: 1},
				IsNull{Col: "b"},
			}},
			wantSQL:  "(a = ? OR b IS NULL)",
			wantArgs: []any{1},
		},
		{
			name:    "empty or matches nothing",
			pred:    Or{},
			wantSQL: "1 = 0",
		},
		{
			name:    "none",
			pred:    None{},
			wantSQL: "1 = 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.pred.SQL()
			if sql != tt.wantSQL {
				t.Errorf("SQL() = %q, want %q", sql, tt.wantSQL)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %#v, want %#v", args, tt.wantArgs)
			}
		})
	}
}

func TestScopeDenied(t *testing.T) {
	var s Scope
	if s.Denied() {
		t.Fatal("empty scope must not be denied")
	}
	s.Add(Eq{Col: "a", Val: 1})
	if s.Denied() {
		t.Fatal("scope with only eq must not be denied")
	}
	s.Add(None{})
	if !s.Denied() {
		t.Fatal("scope containing None must be denied")
	}
}

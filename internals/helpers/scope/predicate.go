// file: internals/helpers/scope/predicate.go
package scope

import (
	"strings"

	"gorm.io/gorm"
)

/* =========================================================
   Predicate model

   A list query is restricted by a Scope: an AND'd list of
   predicates. Each predicate renders to a SQL fragment plus
   args, so composition stays pure and testable; the gorm
   adapter is a thin Apply at the end.
========================================================= */

type Predicate interface {
	SQL() (string, []any)
}

// Eq: column equality
type Eq struct {
	Col string
	Val any
}

func (p Eq) SQL() (string, []any) { return p.Col + " = ?", []any{p.Val} }

// ILike: case-insensitive substring match
type ILike struct {
	Col string
	Val string
}

func (p ILike) SQL() (string, []any) { return p.Col + " ILIKE ?", []any{"%" + p.Val + "%"} }

// IsNull: column IS NULL (school-wide records)
type IsNull struct {
	Col string
}

func (p IsNull) SQL() (string, []any) { return p.Col + " IS NULL", nil }

// In: column IN (...). An empty value list matches nothing.
type In[T any] struct {
	Col  string
	Vals []T
}

func (p In[T]) SQL() (string, []any) {
	if len(p.Vals) == 0 {
		return alwaysFalseSQL, nil
	}
	return p.Col + " IN ?", []any{p.Vals}
}

// Or: disjunction group. An empty group matches nothing —
// a missing role lookup must never widen the result set.
type Or struct {
	Preds []Predicate
}

func (p Or) SQL() (string, []any) {
	if len(p.Preds) == 0 {
		return alwaysFalseSQL, nil
	}
	parts := make([]string, 0, len(p.Preds))
	var args []any
	for _, sub := range p.Preds {
		s, a := sub.SQL()
		parts = append(parts, s)
		args = append(args, a...)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

// None: the always-false predicate (default-deny)
type None struct{}

const alwaysFalseSQL = "1 = 0"

func (None) SQL() (string, []any) { return alwaysFalseSQL, nil }

/* =========================================================
   Scope
========================================================= */

// Scope is an ordered conjunction of predicates.
type Scope struct {
	preds []Predicate
}

func NewScope(preds ...Predicate) Scope {
	return Scope{preds: preds}
}

func (s *Scope) Add(preds ...Predicate) {
	s.preds = append(s.preds, preds...)
}

func (s Scope) Predicates() []Predicate { return s.preds }

// Denied reports whether the scope contains an always-false
// predicate, i.e. it can never match anything.
func (s Scope) Denied() bool {
	for _, p := range s.preds {
		if _, ok := p.(None); ok {
			return true
		}
	}
	return false
}

// Apply ANDs every predicate onto tx.
func (s Scope) Apply(tx *gorm.DB) *gorm.DB {
	for _, p := range s.preds {
		sql, args := p.SQL()
		tx = tx.Where(sql, args...)
	}
	return tx
}

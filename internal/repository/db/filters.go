package db

import (
	"fmt"
	"strings"
)

// whereBuilder accumulates WHERE predicates with sequential placeholders.
// Expressions reference their arguments as $%d verbs, filled in add().
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends one predicate. expr must contain one $%d verb per argument.
func (b *whereBuilder) add(expr string, args ...any) {
	verbs := make([]any, len(args))
	for i := range args {
		verbs[i] = len(b.args) + i + 1
	}
	b.conds = append(b.conds, fmt.Sprintf(expr, verbs...))
	b.args = append(b.args, args...)
}

func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return "TRUE"
	}
	return strings.Join(b.conds, " AND ")
}

// buildList fills the template's WHERE verb and appends LIMIT/OFFSET with
// correctly numbered placeholders after the predicate arguments.
func buildList(tmpl string, b *whereBuilder, page Page) (string, []any) {
	query := fmt.Sprintf(tmpl, b.clause())
	query += fmt.Sprintf("LIMIT $%d OFFSET $%d", len(b.args)+1, len(b.args)+2)
	args := append(append([]any{}, b.args...), page.Limit, page.Offset)
	return query, args
}

func buildCount(tmpl string, b *whereBuilder) (string, []any) {
	return fmt.Sprintf(tmpl, b.clause()), b.args
}

// like wraps a raw filter value for a case-insensitive substring match.
func like(value string) string {
	return "%" + value + "%"
}

// ── per-entity predicate sets ─────────────────────────────────────────────

func crewMemberPredicates(f CrewMemberFilter) *whereBuilder {
	b := &whereBuilder{}
	if f.CrewMemberName != "" {
		b.add("cm.name ILIKE $%d", like(f.CrewMemberName))
	}
	if f.ShipName != "" {
		b.add("s.name ILIKE $%d", like(f.ShipName))
	}
	if f.RoleName != "" {
		b.add("r.role_name ILIKE $%d", like(f.RoleName))
	}
	return b
}

func shipPredicates(f ShipFilter) *whereBuilder {
	b := &whereBuilder{}
	if f.Name != "" {
		b.add("name ILIKE $%d", like(f.Name))
	}
	return b
}

func tagPredicates(f TagFilter) *whereBuilder {
	b := &whereBuilder{}
	// Both toggles on means no restriction; the service rejects both off
	// before reaching the store.
	if f.Assigned && !f.Vacant {
		b.conds = append(b.conds, "cm.id IS NOT NULL")
	}
	if f.Vacant && !f.Assigned {
		b.conds = append(b.conds, "cm.id IS NULL")
	}
	return b
}

func entryPredicates(f EntryFilter) *whereBuilder {
	b := &whereBuilder{}
	b.add("ute.advertisement_timestamp BETWEEN $%d AND $%d", f.Start, f.End)
	if f.ShipyardName != "" {
		b.add("s.name ILIKE $%d", like(f.ShipyardName))
	}
	if f.TagName != "" {
		b.add("t.name ILIKE $%d", like(f.TagName))
	}
	return b
}

func logPredicates(f LogFilter) *whereBuilder {
	b := &whereBuilder{}
	b.add("((pl.entry_timestamp IS NOT NULL AND pl.entry_timestamp BETWEEN $%d AND $%d)"+
		" OR (pl.leave_timestamp IS NOT NULL AND pl.leave_timestamp BETWEEN $%d AND $%d))",
		f.Start, f.End, f.Start, f.End)
	if f.ShipyardName != "" {
		b.add("sh.name ILIKE $%d", like(f.ShipyardName))
	}
	if f.ShipName != "" {
		b.add("s.name ILIKE $%d", like(f.ShipName))
	}
	if f.CrewMemberName != "" {
		b.add("cm.name ILIKE $%d", like(f.CrewMemberName))
	}
	return b
}

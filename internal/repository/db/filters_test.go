package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereBuilder_SequentialPlaceholders(t *testing.T) {
	b := &whereBuilder{}
	b.add("a ILIKE $%d", "%x%")
	b.add("ts BETWEEN $%d AND $%d", 1, 2)
	b.add("b = $%d", true)

	assert.Equal(t, "a ILIKE $1 AND ts BETWEEN $2 AND $3 AND b = $4", b.clause())
	assert.Equal(t, []any{"%x%", 1, 2, true}, b.args)
}

func TestWhereBuilder_EmptyClauseIsTrue(t *testing.T) {
	b := &whereBuilder{}
	assert.Equal(t, "TRUE", b.clause())
}

func TestBuildList_AppendsPagePlaceholdersAfterPredicates(t *testing.T) {
	b := &whereBuilder{}
	b.add("name ILIKE $%d", "%liberty%")

	query, args := buildList("SELECT id, name FROM ship WHERE %s ORDER BY name ASC ", b, Page{Limit: 10, Offset: 20})

	assert.Equal(t, "SELECT id, name FROM ship WHERE name ILIKE $1 ORDER BY name ASC LIMIT $2 OFFSET $3", query)
	assert.Equal(t, []any{"%liberty%", int32(10), int32(20)}, args)
}

func TestBuildList_NoPredicates(t *testing.T) {
	b := &whereBuilder{}
	query, args := buildList("SELECT id FROM ship WHERE %s ", b, Page{Limit: 50})

	assert.Equal(t, "SELECT id FROM ship WHERE TRUE LIMIT $1 OFFSET $2", query)
	assert.Equal(t, []any{int32(50), int32(0)}, args)
}

func TestBuildCount(t *testing.T) {
	b := &whereBuilder{}
	b.add("cm.name ILIKE $%d", "%ross%")

	query, args := buildCount("SELECT COUNT(*) FROM crew_member cm WHERE %s", b)

	assert.Equal(t, "SELECT COUNT(*) FROM crew_member cm WHERE cm.name ILIKE $1", query)
	assert.Equal(t, []any{"%ross%"}, args)
}

func TestCrewMemberPredicates(t *testing.T) {
	b := crewMemberPredicates(CrewMemberFilter{
		CrewMemberName: "ross",
		RoleName:       "welder",
	})

	assert.Equal(t, "cm.name ILIKE $1 AND r.role_name ILIKE $2", b.clause())
	assert.Equal(t, []any{"%ross%", "%welder%"}, b.args)
}

func TestTagPredicates(t *testing.T) {
	t.Run("assigned only", func(t *testing.T) {
		b := tagPredicates(TagFilter{Assigned: true})
		assert.Equal(t, "cm.id IS NOT NULL", b.clause())
		assert.Empty(t, b.args)
	})
	t.Run("vacant only", func(t *testing.T) {
		b := tagPredicates(TagFilter{Vacant: true})
		assert.Equal(t, "cm.id IS NULL", b.clause())
	})
	t.Run("both toggles is unrestricted", func(t *testing.T) {
		b := tagPredicates(TagFilter{Assigned: true, Vacant: true})
		assert.Equal(t, "TRUE", b.clause())
	})
}

func TestLogPredicates_WindowMatchesEntryOrLeave(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	b := logPredicates(LogFilter{Start: start, End: end, CrewMemberName: "ross"})

	require.Len(t, b.args, 5)
	assert.Equal(t,
		"((pl.entry_timestamp IS NOT NULL AND pl.entry_timestamp BETWEEN $1 AND $2)"+
			" OR (pl.leave_timestamp IS NOT NULL AND pl.leave_timestamp BETWEEN $3 AND $4))"+
			" AND cm.name ILIKE $5",
		b.clause())
	assert.Equal(t, []any{start, end, start, end, "%ross%"}, b.args)
}

func TestEntryPredicates(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	b := entryPredicates(EntryFilter{Start: start, End: end, TagName: "17"})

	assert.Equal(t, "ute.advertisement_timestamp BETWEEN $1 AND $2 AND t.name ILIKE $3", b.clause())
	assert.Equal(t, []any{start, end, "%17%"}, b.args)
}

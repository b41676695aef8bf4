package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/fredneedsausername/GateKeeper/internal/repository/db"
)

// Shared sentinel errors. Handlers map these onto HTTP statuses; anything
// else is a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTagAlreadyAssigned surfaces the crew_member.tag_id unique
	// constraint as a user-facing conflict.
	ErrTagAlreadyAssigned   = errors.New("tag already assigned to another crew member")
	ErrMacAlreadyRegistered = errors.New("a tag with this MAC address already exists")
	ErrBeaconNumberTaken    = errors.New("an activator beacon with this number already exists in the shipyard")
)

// ListResult is the {items, total} envelope every list endpoint returns.
type ListResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

func emptyList[T any]() ListResult[T] {
	return ListResult[T]{Items: []T{}, Total: 0}
}

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// normalizePage turns 1-based page / page_size inputs into LIMIT/OFFSET.
func normalizePage(page, pageSize int) db.Page {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return db.Page{
		Limit:  int32(pageSize),
		Offset: int32((page - 1) * pageSize),
	}
}

// Operator UIs post datetime-local values without seconds; accept those
// alongside full ISO timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized timestamp %q", ErrInvalidInput, s)
}

// resolveWindow normalizes an inclusive [start, end] filter window,
// defaulting to the 24 hours trailing now.
func resolveWindow(start, end string, now time.Time) (time.Time, time.Time, error) {
	endTS := now
	if end != "" {
		t, err := parseTimestamp(end)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		endTS = t
	}
	startTS := endTS.Add(-24 * time.Hour)
	if start != "" {
		t, err := parseTimestamp(start)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		startTS = t
	}
	return startTS, endTS, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func int8FromPtr(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func tsFromPtr(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

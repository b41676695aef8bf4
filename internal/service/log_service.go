package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/fredneedsausername/GateKeeper/internal/repository/db"
)

type LogListInput struct {
	Start          string
	End            string
	ShipyardName   string
	ShipName       string
	CrewMemberName string
	Page           int
	PageSize       int
}

type LogInput struct {
	CrewMemberID   int64
	ShipyardID     int64
	EntryTimestamp string
	LeaveTimestamp string
}

type EntryListInput struct {
	Start        string
	End          string
	ShipyardName string
	TagName      string
	Page         int
	PageSize     int
}

// LogService covers permanence logs plus the unassigned-tag entry feed.
// Both are windowed views over the same presence history.
type LogService interface {
	ListLogs(ctx context.Context, in LogListInput) (ListResult[db.PermanenceLogDetail], error)
	GetLog(ctx context.Context, id int64) (db.PermanenceLogDetail, error)
	CreateLog(ctx context.Context, in LogInput) (db.PermanenceLogDetail, error)
	UpdateLog(ctx context.Context, id int64, in LogInput) (db.PermanenceLogDetail, error)
	DeleteLog(ctx context.Context, id int64) error

	ListEntries(ctx context.Context, in EntryListInput) (ListResult[db.UnassignedEntryDetail], error)
	DeleteEntry(ctx context.Context, id int64) error
}

type logService struct {
	querier db.Querier
	now     func() time.Time
}

func NewLogService(q db.Querier) LogService {
	return &logService{querier: q, now: time.Now}
}

func (s *logService) ListLogs(ctx context.Context, in LogListInput) (ListResult[db.PermanenceLogDetail], error) {
	start, end, err := resolveWindow(in.Start, in.End, s.now())
	if err != nil {
		return ListResult[db.PermanenceLogDetail]{}, err
	}
	filter := db.LogFilter{
		Start:          start,
		End:            end,
		ShipyardName:   in.ShipyardName,
		ShipName:       in.ShipName,
		CrewMemberName: in.CrewMemberName,
	}

	total, err := s.querier.CountPermanenceLogs(ctx, filter)
	if err != nil {
		return ListResult[db.PermanenceLogDetail]{}, fmt.Errorf("count permanence logs: %w", err)
	}
	items, err := s.querier.ListPermanenceLogs(ctx, filter, normalizePage(in.Page, in.PageSize))
	if err != nil {
		return ListResult[db.PermanenceLogDetail]{}, fmt.Errorf("list permanence logs: %w", err)
	}
	if items == nil {
		items = []db.PermanenceLogDetail{}
	}
	return ListResult[db.PermanenceLogDetail]{Items: items, Total: total}, nil
}

func (s *logService) GetLog(ctx context.Context, id int64) (db.PermanenceLogDetail, error) {
	log, err := s.querier.GetPermanenceLog(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.PermanenceLogDetail{}, fmt.Errorf("%w: permanence log %d", ErrNotFound, id)
	}
	if err != nil {
		return db.PermanenceLogDetail{}, err
	}
	return log, nil
}

func (s *logService) CreateLog(ctx context.Context, in LogInput) (db.PermanenceLogDetail, error) {
	entry, leave, err := parseLogTimestamps(in)
	if err != nil {
		return db.PermanenceLogDetail{}, err
	}
	if in.ShipyardID == 0 {
		return db.PermanenceLogDetail{}, fmt.Errorf("%w: shipyard_id is required", ErrInvalidInput)
	}
	id, err := s.querier.CreatePermanenceLog(ctx, db.CreatePermanenceLogParams{
		CrewMemberID:   in.CrewMemberID,
		ShipyardID:     in.ShipyardID,
		EntryTimestamp: entry,
		LeaveTimestamp: leave,
	})
	if err != nil {
		return db.PermanenceLogDetail{}, fmt.Errorf("create permanence log: %w", err)
	}
	return s.GetLog(ctx, id)
}

func (s *logService) UpdateLog(ctx context.Context, id int64, in LogInput) (db.PermanenceLogDetail, error) {
	entry, leave, err := parseLogTimestamps(in)
	if err != nil {
		return db.PermanenceLogDetail{}, err
	}
	rows, err := s.querier.UpdatePermanenceLog(ctx, db.UpdatePermanenceLogParams{
		ID:             id,
		CrewMemberID:   in.CrewMemberID,
		EntryTimestamp: entry,
		LeaveTimestamp: leave,
	})
	if err != nil {
		return db.PermanenceLogDetail{}, fmt.Errorf("update permanence log: %w", err)
	}
	if rows == 0 {
		return db.PermanenceLogDetail{}, fmt.Errorf("%w: permanence log %d", ErrNotFound, id)
	}
	return s.GetLog(ctx, id)
}

func (s *logService) DeleteLog(ctx context.Context, id int64) error {
	return s.querier.DeletePermanenceLog(ctx, id)
}

func (s *logService) ListEntries(ctx context.Context, in EntryListInput) (ListResult[db.UnassignedEntryDetail], error) {
	start, end, err := resolveWindow(in.Start, in.End, s.now())
	if err != nil {
		return ListResult[db.UnassignedEntryDetail]{}, err
	}
	filter := db.EntryFilter{
		Start:        start,
		End:          end,
		ShipyardName: in.ShipyardName,
		TagName:      in.TagName,
	}

	total, err := s.querier.CountUnassignedEntries(ctx, filter)
	if err != nil {
		return ListResult[db.UnassignedEntryDetail]{}, fmt.Errorf("count unassigned entries: %w", err)
	}
	items, err := s.querier.ListUnassignedEntries(ctx, filter, normalizePage(in.Page, in.PageSize))
	if err != nil {
		return ListResult[db.UnassignedEntryDetail]{}, fmt.Errorf("list unassigned entries: %w", err)
	}
	if items == nil {
		items = []db.UnassignedEntryDetail{}
	}
	return ListResult[db.UnassignedEntryDetail]{Items: items, Total: total}, nil
}

func (s *logService) DeleteEntry(ctx context.Context, id int64) error {
	return s.querier.DeleteUnassignedEntry(ctx, id)
}

// parseLogTimestamps validates a manual log edit. At least one of the two
// timestamps must be present; a row with neither means nothing.
func parseLogTimestamps(in LogInput) (pgtype.Timestamptz, pgtype.Timestamptz, error) {
	var entry, leave pgtype.Timestamptz
	if in.CrewMemberID == 0 {
		return entry, leave, fmt.Errorf("%w: crew_member_id is required", ErrInvalidInput)
	}
	if in.EntryTimestamp == "" && in.LeaveTimestamp == "" {
		return entry, leave, fmt.Errorf("%w: at least one of entry_timestamp and leave_timestamp is required", ErrInvalidInput)
	}
	if in.EntryTimestamp != "" {
		t, err := parseTimestamp(in.EntryTimestamp)
		if err != nil {
			return entry, leave, err
		}
		entry = pgtype.Timestamptz{Time: t, Valid: true}
	}
	if in.LeaveTimestamp != "" {
		t, err := parseTimestamp(in.LeaveTimestamp)
		if err != nil {
			return entry, leave, err
		}
		leave = pgtype.Timestamptz{Time: t, Valid: true}
	}
	return entry, leave, nil
}

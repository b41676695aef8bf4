package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// ── durable event records written by the ingest core ──────────────────────

const insertUnassignedTagEntry = `
INSERT INTO unassigned_tag_entry (tag_id, shipyard_id, is_entering, advertisement_timestamp)
VALUES ($1, $2, $3, $4)
`

func (q *Queries) InsertUnassignedTagEntry(ctx context.Context, arg InsertUnassignedTagEntryParams) error {
	_, err := q.db.Exec(ctx, insertUnassignedTagEntry,
		arg.TagID, arg.ShipyardID, arg.IsEntering, arg.ObservedAt)
	return err
}

const openPermanenceLog = `
INSERT INTO permanence_log (crew_member_id, shipyard_id, entry_timestamp, leave_timestamp)
VALUES ($1, $2, $3, NULL)
`

func (q *Queries) OpenPermanenceLog(ctx context.Context, arg OpenPermanenceLogParams) error {
	_, err := q.db.Exec(ctx, openPermanenceLog, arg.CrewMemberID, arg.ShipyardID, arg.EntryAt)
	return err
}

// closeLatestOpenPermanenceLog targets the open row with the greatest
// entry_timestamp for the pair. Zero rows affected means there was nothing
// to close and the caller records a leave-only row instead.
const closeLatestOpenPermanenceLog = `
UPDATE permanence_log SET leave_timestamp = $3
WHERE id = (
    SELECT id FROM permanence_log
    WHERE crew_member_id = $1 AND shipyard_id = $2
      AND entry_timestamp IS NOT NULL AND leave_timestamp IS NULL
    ORDER BY entry_timestamp DESC
    LIMIT 1
)
`

func (q *Queries) CloseLatestOpenPermanenceLog(ctx context.Context, arg ClosePermanenceLogParams) (int64, error) {
	tag, err := q.db.Exec(ctx, closeLatestOpenPermanenceLog,
		arg.CrewMemberID, arg.ShipyardID, arg.LeaveAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const closeAllOpenPermanenceLogs = `
UPDATE permanence_log SET leave_timestamp = $3
WHERE crew_member_id = $1 AND shipyard_id = $2
  AND entry_timestamp IS NOT NULL AND leave_timestamp IS NULL
`

// CloseAllOpenPermanenceLogs seals every open interval for the pair. Used by
// the close-before-reopen variant of the entering transition.
func (q *Queries) CloseAllOpenPermanenceLogs(ctx context.Context, arg ClosePermanenceLogParams) error {
	_, err := q.db.Exec(ctx, closeAllOpenPermanenceLogs,
		arg.CrewMemberID, arg.ShipyardID, arg.LeaveAt)
	return err
}

const insertLeavePermanenceLog = `
INSERT INTO permanence_log (crew_member_id, shipyard_id, entry_timestamp, leave_timestamp)
VALUES ($1, $2, NULL, $3)
`

func (q *Queries) InsertLeavePermanenceLog(ctx context.Context, arg InsertLeavePermanenceLogParams) error {
	_, err := q.db.Exec(ctx, insertLeavePermanenceLog,
		arg.CrewMemberID, arg.ShipyardID, arg.LeaveAt)
	return err
}

// ── unassigned entry read side ────────────────────────────────────────────

const listUnassignedEntries = `
SELECT ute.id, ute.is_entering, ute.advertisement_timestamp,
       t.id, t.name, t.remaining_battery,
       s.id, s.name
FROM unassigned_tag_entry ute
JOIN tag t ON t.id = ute.tag_id
JOIN shipyard s ON s.id = ute.shipyard_id
WHERE %s
ORDER BY ute.advertisement_timestamp DESC
`

func (q *Queries) ListUnassignedEntries(ctx context.Context, filter EntryFilter, page Page) ([]UnassignedEntryDetail, error) {
	query, args := buildList(listUnassignedEntries, entryPredicates(filter), page)
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []UnassignedEntryDetail
	for rows.Next() {
		var e UnassignedEntryDetail
		if err := rows.Scan(&e.ID, &e.IsEntering, &e.AdvertisementTimestamp,
			&e.Tag.ID, &e.Tag.Name, &e.Tag.RemainingBattery,
			&e.Shipyard.ID, &e.Shipyard.Name); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const countUnassignedEntries = `
SELECT COUNT(*)
FROM unassigned_tag_entry ute
JOIN tag t ON t.id = ute.tag_id
JOIN shipyard s ON s.id = ute.shipyard_id
WHERE %s
`

func (q *Queries) CountUnassignedEntries(ctx context.Context, filter EntryFilter) (int64, error) {
	query, args := buildCount(countUnassignedEntries, entryPredicates(filter))
	var total int64
	err := q.db.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

const deleteUnassignedEntry = `DELETE FROM unassigned_tag_entry WHERE id = $1`

func (q *Queries) DeleteUnassignedEntry(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteUnassignedEntry, id)
	return err
}

// ── permanence log read side / CRUD ───────────────────────────────────────

const permanenceLogColumns = `
SELECT pl.id, pl.entry_timestamp, pl.leave_timestamp,
       cm.id, cm.name,
       r.id, r.role_name,
       s.id, s.name,
       t.id, t.name, t.remaining_battery,
       sh.id, sh.name
FROM permanence_log pl
JOIN crew_member cm ON cm.id = pl.crew_member_id
LEFT JOIN crew_member_roles r ON r.id = cm.role_id
LEFT JOIN ship s ON s.id = cm.ship_id
LEFT JOIN tag t ON t.id = cm.tag_id
JOIN shipyard sh ON sh.id = pl.shipyard_id
`

const listPermanenceLogs = permanenceLogColumns + `
WHERE %s
ORDER BY cm.name ASC
`

func scanPermanenceLog(row interface{ Scan(...any) error }) (PermanenceLogDetail, error) {
	var (
		l          PermanenceLogDetail
		entryTS    pgtype.Timestamptz
		leaveTS    pgtype.Timestamptz
		roleID     pgtype.Int8
		roleName   pgtype.Text
		shipID     pgtype.Int8
		shipName   pgtype.Text
		tagID      pgtype.Int8
		tagName    pgtype.Text
		tagBattery pgtype.Float8
	)
	err := row.Scan(&l.ID, &entryTS, &leaveTS,
		&l.CrewMember.ID, &l.CrewMember.Name,
		&roleID, &roleName,
		&shipID, &shipName,
		&tagID, &tagName, &tagBattery,
		&l.Shipyard.ID, &l.Shipyard.Name)
	if err != nil {
		return PermanenceLogDetail{}, err
	}
	if entryTS.Valid {
		t := entryTS.Time
		l.EntryTimestamp = &t
	}
	if leaveTS.Valid {
		t := leaveTS.Time
		l.LeaveTimestamp = &t
	}
	if roleID.Valid {
		l.CrewMember.Role = &Role{ID: roleID.Int64, RoleName: roleName.String}
	}
	if shipID.Valid {
		l.CrewMember.Ship = &Ship{ID: shipID.Int64, Name: shipName.String}
	}
	if tagID.Valid {
		l.CrewMember.Tag = &TagRef{ID: tagID.Int64, Name: tagName.String, RemainingBattery: tagBattery.Float64}
	}
	return l, nil
}

func (q *Queries) ListPermanenceLogs(ctx context.Context, filter LogFilter, page Page) ([]PermanenceLogDetail, error) {
	query, args := buildList(listPermanenceLogs, logPredicates(filter), page)
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PermanenceLogDetail
	for rows.Next() {
		l, err := scanPermanenceLog(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

const countPermanenceLogs = `
SELECT COUNT(*)
FROM permanence_log pl
JOIN crew_member cm ON cm.id = pl.crew_member_id
LEFT JOIN crew_member_roles r ON r.id = cm.role_id
LEFT JOIN ship s ON s.id = cm.ship_id
JOIN shipyard sh ON sh.id = pl.shipyard_id
WHERE %s
`

func (q *Queries) CountPermanenceLogs(ctx context.Context, filter LogFilter) (int64, error) {
	query, args := buildCount(countPermanenceLogs, logPredicates(filter))
	var total int64
	err := q.db.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

const getPermanenceLog = permanenceLogColumns + `
WHERE pl.id = $1
`

func (q *Queries) GetPermanenceLog(ctx context.Context, id int64) (PermanenceLogDetail, error) {
	return scanPermanenceLog(q.db.QueryRow(ctx, getPermanenceLog, id))
}

const createPermanenceLog = `
INSERT INTO permanence_log (crew_member_id, shipyard_id, entry_timestamp, leave_timestamp)
VALUES ($1, $2, $3, $4)
RETURNING id
`

func (q *Queries) CreatePermanenceLog(ctx context.Context, arg CreatePermanenceLogParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, createPermanenceLog,
		arg.CrewMemberID, arg.ShipyardID, arg.EntryTimestamp, arg.LeaveTimestamp).Scan(&id)
	return id, err
}

const updatePermanenceLog = `
UPDATE permanence_log
SET crew_member_id = $2, entry_timestamp = $3, leave_timestamp = $4
WHERE id = $1
`

func (q *Queries) UpdatePermanenceLog(ctx context.Context, arg UpdatePermanenceLogParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updatePermanenceLog,
		arg.ID, arg.CrewMemberID, arg.EntryTimestamp, arg.LeaveTimestamp)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deletePermanenceLog = `DELETE FROM permanence_log WHERE id = $1`

func (q *Queries) DeletePermanenceLog(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deletePermanenceLog, id)
	return err
}

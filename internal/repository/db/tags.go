package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// applyTagTelemetry is the heart of the per-tag state machine. One statement
// does all of it so the duplicate decision and the pairing update cannot be
// torn apart by a concurrent packet: the inner SELECT ... FOR UPDATE
// serializes on the tag row, remaining_battery is always refreshed, and the
// counter/pairing advance only when the incoming counter differs from the
// stored one (a NULL stored counter counts as different). RETURNING exposes
// the pre-update counter and pairing via the locked subquery alias together
// with the pairing the update left behind.
const applyTagTelemetry = `
UPDATE tag AS t SET
    remaining_battery = $2,
    packet_counter = CASE
        WHEN t.packet_counter IS NULL OR t.packet_counter <> $3 THEN $3
        ELSE t.packet_counter END,
    previous_echobeacon = CASE
        WHEN t.packet_counter IS NULL OR t.packet_counter <> $3
            THEN (SELECT ab.id FROM activator_beacon ab WHERE ab.number = $4 ORDER BY ab.id LIMIT 1)
        ELSE t.previous_echobeacon END
FROM (
    SELECT id, packet_counter, previous_echobeacon
    FROM tag WHERE mac_address = $1
    FOR UPDATE
) AS old
WHERE t.id = old.id
RETURNING t.id, old.packet_counter, old.previous_echobeacon, t.previous_echobeacon
`

// ApplyTagTelemetry updates telemetry and pairing for the tag with the given
// MAC and reports the state it replaced. pgx.ErrNoRows means the tag is not
// registered.
func (q *Queries) ApplyTagTelemetry(ctx context.Context, arg ApplyTagTelemetryParams) (TagTelemetryResult, error) {
	row := q.db.QueryRow(ctx, applyTagTelemetry,
		arg.MacAddress, arg.RemainingBattery, arg.PacketCounter, arg.ActivatorNumber)
	var res TagTelemetryResult
	err := row.Scan(&res.TagID, &res.OldCounter, &res.OldPairing, &res.NewPairing)
	return res, err
}

const registerTag = `
INSERT INTO tag (name, mac_address, remaining_battery, packet_counter, previous_echobeacon)
VALUES ($1, $1, $2, $3,
    (SELECT ab.id FROM activator_beacon ab WHERE ab.number = $4 ORDER BY ab.id LIMIT 1))
ON CONFLICT (mac_address) DO NOTHING
`

// RegisterTag creates a tag on first sighting (auto-registration variant).
// The MAC doubles as the display name until an operator renames it.
func (q *Queries) RegisterTag(ctx context.Context, arg RegisterTagParams) error {
	_, err := q.db.Exec(ctx, registerTag,
		arg.MacAddress, arg.RemainingBattery, arg.PacketCounter, arg.ActivatorNumber)
	return err
}

const clearTagPairing = `UPDATE tag SET previous_echobeacon = NULL WHERE id = $1`

// ClearTagPairing resets the pairing anchor after an event was emitted, so
// retransmissions of the same crossing cannot fire again.
func (q *Queries) ClearTagPairing(ctx context.Context, tagID int64) error {
	_, err := q.db.Exec(ctx, clearTagPairing, tagID)
	return err
}

const getActivatorBeacon = `
SELECT id, number, shipyard_id, is_first_when_entering
FROM activator_beacon WHERE id = $1
`

func (q *Queries) GetActivatorBeacon(ctx context.Context, id int64) (ActivatorBeacon, error) {
	var ab ActivatorBeacon
	err := q.db.QueryRow(ctx, getActivatorBeacon, id).
		Scan(&ab.ID, &ab.Number, &ab.ShipyardID, &ab.IsFirstWhenEntering)
	return ab, err
}

const getCrewMemberIDByTag = `SELECT id FROM crew_member WHERE tag_id = $1`

func (q *Queries) GetCrewMemberIDByTag(ctx context.Context, tagID int64) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, getCrewMemberIDByTag, tagID).Scan(&id)
	return id, err
}

// ── tag CRUD / read side ──────────────────────────────────────────────────

const listTags = `
SELECT t.id, t.name, t.mac_address, t.remaining_battery, t.packet_counter,
       cm.id, cm.name
FROM tag t
LEFT JOIN crew_member cm ON cm.tag_id = t.id
WHERE %s
ORDER BY t.remaining_battery ASC
`

func (q *Queries) ListTags(ctx context.Context, filter TagFilter, page Page) ([]TagDetail, error) {
	query, args := buildList(listTags, tagPredicates(filter), page)
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TagDetail
	for rows.Next() {
		var (
			t       TagDetail
			counter pgtype.Int2
			cmID    pgtype.Int8
			cmName  pgtype.Text
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.MacAddress, &t.RemainingBattery,
			&counter, &cmID, &cmName); err != nil {
			return nil, err
		}
		if counter.Valid {
			v := counter.Int16
			t.PacketCounter = &v
		}
		if cmID.Valid {
			t.CrewMember = &CrewRef{ID: cmID.Int64, Name: cmName.String}
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const countTags = `
SELECT COUNT(*)
FROM tag t
LEFT JOIN crew_member cm ON cm.tag_id = t.id
WHERE %s
`

func (q *Queries) CountTags(ctx context.Context, filter TagFilter) (int64, error) {
	query, args := buildCount(countTags, tagPredicates(filter))
	var total int64
	err := q.db.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

const getTag = `
SELECT t.id, t.name, t.mac_address, t.remaining_battery, t.packet_counter,
       cm.id, cm.name
FROM tag t
LEFT JOIN crew_member cm ON cm.tag_id = t.id
WHERE t.id = $1
`

func (q *Queries) GetTag(ctx context.Context, id int64) (TagDetail, error) {
	var (
		t       TagDetail
		counter pgtype.Int2
		cmID    pgtype.Int8
		cmName  pgtype.Text
	)
	err := q.db.QueryRow(ctx, getTag, id).Scan(&t.ID, &t.Name, &t.MacAddress,
		&t.RemainingBattery, &counter, &cmID, &cmName)
	if err != nil {
		return TagDetail{}, err
	}
	if counter.Valid {
		v := counter.Int16
		t.PacketCounter = &v
	}
	if cmID.Valid {
		t.CrewMember = &CrewRef{ID: cmID.Int64, Name: cmName.String}
	}
	return t, nil
}

const createTag = `
INSERT INTO tag (name, mac_address, remaining_battery, packet_counter)
VALUES ($1, $2, 100.0, NULL)
RETURNING id
`

func (q *Queries) CreateTag(ctx context.Context, arg CreateTagParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, createTag, arg.Name, arg.MacAddress).Scan(&id)
	return id, err
}

const updateTag = `UPDATE tag SET name = $2, mac_address = $3 WHERE id = $1`

func (q *Queries) UpdateTag(ctx context.Context, arg UpdateTagParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateTag, arg.ID, arg.Name, arg.MacAddress)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteTag = `DELETE FROM tag WHERE id = $1`

func (q *Queries) DeleteTag(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteTag, id)
	return err
}

const unassignTag = `UPDATE crew_member SET tag_id = NULL WHERE tag_id = $1`

func (q *Queries) UnassignTag(ctx context.Context, tagID int64) error {
	_, err := q.db.Exec(ctx, unassignTag, tagID)
	return err
}

const assignTag = `UPDATE crew_member SET tag_id = $1 WHERE id = $2`

func (q *Queries) AssignTag(ctx context.Context, arg AssignTagParams) error {
	_, err := q.db.Exec(ctx, assignTag, arg.TagID, arg.CrewMemberID)
	return err
}

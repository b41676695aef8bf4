package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const crewMemberColumns = `
SELECT cm.id, cm.name,
       r.id, r.role_name,
       s.id, s.name,
       t.id, t.name, t.remaining_battery
FROM crew_member cm
LEFT JOIN crew_member_roles r ON r.id = cm.role_id
LEFT JOIN ship s ON s.id = cm.ship_id
LEFT JOIN tag t ON t.id = cm.tag_id
`

const listCrewMembers = crewMemberColumns + `
WHERE %s
ORDER BY cm.name ASC
`

func scanCrewMember(row interface{ Scan(...any) error }) (CrewMemberDetail, error) {
	var (
		cm         CrewMemberDetail
		roleID     pgtype.Int8
		roleName   pgtype.Text
		shipID     pgtype.Int8
		shipName   pgtype.Text
		tagID      pgtype.Int8
		tagName    pgtype.Text
		tagBattery pgtype.Float8
	)
	err := row.Scan(&cm.ID, &cm.Name,
		&roleID, &roleName,
		&shipID, &shipName,
		&tagID, &tagName, &tagBattery)
	if err != nil {
		return CrewMemberDetail{}, err
	}
	if roleID.Valid {
		cm.Role = &Role{ID: roleID.Int64, RoleName: roleName.String}
	}
	if shipID.Valid {
		cm.Ship = &Ship{ID: shipID.Int64, Name: shipName.String}
	}
	if tagID.Valid {
		cm.Tag = &TagRef{ID: tagID.Int64, Name: tagName.String, RemainingBattery: tagBattery.Float64}
	}
	return cm, nil
}

func (q *Queries) ListCrewMembers(ctx context.Context, filter CrewMemberFilter, page Page) ([]CrewMemberDetail, error) {
	query, args := buildList(listCrewMembers, crewMemberPredicates(filter), page)
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CrewMemberDetail
	for rows.Next() {
		cm, err := scanCrewMember(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, cm)
	}
	return items, rows.Err()
}

const countCrewMembers = `
SELECT COUNT(*)
FROM crew_member cm
LEFT JOIN crew_member_roles r ON r.id = cm.role_id
LEFT JOIN ship s ON s.id = cm.ship_id
WHERE %s
`

func (q *Queries) CountCrewMembers(ctx context.Context, filter CrewMemberFilter) (int64, error) {
	query, args := buildCount(countCrewMembers, crewMemberPredicates(filter))
	var total int64
	err := q.db.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

const getCrewMember = crewMemberColumns + `
WHERE cm.id = $1
`

func (q *Queries) GetCrewMember(ctx context.Context, id int64) (CrewMemberDetail, error) {
	return scanCrewMember(q.db.QueryRow(ctx, getCrewMember, id))
}

const createCrewMember = `
INSERT INTO crew_member (name, role_id, ship_id, tag_id)
VALUES ($1, $2, $3, $4)
RETURNING id
`

func (q *Queries) CreateCrewMember(ctx context.Context, arg CreateCrewMemberParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, createCrewMember,
		arg.Name, arg.RoleID, arg.ShipID, arg.TagID).Scan(&id)
	return id, err
}

const updateCrewMember = `
UPDATE crew_member SET name = $2, role_id = $3, ship_id = $4, tag_id = $5
WHERE id = $1
`

func (q *Queries) UpdateCrewMember(ctx context.Context, arg UpdateCrewMemberParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateCrewMember,
		arg.ID, arg.Name, arg.RoleID, arg.ShipID, arg.TagID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteCrewMember = `DELETE FROM crew_member WHERE id = $1`

func (q *Queries) DeleteCrewMember(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteCrewMember, id)
	return err
}

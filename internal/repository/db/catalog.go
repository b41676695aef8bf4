package db

import "context"

const listRoles = `SELECT id, role_name FROM crew_member_roles ORDER BY role_name ASC`

func (q *Queries) ListRoles(ctx context.Context) ([]Role, error) {
	rows, err := q.db.Query(ctx, listRoles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Role
	for rows.Next() {
		var r Role
		if err := rows.Scan(&r.ID, &r.RoleName); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listShipyards = `SELECT id, name FROM shipyard ORDER BY name ASC`

func (q *Queries) ListShipyards(ctx context.Context) ([]Shipyard, error) {
	rows, err := q.db.Query(ctx, listShipyards)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Shipyard
	for rows.Next() {
		var s Shipyard
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const createShipyard = `INSERT INTO shipyard (name) VALUES ($1) RETURNING id`

func (q *Queries) CreateShipyard(ctx context.Context, name string) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, createShipyard, name).Scan(&id)
	return id, err
}

const deleteShipyard = `DELETE FROM shipyard WHERE id = $1`

func (q *Queries) DeleteShipyard(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteShipyard, id)
	return err
}

const listActivatorBeacons = `
SELECT ab.id, ab.number, ab.is_first_when_entering, s.id, s.name
FROM activator_beacon ab
JOIN shipyard s ON s.id = ab.shipyard_id
ORDER BY ab.number ASC
`

func (q *Queries) ListActivatorBeacons(ctx context.Context) ([]ActivatorBeaconDetail, error) {
	rows, err := q.db.Query(ctx, listActivatorBeacons)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ActivatorBeaconDetail
	for rows.Next() {
		var b ActivatorBeaconDetail
		if err := rows.Scan(&b.ID, &b.Number, &b.IsFirstWhenEntering,
			&b.Shipyard.ID, &b.Shipyard.Name); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const createActivatorBeacon = `
INSERT INTO activator_beacon (number, shipyard_id, is_first_when_entering)
VALUES ($1, $2, $3)
RETURNING id
`

func (q *Queries) CreateActivatorBeacon(ctx context.Context, arg CreateActivatorBeaconParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, createActivatorBeacon,
		arg.Number, arg.ShipyardID, arg.IsFirstWhenEntering).Scan(&id)
	return id, err
}

const deleteActivatorBeacon = `DELETE FROM activator_beacon WHERE id = $1`

func (q *Queries) DeleteActivatorBeacon(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteActivatorBeacon, id)
	return err
}

package db

import "context"

const listShips = `
SELECT id, name FROM ship
WHERE %s
ORDER BY name ASC
`

func (q *Queries) ListShips(ctx context.Context, filter ShipFilter, page Page) ([]Ship, error) {
	query, args := buildList(listShips, shipPredicates(filter), page)
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Ship
	for rows.Next() {
		var s Ship
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const countShips = `
SELECT COUNT(*) FROM ship
WHERE %s
`

func (q *Queries) CountShips(ctx context.Context, filter ShipFilter) (int64, error) {
	query, args := buildCount(countShips, shipPredicates(filter))
	var total int64
	err := q.db.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

const getShip = `SELECT id, name FROM ship WHERE id = $1`

func (q *Queries) GetShip(ctx context.Context, id int64) (Ship, error) {
	var s Ship
	err := q.db.QueryRow(ctx, getShip, id).Scan(&s.ID, &s.Name)
	return s, err
}

const createShip = `INSERT INTO ship (name) VALUES ($1) RETURNING id`

func (q *Queries) CreateShip(ctx context.Context, name string) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, createShip, name).Scan(&id)
	return id, err
}

const updateShip = `UPDATE ship SET name = $2 WHERE id = $1`

func (q *Queries) UpdateShip(ctx context.Context, id int64, name string) (int64, error) {
	tag, err := q.db.Exec(ctx, updateShip, id, name)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteShip = `DELETE FROM ship WHERE id = $1`

func (q *Queries) DeleteShip(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteShip, id)
	return err
}

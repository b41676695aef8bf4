package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fredneedsausername/GateKeeper/internal/repository/db"
)

type ShipListInput struct {
	Name     string
	Page     int
	PageSize int
}

type ShipService interface {
	List(ctx context.Context, in ShipListInput) (ListResult[db.Ship], error)
	Get(ctx context.Context, id int64) (db.Ship, error)
	Create(ctx context.Context, name string) (db.Ship, error)
	Update(ctx context.Context, id int64, name string) (db.Ship, error)
	Delete(ctx context.Context, id int64) error
}

type shipService struct {
	querier db.Querier
}

func NewShipService(q db.Querier) ShipService {
	return &shipService{querier: q}
}

func (s *shipService) List(ctx context.Context, in ShipListInput) (ListResult[db.Ship], error) {
	filter := db.ShipFilter{Name: in.Name}
	if filter.Empty() {
		return emptyList[db.Ship](), nil
	}

	total, err := s.querier.CountShips(ctx, filter)
	if err != nil {
		return ListResult[db.Ship]{}, fmt.Errorf("count ships: %w", err)
	}
	items, err := s.querier.ListShips(ctx, filter, normalizePage(in.Page, in.PageSize))
	if err != nil {
		return ListResult[db.Ship]{}, fmt.Errorf("list ships: %w", err)
	}
	if items == nil {
		items = []db.Ship{}
	}
	return ListResult[db.Ship]{Items: items, Total: total}, nil
}

func (s *shipService) Get(ctx context.Context, id int64) (db.Ship, error) {
	ship, err := s.querier.GetShip(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Ship{}, fmt.Errorf("%w: ship %d", ErrNotFound, id)
	}
	if err != nil {
		return db.Ship{}, err
	}
	return ship, nil
}

func (s *shipService) Create(ctx context.Context, name string) (db.Ship, error) {
	if name == "" {
		return db.Ship{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	id, err := s.querier.CreateShip(ctx, name)
	if err != nil {
		return db.Ship{}, fmt.Errorf("create ship: %w", err)
	}
	return db.Ship{ID: id, Name: name}, nil
}

func (s *shipService) Update(ctx context.Context, id int64, name string) (db.Ship, error) {
	if name == "" {
		return db.Ship{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	rows, err := s.querier.UpdateShip(ctx, id, name)
	if err != nil {
		return db.Ship{}, fmt.Errorf("update ship: %w", err)
	}
	if rows == 0 {
		return db.Ship{}, fmt.Errorf("%w: ship %d", ErrNotFound, id)
	}
	return db.Ship{ID: id, Name: name}, nil
}

func (s *shipService) Delete(ctx context.Context, id int64) error {
	return s.querier.DeleteShip(ctx, id)
}

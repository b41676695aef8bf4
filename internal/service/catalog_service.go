package service

import (
	"context"
	"fmt"

	"github.com/fredneedsausername/GateKeeper/internal/repository/db"
)

type ActivatorBeaconInput struct {
	Number              int32
	ShipyardID          int64
	IsFirstWhenEntering bool
}

// CatalogService serves the small reference tables: roles, shipyards and
// activator beacons. None of them are paginated.
type CatalogService interface {
	ListRoles(ctx context.Context) ([]db.Role, error)
	ListShipyards(ctx context.Context) ([]db.Shipyard, error)
	CreateShipyard(ctx context.Context, name string) (db.Shipyard, error)
	DeleteShipyard(ctx context.Context, id int64) error
	ListActivatorBeacons(ctx context.Context) ([]db.ActivatorBeaconDetail, error)
	CreateActivatorBeacon(ctx context.Context, in ActivatorBeaconInput) (int64, error)
	DeleteActivatorBeacon(ctx context.Context, id int64) error
}

type catalogService struct {
	querier db.Querier
}

func NewCatalogService(q db.Querier) CatalogService {
	return &catalogService{querier: q}
}

func (s *catalogService) ListRoles(ctx context.Context) ([]db.Role, error) {
	roles, err := s.querier.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	if roles == nil {
		roles = []db.Role{}
	}
	return roles, nil
}

func (s *catalogService) ListShipyards(ctx context.Context) ([]db.Shipyard, error) {
	yards, err := s.querier.ListShipyards(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipyards: %w", err)
	}
	if yards == nil {
		yards = []db.Shipyard{}
	}
	return yards, nil
}

func (s *catalogService) CreateShipyard(ctx context.Context, name string) (db.Shipyard, error) {
	if name == "" {
		return db.Shipyard{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	id, err := s.querier.CreateShipyard(ctx, name)
	if err != nil {
		return db.Shipyard{}, fmt.Errorf("create shipyard: %w", err)
	}
	return db.Shipyard{ID: id, Name: name}, nil
}

func (s *catalogService) DeleteShipyard(ctx context.Context, id int64) error {
	return s.querier.DeleteShipyard(ctx, id)
}

func (s *catalogService) ListActivatorBeacons(ctx context.Context) ([]db.ActivatorBeaconDetail, error) {
	beacons, err := s.querier.ListActivatorBeacons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activator beacons: %w", err)
	}
	if beacons == nil {
		beacons = []db.ActivatorBeaconDetail{}
	}
	return beacons, nil
}

func (s *catalogService) CreateActivatorBeacon(ctx context.Context, in ActivatorBeaconInput) (int64, error) {
	if in.Number <= 0 {
		return 0, fmt.Errorf("%w: number must be positive", ErrInvalidInput)
	}
	if in.ShipyardID == 0 {
		return 0, fmt.Errorf("%w: shipyard_id is required", ErrInvalidInput)
	}
	id, err := s.querier.CreateActivatorBeacon(ctx, db.CreateActivatorBeaconParams{
		Number:              in.Number,
		ShipyardID:          in.ShipyardID,
		IsFirstWhenEntering: in.IsFirstWhenEntering,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrBeaconNumberTaken
		}
		return 0, fmt.Errorf("create activator beacon: %w", err)
	}
	return id, nil
}

func (s *catalogService) DeleteActivatorBeacon(ctx context.Context, id int64) error {
	return s.querier.DeleteActivatorBeacon(ctx, id)
}

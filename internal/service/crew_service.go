package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fredneedsausername/GateKeeper/internal/repository/db"
)

type CrewListInput struct {
	CrewMemberName string
	ShipName       string
	RoleName       string
	Page           int
	PageSize       int
}

type CrewMemberInput struct {
	Name   string
	RoleID *int64
	ShipID *int64
	TagID  *int64
}

type CrewService interface {
	List(ctx context.Context, in CrewListInput) (ListResult[db.CrewMemberDetail], error)
	Get(ctx context.Context, id int64) (db.CrewMemberDetail, error)
	Create(ctx context.Context, in CrewMemberInput) (db.CrewMemberDetail, error)
	Update(ctx context.Context, id int64, in CrewMemberInput) (db.CrewMemberDetail, error)
	Delete(ctx context.Context, id int64) error
}

type crewService struct {
	querier db.Querier
}

func NewCrewService(q db.Querier) CrewService {
	return &crewService{querier: q}
}

func (s *crewService) List(ctx context.Context, in CrewListInput) (ListResult[db.CrewMemberDetail], error) {
	filter := db.CrewMemberFilter{
		CrewMemberName: in.CrewMemberName,
		ShipName:       in.ShipName,
		RoleName:       in.RoleName,
	}
	// The crew table is large; an unfiltered listing is never useful, so
	// skip the store entirely.
	if filter.Empty() {
		return emptyList[db.CrewMemberDetail](), nil
	}

	total, err := s.querier.CountCrewMembers(ctx, filter)
	if err != nil {
		return ListResult[db.CrewMemberDetail]{}, fmt.Errorf("count crew members: %w", err)
	}
	items, err := s.querier.ListCrewMembers(ctx, filter, normalizePage(in.Page, in.PageSize))
	if err != nil {
		return ListResult[db.CrewMemberDetail]{}, fmt.Errorf("list crew members: %w", err)
	}
	if items == nil {
		items = []db.CrewMemberDetail{}
	}
	return ListResult[db.CrewMemberDetail]{Items: items, Total: total}, nil
}

func (s *crewService) Get(ctx context.Context, id int64) (db.CrewMemberDetail, error) {
	cm, err := s.querier.GetCrewMember(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.CrewMemberDetail{}, fmt.Errorf("%w: crew member %d", ErrNotFound, id)
	}
	if err != nil {
		return db.CrewMemberDetail{}, err
	}
	return cm, nil
}

func (s *crewService) Create(ctx context.Context, in CrewMemberInput) (db.CrewMemberDetail, error) {
	if err := validateCrewMember(in); err != nil {
		return db.CrewMemberDetail{}, err
	}
	id, err := s.querier.CreateCrewMember(ctx, db.CreateCrewMemberParams{
		Name:   in.Name,
		RoleID: int8FromPtr(in.RoleID),
		ShipID: int8FromPtr(in.ShipID),
		TagID:  int8FromPtr(in.TagID),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return db.CrewMemberDetail{}, ErrTagAlreadyAssigned
		}
		return db.CrewMemberDetail{}, fmt.Errorf("create crew member: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *crewService) Update(ctx context.Context, id int64, in CrewMemberInput) (db.CrewMemberDetail, error) {
	if err := validateCrewMember(in); err != nil {
		return db.CrewMemberDetail{}, err
	}
	rows, err := s.querier.UpdateCrewMember(ctx, db.UpdateCrewMemberParams{
		ID:     id,
		Name:   in.Name,
		RoleID: int8FromPtr(in.RoleID),
		ShipID: int8FromPtr(in.ShipID),
		TagID:  int8FromPtr(in.TagID),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return db.CrewMemberDetail{}, ErrTagAlreadyAssigned
		}
		return db.CrewMemberDetail{}, fmt.Errorf("update crew member: %w", err)
	}
	if rows == 0 {
		return db.CrewMemberDetail{}, fmt.Errorf("%w: crew member %d", ErrNotFound, id)
	}
	return s.Get(ctx, id)
}

func (s *crewService) Delete(ctx context.Context, id int64) error {
	return s.querier.DeleteCrewMember(ctx, id)
}

func validateCrewMember(in CrewMemberInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.RoleID == nil || in.ShipID == nil {
		return fmt.Errorf("%w: role_id and ship_id are required", ErrInvalidInput)
	}
	return nil
}

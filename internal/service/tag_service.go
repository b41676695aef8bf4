package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fredneedsausername/GateKeeper/internal/repository/db"
)

type TagListInput struct {
	Assigned bool
	Vacant   bool
	Page     int
	PageSize int
}

type TagInput struct {
	Name       string
	MacAddress string
	// CrewMemberID, when set, (re)assigns the tag inside the same
	// transaction as the tag write.
	CrewMemberID *int64
}

type TagService interface {
	List(ctx context.Context, in TagListInput) (ListResult[db.TagDetail], error)
	Get(ctx context.Context, id int64) (db.TagDetail, error)
	Create(ctx context.Context, in TagInput) (db.TagDetail, error)
	Update(ctx context.Context, id int64, in TagInput) (db.TagDetail, error)
	Delete(ctx context.Context, id int64) error
}

type tagService struct {
	querier db.Querier
	txm     db.TxManager
}

func NewTagService(q db.Querier, txm db.TxManager) TagService {
	return &tagService{querier: q, txm: txm}
}

func (s *tagService) List(ctx context.Context, in TagListInput) (ListResult[db.TagDetail], error) {
	filter := db.TagFilter{Assigned: in.Assigned, Vacant: in.Vacant}
	// Neither toggle selected selects nothing, not everything.
	if filter.Empty() {
		return emptyList[db.TagDetail](), nil
	}

	total, err := s.querier.CountTags(ctx, filter)
	if err != nil {
		return ListResult[db.TagDetail]{}, fmt.Errorf("count tags: %w", err)
	}
	items, err := s.querier.ListTags(ctx, filter, normalizePage(in.Page, in.PageSize))
	if err != nil {
		return ListResult[db.TagDetail]{}, fmt.Errorf("list tags: %w", err)
	}
	if items == nil {
		items = []db.TagDetail{}
	}
	return ListResult[db.TagDetail]{Items: items, Total: total}, nil
}

func (s *tagService) Get(ctx context.Context, id int64) (db.TagDetail, error) {
	tag, err := s.querier.GetTag(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.TagDetail{}, fmt.Errorf("%w: tag %d", ErrNotFound, id)
	}
	if err != nil {
		return db.TagDetail{}, err
	}
	return tag, nil
}

func (s *tagService) Create(ctx context.Context, in TagInput) (db.TagDetail, error) {
	if err := validateTag(in); err != nil {
		return db.TagDetail{}, err
	}

	var id int64
	err := s.txm.InTx(ctx, func(q db.Querier) error {
		var err error
		id, err = q.CreateTag(ctx, db.CreateTagParams{Name: in.Name, MacAddress: in.MacAddress})
		if err != nil {
			if isUniqueViolation(err) {
				return ErrMacAlreadyRegistered
			}
			return fmt.Errorf("create tag: %w", err)
		}
		if in.CrewMemberID != nil {
			if err := q.AssignTag(ctx, db.AssignTagParams{TagID: id, CrewMemberID: *in.CrewMemberID}); err != nil {
				if isUniqueViolation(err) {
					return ErrTagAlreadyAssigned
				}
				return fmt.Errorf("assign tag: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return db.TagDetail{}, err
	}
	return s.Get(ctx, id)
}

func (s *tagService) Update(ctx context.Context, id int64, in TagInput) (db.TagDetail, error) {
	if err := validateTag(in); err != nil {
		return db.TagDetail{}, err
	}

	err := s.txm.InTx(ctx, func(q db.Querier) error {
		rows, err := q.UpdateTag(ctx, db.UpdateTagParams{ID: id, Name: in.Name, MacAddress: in.MacAddress})
		if err != nil {
			if isUniqueViolation(err) {
				return ErrMacAlreadyRegistered
			}
			return fmt.Errorf("update tag: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("%w: tag %d", ErrNotFound, id)
		}
		// Reassignment always releases the current holder first.
		if err := q.UnassignTag(ctx, id); err != nil {
			return fmt.Errorf("unassign tag: %w", err)
		}
		if in.CrewMemberID != nil {
			if err := q.AssignTag(ctx, db.AssignTagParams{TagID: id, CrewMemberID: *in.CrewMemberID}); err != nil {
				if isUniqueViolation(err) {
					return ErrTagAlreadyAssigned
				}
				return fmt.Errorf("assign tag: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return db.TagDetail{}, err
	}
	return s.Get(ctx, id)
}

func (s *tagService) Delete(ctx context.Context, id int64) error {
	return s.querier.DeleteTag(ctx, id)
}

func validateTag(in TagInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.MacAddress == "" {
		return fmt.Errorf("%w: mac_address is required", ErrInvalidInput)
	}
	return nil
}

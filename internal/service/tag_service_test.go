package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fredneedsausername/GateKeeper/internal/repository/db"
	"github.com/fredneedsausername/GateKeeper/internal/repository/mock"
	"github.com/fredneedsausername/GateKeeper/internal/service"
)

func newTagService(t *testing.T) (*mock.MockQuerier, service.TagService) {
	ctrl := gomock.NewController(t)
	mockQ := mock.NewMockQuerier(ctrl)
	return mockQ, service.NewTagService(mockQ, fakeTxManager{q: mockQ})
}

func TestTagList_NeitherToggleSelectsNothing(t *testing.T) {
	mockQ, svc := newTagService(t)
	_ = mockQ // no expectations: neither assigned nor vacant requested

	res, err := svc.List(context.Background(), service.TagListInput{})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Zero(t, res.Total)
}

func TestTagList_VacantOnly(t *testing.T) {
	mockQ, svc := newTagService(t)

	wantFilter := db.TagFilter{Vacant: true}
	mockQ.EXPECT().CountTags(gomock.Any(), wantFilter).Return(int64(2), nil)
	mockQ.EXPECT().ListTags(gomock.Any(), wantFilter, db.Page{Limit: 50}).
		Return([]db.TagDetail{{ID: 1}, {ID: 2}}, nil)

	res, err := svc.List(context.Background(), service.TagListInput{Vacant: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	assert.Len(t, res.Items, 2)
}

func TestTagCreate_DuplicateMAC(t *testing.T) {
	mockQ, svc := newTagService(t)
	mockQ.EXPECT().CreateTag(gomock.Any(), gomock.Any()).
		Return(int64(0), &pgconn.PgError{Code: "23505"})

	_, err := svc.Create(context.Background(), service.TagInput{
		Name:       "tag-17",
		MacAddress: "AABBCCDDEEFF",
	})
	assert.ErrorIs(t, err, service.ErrMacAlreadyRegistered)
}

func TestTagCreate_AssignsInsideSameTx(t *testing.T) {
	mockQ, svc := newTagService(t)

	created := mockQ.EXPECT().CreateTag(gomock.Any(), db.CreateTagParams{
		Name:       "tag-17",
		MacAddress: "AABBCCDDEEFF",
	}).Return(int64(17), nil)
	mockQ.EXPECT().AssignTag(gomock.Any(), db.AssignTagParams{TagID: 17, CrewMemberID: 42}).
		After(created).Return(nil)
	mockQ.EXPECT().GetTag(gomock.Any(), int64(17)).Return(db.TagDetail{
		ID:         17,
		Name:       "tag-17",
		MacAddress: "AABBCCDDEEFF",
		CrewMember: &db.CrewRef{ID: 42, Name: "Ross"},
	}, nil)

	tag, err := svc.Create(context.Background(), service.TagInput{
		Name:         "tag-17",
		MacAddress:   "AABBCCDDEEFF",
		CrewMemberID: int64Ptr(42),
	})
	require.NoError(t, err)
	require.NotNil(t, tag.CrewMember)
	assert.Equal(t, int64(42), tag.CrewMember.ID)
}

func TestTagUpdate_ReassignReleasesCurrentHolderFirst(t *testing.T) {
	mockQ, svc := newTagService(t)

	updated := mockQ.EXPECT().UpdateTag(gomock.Any(), db.UpdateTagParams{
		ID:         17,
		Name:       "tag-17",
		MacAddress: "AABBCCDDEEFF",
	}).Return(int64(1), nil)
	unassigned := mockQ.EXPECT().UnassignTag(gomock.Any(), int64(17)).After(updated).Return(nil)
	mockQ.EXPECT().AssignTag(gomock.Any(), db.AssignTagParams{TagID: 17, CrewMemberID: 99}).
		After(unassigned).Return(nil)
	mockQ.EXPECT().GetTag(gomock.Any(), int64(17)).Return(db.TagDetail{ID: 17}, nil)

	_, err := svc.Update(context.Background(), 17, service.TagInput{
		Name:         "tag-17",
		MacAddress:   "AABBCCDDEEFF",
		CrewMemberID: int64Ptr(99),
	})
	require.NoError(t, err)
}

func TestTagUpdate_AssignConflictSurfacesAsAlreadyAssigned(t *testing.T) {
	mockQ, svc := newTagService(t)

	mockQ.EXPECT().UpdateTag(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	mockQ.EXPECT().UnassignTag(gomock.Any(), int64(17)).Return(nil)
	mockQ.EXPECT().AssignTag(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505"})

	_, err := svc.Update(context.Background(), 17, service.TagInput{
		Name:         "tag-17",
		MacAddress:   "AABBCCDDEEFF",
		CrewMemberID: int64Ptr(99),
	})
	assert.ErrorIs(t, err, service.ErrTagAlreadyAssigned)
}

func TestTagUpdate_ZeroRowsIsNotFound(t *testing.T) {
	mockQ, svc := newTagService(t)
	mockQ.EXPECT().UpdateTag(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	_, err := svc.Update(context.Background(), 404, service.TagInput{
		Name:       "tag-x",
		MacAddress: "001122334455",
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestTagUpdate_ClearAssignmentLeavesTagVacant(t *testing.T) {
	mockQ, svc := newTagService(t)

	mockQ.EXPECT().UpdateTag(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	mockQ.EXPECT().UnassignTag(gomock.Any(), int64(17)).Return(nil)
	// No AssignTag without a crew member in the request.
	mockQ.EXPECT().GetTag(gomock.Any(), int64(17)).Return(db.TagDetail{ID: 17}, nil)

	tag, err := svc.Update(context.Background(), 17, service.TagInput{
		Name:       "tag-17",
		MacAddress: "AABBCCDDEEFF",
	})
	require.NoError(t, err)
	assert.Nil(t, tag.CrewMember)
}

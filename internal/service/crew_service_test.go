package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fredneedsausername/GateKeeper/internal/repository/db"
	"github.com/fredneedsausername/GateKeeper/internal/repository/mock"
	"github.com/fredneedsausername/GateKeeper/internal/service"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCrewList_EmptyFilterSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQ := mock.NewMockQuerier(ctrl)
	// No EXPECT calls: an unfiltered listing must not reach the store.

	svc := service.NewCrewService(mockQ)
	res, err := svc.List(context.Background(), service.CrewListInput{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Zero(t, res.Total)
}

func TestCrewList_FilteredAndPaged(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQ := mock.NewMockQuerier(ctrl)

	wantFilter := db.CrewMemberFilter{CrewMemberName: "ross"}
	mockQ.EXPECT().CountCrewMembers(gomock.Any(), wantFilter).Return(int64(1), nil)
	mockQ.EXPECT().ListCrewMembers(gomock.Any(), wantFilter, db.Page{Limit: 25, Offset: 25}).
		Return([]db.CrewMemberDetail{{ID: 9, Name: "Ross"}}, nil)

	svc := service.NewCrewService(mockQ)
	res, err := svc.List(context.Background(), service.CrewListInput{
		CrewMemberName: "ross",
		Page:           2,
		PageSize:       25,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Ross", res.Items[0].Name)
}

func TestCrewGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQ := mock.NewMockQuerier(ctrl)
	mockQ.EXPECT().GetCrewMember(gomock.Any(), int64(404)).Return(db.CrewMemberDetail{}, pgx.ErrNoRows)

	svc := service.NewCrewService(mockQ)
	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCrewCreate_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewCrewService(mock.NewMockQuerier(ctrl))

	_, err := svc.Create(context.Background(), service.CrewMemberInput{})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.Create(context.Background(), service.CrewMemberInput{Name: "Ross"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestCrewCreate_TagConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQ := mock.NewMockQuerier(ctrl)
	mockQ.EXPECT().CreateCrewMember(gomock.Any(), gomock.Any()).
		Return(int64(0), &pgconn.PgError{Code: "23505"})

	svc := service.NewCrewService(mockQ)
	_, err := svc.Create(context.Background(), service.CrewMemberInput{
		Name:   "Ross",
		RoleID: int64Ptr(1),
		ShipID: int64Ptr(2),
		TagID:  int64Ptr(3),
	})
	assert.ErrorIs(t, err, service.ErrTagAlreadyAssigned)
}

func TestCrewUpdate_ZeroRowsIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQ := mock.NewMockQuerier(ctrl)
	mockQ.EXPECT().UpdateCrewMember(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	svc := service.NewCrewService(mockQ)
	_, err := svc.Update(context.Background(), 404, service.CrewMemberInput{
		Name:   "Ross",
		RoleID: int64Ptr(1),
		ShipID: int64Ptr(2),
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

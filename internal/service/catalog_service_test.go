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

func TestCreateActivatorBeacon_NumberTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQ := mock.NewMockQuerier(ctrl)
	mockQ.EXPECT().CreateActivatorBeacon(gomock.Any(), gomock.Any()).
		Return(int64(0), &pgconn.PgError{Code: "23505"})

	svc := service.NewCatalogService(mockQ)
	_, err := svc.CreateActivatorBeacon(context.Background(), service.ActivatorBeaconInput{
		Number:     1,
		ShipyardID: 10,
	})
	assert.ErrorIs(t, err, service.ErrBeaconNumberTaken)
}

func TestCreateActivatorBeacon_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewCatalogService(mock.NewMockQuerier(ctrl))

	_, err := svc.CreateActivatorBeacon(context.Background(), service.ActivatorBeaconInput{ShipyardID: 10})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.CreateActivatorBeacon(context.Background(), service.ActivatorBeaconInput{Number: 1})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestListRoles_NilBecomesEmptySlice(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQ := mock.NewMockQuerier(ctrl)
	mockQ.EXPECT().ListRoles(gomock.Any()).Return(nil, nil)

	svc := service.NewCatalogService(mockQ)
	roles, err := svc.ListRoles(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, roles)
	assert.Empty(t, roles)
}

func TestCreateShipyard(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQ := mock.NewMockQuerier(ctrl)
	mockQ.EXPECT().CreateShipyard(gomock.Any(), "east basin").Return(int64(3), nil)

	svc := service.NewCatalogService(mockQ)
	yard, err := svc.CreateShipyard(context.Background(), "east basin")
	require.NoError(t, err)
	assert.Equal(t, db.Shipyard{ID: 3, Name: "east basin"}, yard)
}

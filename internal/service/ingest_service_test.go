package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/fredneedsausername/GateKeeper/internal/repository/db"
	"github.com/fredneedsausername/GateKeeper/internal/repository/mock"
	"github.com/fredneedsausername/GateKeeper/internal/service"
)

// fakeTxManager runs the callback against the mock querier without a real
// transaction. A returned error stands in for a rollback.
type fakeTxManager struct {
	q db.Querier
}

func (f fakeTxManager) InTx(_ context.Context, fn func(db.Querier) error) error {
	return fn(f.q)
}

type capturePublisher struct {
	events []service.PresenceEvent
}

func (p *capturePublisher) PublishPresence(_ context.Context, evt service.PresenceEvent) error {
	p.events = append(p.events, evt)
	return nil
}

// rawFrame assembles a gateway data blob: 16 header chars, then activator
// number, message type 03, counter, MAC, RSSI, TLM flags, battery.
func rawFrame(activator, counter, mac string) string {
	return "1122334455667788" + activator + "03" + counter + mac + "c5" + "04" + "0e10"
}

const testMAC = "AABBCCDDEEFF"

func newIngestHarness(t *testing.T, cfg service.IngestConfig) (*mock.MockQuerier, *capturePublisher, service.IngestService) {
	ctrl := gomock.NewController(t)
	mockQ := mock.NewMockQuerier(ctrl)
	pub := &capturePublisher{}
	svc := service.NewIngestService(fakeTxManager{q: mockQ}, cfg, pub, zaptest.NewLogger(t))
	return mockQ, pub, svc
}

func telemetryResult(tagID int64, oldCounter int16, oldPairing, newPairing int64) db.TagTelemetryResult {
	return db.TagTelemetryResult{
		TagID:      tagID,
		OldCounter: pgtype.Int2{Int16: oldCounter, Valid: true},
		OldPairing: pgtype.Int8{Int64: oldPairing, Valid: true},
		NewPairing: pgtype.Int8{Int64: newPairing, Valid: true},
	}
}

var (
	gateFirst  = db.ActivatorBeacon{ID: 1, Number: 1, ShipyardID: 10, IsFirstWhenEntering: true}
	gateSecond = db.ActivatorBeacon{ID: 2, Number: 2, ShipyardID: 10, IsFirstWhenEntering: false}
)

func TestIngest_MalformedFrameNeverTouchesStore(t *testing.T) {
	_, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: ""},
		{Data: "deadbeef"},
		{Data: rawFrame("0001", "05", "NOTHEXATALL!")},
	})

	assert.Empty(t, pub.events)
}

func TestIngest_UnknownMACDroppedSilently(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(db.TagTelemetryResult{}, pgx.ErrNoRows)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0001", "05", testMAC)},
	})

	assert.Empty(t, pub.events)
}

func TestIngest_UnknownMACAutoRegisters(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{
		BatteryMaxMillivolts: 3600,
		AutoRegisterTags:     true,
	})

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(db.TagTelemetryResult{}, pgx.ErrNoRows)
	mockQ.EXPECT().RegisterTag(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.RegisterTagParams) error {
			assert.Equal(t, testMAC, arg.MacAddress)
			assert.Equal(t, int16(5), arg.PacketCounter)
			assert.Equal(t, int32(1), arg.ActivatorNumber)
			assert.InDelta(t, 100.0, arg.RemainingBattery, 0.001)
			return nil
		})

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0001", "05", testMAC)},
	})

	assert.Empty(t, pub.events)
}

func TestIngest_FirstPacketOnlyEstablishesState(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(db.TagTelemetryResult{
		TagID:      7,
		NewPairing: pgtype.Int8{Int64: 1, Valid: true},
	}, nil)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0001", "05", testMAC)},
	})

	assert.Empty(t, pub.events)
}

func TestIngest_DuplicateCounterIsNoOp(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	// Counter 5 repeated: the store kept the old pairing untouched.
	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(telemetryResult(7, 5, 1, 1), nil)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0002", "05", testMAC)},
	})

	assert.Empty(t, pub.events)
}

func TestIngest_NoPairingAnchorNoEvent(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(db.TagTelemetryResult{
		TagID:      7,
		OldCounter: pgtype.Int2{Int16: 4, Valid: true},
		NewPairing: pgtype.Int8{Int64: 2, Valid: true},
	}, nil)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0002", "05", testMAC)},
	})

	assert.Empty(t, pub.events)
}

func TestIngest_UnknownFriendlyNumberWipesPairing(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(db.TagTelemetryResult{
		TagID:      7,
		OldCounter: pgtype.Int2{Int16: 4, Valid: true},
		OldPairing: pgtype.Int8{Int64: 1, Valid: true},
	}, nil)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("00ff", "05", testMAC)},
	})

	assert.Empty(t, pub.events)
}

func TestIngest_DeletedAnchorBeaconNoEvent(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(telemetryResult(7, 4, 1, 2), nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(1)).Return(db.ActivatorBeacon{}, pgx.ErrNoRows)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0002", "05", testMAC)},
	})

	assert.Empty(t, pub.events)
}

func TestIngest_UnresolvedDirectionKeepsPairing(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	otherYard := db.ActivatorBeacon{ID: 3, Number: 2, ShipyardID: 99, IsFirstWhenEntering: false}

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(telemetryResult(7, 4, 1, 3), nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(1)).Return(gateFirst, nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(3)).Return(otherYard, nil)
	// No ClearTagPairing: the pairing survives an unresolved pair.

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0002", "05", testMAC)},
	})

	assert.Empty(t, pub.events)
}

func TestIngest_EnteringOpensPermanenceLog(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.ApplyTagTelemetryParams) (db.TagTelemetryResult, error) {
			assert.Equal(t, testMAC, arg.MacAddress)
			assert.Equal(t, int16(5), arg.PacketCounter)
			assert.Equal(t, int32(2), arg.ActivatorNumber)
			return telemetryResult(7, 4, 1, 2), nil
		})
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(1)).Return(gateFirst, nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(2)).Return(gateSecond, nil)
	mockQ.EXPECT().GetCrewMemberIDByTag(gomock.Any(), int64(7)).Return(int64(42), nil)
	mockQ.EXPECT().OpenPermanenceLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.OpenPermanenceLogParams) error {
			assert.Equal(t, int64(42), arg.CrewMemberID)
			assert.Equal(t, int64(10), arg.ShipyardID)
			assert.False(t, arg.EntryAt.IsZero())
			return nil
		})
	mockQ.EXPECT().ClearTagPairing(gomock.Any(), int64(7)).Return(nil)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0002", "05", testMAC)},
	})

	require.Len(t, pub.events, 1)
	evt := pub.events[0]
	assert.Equal(t, "permanence", evt.Kind)
	assert.Equal(t, "entering", evt.Direction)
	assert.Equal(t, int64(7), evt.TagID)
	assert.Equal(t, int64(42), evt.CrewMemberID)
	assert.Equal(t, int64(10), evt.ShipyardID)
}

func TestIngest_LeavingClosesLatestOpenLog(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(telemetryResult(7, 4, 2, 1), nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(2)).Return(gateSecond, nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(1)).Return(gateFirst, nil)
	mockQ.EXPECT().GetCrewMemberIDByTag(gomock.Any(), int64(7)).Return(int64(42), nil)
	mockQ.EXPECT().CloseLatestOpenPermanenceLog(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	mockQ.EXPECT().ClearTagPairing(gomock.Any(), int64(7)).Return(nil)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0001", "05", testMAC)},
	})

	require.Len(t, pub.events, 1)
	assert.Equal(t, "leaving", pub.events[0].Direction)
}

func TestIngest_LeavingWithoutOpenLogRecordsLeaveOnlyRow(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(telemetryResult(7, 4, 2, 1), nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(2)).Return(gateSecond, nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(1)).Return(gateFirst, nil)
	mockQ.EXPECT().GetCrewMemberIDByTag(gomock.Any(), int64(7)).Return(int64(42), nil)
	mockQ.EXPECT().CloseLatestOpenPermanenceLog(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	mockQ.EXPECT().InsertLeavePermanenceLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.InsertLeavePermanenceLogParams) error {
			assert.Equal(t, int64(42), arg.CrewMemberID)
			assert.Equal(t, int64(10), arg.ShipyardID)
			return nil
		})
	mockQ.EXPECT().ClearTagPairing(gomock.Any(), int64(7)).Return(nil)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0001", "05", testMAC)},
	})

	require.Len(t, pub.events, 1)
}

func TestIngest_ReentrySealsOpenLogsWhenConfigured(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{
		BatteryMaxMillivolts: 3600,
		CloseLogOnReentry:    true,
	})

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(telemetryResult(7, 4, 1, 2), nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(1)).Return(gateFirst, nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(2)).Return(gateSecond, nil)
	mockQ.EXPECT().GetCrewMemberIDByTag(gomock.Any(), int64(7)).Return(int64(42), nil)
	closeAll := mockQ.EXPECT().CloseAllOpenPermanenceLogs(gomock.Any(), gomock.Any()).Return(nil)
	mockQ.EXPECT().OpenPermanenceLog(gomock.Any(), gomock.Any()).After(closeAll).Return(nil)
	mockQ.EXPECT().ClearTagPairing(gomock.Any(), int64(7)).Return(nil)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0002", "05", testMAC)},
	})

	require.Len(t, pub.events, 1)
}

func TestIngest_UnassignedTagRecordsEntry(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(telemetryResult(7, 4, 1, 2), nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(1)).Return(gateFirst, nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(2)).Return(gateSecond, nil)
	mockQ.EXPECT().GetCrewMemberIDByTag(gomock.Any(), int64(7)).Return(int64(0), pgx.ErrNoRows)
	mockQ.EXPECT().InsertUnassignedTagEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.InsertUnassignedTagEntryParams) error {
			assert.Equal(t, int64(7), arg.TagID)
			assert.Equal(t, int64(10), arg.ShipyardID)
			assert.True(t, arg.IsEntering)
			return nil
		})
	mockQ.EXPECT().ClearTagPairing(gomock.Any(), int64(7)).Return(nil)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0002", "05", testMAC)},
	})

	require.Len(t, pub.events, 1)
	assert.Equal(t, "unassigned", pub.events[0].Kind)
	assert.Zero(t, pub.events[0].CrewMemberID)
}

func TestIngest_FailedDeviceDoesNotAbortBatch(t *testing.T) {
	mockQ, pub, svc := newIngestHarness(t, service.IngestConfig{BatteryMaxMillivolts: 3600})

	// First device blows up inside its transaction; second still processes.
	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(db.TagTelemetryResult{}, assert.AnError)
	mockQ.EXPECT().ApplyTagTelemetry(gomock.Any(), gomock.Any()).Return(telemetryResult(7, 4, 1, 2), nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(1)).Return(gateFirst, nil)
	mockQ.EXPECT().GetActivatorBeacon(gomock.Any(), int64(2)).Return(gateSecond, nil)
	mockQ.EXPECT().GetCrewMemberIDByTag(gomock.Any(), int64(7)).Return(int64(42), nil)
	mockQ.EXPECT().OpenPermanenceLog(gomock.Any(), gomock.Any()).Return(nil)
	mockQ.EXPECT().ClearTagPairing(gomock.Any(), int64(7)).Return(nil)

	svc.ProcessDeviceList(context.Background(), []service.GatewayDevice{
		{Data: rawFrame("0002", "05", "001122334455")},
		{Data: rawFrame("0002", "05", testMAC)},
	})

	require.Len(t, pub.events, 1)
}

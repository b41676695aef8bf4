// Package service implements the domain logic behind the gateway ingestion
// core and the operator API.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/fredneedsausername/GateKeeper/internal/beacon"
	"github.com/fredneedsausername/GateKeeper/internal/repository/db"
)

// GatewayDevice is one element of the gateway's device_list.
type GatewayDevice struct {
	Data     string          `json:"data"`
	ScanTime json.RawMessage `json:"scan_time,omitempty"`
}

// PresenceEvent is the post-commit notification for a recorded crossing.
type PresenceEvent struct {
	// EventID lets consumers deduplicate across JetStream redeliveries.
	EventID      string    `json:"event_id"`
	Kind         string    `json:"kind"` // "permanence" or "unassigned"
	TagID        int64     `json:"tag_id"`
	CrewMemberID int64     `json:"crew_member_id,omitempty"`
	ShipyardID   int64     `json:"shipyard_id"`
	Direction    string    `json:"direction"`
	ObservedAt   time.Time `json:"observed_at"`
}

// PresencePublisher pushes committed presence events onto the message bus.
// A nil publisher disables publishing.
type PresencePublisher interface {
	PublishPresence(ctx context.Context, evt PresenceEvent) error
}

// IngestConfig are the ingestion core knobs.
type IngestConfig struct {
	// BatteryMaxMillivolts is the full-battery reference voltage.
	BatteryMaxMillivolts int
	// AutoRegisterTags creates unknown tags on first sighting instead of
	// dropping their packets. Off in production deployments.
	AutoRegisterTags bool
	// CloseLogOnReentry seals open permanence intervals before an entering
	// crossing opens a new one.
	CloseLogOnReentry bool
}

// IngestService processes gateway scan reports.
type IngestService interface {
	// ProcessDeviceList runs the per-device pipeline for every element.
	// Each device is its own transaction; failures are logged and never
	// abort the remaining devices.
	ProcessDeviceList(ctx context.Context, devices []GatewayDevice)
}

type ingestService struct {
	txm    db.TxManager
	cfg    IngestConfig
	pub    PresencePublisher
	logger *zap.Logger
	now    func() time.Time
}

func NewIngestService(txm db.TxManager, cfg IngestConfig, pub PresencePublisher, logger *zap.Logger) IngestService {
	return &ingestService{
		txm:    txm,
		cfg:    cfg,
		pub:    pub,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *ingestService) ProcessDeviceList(ctx context.Context, devices []GatewayDevice) {
	for _, dev := range devices {
		evt, err := s.processDevice(ctx, dev)
		if err != nil {
			// Per-device failures roll back that device only; the
			// gateway contract is best-effort ingestion.
			s.logger.Error("device processing failed", zap.Error(err))
			continue
		}
		if evt != nil && s.pub != nil {
			if err := s.pub.PublishPresence(ctx, *evt); err != nil {
				s.logger.Warn("presence event publish failed", zap.Error(err))
			}
		}
	}
}

// processDevice decodes one advertisement and applies the presence state
// machine inside a single transaction. A nil event with a nil error is a
// silent drop or a packet that only advanced pairing state.
func (s *ingestService) processDevice(ctx context.Context, dev GatewayDevice) (*PresenceEvent, error) {
	frame, err := beacon.DecodeFrame(dev.Data)
	if err != nil {
		s.logger.Debug("frame dropped", zap.Error(err))
		return nil, nil
	}

	battery := frame.BatteryPercent(s.cfg.BatteryMaxMillivolts)

	var evt *PresenceEvent
	err = s.txm.InTx(ctx, func(q db.Querier) error {
		res, err := q.ApplyTagTelemetry(ctx, db.ApplyTagTelemetryParams{
			MacAddress:       frame.MACAddress,
			RemainingBattery: battery,
			PacketCounter:    frame.PacketCounter,
			ActivatorNumber:  int32(frame.ActivatorNumber),
		})
		if errors.Is(err, pgx.ErrNoRows) {
			if !s.cfg.AutoRegisterTags {
				s.logger.Debug("packet from unregistered tag dropped",
					zap.String("mac", frame.MACAddress))
				return nil
			}
			return q.RegisterTag(ctx, db.RegisterTagParams{
				MacAddress:       frame.MACAddress,
				RemainingBattery: battery,
				PacketCounter:    frame.PacketCounter,
				ActivatorNumber:  int32(frame.ActivatorNumber),
			})
		}
		if err != nil {
			return err
		}

		// First packet ever: telemetry recorded, pairing established,
		// nothing to pair against yet.
		if !res.OldCounter.Valid {
			return nil
		}
		// Retransmission of the same packet: nothing changed, no event.
		if res.OldCounter.Int16 == frame.PacketCounter {
			return nil
		}
		// No pairing anchor: this packet established one.
		if !res.OldPairing.Valid {
			return nil
		}
		// Unknown friendly number wiped the pairing.
		if !res.NewPairing.Valid {
			return nil
		}

		prev, err := q.GetActivatorBeacon(ctx, res.OldPairing.Int64)
		if errors.Is(err, pgx.ErrNoRows) {
			// The anchor beacon was deleted since the previous packet.
			return nil
		}
		if err != nil {
			return err
		}
		cur, err := q.GetActivatorBeacon(ctx, res.NewPairing.Int64)
		if err != nil {
			return err
		}

		dir := beacon.ResolveDirection(
			beacon.Activator{ID: prev.ID, ShipyardID: prev.ShipyardID, IsFirstWhenEntering: prev.IsFirstWhenEntering},
			beacon.Activator{ID: cur.ID, ShipyardID: cur.ShipyardID, IsFirstWhenEntering: cur.IsFirstWhenEntering},
		)
		if dir == beacon.DirectionNone {
			return nil
		}

		observedAt := s.now()
		crewID, err := q.GetCrewMemberIDByTag(ctx, res.TagID)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			if err := q.InsertUnassignedTagEntry(ctx, db.InsertUnassignedTagEntryParams{
				TagID:      res.TagID,
				ShipyardID: cur.ShipyardID,
				IsEntering: dir == beacon.DirectionEntering,
				ObservedAt: observedAt,
			}); err != nil {
				return err
			}
			evt = &PresenceEvent{
				EventID:    uuid.NewString(),
				Kind:       "unassigned",
				TagID:      res.TagID,
				ShipyardID: cur.ShipyardID,
				Direction:  dir.String(),
				ObservedAt: observedAt,
			}
		case err != nil:
			return err
		default:
			if err := s.recordPermanence(ctx, q, crewID, cur.ShipyardID, dir, observedAt); err != nil {
				return err
			}
			evt = &PresenceEvent{
				EventID:      uuid.NewString(),
				Kind:         "permanence",
				TagID:        res.TagID,
				CrewMemberID: crewID,
				ShipyardID:   cur.ShipyardID,
				Direction:    dir.String(),
				ObservedAt:   observedAt,
			}
		}

		// An event was emitted: the next one requires a fresh pair.
		return q.ClearTagPairing(ctx, res.TagID)
	})
	if err != nil {
		return nil, err
	}
	return evt, nil
}

// recordPermanence applies the per-(crew member, shipyard) state machine.
func (s *ingestService) recordPermanence(ctx context.Context, q db.Querier, crewID, shipyardID int64, dir beacon.Direction, at time.Time) error {
	switch dir {
	case beacon.DirectionEntering:
		if s.cfg.CloseLogOnReentry {
			if err := q.CloseAllOpenPermanenceLogs(ctx, db.ClosePermanenceLogParams{
				CrewMemberID: crewID,
				ShipyardID:   shipyardID,
				LeaveAt:      at,
			}); err != nil {
				return err
			}
		}
		return q.OpenPermanenceLog(ctx, db.OpenPermanenceLogParams{
			CrewMemberID: crewID,
			ShipyardID:   shipyardID,
			EntryAt:      at,
		})
	case beacon.DirectionLeaving:
		closed, err := q.CloseLatestOpenPermanenceLog(ctx, db.ClosePermanenceLogParams{
			CrewMemberID: crewID,
			ShipyardID:   shipyardID,
			LeaveAt:      at,
		})
		if err != nil {
			return err
		}
		if closed == 0 {
			// Leaving with no open interval: keep the observation as a
			// leave-only row rather than losing it.
			return q.InsertLeavePermanenceLog(ctx, db.InsertLeavePermanenceLogParams{
				CrewMemberID: crewID,
				ShipyardID:   shipyardID,
				LeaveAt:      at,
			})
		}
		return nil
	}
	return nil
}

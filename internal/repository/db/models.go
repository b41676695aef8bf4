package db

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ── plain rows ────────────────────────────────────────────────────────────

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type Shipyard struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Ship struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Role struct {
	ID       int64  `json:"id"`
	RoleName string `json:"role_name"`
}

type ActivatorBeacon struct {
	ID                  int64 `json:"id"`
	Number              int32 `json:"number"`
	ShipyardID          int64 `json:"shipyard_id"`
	IsFirstWhenEntering bool  `json:"is_first_when_entering"`
}

// ── joined read models ────────────────────────────────────────────────────

// TagRef is the tag projection embedded in crew member and entry rows.
type TagRef struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	RemainingBattery float64 `json:"remaining_battery"`
}

// CrewRef is the crew member projection embedded in tag rows.
type CrewRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CrewMemberDetail struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Role *Role   `json:"role"`
	Ship *Ship   `json:"ship"`
	Tag  *TagRef `json:"tag"`
}

type TagDetail struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	MacAddress       string   `json:"mac_address"`
	RemainingBattery float64  `json:"remaining_battery"`
	PacketCounter    *int16   `json:"packet_counter"`
	CrewMember       *CrewRef `json:"crew_member"`
}

type UnassignedEntryDetail struct {
	ID                     int64     `json:"id"`
	Tag                    TagRef    `json:"tag"`
	Shipyard               Shipyard  `json:"shipyard"`
	AdvertisementTimestamp time.Time `json:"advertisement_timestamp"`
	IsEntering             bool      `json:"is_entering"`
}

type PermanenceLogDetail struct {
	ID             int64            `json:"id"`
	CrewMember     CrewMemberDetail `json:"crew_member"`
	Shipyard       Shipyard         `json:"shipyard"`
	EntryTimestamp *time.Time       `json:"entry_timestamp"`
	LeaveTimestamp *time.Time       `json:"leave_timestamp"`
}

type ActivatorBeaconDetail struct {
	ID                  int64    `json:"id"`
	Number              int32    `json:"number"`
	Shipyard            Shipyard `json:"shipyard"`
	IsFirstWhenEntering bool     `json:"is_first_when_entering"`
}

// ── ingest core params/results ────────────────────────────────────────────

type ApplyTagTelemetryParams struct {
	MacAddress       string
	RemainingBattery float64
	PacketCounter    int16
	ActivatorNumber  int32
}

// TagTelemetryResult carries the pre-update state captured by the locking
// UPDATE alongside the pairing it left behind. OldCounter invalid means this
// was the first packet ever seen from the tag.
type TagTelemetryResult struct {
	TagID      int64
	OldCounter pgtype.Int2
	OldPairing pgtype.Int8
	NewPairing pgtype.Int8
}

type RegisterTagParams struct {
	MacAddress       string
	RemainingBattery float64
	PacketCounter    int16
	ActivatorNumber  int32
}

type InsertUnassignedTagEntryParams struct {
	TagID      int64
	ShipyardID int64
	IsEntering bool
	ObservedAt time.Time
}

type OpenPermanenceLogParams struct {
	CrewMemberID int64
	ShipyardID   int64
	EntryAt      time.Time
}

type ClosePermanenceLogParams struct {
	CrewMemberID int64
	ShipyardID   int64
	LeaveAt      time.Time
}

type InsertLeavePermanenceLogParams struct {
	CrewMemberID int64
	ShipyardID   int64
	LeaveAt      time.Time
}

// ── CRUD params ───────────────────────────────────────────────────────────

type CreateCrewMemberParams struct {
	Name   string
	RoleID pgtype.Int8
	ShipID pgtype.Int8
	TagID  pgtype.Int8
}

type UpdateCrewMemberParams struct {
	ID     int64
	Name   string
	RoleID pgtype.Int8
	ShipID pgtype.Int8
	TagID  pgtype.Int8
}

type CreateTagParams struct {
	Name       string
	MacAddress string
}

type UpdateTagParams struct {
	ID         int64
	Name       string
	MacAddress string
}

type AssignTagParams struct {
	TagID        int64
	CrewMemberID int64
}

type CreatePermanenceLogParams struct {
	CrewMemberID   int64
	ShipyardID     int64
	EntryTimestamp pgtype.Timestamptz
	LeaveTimestamp pgtype.Timestamptz
}

type UpdatePermanenceLogParams struct {
	ID             int64
	CrewMemberID   int64
	EntryTimestamp pgtype.Timestamptz
	LeaveTimestamp pgtype.Timestamptz
}

type CreateActivatorBeaconParams struct {
	Number              int32
	ShipyardID          int64
	IsFirstWhenEntering bool
}

// ── list filters ──────────────────────────────────────────────────────────

// Page is a normalized LIMIT/OFFSET pair; services derive it from the
// 1-based page and page_size query parameters.
type Page struct {
	Limit  int32
	Offset int32
}

type CrewMemberFilter struct {
	CrewMemberName string
	ShipName       string
	RoleName       string
}

// Empty reports whether no predicate would be contributed.
func (f CrewMemberFilter) Empty() bool {
	return f.CrewMemberName == "" && f.ShipName == "" && f.RoleName == ""
}

type ShipFilter struct {
	Name string
}

func (f ShipFilter) Empty() bool { return f.Name == "" }

type TagFilter struct {
	Assigned bool
	Vacant   bool
}

func (f TagFilter) Empty() bool { return !f.Assigned && !f.Vacant }

type EntryFilter struct {
	Start        time.Time
	End          time.Time
	ShipyardName string
	TagName      string
}

type LogFilter struct {
	Start          time.Time
	End            time.Time
	ShipyardName   string
	ShipName       string
	CrewMemberName string
}

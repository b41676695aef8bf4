package db

import "context"

// Querier is the full query surface of the store. Services depend on this
// interface; tests substitute the generated-style mock in repository/mock.
type Querier interface {
	// Users
	GetUserByUsername(ctx context.Context, username string) (User, error)

	// Ingest core
	ApplyTagTelemetry(ctx context.Context, arg ApplyTagTelemetryParams) (TagTelemetryResult, error)
	RegisterTag(ctx context.Context, arg RegisterTagParams) error
	ClearTagPairing(ctx context.Context, tagID int64) error
	GetActivatorBeacon(ctx context.Context, id int64) (ActivatorBeacon, error)
	GetCrewMemberIDByTag(ctx context.Context, tagID int64) (int64, error)
	InsertUnassignedTagEntry(ctx context.Context, arg InsertUnassignedTagEntryParams) error
	OpenPermanenceLog(ctx context.Context, arg OpenPermanenceLogParams) error
	CloseLatestOpenPermanenceLog(ctx context.Context, arg ClosePermanenceLogParams) (int64, error)
	CloseAllOpenPermanenceLogs(ctx context.Context, arg ClosePermanenceLogParams) error
	InsertLeavePermanenceLog(ctx context.Context, arg InsertLeavePermanenceLogParams) error

	// Crew members
	ListCrewMembers(ctx context.Context, filter CrewMemberFilter, page Page) ([]CrewMemberDetail, error)
	CountCrewMembers(ctx context.Context, filter CrewMemberFilter) (int64, error)
	GetCrewMember(ctx context.Context, id int64) (CrewMemberDetail, error)
	CreateCrewMember(ctx context.Context, arg CreateCrewMemberParams) (int64, error)
	UpdateCrewMember(ctx context.Context, arg UpdateCrewMemberParams) (int64, error)
	DeleteCrewMember(ctx context.Context, id int64) error

	// Ships
	ListShips(ctx context.Context, filter ShipFilter, page Page) ([]Ship, error)
	CountShips(ctx context.Context, filter ShipFilter) (int64, error)
	GetShip(ctx context.Context, id int64) (Ship, error)
	CreateShip(ctx context.Context, name string) (int64, error)
	UpdateShip(ctx context.Context, id int64, name string) (int64, error)
	DeleteShip(ctx context.Context, id int64) error

	// Tags
	ListTags(ctx context.Context, filter TagFilter, page Page) ([]TagDetail, error)
	CountTags(ctx context.Context, filter TagFilter) (int64, error)
	GetTag(ctx context.Context, id int64) (TagDetail, error)
	CreateTag(ctx context.Context, arg CreateTagParams) (int64, error)
	UpdateTag(ctx context.Context, arg UpdateTagParams) (int64, error)
	DeleteTag(ctx context.Context, id int64) error
	UnassignTag(ctx context.Context, tagID int64) error
	AssignTag(ctx context.Context, arg AssignTagParams) error

	// Unassigned tag entries
	ListUnassignedEntries(ctx context.Context, filter EntryFilter, page Page) ([]UnassignedEntryDetail, error)
	CountUnassignedEntries(ctx context.Context, filter EntryFilter) (int64, error)
	DeleteUnassignedEntry(ctx context.Context, id int64) error

	// Permanence logs
	ListPermanenceLogs(ctx context.Context, filter LogFilter, page Page) ([]PermanenceLogDetail, error)
	CountPermanenceLogs(ctx context.Context, filter LogFilter) (int64, error)
	GetPermanenceLog(ctx context.Context, id int64) (PermanenceLogDetail, error)
	CreatePermanenceLog(ctx context.Context, arg CreatePermanenceLogParams) (int64, error)
	UpdatePermanenceLog(ctx context.Context, arg UpdatePermanenceLogParams) (int64, error)
	DeletePermanenceLog(ctx context.Context, id int64) error

	// Catalog
	ListRoles(ctx context.Context) ([]Role, error)
	ListShipyards(ctx context.Context) ([]Shipyard, error)
	CreateShipyard(ctx context.Context, name string) (int64, error)
	DeleteShipyard(ctx context.Context, id int64) error
	ListActivatorBeacons(ctx context.Context) ([]ActivatorBeaconDetail, error)
	CreateActivatorBeacon(ctx context.Context, arg CreateActivatorBeaconParams) (int64, error)
	DeleteActivatorBeacon(ctx context.Context, id int64) error
}

var _ Querier = (*Queries)(nil)

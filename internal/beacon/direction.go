package beacon

// Direction is the inferred movement for an ordered (previous, current)
// activator pair.
type Direction int

const (
	// DirectionNone means the pair does not describe a gate crossing.
	DirectionNone Direction = iota
	DirectionEntering
	DirectionLeaving
)

func (d Direction) String() string {
	switch d {
	case DirectionEntering:
		return "entering"
	case DirectionLeaving:
		return "leaving"
	default:
		return "none"
	}
}

// Activator is the projection of an activator beacon row needed to resolve
// a direction.
type Activator struct {
	ID                  int64
	ShipyardID          int64
	IsFirstWhenEntering bool
}

// ResolveDirection applies the pairing rules in order: same beacon twice and
// cross-yard pairs are noise; first-then-second means entering, second-then-
// first means leaving; two beacons with the same role never resolve.
func ResolveDirection(prev, cur Activator) Direction {
	if prev.ID == cur.ID {
		return DirectionNone
	}
	if prev.ShipyardID != cur.ShipyardID {
		return DirectionNone
	}
	switch {
	case prev.IsFirstWhenEntering && !cur.IsFirstWhenEntering:
		return DirectionEntering
	case !prev.IsFirstWhenEntering && cur.IsFirstWhenEntering:
		return DirectionLeaving
	default:
		return DirectionNone
	}
}

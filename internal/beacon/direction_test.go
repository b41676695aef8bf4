package beacon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fredneedsausername/GateKeeper/internal/beacon"
)

func TestResolveDirection(t *testing.T) {
	first := beacon.Activator{ID: 1, ShipyardID: 10, IsFirstWhenEntering: true}
	second := beacon.Activator{ID: 2, ShipyardID: 10, IsFirstWhenEntering: false}
	otherYardSecond := beacon.Activator{ID: 3, ShipyardID: 20, IsFirstWhenEntering: false}
	anotherFirst := beacon.Activator{ID: 4, ShipyardID: 10, IsFirstWhenEntering: true}

	tests := []struct {
		name string
		prev beacon.Activator
		cur  beacon.Activator
		want beacon.Direction
	}{
		{name: "first then second is entering", prev: first, cur: second, want: beacon.DirectionEntering},
		{name: "second then first is leaving", prev: second, cur: first, want: beacon.DirectionLeaving},
		{name: "same beacon twice", prev: first, cur: first, want: beacon.DirectionNone},
		{name: "cross yard pair", prev: first, cur: otherYardSecond, want: beacon.DirectionNone},
		{name: "two firsts", prev: first, cur: anotherFirst, want: beacon.DirectionNone},
		{name: "two seconds", prev: second, cur: beacon.Activator{ID: 5, ShipyardID: 10}, want: beacon.DirectionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, beacon.ResolveDirection(tt.prev, tt.cur))
		})
	}
}

// Swapping the pair of a resolved crossing flips the direction, never
// anything else.
func TestResolveDirection_SwapSymmetry(t *testing.T) {
	first := beacon.Activator{ID: 1, ShipyardID: 10, IsFirstWhenEntering: true}
	second := beacon.Activator{ID: 2, ShipyardID: 10, IsFirstWhenEntering: false}

	forward := beacon.ResolveDirection(first, second)
	backward := beacon.ResolveDirection(second, first)

	assert.Equal(t, beacon.DirectionEntering, forward)
	assert.Equal(t, beacon.DirectionLeaving, backward)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "entering", beacon.DirectionEntering.String())
	assert.Equal(t, "leaving", beacon.DirectionLeaving.String())
	assert.Equal(t, "none", beacon.DirectionNone.String())
}

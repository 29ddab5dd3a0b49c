// SPDX-License-Identifier: MIT
// Package: patterns/parking
//
// level.go - Spot and Level: the fixed partition and first-fit scan.
package parking

// Spot is one parking space. It accepts exactly one vehicle type and
// holds at most one vehicle at a time.
type Spot struct {
	Number   int
	Type     VehicleType
	occupant *Vehicle
}

// Available reports whether the spot is free.
func (s *Spot) Available() bool { return s.occupant == nil }

// Occupant returns the parked vehicle, or nil.
func (s *Spot) Occupant() *Vehicle { return s.occupant }

// Level is one floor of the lot, with spots in spot-number order.
//
// The partition is a policy fixed at construction, not a derived
// optimum: floor(10%) motorcycle spots, floor(70%) car spots, and
// trucks absorb the rounding remainder. It is never rebalanced.
type Level struct {
	Floor int
	spots []*Spot
}

// NewLevel builds a level with numSpots spots partitioned by the fixed
// percentages. Returns ErrBadSpotCount for numSpots < 10, below which
// the floored motorcycle share would be zero.
func NewLevel(floor, numSpots int) (*Level, error) {
	if numSpots < 10 {
		return nil, ErrBadSpotCount
	}

	numMoto := numSpots * 10 / 100
	numCar := numSpots * 70 / 100
	numTruck := numSpots - numMoto - numCar // remainder goes to trucks

	l := &Level{Floor: floor, spots: make([]*Spot, 0, numSpots)}
	number := 1
	for _, part := range []struct {
		t VehicleType
		n int
	}{{Motorcycle, numMoto}, {Car, numCar}, {Truck, numTruck}} {
		for i := 0; i < part.n; i++ {
			l.spots = append(l.spots, &Spot{Number: number, Type: part.t})
			number++
		}
	}

	return l, nil
}

// SpotCount returns how many spots of type t the level was built with.
func (l *Level) SpotCount(t VehicleType) int {
	count := 0
	for _, s := range l.spots {
		if s.Type == t {
			count++
		}
	}

	return count
}

// park assigns v to the first available spot of its type, scanning in
// spot-number order. Returns the spot, or nil if the level is full for
// that type.
func (l *Level) park(v *Vehicle) *Spot {
	for _, s := range l.spots {
		if s.Available() && s.Type == v.Type {
			s.occupant = v
			return s
		}
	}

	return nil
}

// unpark frees the spot holding exactly v. Returns the freed spot, or
// nil if v is not parked on this level.
func (l *Level) unpark(v *Vehicle) *Spot {
	for _, s := range l.spots {
		if s.occupant == v {
			s.occupant = nil
			return s
		}
	}

	return nil
}

// free counts available spots of type t.
func (l *Level) free(t VehicleType) int {
	count := 0
	for _, s := range l.spots {
		if s.Type == t && s.Available() {
			count++
		}
	}

	return count
}

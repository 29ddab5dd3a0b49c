// SPDX-License-Identifier: MIT
// Package: patterns/parking
//
// lot.go - the Lot allocator: first-fit park, exact-vehicle unpark,
// availability reporting.
package parking

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Lot is the top-level allocator. Levels are scanned in the order they
// were added; the lock serializes park/unpark so a vehicle can never
// occupy two spots.
type Lot struct {
	mu     sync.Mutex
	levels []*Level
	// ticket per currently-parked vehicle; also the already-parked guard
	active map[*Vehicle]*Ticket
	now    func() time.Time
}

// NewLot returns an empty lot.
func NewLot(opts ...LotOption) *Lot {
	l := &Lot{
		active: make(map[*Vehicle]*Ticket),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// AddLevel appends a level; levels are scanned in insertion order.
func (l *Lot) AddLevel(level *Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels = append(l.levels, level)
}

// Park scans levels in order, and spots in order within each level,
// assigning v to the first available spot matching v's type. The
// returned Ticket is stamped with the entry time.
// Returns ErrAlreadyParked if v currently occupies a spot, or
// ErrLotFull if no matching free spot exists in any level.
func (l *Lot) Park(v *Vehicle) (*Ticket, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, parked := l.active[v]; parked {
		return nil, fmt.Errorf("%w: plate %q", ErrAlreadyParked, v.Plate)
	}
	for _, level := range l.levels {
		if spot := level.park(v); spot != nil {
			t := &Ticket{
				ID:      uuid.NewString(),
				Plate:   v.Plate,
				Floor:   level.Floor,
				Spot:    spot.Number,
				EntryAt: l.now(),
			}
			l.active[v] = t

			return t, nil
		}
	}

	return nil, fmt.Errorf("%w: plate %q type %s", ErrLotFull, v.Plate, v.Type)
}

// Unpark frees the spot holding exactly v and returns an Invoice for
// the stay, billed per started hour at v's type rate. The freed spot is
// immediately eligible for reassignment.
// Returns ErrNotParked if v does not occupy any spot.
func (l *Lot) Unpark(v *Vehicle) (*Invoice, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ticket, parked := l.active[v]
	if !parked {
		return nil, fmt.Errorf("%w: plate %q", ErrNotParked, v.Plate)
	}
	for _, level := range l.levels {
		if spot := level.unpark(v); spot != nil {
			delete(l.active, v)
			return newInvoice(ticket, v.Type, l.now()), nil
		}
	}
	// ticket without a spot would mean the allocator lost track of a vehicle
	return nil, fmt.Errorf("%w: plate %q", ErrNotParked, v.Plate)
}

// LevelAvailability is one level's free-spot report.
type LevelAvailability struct {
	Floor int
	Free  map[VehicleType]int
}

// Availability reports free spots per level and type, in level order.
func (l *Lot) Availability() []LevelAvailability {
	l.mu.Lock()
	defer l.mu.Unlock()

	report := make([]LevelAvailability, 0, len(l.levels))
	for _, level := range l.levels {
		report = append(report, LevelAvailability{
			Floor: level.Floor,
			Free: map[VehicleType]int{
				Motorcycle: level.free(Motorcycle),
				Car:        level.free(Car),
				Truck:      level.free(Truck),
			},
		})
	}

	return report
}

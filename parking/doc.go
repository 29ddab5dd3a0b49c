// SPDX-License-Identifier: MIT
// Package: patterns/parking
//
// Package parking is a worked low-level design: a multi-level parking
// lot with typed spots, first-fit assignment, tickets, and hourly
// invoices.
//
// What
//
//   - A Lot holds Levels in construction order; each Level holds Spots
//     in spot-number order.
//   - Spot-type partitioning is fixed at level construction: 10% of the
//     spots are motorcycle, 70% car, and trucks absorb the rounding
//     remainder. A level built with 100 spots yields 10/70/20. The
//     partition is never rebalanced.
//   - Park scans levels in order and, within a level, spots in order,
//     assigning the vehicle to the first available spot of its type.
//     It returns a Ticket stamped with the entry time.
//   - Unpark finds the spot holding that exact vehicle, frees it
//     (immediately eligible for reassignment), and returns an Invoice
//     billing each started hour at the per-type rate.
//   - Availability reports free spots per level and type.
//
// Why
//
//	This is the catalog's only model with a real invariant (occupied
//	spots ≤ configured spot count, one spot per vehicle) and a real
//	lifecycle (spots created at level construction, occupied on park,
//	released on unpark).
//
// Concurrency
//
//	Lot guards its levels with a single mutex; Park, Unpark, and
//	Availability may be called from multiple goroutines.
//
// Errors
//
//   - ErrLotFull       if no matching free spot exists in any level.
//   - ErrAlreadyParked if the vehicle currently occupies a spot.
//   - ErrNotParked     if Unpark is given a vehicle that is not parked.
//   - ErrBadSpotCount  if a level is constructed with fewer than 10 spots.
//   - ErrAlreadyPaid   if an invoice is paid twice.
//
// AI-Hints (practical guidance):
//   - Branch on sentinels with errors.Is; messages carry plate context via %w.
//   - Inject a deterministic clock with WithClock when testing invoices.
//   - Vehicles are identified by pointer: park and unpark with the same *Vehicle.
package parking

// SPDX-License-Identifier: MIT
// Package: patterns/parking
//
// types.go - vehicle and payment types, sentinel errors, lot options.
package parking

import (
	"errors"
	"time"
)

// Sentinel errors for parking operations.
var (
	// ErrLotFull indicates no free spot of the vehicle's type exists in any level.
	ErrLotFull = errors.New("parking: no matching free spot")

	// ErrAlreadyParked indicates the vehicle already occupies a spot.
	ErrAlreadyParked = errors.New("parking: vehicle already parked")

	// ErrNotParked indicates the vehicle does not occupy any spot.
	ErrNotParked = errors.New("parking: vehicle not parked")

	// ErrBadSpotCount indicates a level was constructed with too few spots
	// for the fixed partition to allocate at least one spot per type.
	ErrBadSpotCount = errors.New("parking: level needs at least 10 spots")

	// ErrAlreadyPaid indicates Pay was called on a settled invoice.
	ErrAlreadyPaid = errors.New("parking: invoice already paid")
)

// VehicleType partitions spots and selects the hourly rate.
type VehicleType int

const (
	// Motorcycle fits only motorcycle spots.
	Motorcycle VehicleType = iota
	// Car fits only car spots.
	Car
	// Truck fits only truck spots.
	Truck
)

// String returns the type name used in availability reports.
func (t VehicleType) String() string {
	switch t {
	case Motorcycle:
		return "motorcycle"
	case Car:
		return "car"
	case Truck:
		return "truck"
	default:
		return "unknown"
	}
}

// Vehicle is identified by pointer: the same *Vehicle that parked must
// be presented to Unpark.
type Vehicle struct {
	Plate string
	Type  VehicleType
}

// NewVehicle returns a vehicle with the given plate and type.
func NewVehicle(plate string, t VehicleType) *Vehicle {
	return &Vehicle{Plate: plate, Type: t}
}

// PaymentMethod names how an invoice is settled.
type PaymentMethod string

// Supported payment methods.
const (
	Cash          PaymentMethod = "CASH"
	CreditCard    PaymentMethod = "CREDIT_CARD"
	DebitCard     PaymentMethod = "DEBIT_CARD"
	MobilePayment PaymentMethod = "MOBILE_PAYMENT"
)

// LotOption configures a Lot at construction.
type LotOption func(*Lot)

// WithClock replaces the lot's time source; tests inject a
// deterministic clock to pin invoice amounts.
func WithClock(now func() time.Time) LotOption {
	return func(l *Lot) {
		if now != nil {
			l.now = now
		}
	}
}

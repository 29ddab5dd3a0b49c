// SPDX-License-Identifier: MIT
// Package: patterns/parking
//
// invoice.go - tickets, hourly billing, and payment.
package parking

import (
	"fmt"
	"time"
)

// Hourly rates per vehicle type; every started hour is billed in full.
var hourlyRate = map[VehicleType]float64{
	Motorcycle: 1.0,
	Car:        2.0,
	Truck:      3.5,
}

// Ticket is issued by Park and identifies one stay.
type Ticket struct {
	ID      string
	Plate   string
	Floor   int
	Spot    int
	EntryAt time.Time
}

// Invoice bills one completed stay.
type Invoice struct {
	Ticket *Ticket
	ExitAt time.Time
	Amount float64
	Paid   bool
	Method PaymentMethod
}

// newInvoice bills each started hour between entry and exit at the
// per-type rate; a stay shorter than an hour is billed as one hour.
func newInvoice(t *Ticket, vt VehicleType, exitAt time.Time) *Invoice {
	hours := int(exitAt.Sub(t.EntryAt) / time.Hour)
	if exitAt.Sub(t.EntryAt)%time.Hour > 0 || hours == 0 {
		hours++
	}

	return &Invoice{
		Ticket: t,
		ExitAt: exitAt,
		Amount: float64(hours) * hourlyRate[vt],
	}
}

// Pay settles the invoice with the given method.
// Returns ErrAlreadyPaid if the invoice is already settled.
func (i *Invoice) Pay(method PaymentMethod) error {
	if i.Paid {
		return fmt.Errorf("%w: ticket %s", ErrAlreadyPaid, i.Ticket.ID)
	}
	i.Paid = true
	i.Method = method

	return nil
}

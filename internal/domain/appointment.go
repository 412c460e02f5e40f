package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an appointment. The string values are the
// canonical stored form.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Statuses lists every recognised status in lifecycle order.
var Statuses = []Status{StatusScheduled, StatusCompleted, StatusCanceled}

// ParseStatus validates s against the recognised set. Matching is exact and
// case-sensitive.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", Invalid("status", "invalid status %q: expected one of %v", s, Statuses)
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// CanTransitionTo reports whether an appointment in status s may move to next.
// scheduled may move to any status; terminal states only accept themselves.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	return s == StatusScheduled
}

// CheckTransition returns ErrInvalidTransition when s cannot move to next.
func (s Status) CheckTransition(next Status) error {
	if s.CanTransitionTo(next) {
		return nil
	}
	return &FieldError{
		Kind:    ErrInvalidTransition,
		Field:   "status",
		Message: fmt.Sprintf("cannot change status from %s to %s", s, next),
	}
}

// Appointment books one or more services at a medspa.
// TotalDuration (minutes) and TotalPrice are snapshots taken from the linked
// services at creation and are never recomputed.
type Appointment struct {
	ID            uuid.UUID
	MedspaID      uuid.UUID
	StartTime     time.Time
	TotalDuration int
	TotalPrice    decimal.Decimal
	Status        Status
	ServiceIDs    []uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AppointmentFilter narrows appointment listings. Nil fields do not filter.
// Date matches the calendar day of start_time in Date's location.
type AppointmentFilter struct {
	MedspaID *uuid.UUID
	Status   *Status
	Date     *time.Time
}

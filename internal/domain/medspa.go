// Package domain contains the core data types for the medspa booking API:
// locations, the services they offer, and appointments bundling services.
// It is imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Medspa is a single physical business location.
// Deleting a medspa removes every service and appointment it owns.
type Medspa struct {
	ID           uuid.UUID
	Name         string
	Address      string
	PhoneNumber  string
	EmailAddress string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

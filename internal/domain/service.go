package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is a bookable offering with a fixed price and duration (minutes),
// owned by exactly one medspa.
type Service struct {
	ID          uuid.UUID
	MedspaID    uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Duration    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServicePatch is a partial update. Nil fields are left untouched; a non-nil
// pointer to a zero value is an explicit change.
type ServicePatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Duration    *int
}

// IsEmpty reports whether the patch changes nothing.
func (p ServicePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Duration == nil
}

// Apply returns s with every set field of the patch copied over.
func (p ServicePatch) Apply(s Service) Service {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	return s
}

// SumServices returns the total duration and exact total price of services.
// Prices are added as decimals so many services never accumulate rounding
// error.
func SumServices(services []Service) (int, decimal.Decimal) {
	duration := 0
	price := decimal.Zero
	for _, s := range services {
		duration += s.Duration
		price = price.Add(s.Price)
	}
	return duration, price
}

package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/moxie-medspa/backend/internal/domain"
)

func TestSumServices(t *testing.T) {
	services := []domain.Service{
		{Price: decimal.RequireFromString("100.00"), Duration: 30},
		{Price: decimal.RequireFromString("150.00"), Duration: 45},
	}

	duration, price := domain.SumServices(services)

	assert.Equal(t, 75, duration)
	assert.Equal(t, "250.00", price.StringFixed(2))
}

// Ten services at 0.10 must total exactly 1.00; float64 accumulation would not.
func TestSumServices_NoRoundingDrift(t *testing.T) {
	services := make([]domain.Service, 10)
	for i := range services {
		services[i] = domain.Service{Price: decimal.RequireFromString("0.10"), Duration: 5}
	}

	duration, price := domain.SumServices(services)

	assert.Equal(t, 50, duration)
	assert.True(t, price.Equal(decimal.RequireFromString("1.00")), "got %s", price)
}

func TestSumServices_Empty(t *testing.T) {
	duration, price := domain.SumServices(nil)

	assert.Zero(t, duration)
	assert.True(t, price.IsZero())
}

func TestServicePatch_Apply(t *testing.T) {
	base := domain.Service{
		Name:        "Botox Injection",
		Description: "Reduces wrinkles and fine lines.",
		Price:       decimal.RequireFromString("200.00"),
		Duration:    30,
	}
	zero := decimal.Zero
	empty := ""

	got := domain.ServicePatch{Price: &zero, Description: &empty}.Apply(base)

	assert.Equal(t, "Botox Injection", got.Name, "unset name must be kept")
	assert.Equal(t, 30, got.Duration, "unset duration must be kept")
	assert.Equal(t, "", got.Description, "explicit empty description must be applied")
	assert.True(t, got.Price.IsZero(), "explicit zero price must be applied")
}

func TestServicePatch_IsEmpty(t *testing.T) {
	assert.True(t, domain.ServicePatch{}.IsEmpty())

	d := 10
	assert.False(t, domain.ServicePatch{Duration: &d}.IsEmpty())
}

package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/moxie-medspa/backend/internal/domain"
	"github.com/moxie-medspa/backend/internal/repo"
	"github.com/moxie-medspa/backend/testutil"
)

// repos bundles every repo backed by the same transaction, so a test can
// build a full medspa → service → appointment hierarchy that is discarded
// when the test finishes.
type repos struct {
	medspas      repo.MedspaRepo
	services     repo.ServiceRepo
	appointments repo.AppointmentRepo
}

// newTestRepos opens a transaction against the test database and returns all
// repos backed by it. The transaction is rolled back on cleanup.
//
// Requires TEST_DATABASE_URL to be set; TestMain applies the migrations.
func newTestRepos(t *testing.T) repos {
	t.Helper()
	tx := testutil.NewTx(t)
	return repos{
		medspas:      repo.NewMedspaRepo(tx),
		services:     repo.NewServiceRepo(tx),
		appointments: repo.NewAppointmentRepo(tx),
	}
}

func medspaFixture() domain.Medspa {
	return domain.Medspa{
		Name:         "Test Medspa",
		Address:      "123 Test St",
		PhoneNumber:  "555-1234",
		EmailAddress: "test@joinmoxie.com",
	}
}

func serviceFixture(medspaID uuid.UUID, name, price string, duration int) domain.Service {
	return domain.Service{
		MedspaID:    medspaID,
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Duration:    duration,
	}
}

func mustCreateMedspa(t *testing.T, r repos) domain.Medspa {
	t.Helper()
	m, err := r.medspas.Create(context.Background(), medspaFixture())
	require.NoError(t, err)
	return m
}

func mustCreateService(t *testing.T, r repos, s domain.Service) domain.Service {
	t.Helper()
	created, err := r.services.Create(context.Background(), s)
	require.NoError(t, err)
	return created
}

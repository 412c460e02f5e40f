// Package service contains the business logic for the medspa booking API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moxie-medspa/backend/internal/domain"
	"github.com/moxie-medspa/backend/internal/repo"
)

// maxPrice is the first value that does not fit NUMERIC(10,2).
var maxPrice = decimal.New(1, 8)

// maxDuration is the largest value a Postgres INTEGER column holds.
const maxDuration = math.MaxInt32

// CatalogService implements business logic for medspas and the services they
// offer. It is plain data storage apart from input validation.
type CatalogService struct {
	medspas  repo.MedspaRepo
	services repo.ServiceRepo
	validate *validator.Validate
}

// NewCatalogService constructs a CatalogService backed by the provided repos.
func NewCatalogService(medspas repo.MedspaRepo, services repo.ServiceRepo) *CatalogService {
	return &CatalogService{
		medspas:  medspas,
		services: services,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateMedspa validates and persists a new medspa.
// Returns domain.ErrValidation if the name is blank or the email is malformed.
func (s *CatalogService) CreateMedspa(ctx context.Context, m domain.Medspa) (domain.Medspa, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.EmailAddress = strings.TrimSpace(m.EmailAddress)
	if err := s.validateMedspa(m); err != nil {
		return domain.Medspa{}, err
	}
	result, err := s.medspas.Create(ctx, m)
	if err != nil {
		return domain.Medspa{}, fmt.Errorf("service.CatalogService.CreateMedspa: %w", err)
	}
	return result, nil
}

// GetMedspa returns a single medspa by ID.
func (s *CatalogService) GetMedspa(ctx context.Context, id uuid.UUID) (domain.Medspa, error) {
	result, err := s.medspas.GetByID(ctx, id)
	if err != nil {
		return domain.Medspa{}, fmt.Errorf("service.CatalogService.GetMedspa: %w", err)
	}
	return result, nil
}

// ListMedspas returns one page of medspas and the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CatalogService) ListMedspas(ctx context.Context, p domain.PaginationParams) ([]domain.Medspa, int64, error) {
	medspas, total, err := s.medspas.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.CatalogService.ListMedspas: %w", err)
	}
	if medspas == nil {
		medspas = []domain.Medspa{}
	}
	return medspas, total, nil
}

// DeleteMedspa removes a medspa together with all of its services and
// appointments. Returns domain.ErrNotFound if it does not exist.
func (s *CatalogService) DeleteMedspa(ctx context.Context, id uuid.UUID) error {
	if err := s.medspas.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CatalogService.DeleteMedspa: %w", err)
	}
	return nil
}

// CreateService verifies the owning medspa exists, validates, then persists.
// Returns domain.ErrNotFound if the medspa does not exist and
// domain.ErrValidation if input violates business rules.
func (s *CatalogService) CreateService(ctx context.Context, svc domain.Service) (domain.Service, error) {
	svc.Name = strings.TrimSpace(svc.Name)
	if err := validateServiceFields(&svc.Name, &svc.Price, &svc.Duration); err != nil {
		return domain.Service{}, err
	}
	if _, err := s.medspas.GetByID(ctx, svc.MedspaID); err != nil {
		return domain.Service{}, fmt.Errorf("service.CatalogService.CreateService: %w", missingAs(err, "medspa_id", "medspa %s not found", svc.MedspaID))
	}
	result, err := s.services.Create(ctx, svc)
	if err != nil {
		return domain.Service{}, fmt.Errorf("service.CatalogService.CreateService: %w", err)
	}
	return result, nil
}

// GetService returns a single service by ID.
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (domain.Service, error) {
	result, err := s.services.GetByID(ctx, id)
	if err != nil {
		return domain.Service{}, fmt.Errorf("service.CatalogService.GetService: %w", err)
	}
	return result, nil
}

// ListServices returns one page of services, optionally limited to one medspa.
// An unknown medspaID yields an empty page rather than an error.
func (s *CatalogService) ListServices(ctx context.Context, medspaID *uuid.UUID, p domain.PaginationParams) ([]domain.Service, int64, error) {
	services, total, err := s.services.ListPaged(ctx, medspaID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.CatalogService.ListServices: %w", err)
	}
	if services == nil {
		services = []domain.Service{}
	}
	return services, total, nil
}

// UpdateService applies a partial update. Fields left nil in the patch are
// untouched; provided fields follow the same rules as CreateService.
// An empty patch returns the current record unchanged.
func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, patch domain.ServicePatch) (domain.Service, error) {
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if err := validateServiceFields(patch.Name, patch.Price, patch.Duration); err != nil {
		return domain.Service{}, err
	}
	if patch.IsEmpty() {
		return s.GetService(ctx, id)
	}
	result, err := s.services.Update(ctx, id, patch)
	if err != nil {
		return domain.Service{}, fmt.Errorf("service.CatalogService.UpdateService: %w", err)
	}
	return result, nil
}

// validateMedspa enforces the medspa field rules.
//   - Name must be non-empty and at most 255 characters.
//   - Phone number must fit 20 characters.
//   - Email must be syntactically valid.
func (s *CatalogService) validateMedspa(m domain.Medspa) error {
	if m.Name == "" {
		return domain.Invalid("name", "name is required")
	}
	if utf8.RuneCountInString(m.Name) > 255 {
		return domain.Invalid("name", "name must be at most 255 characters")
	}
	if utf8.RuneCountInString(m.PhoneNumber) > 20 {
		return domain.Invalid("phone_number", "phone number must be at most 20 characters")
	}
	if err := s.validate.Var(m.EmailAddress, "required,email"); err != nil {
		return domain.Invalid("email_address", "%q is not a valid email address", m.EmailAddress)
	}
	return nil
}

// validateServiceFields checks each non-nil field, so it serves both create
// (all set) and partial update (some nil).
func validateServiceFields(name *string, price *decimal.Decimal, duration *int) error {
	if name != nil {
		if *name == "" {
			return domain.Invalid("name", "name is required")
		}
		if utf8.RuneCountInString(*name) > 255 {
			return domain.Invalid("name", "name must be at most 255 characters")
		}
	}
	if price != nil {
		if price.IsNegative() {
			return domain.Invalid("price", "price must not be negative")
		}
		if !price.Equal(price.Round(2)) {
			return domain.Invalid("price", "price must have at most two decimal places")
		}
		if price.GreaterThanOrEqual(maxPrice) {
			return domain.Invalid("price", "price must be less than %s", maxPrice)
		}
	}
	if duration != nil {
		if *duration <= 0 {
			return domain.Invalid("duration", "duration must be a positive number of minutes")
		}
		if *duration > maxDuration {
			return domain.Invalid("duration", "duration must be at most %d minutes", maxDuration)
		}
	}
	return nil
}

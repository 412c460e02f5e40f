package handler

import (
	"github.com/google/uuid"

	"github.com/moxie-medspa/backend/internal/domain"
	"github.com/moxie-medspa/backend/internal/handler/gen"
)

func pagination(p domain.PaginationParams, total int64) gen.Pagination {
	return gen.Pagination{Page: p.Page, Limit: p.Limit, Total: int(total)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// --- medspas ----------------------------------------------------------------

func requestToMedspa(body *gen.CreateMedspaRequest) domain.Medspa {
	return domain.Medspa{
		Name:         body.Name,
		Address:      deref(body.Address),
		PhoneNumber:  deref(body.PhoneNumber),
		EmailAddress: body.EmailAddress,
	}
}

func medspaToResponse(m domain.Medspa) gen.Medspa {
	return gen.Medspa{
		Id:           m.ID,
		Name:         m.Name,
		Address:      m.Address,
		PhoneNumber:  m.PhoneNumber,
		EmailAddress: m.EmailAddress,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// --- services ---------------------------------------------------------------

// requestToService converts a CreateServiceRequest into a domain.Service.
// medspa_id, price and duration are optional in the generated type so that
// an absent value is reported by name instead of arriving as zero.
func requestToService(body *gen.CreateServiceRequest) (domain.Service, error) {
	if body.MedspaId == nil {
		return domain.Service{}, domain.Invalid("medspa_id", "medspa_id is required")
	}
	if body.Price == nil {
		return domain.Service{}, domain.Invalid("price", "price is required")
	}
	if body.Duration == nil {
		return domain.Service{}, domain.Invalid("duration", "duration is required")
	}
	return domain.Service{
		MedspaID:    *body.MedspaId,
		Name:        body.Name,
		Description: deref(body.Description),
		Price:       *body.Price,
		Duration:    *body.Duration,
	}, nil
}

func requestToServicePatch(body *gen.UpdateServiceRequest) domain.ServicePatch {
	return domain.ServicePatch{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Duration:    body.Duration,
	}
}

// serviceToResponse renders price with exactly two decimal places.
func serviceToResponse(s domain.Service) gen.Service {
	return gen.Service{
		Id:          s.ID,
		MedspaId:    s.MedspaID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price.StringFixed(2),
		Duration:    s.Duration,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// --- appointments -----------------------------------------------------------

func appointmentToResponse(a domain.Appointment) gen.Appointment {
	ids := a.ServiceIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return gen.Appointment{
		Id:            a.ID,
		MedspaId:      a.MedspaID,
		StartTime:     a.StartTime,
		TotalDuration: a.TotalDuration,
		TotalPrice:    a.TotalPrice.StringFixed(2),
		Status:        gen.Status(a.Status),
		ServiceIds:    ids,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func appointmentsToResponse(appts []domain.Appointment) []gen.Appointment {
	data := make([]gen.Appointment, len(appts))
	for i, a := range appts {
		data[i] = appointmentToResponse(a)
	}
	return data
}

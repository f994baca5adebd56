package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
)

type GetAvailability struct {
	repo    domain.Repository
	metrics *metrics.Metrics
}

func NewGetAvailability(repo domain.Repository, m *metrics.Metrics) *GetAvailability {
	return &GetAvailability{repo: repo, metrics: m}
}

// Execute answers which slots of in.Date a professional can take. Occupied
// slots stay in the list with Available=false.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	if err := requireSalon(in.SalonID); err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	professional, err := uc.repo.GetProfessional(ctx, in.SalonID, in.ProfessionalID)
	if err != nil {
		return nil, notFoundAs(err, httperr.CodeProfessionalNotFound)
	}

	day := date.Format(domain.DateLayout)
	appointments, err := uc.repo.ListAppointmentsForProfessional(
		ctx,
		in.SalonID,
		professional.ID,
		day,
	)
	if err != nil {
		return nil, err
	}

	uc.metrics.AvailabilityQuery()

	return domain.Resolve(
		domain.ScheduleOf(professional),
		date,
		domain.OccupiedTimes(appointments, day),
	), nil
}

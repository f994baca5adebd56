package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute lists the salon's appointments for date, or all of them when date
// is empty.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	salonID string,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if err := requireSalon(salonID); err != nil {
		return nil, err
	}

	var (
		appointments []models.Appointment
		err          error
	)
	if date == "" {
		appointments, err = uc.repo.ListAppointments(ctx, salonID)
	} else {
		d, perr := domain.ParseDate(date)
		if perr != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
		}
		appointments, err = uc.repo.ListAppointmentsForDay(ctx, salonID, d.Format(domain.DateLayout))
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:               ap.ID,
			Date:             ap.Date,
			Day:              ap.Day,
			Time:             ap.SlotTime,
			Status:           ap.Status,
			PriceInCents:     ap.PriceInCents,
			ClientID:         ap.ClientID,
			ClientName:       ap.Client.Name,
			ProfessionalID:   ap.ProfessionalID,
			ProfessionalName: ap.Professional.Name,
		})
	}

	return out, nil
}

package appointment

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/payments"
)

type CreateCheckout struct {
	repo    domain.Repository
	gateway payments.Gateway
}

// NewCreateCheckout accepts a nil gateway; Execute then reports
// payments_unavailable.
func NewCreateCheckout(repo domain.Repository, gateway payments.Gateway) *CreateCheckout {
	return &CreateCheckout{repo: repo, gateway: gateway}
}

func (uc *CreateCheckout) Execute(
	ctx context.Context,
	salonID string,
	appointmentID string,
) (*dto.CheckoutDTO, error) {

	if err := requireSalon(salonID); err != nil {
		return nil, err
	}
	if uc.gateway == nil {
		return nil, httperr.ErrBusiness(httperr.CodePaymentsUnavailable)
	}

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, notFoundAs(err, httperr.CodeAppointmentNotFound)
	}
	if domain.Status(ap.Status) == domain.StatusCancelled {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	label := ap.SlotTime
	if c, err := domain.ParseClock(ap.SlotTime); err == nil {
		label = c.Label()
	}

	pref, err := uc.gateway.CreatePreference(ctx, payments.PreferenceInput{
		Reference:  ap.ID,
		Title:      fmt.Sprintf("%s - %s %s", ap.Professional.Name, ap.Day, label),
		PriceCents: ap.PriceInCents,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CheckoutDTO{
		AppointmentID: ap.ID,
		PreferenceID:  pref.ID,
		InitPoint:     pref.InitPoint,
	}, nil
}

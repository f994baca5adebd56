package appointment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID string
	UserID  string

	ClientID       string
	ProfessionalID string

	Date         string
	Time         string
	PriceInCents int
	Status       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo         domain.Repository
	availability *GetAvailability
	audit        *audit.Dispatcher
	metrics      *metrics.Metrics
	log          *slog.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	availability *GetAvailability,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	log *slog.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:         repo,
		availability: availability,
		audit:        audit,
		metrics:      m,
		log:          log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.execute(ctx, in)
	switch {
	case err == nil:
		uc.metrics.BookingOutcome(metrics.BookingCreated)
	case httperr.IsBusiness(err, httperr.CodeSlotUnavailable):
		uc.metrics.BookingOutcome(metrics.BookingSlotUnavailable)
		uc.audit.Dispatch(audit.Event{
			SalonID: in.SalonID,
			UserID:  in.UserID,
			Action:  "appointment_conflict",
			Entity:  "appointment",
			Metadata: map[string]string{
				"professional_id": in.ProfessionalID,
				"date":            in.Date,
				"time":            in.Time,
			},
		})
	case httperr.CodeOf(err) != "":
		uc.metrics.BookingOutcome(metrics.BookingRejected)
	default:
		uc.metrics.BookingOutcome(metrics.BookingFailed)
	}
	return ap, err
}

func (uc *CreateAppointment) execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Tenant + entrada
	// --------------------------------------------------
	if err := requireSalon(in.SalonID); err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	clock, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTime)
	}

	if in.ClientID == "" || in.ProfessionalID == "" || in.PriceInCents < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	status, err := domain.InitialStatus(in.Status)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Salão + cliente
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, notFoundAs(err, httperr.CodeSalonNotFound)
	}

	if _, err := uc.repo.GetClient(ctx, in.SalonID, in.ClientID); err != nil {
		return nil, notFoundAs(err, httperr.CodeClientNotFound)
	}

	// --------------------------------------------------
	// 3️⃣ Disponibilidade recalculada no servidor
	// --------------------------------------------------
	day := date.Format(domain.DateLayout)
	slots, err := uc.availability.Execute(ctx, domain.AvailabilityInput{
		SalonID:        in.SalonID,
		ProfessionalID: in.ProfessionalID,
		Date:           day,
	})
	if err != nil {
		return nil, err
	}

	slot := clock.String()
	if !domain.IsBookable(slots, slot) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	// --------------------------------------------------
	// 4️⃣ Data/hora no relógio do salão
	// --------------------------------------------------
	hour, minute := int(clock)/3600, int(clock)%3600/60
	ap := &models.Appointment{
		SalonID:        in.SalonID,
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		Date:           timezone.WallClock(date, hour, minute, 0, salon.Timezone),
		Day:            day,
		SlotTime:       slot,
		PriceInCents:   in.PriceInCents,
		Status:         string(status),
	}

	// --------------------------------------------------
	// 5️⃣ Inserção (índice único fecha a corrida)
	// --------------------------------------------------
	if err := uc.insert(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	uc.log.Info("appointment created",
		"salon_id", in.SalonID,
		"appointment_id", ap.ID,
		"professional_id", in.ProfessionalID,
		"day", day,
		"time", slot,
	)

	return ap, nil
}

// insert tries once more on a transient storage failure. A slot conflict is
// final.
func (uc *CreateAppointment) insert(ctx context.Context, ap *models.Appointment) error {
	err := uc.repo.CreateAppointment(ctx, ap)
	if err == nil || !errors.Is(err, domain.ErrTransient) {
		return err
	}

	uc.metrics.BookingOutcome(metrics.BookingRetried)
	uc.log.Warn("retrying appointment insert", "salon_id", ap.SalonID, "err", err)

	return uc.repo.CreateAppointment(ctx, ap)
}

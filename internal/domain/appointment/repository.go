package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var (
	// ErrNotFound is returned by a Repository when the row is missing or
	// belongs to another salon.
	ErrNotFound = errors.New("appointment repository: not found")

	// ErrTransient marks storage failures worth one more attempt.
	ErrTransient = errors.New("appointment repository: transient failure")
)

// Repository is the storage port of the scheduling core. Every lookup is
// scoped by salon. Inserts and updates that would put two live appointments
// in the same professional slot fail with the slot_unavailable business error.
type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id string,
	) (*models.Salon, error)

	// -------- Professional / Client --------
	GetProfessional(
		ctx context.Context,
		salonID string,
		professionalID string,
	) (*models.Professional, error)

	GetClient(
		ctx context.Context,
		salonID string,
		clientID string,
	) (*models.Client, error)

	// -------- Availability --------
	ListAppointmentsForProfessional(
		ctx context.Context,
		salonID string,
		professionalID string,
		day string,
	) ([]models.Appointment, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		salonID string,
		appointmentID string,
	) (*models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		salonID string,
		appointmentID string,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		salonID string,
		day string,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		salonID string,
	) ([]models.Appointment, error)
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&salon).Error; err != nil {
		return nil, mapReadError("get salon", err)
	}
	return &salon, nil
}

// --------------------------------------------------
// Professional / Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	salonID string,
	professionalID string,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", professionalID, salonID).
		First(&p).Error; err != nil {
		return nil, mapReadError("get professional", err)
	}
	return &p, nil
}

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	salonID string,
	clientID string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", clientID, salonID).
		First(&client).Error; err != nil {
		return nil, mapReadError("get client", err)
	}
	return &client, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForProfessional(
	ctx context.Context,
	salonID string,
	professionalID string,
	day string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "day", "slot_time", "status").
		Where(
			"salon_id = ? AND professional_id = ? AND day = ?",
			salonID, professionalID, day,
		).
		Order("slot_time ASC").
		Find(&apps).Error; err != nil {
		return nil, mapReadError("list professional appointments", err)
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error
	return mapWriteError("create appointment", err)
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	salonID string,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, mapReadError("get appointment", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND salon_id = ?", ap.ID, ap.SalonID).
		Update("status", ap.Status).Error
	return mapWriteError("update appointment status", err)
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	salonID string,
	appointmentID string,
) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return mapWriteError("delete appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	salonID string,
	day string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Where("salon_id = ? AND day = ?", salonID, day).
		Order("slot_time ASC").
		Find(&apps).Error; err != nil {
		return nil, mapReadError("list appointments for day", err)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	salonID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Where("salon_id = ?", salonID).
		Order("date ASC").
		Find(&apps).Error; err != nil {
		return nil, mapReadError("list appointments", err)
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	return nil
}

// Confirm reactivates a cancelled appointment. Storage still has the final
// word, since the slot may have been booked again meanwhile.
func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusConfirmed)
	return nil
}

// Transition moves ap to the requested status.
func Transition(ap *models.Appointment, to Status) error {
	switch to {
	case StatusCancelled:
		return Cancel(ap)
	case StatusConfirmed:
		return Confirm(ap)
	}
	return nil
}

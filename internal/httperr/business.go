package httperr

import "errors"

// Business error codes shared by use cases and handlers.
const (
	CodeUnauthorized         = "unauthorized"
	CodeSalonNotFound        = "salon_not_found"
	CodeProfessionalNotFound = "professional_not_found"
	CodeClientNotFound       = "client_not_found"
	CodeAppointmentNotFound  = "appointment_not_found"
	CodeValidation           = "validation_error"
	CodeInvalidDate          = "invalid_date"
	CodeInvalidTime          = "invalid_time"
	CodeSlotUnavailable      = "slot_unavailable"
	CodeInvalidState         = "invalid_state"
	CodePaymentsUnavailable  = "payments_unavailable"
	CodeStorageUnavailable   = "storage_unavailable"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or "" when err is not a
// business error.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

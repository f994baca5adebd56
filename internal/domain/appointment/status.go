package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

type Status string

const (
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
)

func ParseStatus(v string) (Status, error) {
	switch Status(v) {
	case StatusConfirmed, StatusCancelled:
		return Status(v), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeValidation)
}

// InitialStatus applies the booking default when no status is given.
func InitialStatus(requested string) (Status, error) {
	if requested == "" {
		return StatusConfirmed, nil
	}
	return ParseStatus(requested)
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanConfirm define se um agendamento cancelado pode ser reativado
func CanConfirm(current Status) error {
	if current != StatusCancelled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

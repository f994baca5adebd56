package appointment

import (
	"errors"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// notFoundAs maps a repository miss to the business code of the entity.
func notFoundAs(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

func requireSalon(salonID string) error {
	if salonID == "" {
		return httperr.ErrBusiness(httperr.CodeUnauthorized)
	}
	return nil
}

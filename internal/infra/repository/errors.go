package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// IsDuplicate reports a unique-constraint violation, either translated by
// gorm or raw from the postgres driver.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsTransient reports failures that may succeed on a second attempt:
// connection loss, serialization failures and deadlocks.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "08"),
			pgErr.Code == "40001",
			pgErr.Code == "40P01",
			pgErr.Code == "57P01":
			return true
		}
	}
	return false
}

// mapWriteError turns driver errors into what the use cases branch on.
func mapWriteError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case IsDuplicate(err):
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	case IsTransient(err):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrTransient, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func mapReadError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

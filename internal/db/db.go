package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// slotIndexSQL keeps one live appointment per professional, day and slot.
// Cancelled rows fall outside the index and free the slot.
const slotIndexSQL = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
	ON appointments (professional_id, day, slot_time)
	WHERE status <> 'cancelado'
`

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db, cfg.DefaultTimezone); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema on any gorm dialect that supports partial
// indexes (postgres in production, sqlite in tests).
func Migrate(db *gorm.DB, defaultTimezone string) error {
	if err := db.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.Professional{},
		&models.Client{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := db.Exec(slotIndexSQL).Error; err != nil {
		return fmt.Errorf("create slot index: %w", err)
	}

	if defaultTimezone != "" {
		if err := db.Exec(`
			UPDATE salons
			SET timezone = ?
			WHERE timezone IS NULL OR timezone = ''
		`, defaultTimezone).Error; err != nil {
			return fmt.Errorf("backfill salon timezone: %w", err)
		}
	}

	return nil
}

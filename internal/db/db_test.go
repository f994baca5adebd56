package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return gdb
}

func TestMigrateIsRepeatable(t *testing.T) {
	gdb := openSQLite(t)

	require.NoError(t, Migrate(gdb, "America/Sao_Paulo"))
	require.NoError(t, Migrate(gdb, "America/Sao_Paulo"))

	assert.True(t, gdb.Migrator().HasTable(&models.Appointment{}))
	assert.True(t, gdb.Migrator().HasIndex(&models.Appointment{}, "idx_appointments_slot"))
}

func TestMigrateBackfillsTimezone(t *testing.T) {
	gdb := openSQLite(t)
	require.NoError(t, Migrate(gdb, ""))

	require.NoError(t, gdb.Create(&models.Salon{Name: "Studio"}).Error)
	require.NoError(t, Migrate(gdb, "America/Recife"))

	var salon models.Salon
	require.NoError(t, gdb.First(&salon).Error)
	assert.Equal(t, "America/Recife", salon.Timezone)
}

func TestSlotIndexIgnoresCancelled(t *testing.T) {
	gdb := openSQLite(t)
	require.NoError(t, Migrate(gdb, ""))

	base := models.Appointment{
		SalonID:        "s1",
		ClientID:       "c1",
		ProfessionalID: "p1",
		Day:            "2026-10-12",
		SlotTime:       "08:30:00",
	}

	cancelled := base
	cancelled.Status = "cancelado"
	require.NoError(t, gdb.Omit("Client", "Professional").Create(&cancelled).Error)

	live := base
	live.Status = "confirmado"
	require.NoError(t, gdb.Omit("Client", "Professional").Create(&live).Error)

	dup := base
	dup.Status = "confirmado"
	err := gdb.Omit("Client", "Professional").Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

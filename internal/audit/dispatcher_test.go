package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))
	return db
}

func TestDispatcherPersistsOnClose(t *testing.T) {
	db := openDB(t)
	d := NewDispatcher(New(db), logger.Discard())

	d.Dispatch(Event{
		SalonID:  "salon-1",
		UserID:   "user-1",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: "ap-1",
		Metadata: map[string]string{"time": "08:30:00"},
	})
	d.Dispatch(Event{SalonID: "salon-1", Action: "client_deleted", Entity: "client"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	var logs []models.AuditLog
	require.NoError(t, db.Order("action ASC").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, "appointment_created", logs[0].Action)
	assert.JSONEq(t, `{"time":"08:30:00"}`, logs[0].Metadata)
	assert.NotEmpty(t, logs[0].ID)
	assert.Equal(t, "client_deleted", logs[1].Action)
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	db := openDB(t)
	d := NewDispatcher(New(db), logger.Discard())
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Dispatch(Event{SalonID: "salon-1", Action: "late"})
	})
	require.NoError(t, d.Close(context.Background()))
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "noop"}) })
}

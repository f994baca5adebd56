package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var weekdayMorning = Schedule{
	FromWeekDay: 1,
	ToWeekDay:   5,
	FromTime:    "08:00:00",
	ToTime:      "09:00:00",
}

func mustDate(t *testing.T, v string) string {
	t.Helper()
	_, err := ParseDate(v)
	require.NoError(t, err)
	return v
}

func TestResolveMondayAllFree(t *testing.T) {
	date, _ := ParseDate(mustDate(t, "2026-10-12"))

	got := Resolve(weekdayMorning, date, nil)

	assert.Equal(t, []Slot{
		{Value: "08:00:00", Label: "08:00", Available: true},
		{Value: "08:30:00", Label: "08:30", Available: true},
		{Value: "09:00:00", Label: "09:00", Available: true},
	}, got)
}

func TestResolveSaturdayIsEmpty(t *testing.T) {
	date, _ := ParseDate("2026-10-17")

	got := Resolve(weekdayMorning, date, nil)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolveMarksOccupiedSlot(t *testing.T) {
	date, _ := ParseDate("2026-10-12")
	occupied := OccupiedTimes([]models.Appointment{
		{Day: "2026-10-12", SlotTime: "08:30:00", Status: string(StatusConfirmed)},
	}, "2026-10-12")

	got := Resolve(weekdayMorning, date, occupied)

	require.Len(t, got, 3)
	assert.True(t, got[0].Available)
	assert.False(t, got[1].Available)
	assert.Equal(t, "08:30:00", got[1].Value)
	assert.True(t, got[2].Available)
}

func TestResolveWrappedWeekIncludesSunday(t *testing.T) {
	s := Schedule{FromWeekDay: 5, ToWeekDay: 1, FromTime: "10:00:00", ToTime: "10:30:00"}

	sunday, _ := ParseDate("2026-10-18")
	wednesday, _ := ParseDate("2026-10-14")

	assert.Len(t, Resolve(s, sunday, nil), 2)
	assert.Empty(t, Resolve(s, wednesday, nil))
}

func TestResolveUnreadableScheduleIsEmpty(t *testing.T) {
	date, _ := ParseDate("2026-10-12")
	s := Schedule{FromWeekDay: 1, ToWeekDay: 5, FromTime: "8h", ToTime: "09:00:00"}

	assert.Empty(t, Resolve(s, date, nil))
}

func TestOccupiedTimesSkipsCancelledAndOtherDays(t *testing.T) {
	occupied := OccupiedTimes([]models.Appointment{
		{Day: "2026-10-12", SlotTime: "08:00:00", Status: string(StatusConfirmed)},
		{Day: "2026-10-12", SlotTime: "08:30:00", Status: string(StatusCancelled)},
		{Day: "2026-10-13", SlotTime: "09:00:00", Status: string(StatusConfirmed)},
		{Day: "2026-10-12", SlotTime: "10:00", Status: string(StatusConfirmed)},
	}, "2026-10-12")

	assert.Equal(t, map[string]struct{}{
		"08:00:00": {},
		"10:00:00": {},
	}, occupied)
}

func TestResolveIsIdempotent(t *testing.T) {
	date, _ := ParseDate("2026-10-12")
	occupied := map[string]struct{}{"09:00:00": {}}

	assert.Equal(t, Resolve(weekdayMorning, date, occupied), Resolve(weekdayMorning, date, occupied))
}

func TestIsBookable(t *testing.T) {
	slots := []Slot{
		{Value: "08:00:00", Available: true},
		{Value: "08:30:00", Available: false},
	}

	assert.True(t, IsBookable(slots, "08:00:00"))
	assert.False(t, IsBookable(slots, "08:30:00"))
	assert.False(t, IsBookable(slots, "12:00:00"))
}

func TestScheduleOf(t *testing.T) {
	p := &models.Professional{
		AvailableFromWeekDay: 2,
		AvailableToWeekDay:   6,
		AvailableFromTime:    "09:00:00",
		AvailableToTime:      "17:00:00",
	}

	assert.Equal(t, Schedule{FromWeekDay: 2, ToWeekDay: 6, FromTime: "09:00:00", ToTime: "17:00:00"}, ScheduleOf(p))
}

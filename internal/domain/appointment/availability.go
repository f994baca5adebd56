package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const DateLayout = "2006-01-02"

type AvailabilityInput struct {
	SalonID        string
	ProfessionalID string
	Date           string
}

// Slot is one entry of an availability answer.
type Slot struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// Schedule is the part of a professional that drives availability.
type Schedule struct {
	FromWeekDay int
	ToWeekDay   int
	FromTime    string
	ToTime      string
}

func ScheduleOf(p *models.Professional) Schedule {
	return Schedule{
		FromWeekDay: p.AvailableFromWeekDay,
		ToWeekDay:   p.AvailableToWeekDay,
		FromTime:    p.AvailableFromTime,
		ToTime:      p.AvailableToTime,
	}
}

// ParseDate reads a YYYY-MM-DD calendar date. Only the civil date is used, so
// the location is irrelevant.
func ParseDate(v string) (time.Time, error) {
	return time.Parse(DateLayout, v)
}

// OccupiedTimes returns the HH:MM:SS slots taken on day. Cancelled
// appointments free their slot.
func OccupiedTimes(appointments []models.Appointment, day string) map[string]struct{} {
	occupied := make(map[string]struct{}, len(appointments))
	for _, ap := range appointments {
		if ap.Day != day || Status(ap.Status) == StatusCancelled {
			continue
		}
		if t, err := NormalizeTime(ap.SlotTime); err == nil {
			occupied[t] = struct{}{}
		}
	}
	return occupied
}

// Resolve lists the canonical slots inside the schedule's window for date,
// ascending, flagging the occupied ones. A non-working day, or a stored
// schedule that cannot be read, yields an empty list.
func Resolve(s Schedule, date time.Time, occupied map[string]struct{}) []Slot {
	out := []Slot{}

	days, err := WeekRange(s.FromWeekDay, s.ToWeekDay)
	if err != nil || !days.Includes(date.Weekday()) {
		return out
	}

	window, err := ParseWindow(s.FromTime, s.ToTime)
	if err != nil {
		return out
	}

	for _, c := range window.Filter(GenerateTimeSlots()) {
		value := c.String()
		_, taken := occupied[value]
		out = append(out, Slot{
			Value:     value,
			Label:     c.Label(),
			Available: !taken,
		})
	}
	return out
}

// IsBookable reports whether value is present in slots and free.
func IsBookable(slots []Slot, value string) bool {
	for _, s := range slots {
		if s.Value == value {
			return s.Available
		}
	}
	return false
}

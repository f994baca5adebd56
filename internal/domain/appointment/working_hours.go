package appointment

import (
	"fmt"
	"time"
)

// WorkingDays is the set of weekdays a professional accepts bookings,
// indexed by time.Weekday (0 = Sunday).
type WorkingDays [7]bool

// WeekRange builds the set by walking from..to modulo 7, so a range such as
// Friday..Monday covers Fri, Sat, Sun and Mon. For from <= to it is the plain
// inclusive range.
func WeekRange(from, to int) (WorkingDays, error) {
	var days WorkingDays
	if from < 0 || from > 6 || to < 0 || to > 6 {
		return days, fmt.Errorf("week range %d..%d: weekday out of range", from, to)
	}
	for d := from; ; d = (d + 1) % 7 {
		days[d] = true
		if d == to {
			break
		}
	}
	return days, nil
}

func (w WorkingDays) Includes(day time.Weekday) bool {
	return w[int(day)]
}

// WorkingWindow is the inclusive daily window [From, To].
type WorkingWindow struct {
	From Clock
	To   Clock
}

func ParseWindow(from, to string) (WorkingWindow, error) {
	f, err := ParseClock(from)
	if err != nil {
		return WorkingWindow{}, err
	}
	t, err := ParseClock(to)
	if err != nil {
		return WorkingWindow{}, err
	}
	return WorkingWindow{From: f, To: t}, nil
}

// Valid reports whether the window is non-empty with From strictly before To.
func (w WorkingWindow) Valid() bool {
	return w.From < w.To
}

func (w WorkingWindow) Contains(c Clock) bool {
	return w.From <= c && c <= w.To
}

// Filter keeps the slots inside the window, preserving order. Unparseable
// entries are dropped.
func (w WorkingWindow) Filter(slots []string) []Clock {
	out := make([]Clock, 0, len(slots))
	for _, s := range slots {
		c, err := ParseClock(s)
		if err != nil {
			continue
		}
		if w.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

package appointment

import "fmt"

const (
	firstSlot = 5 * 3600
	lastSlot  = 23*3600 + 30*60
	slotStep  = 30 * 60
)

// GenerateTimeSlots returns the canonical day grid, 05:00:00 through
// 23:30:00 every 30 minutes, as HH:MM:SS strings in ascending order.
func GenerateTimeSlots() []string {
	slots := make([]string, 0, (lastSlot-firstSlot)/slotStep+1)
	for s := firstSlot; s <= lastSlot; s += slotStep {
		slots = append(slots, Clock(s).String())
	}
	return slots
}

// Clock is a wall-clock time of day in seconds since midnight. It carries no
// location, so comparisons never shift with the server offset.
type Clock int

// ParseClock accepts HH:MM or HH:MM:SS.
func ParseClock(v string) (Clock, error) {
	if len(v) != 5 && len(v) != 8 {
		return 0, fmt.Errorf("parse clock %q: unexpected length", v)
	}
	parts := make([]int, 0, 3)
	for i := 0; i < len(v); i += 3 {
		if i > 0 && v[i-1] != ':' {
			return 0, fmt.Errorf("parse clock %q: bad separator", v)
		}
		hi, lo := v[i], v[i+1]
		if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
			return 0, fmt.Errorf("parse clock %q: not a number", v)
		}
		parts = append(parts, int(hi-'0')*10+int(lo-'0'))
	}
	h, m, s := parts[0], parts[1], 0
	if len(parts) == 3 {
		s = parts[2]
	}
	if h > 23 || m > 59 || s > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", v)
	}
	return Clock(h*3600 + m*60 + s), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(c)/3600, int(c)%3600/60, int(c)%60)
}

// Label is the HH:MM form shown to users.
func (c Clock) Label() string {
	return c.String()[:5]
}

// NormalizeTime turns HH:MM or HH:MM:SS into HH:MM:SS.
func NormalizeTime(v string) (string, error) {
	c, err := ParseClock(v)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

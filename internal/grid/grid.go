package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Layout describes the rendered hour range of the weekly grid.
// The default view shows hours 6 through 23 inclusive (18 rows) at
// 60 pixels per hour.
type Layout struct {
	OriginHour   int
	EndHour      int
	HourHeightPx int
}

func DefaultLayout() Layout {
	return Layout{OriginHour: 6, EndHour: 23, HourHeightPx: 60}
}

// Rows returns the number of rendered hour rows.
func (l Layout) Rows() int {
	return l.EndHour - l.OriginHour + 1
}

// TimeAtOffset converts a vertical pixel offset within the grid into an
// HH:MM time of day. No bounds clamping is performed; callers must pass a
// non-negative offset that falls inside the rendered hour range.
func (l Layout) TimeAtOffset(offsetPx float64) string {
	totalMinutes := offsetPx / float64(l.HourHeightPx) * 60
	hour := int(math.Floor(totalMinutes/60)) + l.OriginHour
	minute := int(math.Floor(math.Mod(totalMinutes, 60)))
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ParseClock parses an HH:MM wall-clock string into minutes since midnight.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time: %q", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time: %q", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid clock time: %q", s)
	}
	return hour*60 + minute, nil
}

// DurationMinutes returns end minus start in minutes. The result may be
// zero or negative; the task store decides what to do with that, not this
// function.
func DurationMinutes(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// AddOneHour returns the time one hour after t, minute unchanged. There is
// deliberately no wraparound past 23: a drop on the last rendered row yields
// "24:MM", matching how end times are derived for drag-created tasks.
func AddOneHour(t string) (string, error) {
	total, err := ParseClock(t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", total/60+1, total%60), nil
}

// ClockFromMinutes renders minutes since midnight as HH:MM. Used when an
// end time is synthesized from a start time plus a manual duration.
func ClockFromMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

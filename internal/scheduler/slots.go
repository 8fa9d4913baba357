package scheduler

import (
	"fmt"
	"time"

	"github.com/bkaradeniz/go-exam-schedule/pkg/model"
)

// DefaultStartTimes are the daily exam windows used when none are configured.
var DefaultStartTimes = []string{"09:00", "11:30", "14:00", "16:30"}

// BuildSlots generates the candidate slot list as the Cartesian product of a
// day range and a list of daily start times (HH:MM), in chronological order.
func BuildSlots(startDate time.Time, days int, startTimes []string) ([]model.TimeSlot, error) {
	if days <= 0 {
		return nil, fmt.Errorf("day count must be positive, got %d", days)
	}
	if len(startTimes) == 0 {
		startTimes = DefaultStartTimes
	}
	windows := make([]time.Duration, 0, len(startTimes))
	for _, s := range startTimes {
		t, err := time.Parse("15:04", s)
		if err != nil {
			return nil, fmt.Errorf("invalid start time %q: %w", s, err)
		}
		windows = append(windows, time.Duration(t.Hour())*time.Hour+time.Duration(t.Minute())*time.Minute)
	}

	base := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	var slots []model.TimeSlot
	for d := 0; d < days; d++ {
		day := base.AddDate(0, 0, d)
		for _, w := range windows {
			start := day.Add(w)
			slots = append(slots, model.TimeSlot{Start: start, Weekday: start.Format("Mon")})
		}
	}
	return slots, nil
}

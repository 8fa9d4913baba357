package model

import "strings"

type TeacherID string

type Teacher struct {
	ID   TeacherID `csv:"teacher_id"`
	Name string    `csv:"teacher_name"`
	// AvailableDays is a comma separated list of weekday labels (Mon,Tue,...).
	// Empty means every day is allowed.
	AvailableDays string `csv:"available_days"`
}

// AllowedWeekdays parses AvailableDays into a list of weekday labels.
func (t *Teacher) AllowedWeekdays() []string {
	var days []string
	for _, d := range strings.Split(t.AvailableDays, ",") {
		if d = strings.TrimSpace(d); d != "" {
			days = append(days, d)
		}
	}
	return days
}

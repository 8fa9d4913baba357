package model

import "time"

// Assignment places one course into a room cluster at a given start time.
type Assignment struct {
	Course   *Course
	Rooms    []*Classroom
	Start    time.Time
	Duration int
}

type Plan []Assignment

// Result is the outcome of a scheduling run: either a complete plan or the
// largest partial plan found, with the remainder listed as unscheduled.
type Result struct {
	Complete    bool
	Plan        Plan
	Unscheduled []CourseID
}

package scheduler

import (
	"fmt"
	"time"

	"github.com/bkaradeniz/go-exam-schedule/pkg/model"
)

// Validate checks a finished plan for double bookings and constraint
// violations. Returns false and a message for invalid plans.
func Validate(snapshot *model.Snapshot, res *model.Result) (bool, string) {
	var message string
	valid := true
	hasDuplicate := false
	hasOverlap := false
	hasCapacityShortfall := false
	hasSpecialViolation := false

	type busy struct {
		courseID model.CourseID
		start    time.Time
		end      time.Time
	}
	teacherBusy := make(map[model.TeacherID][]busy)
	roomBusy := make(map[model.RoomID][]busy)
	studentBusy := make(map[model.StudentID][]busy)

	conflicts := func(list []busy, start, end time.Time) *busy {
		for i := range list {
			if overlaps(start, end, list[i].start, list[i].end) {
				return &list[i]
			}
		}
		return nil
	}

	seen := make(map[model.CourseID]bool)
	for _, a := range res.Plan {
		start := a.Start
		end := start.Add(time.Duration(a.Duration) * time.Minute)

		if seen[a.Course.ID] {
			valid = false
			hasDuplicate = true
			message += fmt.Sprintf("- Course %s appears in the plan more than once\n", a.Course.ID)
		}
		seen[a.Course.ID] = true

		capacity := 0
		for _, r := range a.Rooms {
			capacity += r.Capacity
			if b := conflicts(roomBusy[r.ID], start, end); b != nil {
				valid = false
				hasOverlap = true
				message += fmt.Sprintf("- Classroom %s double booked by %s and %s\n", r.ID, b.courseID, a.Course.ID)
			}
			roomBusy[r.ID] = append(roomBusy[r.ID], busy{a.Course.ID, start, end})

			if a.Course.SpecialRoom != "" && !r.Matches(a.Course.SpecialRoom) {
				valid = false
				hasSpecialViolation = true
				message += fmt.Sprintf("- Course %s requires %q but got classroom %s\n", a.Course.ID, a.Course.SpecialRoom, r.ID)
			}
		}
		if capacity < a.Course.StudentCount {
			valid = false
			hasCapacityShortfall = true
			message += fmt.Sprintf("- Course %s needs %d seats, assigned %d\n", a.Course.ID, a.Course.StudentCount, capacity)
		}

		if a.Course.TeacherID != "" {
			if b := conflicts(teacherBusy[a.Course.TeacherID], start, end); b != nil {
				valid = false
				hasOverlap = true
				message += fmt.Sprintf("- Teacher %s double booked by %s and %s\n", a.Course.TeacherID, b.courseID, a.Course.ID)
			}
			teacherBusy[a.Course.TeacherID] = append(teacherBusy[a.Course.TeacherID], busy{a.Course.ID, start, end})
		}

		for _, sid := range snapshot.Enrollments[a.Course.ID] {
			if b := conflicts(studentBusy[sid], start, end); b != nil {
				valid = false
				hasOverlap = true
				message += fmt.Sprintf("- Student %s double booked by %s and %s\n", sid, b.courseID, a.Course.ID)
			}
			studentBusy[sid] = append(studentBusy[sid], busy{a.Course.ID, start, end})
		}
	}

	if hasSpecialViolation {
		message = "[FAIL]: Special room check.\n" + message
	} else {
		message = "[  OK]: Special room check.\n" + message
	}
	if hasCapacityShortfall {
		message = "[FAIL]: Capacity check.\n" + message
	} else {
		message = "[  OK]: Capacity check.\n" + message
	}
	if hasOverlap {
		message = "[FAIL]: Double booking check.\n" + message
	} else {
		message = "[  OK]: Double booking check.\n" + message
	}
	if hasDuplicate {
		message = "[FAIL]: Single assignment check.\n" + message
	} else {
		message = "[  OK]: Single assignment check.\n" + message
	}

	return valid, message
}

package scheduler

import (
	"slices"
	"time"

	"github.com/bkaradeniz/go-exam-schedule/pkg/model"
)

// The predicates are pure queries against the conflict index. They must be
// re-evaluated after every tentative placement or undo.

func (e *Engine) teacherOK(course *model.Course, start, end time.Time, weekday string) bool {
	if course.TeacherID == "" {
		return true
	}
	if t := e.teachers[course.TeacherID]; t != nil {
		allowed := t.AllowedWeekdays()
		if len(allowed) > 0 && !slices.Contains(allowed, weekday) {
			return false
		}
	}
	return !e.index.isBusy(resTeacher, string(course.TeacherID), start, end)
}

// studentsOK is zero-tolerance: a single conflicting student blocks the slot.
func (e *Engine) studentsOK(courseID model.CourseID, start, end time.Time) bool {
	for _, sid := range e.enrollments[courseID] {
		if e.index.isBusy(resStudent, string(sid), start, end) {
			return false
		}
	}
	return true
}

func (e *Engine) roomsAvailable(cluster []*model.Classroom, start, end time.Time) bool {
	for _, r := range cluster {
		if e.index.isBusy(resRoom, string(r.ID), start, end) {
			return false
		}
	}
	return true
}

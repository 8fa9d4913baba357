package scheduler

import (
	"fmt"
	"strings"

	"github.com/bkaradeniz/go-exam-schedule/pkg/model"
)

// Materialize flattens a plan into exam records, one per assigned room.
// Records of a multi-room cluster share course, start and duration.
func Materialize(plan model.Plan) []*model.Exam {
	var exams []*model.Exam
	for _, a := range plan {
		for _, r := range a.Rooms {
			exams = append(exams, &model.Exam{
				CourseID: a.Course.ID,
				RoomID:   r.ID,
				Start:    a.Start,
				Duration: a.Duration,
			})
		}
	}
	return exams
}

// Summary renders one line per assignment plus the unscheduled remainder.
func Summary(res *model.Result) string {
	var b strings.Builder
	for _, a := range res.Plan {
		rooms := make([]string, len(a.Rooms))
		for i, r := range a.Rooms {
			rooms[i] = string(r.ID)
		}
		fmt.Fprintf(&b, "%-12s %s  %3d min  %s\n",
			a.Course.ID, a.Start.Format("2006-01-02 15:04"), a.Duration, strings.Join(rooms, "+"))
	}
	for _, id := range res.Unscheduled {
		fmt.Fprintf(&b, "%-12s could not be scheduled\n", id)
	}
	return b.String()
}

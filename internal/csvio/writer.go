package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/bkaradeniz/go-exam-schedule/internal/scheduler"
	"github.com/bkaradeniz/go-exam-schedule/pkg/model"
)

// ExportPlan writes the materialized plan to the CSV file at path, one row
// per exam record, and returns the path.
func ExportPlan(snapshot *model.Snapshot, res *model.Result, path string) (string, error) {
	rows := buildRows(snapshot, res)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

// ExportPlanString renders the plan as CSV in memory.
func ExportPlanString(snapshot *model.Snapshot, res *model.Result) (string, error) {
	rows := buildRows(snapshot, res)
	return gocsv.MarshalString(&rows)
}

// PrintPlan prints the plan to stdout, one line per exam record.
func PrintPlan(snapshot *model.Snapshot, res *model.Result) {
	rows := buildRows(snapshot, res)
	for _, r := range rows {
		fmt.Printf("%-12s %-16s %-10s %3d min  %d students  %s\n",
			r.CourseID, r.Start, r.Classroom, r.Duration, r.Students, r.Lecturer)
	}
	fmt.Printf("Printed rows: %d\n", len(rows))
}

func buildRows(snapshot *model.Snapshot, res *model.Result) []*model.ExamCSVRow {
	exams := scheduler.Materialize(res.Plan)
	var rows []*model.ExamCSVRow
	for _, ex := range exams {
		course := snapshot.CourseByID(ex.CourseID)
		row := &model.ExamCSVRow{
			CourseID:  string(ex.CourseID),
			Classroom: string(ex.RoomID),
			Start:     ex.Start.Format("2006-01-02 15:04"),
			Duration:  ex.Duration,
		}
		if course != nil {
			row.CourseName = course.Name
			row.Students = course.StudentCount
			if t := snapshot.TeacherByID(course.TeacherID); t != nil {
				row.Lecturer = t.Name
			}
		}
		rows = append(rows, row)
	}
	return rows
}

package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/bkaradeniz/go-exam-schedule/internal/config"
	"github.com/bkaradeniz/go-exam-schedule/pkg/model"
)

// Accepted timestamp layouts for existing exam rows.
var startLayouts = []string{time.RFC3339, "2006-01-02 15:04"}

// LoadSnapshot reads and parses the CSV snapshot files for one scheduling
// run. The exams file is optional; every other file must exist and parse.
// On failure the returned error carries a per-file report.
func LoadSnapshot(paths *config.DataConfig, delim rune) (*model.Snapshot, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	var report string

	unmarshal := func(path string, out interface{}) {
		f, err := os.Open(path)
		if err != nil {
			report += "Failed to open " + path + " file. Please make sure the file exists.\n"
			return
		}
		defer f.Close()
		if err := gocsv.UnmarshalFile(f, out); err != nil {
			report += "Failed to parse data from " + path + " file. Please check the data integrity and format.\n"
		}
	}

	courses := []*model.Course{}
	unmarshal(paths.CoursesFile, &courses)

	teachers := []*model.Teacher{}
	unmarshal(paths.TeachersFile, &teachers)

	classrooms := []*model.Classroom{}
	unmarshal(paths.ClassroomsFile, &classrooms)

	proximities := []*model.Proximity{}
	unmarshal(paths.ProximityFile, &proximities)

	enrollmentRows := []*model.Enrollment{}
	unmarshal(paths.EnrollmentsFile, &enrollmentRows)

	examRows := []*model.ExistingExamCSV{}
	if paths.ExamsFile != "" {
		unmarshal(paths.ExamsFile, &examRows)
	}

	if report != "" {
		return nil, errors.New(report)
	}

	enrollments := make(map[model.CourseID][]model.StudentID)
	for _, row := range enrollmentRows {
		enrollments[row.CourseID] = append(enrollments[row.CourseID], row.StudentID)
	}

	exams := make([]*model.ExistingExam, 0, len(examRows))
	for _, row := range examRows {
		start, err := parseStart(row.StartSTR)
		if err != nil {
			return nil, fmt.Errorf("exam row for course %s: %w", row.CourseID, err)
		}
		exams = append(exams, &model.ExistingExam{
			CourseID: row.CourseID,
			RoomID:   row.RoomID,
			Start:    start,
			Duration: row.Duration,
		})
	}

	return &model.Snapshot{
		Courses:     courses,
		Teachers:    teachers,
		Classrooms:  classrooms,
		Proximities: proximities,
		Enrollments: enrollments,
		Exams:       exams,
	}, nil
}

func parseStart(s string) (time.Time, error) {
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start time %q", s)
}

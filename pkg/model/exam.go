package model

import "time"

type StudentID string

// TimeSlot is one candidate (start, weekday) pair. The candidate list is
// generated by the caller, the engine consumes it as given.
type TimeSlot struct {
	Start   time.Time
	Weekday string
}

// Enrollment links one student to one course.
type Enrollment struct {
	CourseID  CourseID  `csv:"course_id"`
	StudentID StudentID `csv:"student_id"`
}

// ExistingExamCSV is the raw CSV form of a prior exam assignment.
type ExistingExamCSV struct {
	CourseID CourseID `csv:"course_id"`
	RoomID   RoomID   `csv:"classroom_id"`
	StartSTR string   `csv:"start"`
	Duration int      `csv:"duration"`
}

// ExistingExam is a prior assignment that pre-seeds busy state so that
// re-runs are incremental-safe.
type ExistingExam struct {
	CourseID CourseID
	RoomID   RoomID
	Start    time.Time
	Duration int
}

// Exam is one scheduled exam record. A multi-room cluster produces one record
// per room, sharing course, start and duration.
type Exam struct {
	CourseID CourseID
	RoomID   RoomID
	Start    time.Time
	Duration int
}

// ExamCSVRow is the export format of a scheduled exam.
type ExamCSVRow struct {
	CourseID   string `csv:"course_id"`
	CourseName string `csv:"course_name"`
	Classroom  string `csv:"classroom"`
	Start      string `csv:"start"`
	Duration   int    `csv:"duration"`
	Lecturer   string `csv:"lecturer"`
	Students   int    `csv:"student_count"`
}

package model

type CourseID string

type Course struct {
	ID           CourseID  `csv:"course_id"`
	Code         string    `csv:"course_code"`
	Name         string    `csv:"course_name"`
	TeacherID    TeacherID `csv:"teacher_id"`
	StudentCount int       `csv:"student_count"`
	Duration     int       `csv:"exam_duration"`
	SpecialRoom  string    `csv:"special_room"`
	HasExam      bool      `csv:"has_exam"`
}

package model

// Snapshot bundles the fully resolved input of one scheduling run. All fields
// are read-only for the duration of the run.
type Snapshot struct {
	Courses     []*Course
	Teachers    []*Teacher
	Classrooms  []*Classroom
	Proximities []*Proximity
	Enrollments map[CourseID][]StudentID
	Exams       []*ExistingExam
}

// CourseByID does a linear lookup, course lists are small.
func (s *Snapshot) CourseByID(id CourseID) *Course {
	for _, c := range s.Courses {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Snapshot) TeacherByID(id TeacherID) *Teacher {
	for _, t := range s.Teachers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Snapshot) RoomByID(id RoomID) *Classroom {
	for _, c := range s.Classrooms {
		if c.ID == id {
			return c
		}
	}
	return nil
}

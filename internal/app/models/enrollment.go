package models

import "time"

// Enrollment links one student to one course. The (student, course) pair is
// unique and enrolled_at is assigned by the server and never updated.
type Enrollment struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	StudentID  int64     `json:"student" db:"student_id" example:"1"`
	CourseID   int64     `json:"course" db:"course_id" example:"2"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at" example:"2025-03-01T10:00:00Z"`

	// Relations (populated when needed)
	Student *Student `json:"studentDetail,omitempty"`
	Course  *Course  `json:"courseDetail,omitempty"`
}

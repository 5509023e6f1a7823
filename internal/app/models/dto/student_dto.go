package dto

// CreateStudentRequest carries the fields to create a student record.
// The identification number doubles as the initial account password on first
// enrollment, so its charset is restricted at the edge.
type CreateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,max=80"`
	LastName  string `json:"lastName" binding:"required,max=80"`
	Email     string `json:"email" binding:"required,email"`
	IDNumber  string `json:"idNumber" binding:"required,min=4,max=20"`
}

// UpdateStudentRequest carries the updatable student fields. Omitted fields
// keep their current value; the login link is never cleared or reassigned
// through this request.
type UpdateStudentRequest struct {
	FirstName string `json:"firstName" binding:"omitempty,max=80"`
	LastName  string `json:"lastName" binding:"omitempty,max=80"`
	Email     string `json:"email" binding:"omitempty,email"`
	IDNumber  string `json:"idNumber" binding:"omitempty,min=4,max=20"`
}

// StudentCourseItem is one row of a student's enrollment listing
type StudentCourseItem struct {
	CourseID   int64  `json:"courseId" example:"2"`
	Code       string `json:"code" example:"MAT101"`
	Title      string `json:"title" example:"Matemática I"`
	EnrolledAt string `json:"enrolledAt" example:"2025-03-01T10:00:00Z"`
}

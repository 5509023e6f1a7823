package dto

// CreateCourseRequest carries the fields to create a course
type CreateCourseRequest struct {
	Code     string `json:"code" binding:"required,max=10"`
	Title    string `json:"title" binding:"required,max=120"`
	Capacity int    `json:"capacity" binding:"omitempty,min=1"`
}

// UpdateCourseRequest carries the updatable course fields. Omitted fields
// keep their current value.
type UpdateCourseRequest struct {
	Code     string `json:"code" binding:"omitempty,max=10"`
	Title    string `json:"title" binding:"omitempty,max=120"`
	Capacity int    `json:"capacity" binding:"omitempty,min=1"`
}

// CourseStudentItem is one row of a course roster listing
type CourseStudentItem struct {
	StudentID  int64  `json:"studentId" example:"1"`
	FirstName  string `json:"firstName" example:"Ana"`
	LastName   string `json:"lastName" example:"Gómez"`
	Email      string `json:"email" example:"ana.gomez@mail.com"`
	IDNumber   string `json:"idNumber" example:"1234567-8"`
	EnrolledAt string `json:"enrolledAt" example:"2025-03-01T10:00:00Z"`
}

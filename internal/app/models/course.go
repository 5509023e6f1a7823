package models

// Course defines the course model based on the 'courses' table
type Course struct {
	ID       int64  `json:"id" db:"id" example:"1"`                      // Unique identifier for the course
	Code     string `json:"code" db:"code" example:"MAT101"`             // Unique course code
	Title    string `json:"title" db:"title" example:"Matemática I"`     // Course title
	Capacity int    `json:"capacity" db:"capacity" example:"30"`         // Seat capacity (informational)
}

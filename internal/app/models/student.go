package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID        int64  `json:"id" db:"id" example:"1"`                         // Unique identifier for the student record
	UserID    *int64 `json:"userId,omitempty" db:"user_id" example:"5"`      // ID of the linked login account (nil until first enrollment)
	FirstName string `json:"firstName" db:"first_name" example:"Ana"`        // Student's first name
	LastName  string `json:"lastName" db:"last_name" example:"Gómez"`        // Student's last name
	Email     string `json:"email" db:"email" example:"ana.gomez@mail.com"`  // Student's unique email address
	IDNumber  string `json:"idNumber" db:"id_number" example:"1234567-8"`    // Unique identification number; initial account password

	// Relations (populated when needed)
	User *User `json:"user,omitempty"` // Linked login account
}

package dto

import "github.com/gris34/psis-inscripciones-backend/internal/app/models"

// RegisterEnrollmentRequest is the body of the enrollment-creation endpoint.
// Both ids are required; a missing or zero value fails binding before any
// business logic runs.
type RegisterEnrollmentRequest struct {
	Student int64 `json:"student" binding:"required,min=1"`
	Course  int64 `json:"course" binding:"required,min=1"`
}

// EnrollmentCredentials reports the login identity tied to an enrollment.
// TempPassword is present only when the account was provisioned by this very
// call; it is never persisted in clear and cannot be recovered later.
type EnrollmentCredentials struct {
	Username       string `json:"username" example:"ana.gomez"`
	Email          string `json:"email" example:"ana.gomez@mail.com"`
	AccountCreated bool   `json:"accountCreated" example:"true"`
	TempPassword   string `json:"tempPassword,omitempty" example:"1234567-8"`
}

// EnrollmentResult is the combined payload of a successful registration
type EnrollmentResult struct {
	Enrollment  *models.Enrollment    `json:"enrollment"`
	Credentials EnrollmentCredentials `json:"credentials"`
}

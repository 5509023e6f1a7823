package models

// Well-known role names
const (
	// RoleStudent is granted to every account provisioned on first enrollment
	RoleStudent = "alumno"
	// RoleAdmin is granted to administrative accounts
	RoleAdmin = "admin"
)

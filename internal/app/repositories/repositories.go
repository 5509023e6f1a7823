package repositories

import (
	"github.com/gris34/psis-inscripciones-backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(database.Pool),
		CourseRepository:     NewCourseRepository(database.Pool),
		EnrollmentRepository: NewEnrollmentRepository(database),
		UserRepository:       NewUserRepository(database.Pool),
		TokenRepository:      NewTokenRepository(database.Pool),
	}
}

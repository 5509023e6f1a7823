package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gris34/psis-inscripciones-backend/internal/app/models"
	"github.com/gris34/psis-inscripciones-backend/internal/app/models/dto"
	"github.com/gris34/psis-inscripciones-backend/internal/app/repositories"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/apperrors"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/helpers"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/validation"
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo    repositories.IStudentRepository
	enrollmentRepo repositories.IEnrollmentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository, enrollmentRepo repositories.IEnrollmentRepository) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// CreateStudent registers a new student record
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		IDNumber:  strings.TrimSpace(req.IDNumber),
	}

	if !validation.ValidIDNumber(student.IDNumber) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidIDNumber, student.IDNumber)
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetAllStudents retrieves students with optional search and ordering
func (s *StudentService) GetAllStudents(ctx context.Context, search, ordering string, page, size int) ([]*models.Student, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.studentRepo.List(ctx, search, ordering, offset, limit)
}

// UpdateStudent updates an existing student record
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		student.FirstName = strings.TrimSpace(req.FirstName)
	}
	if req.LastName != "" {
		student.LastName = strings.TrimSpace(req.LastName)
	}
	if req.Email != "" {
		student.Email = strings.TrimSpace(req.Email)
	}
	if req.IDNumber != "" {
		idNumber := strings.TrimSpace(req.IDNumber)
		if !validation.ValidIDNumber(idNumber) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidIDNumber, idNumber)
		}
		student.IDNumber = idNumber
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent deletes a student by ID
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

// GetStudentCourses returns the courses a student is enrolled in, ordered
// by course code
func (s *StudentService) GetStudentCourses(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.ListByStudent(ctx, studentID)
}

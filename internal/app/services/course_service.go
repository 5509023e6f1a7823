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

// CourseService handles course-related operations
type CourseService struct {
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, enrollmentRepo repositories.IEnrollmentRepository) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// CreateCourse creates a new course. The code is normalized to uppercase
// before validation and storage.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if !validation.ValidCourseCode(code) {
		return nil, fmt.Errorf("%w: invalid course code %q", apperrors.ErrValidationFailed, code)
	}

	course := &models.Course{
		Code:     code,
		Title:    strings.TrimSpace(req.Title),
		Capacity: req.Capacity,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetAllCourses retrieves courses with optional search and ordering
func (s *CourseService) GetAllCourses(ctx context.Context, search, ordering string, page, size int) ([]*models.Course, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.courseRepo.List(ctx, search, ordering, offset, limit)
}

// UpdateCourse updates an existing course
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != "" {
		code := strings.ToUpper(strings.TrimSpace(req.Code))
		if !validation.ValidCourseCode(code) {
			return nil, fmt.Errorf("%w: invalid course code %q", apperrors.ErrValidationFailed, code)
		}
		course.Code = code
	}
	if req.Title != "" {
		course.Title = strings.TrimSpace(req.Title)
	}
	if req.Capacity > 0 {
		course.Capacity = req.Capacity
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse deletes a course by ID
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

// GetCourseStudents returns a course's enrolled students ordered by last
// name, then first name
func (s *CourseService) GetCourseStudents(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.ListByCourse(ctx, courseID)
}

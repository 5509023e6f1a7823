package services

import (
	"context"
	"fmt"

	"github.com/gris34/psis-inscripciones-backend/internal/app/models"
	"github.com/gris34/psis-inscripciones-backend/internal/app/models/dto"
	"github.com/gris34/psis-inscripciones-backend/internal/app/repositories"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/auth"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/helpers"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/logger"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/username"
)

// EnrollmentService handles enrollment registration and the account
// provisioning that piggybacks on a student's first enrollment.
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	studentRepo    repositories.IStudentRepository
	courseRepo     repositories.ICourseRepository
	userRepo       repositories.IUserRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	studentRepo repositories.IStudentRepository,
	courseRepo repositories.ICourseRepository,
	userRepo repositories.IUserRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
	}
}

// Register enrolls a student in a course. When the student has no login
// account yet, one is provisioned in the same transaction: the username is
// derived from the student's name and the temporary password is the
// student's identity document number. The response always reports the
// account's username and whether it was created by this call, and carries
// the temporary password only when it was.
func (s *EnrollmentService) Register(ctx context.Context, req *dto.RegisterEnrollmentRequest) (*dto.EnrollmentResult, error) {
	student, err := s.studentRepo.GetByID(ctx, req.Student)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, req.Course)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
	}

	credentials := dto.EnrollmentCredentials{Email: student.Email}

	var account *models.ProvisionedAccount
	if student.UserID == nil {
		account, err = s.provisionAccount(ctx, student)
		if err != nil {
			return nil, err
		}
		credentials.Username = account.User.Username
		credentials.AccountCreated = true
		credentials.TempPassword = student.IDNumber
	} else {
		user, err := s.userRepo.GetByID(ctx, *student.UserID)
		if err != nil {
			return nil, fmt.Errorf("error loading linked account: %w", err)
		}
		credentials.Username = user.Username
	}

	if err := s.enrollmentRepo.Register(ctx, enrollment, account); err != nil {
		return nil, err
	}

	if account != nil {
		logger.Info().
			Int64("studentID", student.ID).
			Str("username", account.User.Username).
			Msg("Provisioned account for student")
	}

	enrollment.Student = student
	enrollment.Course = course

	return &dto.EnrollmentResult{
		Enrollment:  enrollment,
		Credentials: credentials,
	}, nil
}

// provisionAccount builds the login account for a student without one. The
// username is derived deterministically from the student's name, with a
// numeric suffix when the base is already claimed, and the temporary
// password is the student's identity document number.
func (s *EnrollmentService) provisionAccount(ctx context.Context, student *models.Student) (*models.ProvisionedAccount, error) {
	base := username.Derive(student.FirstName, student.LastName)

	handle, err := username.Resolve(ctx, base, s.userRepo.UsernameExists)
	if err != nil {
		return nil, fmt.Errorf("error resolving username: %w", err)
	}

	hashed, err := auth.HashPassword(student.IDNumber)
	if err != nil {
		return nil, fmt.Errorf("error hashing temporary password: %w", err)
	}

	return &models.ProvisionedAccount{
		User: &models.User{
			Username:  handle,
			Password:  hashed,
			FirstName: username.FirstToken(student.FirstName),
			LastName:  username.FirstToken(student.LastName),
			Email:     student.Email,
		},
		RoleName:  models.RoleStudent,
		StudentID: student.ID,
	}, nil
}

// GetEnrollmentByID retrieves an enrollment with its student and course
func (s *EnrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return s.enrollmentRepo.GetByID(ctx, id)
}

// GetAllEnrollments retrieves enrollments with pagination
func (s *EnrollmentService) GetAllEnrollments(ctx context.Context, page, size int) ([]*models.Enrollment, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.enrollmentRepo.GetAll(ctx, offset, limit)
}

// DeleteEnrollment removes an enrollment by ID. The student's account is
// kept even when their last enrollment is removed.
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	return s.enrollmentRepo.Delete(ctx, id)
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gris34/psis-inscripciones-backend/internal/app/models"
	"github.com/gris34/psis-inscripciones-backend/internal/db"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/apperrors"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/dberrors"
)

// IEnrollmentRepository defines the interface for enrollment database operations
type IEnrollmentRepository interface {
	Register(ctx context.Context, enrollment *models.Enrollment, account *models.ProvisionedAccount) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Enrollment, int64, error)
	Delete(ctx context.Context, id int64) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
}

// EnrollmentRepository handles database operations for enrollments. It owns
// the transactional registration path that also persists a provisioned
// account when one was built for the student.
type EnrollmentRepository struct {
	db *db.PostgresDB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(database *db.PostgresDB) *EnrollmentRepository {
	return &EnrollmentRepository{db: database}
}

// Register persists an enrollment and, when account is non-nil, the login
// account built for the student, all in a single transaction. Uniqueness is
// enforced by the database constraints so concurrent registrations cannot
// slip past the service-level checks.
func (r *EnrollmentRepository) Register(ctx context.Context, enrollment *models.Enrollment, account *models.ProvisionedAccount) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if account != nil {
			if err := r.insertAccount(ctx, tx, account); err != nil {
				return err
			}
		}

		query := `
			INSERT INTO enrollments (student_id, course_id)
			VALUES ($1, $2)
			RETURNING id, enrolled_at
		`

		err := tx.QueryRow(ctx, query, enrollment.StudentID, enrollment.CourseID).
			Scan(&enrollment.ID, &enrollment.EnrolledAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "enrollments_student_id_course_id_key") {
				return apperrors.ErrAlreadyEnrolled
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
}

// insertAccount creates the user row, grants its role and links it to the
// student, inside the registration transaction.
func (r *EnrollmentRepository) insertAccount(ctx context.Context, tx pgx.Tx, account *models.ProvisionedAccount) error {
	user := account.User

	userQuery := `
		INSERT INTO users (username, password, first_name, last_name, email, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, userQuery,
		user.Username, user.Password, user.FirstName, user.LastName, user.Email, true,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrUsernameTaken
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	// The role is created on first use, later registrations reuse it.
	_, err = tx.Exec(ctx, `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, account.RoleName)
	if err != nil {
		return fmt.Errorf("error ensuring role: %w", err)
	}

	var roleID int64
	if err := tx.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, account.RoleName).Scan(&roleID); err != nil {
		return fmt.Errorf("error resolving role: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, user.ID, roleID); err != nil {
		return fmt.Errorf("error granting role: %w", err)
	}

	cmdTag, err := tx.Exec(ctx,
		`UPDATE students SET user_id = $1 WHERE id = $2 AND user_id IS NULL`,
		user.ID, account.StudentID,
	)
	if err != nil {
		return fmt.Errorf("error linking account to student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountAlreadyLinked
	}

	return nil
}

const enrollmentSelect = `
	SELECT e.id, e.student_id, e.course_id, e.enrolled_at,
	       s.id, s.user_id, s.first_name, s.last_name, s.email, s.id_number,
	       c.id, c.code, c.title, c.capacity
	FROM enrollments e
	JOIN students s ON s.id = e.student_id
	JOIN courses c ON c.id = e.course_id
`

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	var student models.Student
	var course models.Course

	err := row.Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.EnrolledAt,
		&student.ID, &student.UserID, &student.FirstName, &student.LastName, &student.Email, &student.IDNumber,
		&course.ID, &course.Code, &course.Title, &course.Capacity,
	)
	if err != nil {
		return nil, err
	}

	enrollment.Student = &student
	enrollment.Course = &course
	return &enrollment, nil
}

// GetByID retrieves an enrollment with its student and course
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := scanEnrollment(r.db.Pool.QueryRow(ctx, enrollmentSelect+" WHERE e.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	return enrollment, nil
}

// GetAll retrieves enrollments with their student and course, paginated
func (r *EnrollmentRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Enrollment, int64, error) {
	query := enrollmentSelect + " ORDER BY e.id OFFSET $1 LIMIT $2"

	rows, err := r.db.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	enrollments, err := collectEnrollments(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting enrollments: %w", err)
	}

	return enrollments, total, nil
}

// Delete deletes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// ListByStudent returns a student's enrollments ordered by course code
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	query := enrollmentSelect + " WHERE e.student_id = $1 ORDER BY c.code"

	rows, err := r.db.Pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student enrollments: %w", err)
	}
	defer rows.Close()

	return collectEnrollments(rows)
}

// ListByCourse returns a course's enrollments ordered by the student's
// last name then first name
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	query := enrollmentSelect + " WHERE e.course_id = $1 ORDER BY s.last_name, s.first_name"

	rows, err := r.db.Pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing course enrollments: %w", err)
	}
	defer rows.Close()

	return collectEnrollments(rows)
}

func collectEnrollments(rows pgx.Rows) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, rows.Err()
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gris34/psis-inscripciones-backend/internal/app/models"
	"github.com/gris34/psis-inscripciones-backend/internal/app/models/dto"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/apperrors"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/auth"
)

type fakeStudentRepo struct {
	students map[int64]*models.Student
	updated  *models.Student
}

func (r *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error { return nil }

func (r *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (r *fakeStudentRepo) List(ctx context.Context, search, ordering string, offset uint64, limit int) ([]*models.Student, int64, error) {
	return nil, 0, nil
}

func (r *fakeStudentRepo) Update(ctx context.Context, student *models.Student) error {
	r.updated = student
	return nil
}
func (r *fakeStudentRepo) Delete(ctx context.Context, id int64) error                { return nil }

type fakeCourseRepo struct {
	courses map[int64]*models.Course
}

func (r *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error { return nil }

func (r *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (r *fakeCourseRepo) List(ctx context.Context, search, ordering string, offset uint64, limit int) ([]*models.Course, int64, error) {
	return nil, 0, nil
}

func (r *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error { return nil }
func (r *fakeCourseRepo) Delete(ctx context.Context, id int64) error              { return nil }

type fakeUserRepo struct {
	users          map[int64]*models.User
	takenUsernames map[string]bool
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.takenUsernames[username], nil
}

func (r *fakeUserRepo) GetRoles(ctx context.Context, userID int64) ([]string, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetStudentIDByUserID(ctx context.Context, userID int64) (*int64, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID int64) error { return nil }

type fakeEnrollmentRepo struct {
	registerErr  error
	registered   *models.Enrollment
	savedAccount *models.ProvisionedAccount
	registers    int
	byStudent    []*models.Enrollment
	byCourse     []*models.Enrollment
}

func (r *fakeEnrollmentRepo) Register(ctx context.Context, enrollment *models.Enrollment, account *models.ProvisionedAccount) error {
	r.registers++
	if r.registerErr != nil {
		return r.registerErr
	}
	enrollment.ID = 99
	r.registered = enrollment
	r.savedAccount = account
	return nil
}

func (r *fakeEnrollmentRepo) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return nil, apperrors.ErrEnrollmentNotFound
}

func (r *fakeEnrollmentRepo) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Enrollment, int64, error) {
	return nil, 0, nil
}

func (r *fakeEnrollmentRepo) Delete(ctx context.Context, id int64) error { return nil }

func (r *fakeEnrollmentRepo) ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return r.byStudent, nil
}

func (r *fakeEnrollmentRepo) ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	return r.byCourse, nil
}

func newEnrollmentFixture() (*EnrollmentService, *fakeEnrollmentRepo, *fakeStudentRepo, *fakeUserRepo) {
	studentRepo := &fakeStudentRepo{students: map[int64]*models.Student{
		1: {ID: 1, FirstName: "Ana", LastName: "Gómez", Email: "ana.gomez@mail.com", IDNumber: "1234567-8"},
	}}
	courseRepo := &fakeCourseRepo{courses: map[int64]*models.Course{
		2: {ID: 2, Code: "MAT101", Title: "Matemática I", Capacity: 30},
	}}
	userRepo := &fakeUserRepo{users: map[int64]*models.User{}, takenUsernames: map[string]bool{}}
	enrollmentRepo := &fakeEnrollmentRepo{}

	service := NewEnrollmentService(enrollmentRepo, studentRepo, courseRepo, userRepo)
	return service, enrollmentRepo, studentRepo, userRepo
}

func TestRegisterProvisionsAccountOnFirstEnrollment(t *testing.T) {
	service, enrollmentRepo, _, _ := newEnrollmentFixture()

	result, err := service.Register(context.Background(), &dto.RegisterEnrollmentRequest{Student: 1, Course: 2})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	creds := result.Credentials
	if !creds.AccountCreated {
		t.Error("AccountCreated = false, want true for a student without an account")
	}
	if creds.Username != "ana.gomez" {
		t.Errorf("Username = %q, want %q", creds.Username, "ana.gomez")
	}
	if creds.TempPassword != "1234567-8" {
		t.Errorf("TempPassword = %q, want the student's id number", creds.TempPassword)
	}
	if creds.Email != "ana.gomez@mail.com" {
		t.Errorf("Email = %q, want the student's email", creds.Email)
	}

	account := enrollmentRepo.savedAccount
	if account == nil {
		t.Fatal("expected a provisioned account to be passed to the repository")
	}
	if account.RoleName != models.RoleStudent {
		t.Errorf("RoleName = %q, want %q", account.RoleName, models.RoleStudent)
	}
	if account.StudentID != 1 {
		t.Errorf("StudentID = %d, want 1", account.StudentID)
	}
	if account.User.Password == "1234567-8" {
		t.Error("stored password must be hashed, not the clear id number")
	}
	if !auth.CheckPassword(account.User.Password, "1234567-8") {
		t.Error("stored password hash does not verify against the id number")
	}
}

func TestRegisterMirrorsFirstNameTokensOnAccount(t *testing.T) {
	service, enrollmentRepo, studentRepo, _ := newEnrollmentFixture()

	studentRepo.students[1].FirstName = "Ana María"
	studentRepo.students[1].LastName = "Gómez Pérez"

	_, err := service.Register(context.Background(), &dto.RegisterEnrollmentRequest{Student: 1, Course: 2})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	account := enrollmentRepo.savedAccount
	if account == nil {
		t.Fatal("expected a provisioned account to be passed to the repository")
	}
	if account.User.FirstName != "Ana" {
		t.Errorf("FirstName = %q, want %q", account.User.FirstName, "Ana")
	}
	if account.User.LastName != "Gómez" {
		t.Errorf("LastName = %q, want %q", account.User.LastName, "Gómez")
	}
	if account.User.Username != "ana.gomez" {
		t.Errorf("Username = %q, want %q", account.User.Username, "ana.gomez")
	}
}

func TestRegisterSkipsProvisioningWhenAccountExists(t *testing.T) {
	service, enrollmentRepo, studentRepo, userRepo := newEnrollmentFixture()

	userID := int64(7)
	studentRepo.students[1].UserID = &userID
	userRepo.users[userID] = &models.User{ID: userID, Username: "ana.gomez", Email: "ana.gomez@mail.com"}

	result, err := service.Register(context.Background(), &dto.RegisterEnrollmentRequest{Student: 1, Course: 2})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if result.Credentials.AccountCreated {
		t.Error("AccountCreated = true, want false when the student already has an account")
	}
	if result.Credentials.TempPassword != "" {
		t.Errorf("TempPassword = %q, want empty for an existing account", result.Credentials.TempPassword)
	}
	if result.Credentials.Username != "ana.gomez" {
		t.Errorf("Username = %q, want the existing account's username", result.Credentials.Username)
	}
	if enrollmentRepo.savedAccount != nil {
		t.Error("no account should be passed to the repository for an existing login")
	}
}

func TestRegisterSuffixesTakenUsername(t *testing.T) {
	service, enrollmentRepo, _, userRepo := newEnrollmentFixture()

	userRepo.takenUsernames["ana.gomez"] = true
	userRepo.takenUsernames["ana.gomez1"] = true

	result, err := service.Register(context.Background(), &dto.RegisterEnrollmentRequest{Student: 1, Course: 2})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if result.Credentials.Username != "ana.gomez2" {
		t.Errorf("Username = %q, want %q", result.Credentials.Username, "ana.gomez2")
	}
	if enrollmentRepo.savedAccount.User.Username != "ana.gomez2" {
		t.Errorf("persisted username = %q, want %q", enrollmentRepo.savedAccount.User.Username, "ana.gomez2")
	}
}

func TestRegisterUnknownStudent(t *testing.T) {
	service, enrollmentRepo, _, _ := newEnrollmentFixture()

	_, err := service.Register(context.Background(), &dto.RegisterEnrollmentRequest{Student: 42, Course: 2})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("Register() error = %v, want ErrStudentNotFound", err)
	}
	if enrollmentRepo.registers != 0 {
		t.Error("no write should happen when the student does not exist")
	}
}

func TestRegisterUnknownCourse(t *testing.T) {
	service, enrollmentRepo, _, _ := newEnrollmentFixture()

	_, err := service.Register(context.Background(), &dto.RegisterEnrollmentRequest{Student: 1, Course: 42})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("Register() error = %v, want ErrCourseNotFound", err)
	}
	if enrollmentRepo.registers != 0 {
		t.Error("no write should happen when the course does not exist")
	}
}

func TestRegisterDuplicateEnrollment(t *testing.T) {
	service, enrollmentRepo, _, _ := newEnrollmentFixture()
	enrollmentRepo.registerErr = apperrors.ErrAlreadyEnrolled

	_, err := service.Register(context.Background(), &dto.RegisterEnrollmentRequest{Student: 1, Course: 2})
	if !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Fatalf("Register() error = %v, want ErrAlreadyEnrolled", err)
	}
}

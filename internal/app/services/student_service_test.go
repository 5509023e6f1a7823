package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gris34/psis-inscripciones-backend/internal/app/models"
	"github.com/gris34/psis-inscripciones-backend/internal/app/models/dto"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/apperrors"
)

func newStudentFixture() (*StudentService, *fakeStudentRepo) {
	studentRepo := &fakeStudentRepo{students: map[int64]*models.Student{
		1: {ID: 1, FirstName: "Ana", LastName: "Gómez", Email: "ana.gomez@mail.com", IDNumber: "1234567-8"},
	}}
	service := NewStudentService(studentRepo, &fakeEnrollmentRepo{})
	return service, studentRepo
}

func TestUpdateStudentKeepsOmittedFields(t *testing.T) {
	service, studentRepo := newStudentFixture()

	updated, err := service.UpdateStudent(context.Background(), 1, &dto.UpdateStudentRequest{
		Email: "ana.gomez@univ.edu",
	})
	if err != nil {
		t.Fatalf("UpdateStudent() error = %v", err)
	}

	if updated.Email != "ana.gomez@univ.edu" {
		t.Errorf("Email = %q, want the new value", updated.Email)
	}
	if updated.FirstName != "Ana" || updated.LastName != "Gómez" {
		t.Errorf("name = %q %q, omitted fields must keep their values", updated.FirstName, updated.LastName)
	}
	if updated.IDNumber != "1234567-8" {
		t.Errorf("IDNumber = %q, omitted fields must keep their values", updated.IDNumber)
	}
	if studentRepo.updated == nil {
		t.Fatal("expected the repository update to be called")
	}
}

func TestUpdateStudentRejectsInvalidIDNumber(t *testing.T) {
	service, studentRepo := newStudentFixture()

	_, err := service.UpdateStudent(context.Background(), 1, &dto.UpdateStudentRequest{
		IDNumber: "abc",
	})
	if !errors.Is(err, apperrors.ErrInvalidIDNumber) {
		t.Fatalf("UpdateStudent() error = %v, want ErrInvalidIDNumber", err)
	}
	if studentRepo.updated != nil {
		t.Error("no repository update should happen for an invalid id number")
	}
}

func TestCreateStudentRejectsInvalidIDNumber(t *testing.T) {
	service, _ := newStudentFixture()

	_, err := service.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		FirstName: "Ana",
		LastName:  "Gómez",
		Email:     "ana.gomez@mail.com",
		IDNumber:  "1234567-k",
	})
	if !errors.Is(err, apperrors.ErrInvalidIDNumber) {
		t.Fatalf("CreateStudent() error = %v, want ErrInvalidIDNumber", err)
	}
}

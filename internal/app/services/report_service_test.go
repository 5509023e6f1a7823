package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gris34/psis-inscripciones-backend/internal/app/models"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/apperrors"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/report"
)

type fakeRenderer struct {
	template string
	context  report.Context
	output   []byte
	err      error
}

func (r *fakeRenderer) Render(template string, ctx report.Context) ([]byte, error) {
	r.template = template
	r.context = ctx
	if r.err != nil {
		return nil, r.err
	}
	return r.output, nil
}

func newReportFixture(renderer report.Renderer) (*ReportService, *fakeEnrollmentRepo) {
	studentRepo := &fakeStudentRepo{students: map[int64]*models.Student{
		1: {ID: 1, FirstName: "Ana", LastName: "Gómez", Email: "ana.gomez@mail.com", IDNumber: "1234567-8"},
	}}
	courseRepo := &fakeCourseRepo{courses: map[int64]*models.Course{
		2: {ID: 2, Code: "MAT101", Title: "Matemática I", Capacity: 30},
	}}
	enrollmentRepo := &fakeEnrollmentRepo{}

	return NewReportService(studentRepo, courseRepo, enrollmentRepo, renderer), enrollmentRepo
}

func TestStudentCoursesReport(t *testing.T) {
	renderer := &fakeRenderer{output: []byte("%PDF-1.4")}
	service, enrollmentRepo := newReportFixture(renderer)

	enrollmentRepo.byStudent = []*models.Enrollment{
		{ID: 10, StudentID: 1, CourseID: 2, EnrolledAt: time.Now(), Course: &models.Course{Code: "MAT101", Title: "Matemática I"}},
	}

	document, filename, err := service.StudentCoursesReport(context.Background(), 1)
	if err != nil {
		t.Fatalf("StudentCoursesReport() error = %v", err)
	}

	if string(document) != "%PDF-1.4" {
		t.Error("rendered document not returned")
	}
	if filename != "alumno_Gómez_Ana_cursos.pdf" {
		t.Errorf("filename = %q, want %q", filename, "alumno_Gómez_Ana_cursos.pdf")
	}
	if renderer.template != report.TemplateStudentCourses {
		t.Errorf("template = %q, want %q", renderer.template, report.TemplateStudentCourses)
	}

	student, ok := renderer.context["student"].(*models.Student)
	if !ok || student.ID != 1 {
		t.Error("render context missing the student")
	}
	enrollments, ok := renderer.context["enrollments"].([]*models.Enrollment)
	if !ok || len(enrollments) != 1 {
		t.Error("render context missing the enrollments")
	}
	if _, ok := renderer.context["generatedAt"].(time.Time); !ok {
		t.Error("render context missing the generation timestamp")
	}
}

func TestCourseRosterReport(t *testing.T) {
	renderer := &fakeRenderer{output: []byte("%PDF-1.4")}
	service, enrollmentRepo := newReportFixture(renderer)

	enrollmentRepo.byCourse = []*models.Enrollment{
		{ID: 10, StudentID: 1, CourseID: 2, EnrolledAt: time.Now(), Student: &models.Student{FirstName: "Ana", LastName: "Gómez"}},
	}

	_, filename, err := service.CourseRosterReport(context.Background(), 2)
	if err != nil {
		t.Fatalf("CourseRosterReport() error = %v", err)
	}

	if filename != "curso_MAT101_alumnos.pdf" {
		t.Errorf("filename = %q, want %q", filename, "curso_MAT101_alumnos.pdf")
	}
	if renderer.template != report.TemplateCourseRoster {
		t.Errorf("template = %q, want %q", renderer.template, report.TemplateCourseRoster)
	}
	if _, ok := renderer.context["course"].(*models.Course); !ok {
		t.Error("render context missing the course")
	}
}

func TestStudentCoursesReportUnknownStudent(t *testing.T) {
	service, _ := newReportFixture(&fakeRenderer{})

	_, _, err := service.StudentCoursesReport(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("StudentCoursesReport() error = %v, want ErrStudentNotFound", err)
	}
}

func TestCourseRosterReportRenderFailure(t *testing.T) {
	renderer := &fakeRenderer{err: apperrors.ErrRenderFailure}
	service, _ := newReportFixture(renderer)

	_, _, err := service.CourseRosterReport(context.Background(), 2)
	if !errors.Is(err, apperrors.ErrRenderFailure) {
		t.Fatalf("CourseRosterReport() error = %v, want ErrRenderFailure", err)
	}
}

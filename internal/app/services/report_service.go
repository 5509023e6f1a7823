package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gris34/psis-inscripciones-backend/internal/app/repositories"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/report"
)

// ReportService builds the PDF reports served by the API. It assembles the
// data each template needs and delegates rendering to the configured
// renderer.
type ReportService struct {
	studentRepo    repositories.IStudentRepository
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
	renderer       report.Renderer
}

// NewReportService creates a new report service instance
func NewReportService(
	studentRepo repositories.IStudentRepository,
	courseRepo repositories.ICourseRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	renderer report.Renderer,
) *ReportService {
	return &ReportService{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		renderer:       renderer,
	}
}

// StudentCoursesReport renders the PDF listing a student's enrollments,
// ordered by course code. It returns the document and its filename.
func (s *ReportService) StudentCoursesReport(ctx context.Context, studentID int64) ([]byte, string, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, "", err
	}

	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, "", err
	}

	document, err := s.renderer.Render(report.TemplateStudentCourses, report.Context{
		"student":     student,
		"enrollments": enrollments,
		"generatedAt": time.Now(),
	})
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("alumno_%s_%s_cursos.pdf", student.LastName, student.FirstName)
	return document, filename, nil
}

// CourseRosterReport renders the PDF listing a course's enrolled students,
// ordered by last name then first name. It returns the document and its
// filename.
func (s *ReportService) CourseRosterReport(ctx context.Context, courseID int64) ([]byte, string, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, "", err
	}

	enrollments, err := s.enrollmentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, "", err
	}

	document, err := s.renderer.Render(report.TemplateCourseRoster, report.Context{
		"course":      course,
		"enrollments": enrollments,
		"generatedAt": time.Now(),
	})
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("curso_%s_alumnos.pdf", course.Code)
	return document, filename, nil
}

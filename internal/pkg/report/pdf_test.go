package report

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"
	"time"

	"github.com/gris34/psis-inscripciones-backend/internal/app/models"
)

// inflateStreams decompresses every zlib stream object in a PDF so the page
// content can be inspected as text.
func inflateStreams(t *testing.T, pdf []byte) []byte {
	t.Helper()

	var inflated bytes.Buffer
	rest := pdf
	for {
		start := bytes.Index(rest, []byte("stream\n"))
		if start < 0 {
			break
		}
		rest = rest[start+len("stream\n"):]
		end := bytes.Index(rest, []byte("endstream"))
		if end < 0 {
			break
		}
		raw := bytes.TrimSuffix(rest[:end], []byte("\n"))
		rest = rest[end:]

		reader, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			continue
		}
		data, err := io.ReadAll(reader)
		reader.Close()
		if err != nil {
			continue
		}
		inflated.Write(data)
	}
	return inflated.Bytes()
}

func TestRenderCourseRosterEncodesAccentedText(t *testing.T) {
	renderer := NewPDFRenderer()

	course := &models.Course{ID: 2, Code: "MAT101", Title: "Matemática I", Capacity: 30}
	student := &models.Student{ID: 1, FirstName: "Ana", LastName: "Gómez", IDNumber: "1234567-8", Email: "ana.gomez@mail.com"}
	enrollments := []*models.Enrollment{
		{ID: 5, StudentID: 1, CourseID: 2, EnrolledAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), Student: student},
	}

	rendered, err := renderer.Render(TemplateCourseRoster, Context{
		"course":      course,
		"enrollments": enrollments,
		"generatedAt": time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	content := inflateStreams(t, rendered)
	if len(content) == 0 {
		t.Fatal("no content streams could be inflated")
	}
	if !bytes.Contains(content, []byte("G\xf3mez")) {
		t.Error("expected cp1252-encoded text for \"Gómez\" in the page content")
	}
	if bytes.Contains(content, []byte("G\xc3\xb3mez")) {
		t.Error("page content carries raw UTF-8 bytes, accents will render garbled")
	}
}

func TestRenderStudentCoursesEncodesAccentedText(t *testing.T) {
	renderer := NewPDFRenderer()

	student := &models.Student{ID: 1, FirstName: "Ana", LastName: "Gómez", IDNumber: "1234567-8", Email: "ana.gomez@mail.com"}
	course := &models.Course{ID: 2, Code: "MAT101", Title: "Matemática I", Capacity: 30}
	enrollments := []*models.Enrollment{
		{ID: 5, StudentID: 1, CourseID: 2, EnrolledAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), Course: course},
	}

	rendered, err := renderer.Render(TemplateStudentCourses, Context{
		"student":     student,
		"enrollments": enrollments,
		"generatedAt": time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	content := inflateStreams(t, rendered)
	if !bytes.Contains(content, []byte("Matem\xe1tica")) {
		t.Error("expected cp1252-encoded text for \"Matemática\" in the page content")
	}
}

package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/gris34/psis-inscripciones-backend/internal/app/models"
	"github.com/gris34/psis-inscripciones-backend/internal/pkg/apperrors"
)

const timestampLayout = "2006-01-02 15:04"

// PDFRenderer renders report templates with fpdf.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDFRenderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render renders the named template with the given context and returns the
// PDF bytes. Unknown templates and malformed contexts fail with
// apperrors.ErrRenderFailure; no partial document is returned.
func (r *PDFRenderer) Render(template string, ctx Context) ([]byte, error) {
	switch template {
	case TemplateStudentCourses:
		return r.renderStudentCourses(ctx)
	case TemplateCourseRoster:
		return r.renderCourseRoster(ctx)
	default:
		return nil, fmt.Errorf("%w: unknown template %q", apperrors.ErrRenderFailure, template)
	}
}

func (r *PDFRenderer) renderStudentCourses(ctx Context) ([]byte, error) {
	student, ok := ctx["student"].(*models.Student)
	if !ok {
		return nil, missingKey(TemplateStudentCourses, "student")
	}
	enrollments, ok := ctx["enrollments"].([]*models.Enrollment)
	if !ok {
		return nil, missingKey(TemplateStudentCourses, "enrollments")
	}
	generatedAt, ok := ctx["generatedAt"].(time.Time)
	if !ok {
		return nil, missingKey(TemplateStudentCourses, "generatedAt")
	}

	doc := newDocument(fmt.Sprintf("Cursos de %s, %s", student.LastName, student.FirstName))
	writeMeta(doc, []string{
		fmt.Sprintf("Cédula: %s", student.IDNumber),
		fmt.Sprintf("Email: %s", student.Email),
		fmt.Sprintf("Generado: %s", generatedAt.Format(timestampLayout)),
	})

	writeTableHeader(doc, []column{{"Código", 35}, {"Título", 105}, {"Inscripto", 40}})
	for _, e := range enrollments {
		if e.Course == nil {
			return nil, fmt.Errorf("%w: enrollment %d has no course", apperrors.ErrRenderFailure, e.ID)
		}
		writeTableRow(doc, []cell{
			{e.Course.Code, 35},
			{e.Course.Title, 105},
			{e.EnrolledAt.Format(timestampLayout), 40},
		})
	}

	return output(doc)
}

func (r *PDFRenderer) renderCourseRoster(ctx Context) ([]byte, error) {
	course, ok := ctx["course"].(*models.Course)
	if !ok {
		return nil, missingKey(TemplateCourseRoster, "course")
	}
	enrollments, ok := ctx["enrollments"].([]*models.Enrollment)
	if !ok {
		return nil, missingKey(TemplateCourseRoster, "enrollments")
	}
	generatedAt, ok := ctx["generatedAt"].(time.Time)
	if !ok {
		return nil, missingKey(TemplateCourseRoster, "generatedAt")
	}

	doc := newDocument(fmt.Sprintf("%s - %s", course.Code, course.Title))
	writeMeta(doc, []string{
		fmt.Sprintf("Capacidad: %d", course.Capacity),
		fmt.Sprintf("Inscriptos: %d", len(enrollments)),
		fmt.Sprintf("Generado: %s", generatedAt.Format(timestampLayout)),
	})

	writeTableHeader(doc, []column{{"Apellido", 45}, {"Nombre", 45}, {"Cédula", 35}, {"Email", 55}})
	for _, e := range enrollments {
		if e.Student == nil {
			return nil, fmt.Errorf("%w: enrollment %d has no student", apperrors.ErrRenderFailure, e.ID)
		}
		writeTableRow(doc, []cell{
			{e.Student.LastName, 45},
			{e.Student.FirstName, 45},
			{e.Student.IDNumber, 35},
			{e.Student.Email, 55},
		})
	}

	return output(doc)
}

type column struct {
	title string
	width float64
}

type cell struct {
	text  string
	width float64
}

// document pairs the fpdf instance with its cp1252 translator. The core
// fonts are not UTF-8, so every string must pass through the translator or
// accented characters come out garbled.
type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument(title string) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	return &document{pdf: pdf, tr: tr}
}

func writeMeta(doc *document, lines []string) {
	doc.pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		doc.pdf.CellFormat(0, 6, doc.tr(line), "", 1, "L", false, 0, "")
	}
	doc.pdf.Ln(4)
}

func writeTableHeader(doc *document, cols []column) {
	doc.pdf.SetFont("Helvetica", "B", 10)
	doc.pdf.SetFillColor(230, 230, 230)
	for _, c := range cols {
		doc.pdf.CellFormat(c.width, 8, doc.tr(c.title), "1", 0, "L", true, 0, "")
	}
	doc.pdf.Ln(-1)
}

func writeTableRow(doc *document, cells []cell) {
	doc.pdf.SetFont("Helvetica", "", 10)
	for _, c := range cells {
		doc.pdf.CellFormat(c.width, 7, doc.tr(c.text), "1", 0, "L", false, 0, "")
	}
	doc.pdf.Ln(-1)
}

func output(doc *document) ([]byte, error) {
	pdf := doc.pdf
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

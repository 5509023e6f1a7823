// Package report renders enrollment reports as PDF documents.
package report

import (
	"fmt"

	"github.com/gris34/psis-inscripciones-backend/internal/pkg/apperrors"
)

// Template identifiers understood by the renderer.
const (
	TemplateStudentCourses = "student_courses"
	TemplateCourseRoster   = "course_roster"
)

// Context carries the data a template needs to render.
type Context map[string]interface{}

// Renderer turns a template identifier and a context into a document byte
// stream. Implementations return no partial output on failure.
type Renderer interface {
	Render(template string, ctx Context) ([]byte, error)
}

func missingKey(template, key string) error {
	return fmt.Errorf("%w: template %q context missing %q", apperrors.ErrRenderFailure, template, key)
}

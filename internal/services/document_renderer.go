package services

import (
	"bytes"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/go-pdf/fpdf"
)

// DocumentRenderer turns a course into a paginated PDF
type DocumentRenderer interface {
	Render(course *models.Course) ([]byte, error)
}

type elementKind int

const (
	elemTitle elementKind = iota
	elemHeading
	elemSubheading
	elemParagraph
	elemQuestion
	elemQuizLine
	elemVideoLink
	elemSpace
)

// element is one laid-out unit of the document. The layout is computed before any PDF call.
type element struct {
	kind elementKind
	text string
	url  string
}

type pdfRenderer struct {
	logger *slog.Logger
}

func NewDocumentRenderer(logger *slog.Logger) DocumentRenderer {
	return &pdfRenderer{logger: logger}
}

// documentEpoch is stamped into courses without a creation time so output stays reproducible
var documentEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func checkRenderable(course *models.Course) error {
	if course == nil {
		return NewRenderError("course is required")
	}
	if strings.TrimSpace(course.Name) == "" {
		return NewRenderError("course_name is required")
	}
	if course.Lessons == nil {
		return NewRenderError("lessons are required")
	}
	return nil
}

// layoutCourse: name and goal, then per lesson its heading, explanation, quizzes and videos.
// Only multiple choice quizzes list options; the others get a single answer line.
func layoutCourse(course *models.Course) []element {
	els := []element{
		{kind: elemTitle, text: course.Name},
		{kind: elemSpace},
		{kind: elemSubheading, text: "Goal:"},
		{kind: elemParagraph, text: course.Goal},
		{kind: elemSpace},
	}

	for i, lesson := range course.Lessons {
		els = append(els,
			element{kind: elemHeading, text: fmt.Sprintf("Lesson %d: %s", i+1, lesson.Title)},
			element{kind: elemParagraph, text: lesson.Explanation},
		)

		if len(lesson.Quizzes) > 0 {
			els = append(els, element{kind: elemSubheading, text: "Quiz:"})
			for qi, quiz := range lesson.Quizzes {
				els = append(els, element{kind: elemQuestion, text: fmt.Sprintf("%d. %s", qi+1, quiz.Question)})
				els = append(els, quizLines(quiz)...)
			}
		}

		if len(lesson.Videos) > 0 {
			els = append(els, element{kind: elemSubheading, text: "Videos:"})
			for _, v := range lesson.Videos {
				els = append(els, element{kind: elemVideoLink, text: v.Title, url: v.URL})
			}
		}
		els = append(els, element{kind: elemSpace})
	}
	return els
}

func quizLines(quiz models.Quiz) []element {
	qt, ok := models.ParseQuizType(string(quiz.Type))
	if !ok {
		return nil
	}
	if qt != models.MultipleChoice {
		return []element{{kind: elemQuizLine, text: "Answer: " + quiz.Answer}}
	}

	lines := make([]element, 0, len(quiz.Options)+1)
	for oi, opt := range quiz.Options {
		lines = append(lines, element{kind: elemQuizLine, text: fmt.Sprintf("%c. %s", 'A'+oi, opt)})
	}
	return append(lines, element{kind: elemQuizLine, text: "Correct Answer: " + quiz.Answer})
}

// Render produces the whole document in memory. On error no bytes are returned.
func (r *pdfRenderer) Render(course *models.Course) ([]byte, error) {
	if err := checkRenderable(course); err != nil {
		return nil, err
	}

	stamp := documentEpoch
	if !course.CreatedAt.IsZero() {
		stamp = course.CreatedAt.UTC()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(course.Name, true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, el := range layoutCourse(course) {
		drawElement(pdf, tr, el)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.logger.Error("PDF rendering failed", "course_name", course.Name, "error", err)
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	return buf.Bytes(), nil
}

// canvas is the part of *fpdf.Fpdf the layout is drawn with
type canvas interface {
	SetFont(familyStr, styleStr string, size float64)
	SetTextColor(r, g, b int)
	MultiCell(w, h float64, txtStr, borderStr, alignStr string, fill bool)
	WriteLinkString(h float64, displayStr, targetStr string)
	SetX(x float64)
	GetX() float64
	Ln(h float64)
}

// drawElement leaves the text color black after every element.
func drawElement(pdf canvas, tr func(string) string, el element) {
	switch el.kind {
	case elemTitle:
		pdf.SetFont("Helvetica", "B", 24)
		pdf.MultiCell(0, 11, tr(el.text), "", "C", false)
	case elemHeading:
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 8, tr(el.text), "", "L", false)
	case elemSubheading:
		pdf.SetFont("Helvetica", "BU", 13)
		pdf.MultiCell(0, 7, tr(el.text), "", "L", false)
	case elemParagraph:
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 6, tr(el.text), "", "L", false)
		pdf.Ln(2)
	case elemQuestion:
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5.5, tr(el.text), "", "L", false)
	case elemQuizLine:
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetX(pdf.GetX() + 6)
		pdf.MultiCell(0, 5, tr(el.text), "", "L", false)
	case elemVideoLink:
		pdf.SetFont("Helvetica", "U", 10)
		pdf.SetTextColor(0, 0, 255)
		pdf.WriteLinkString(5, tr(el.text), el.url)
		pdf.Ln(5)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
	case elemSpace:
		pdf.Ln(5)
	}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// ExportFilename collapses every non-alphanumeric run of the course name into "_"
func ExportFilename(courseName string, format models.ExportFormat) string {
	return nonAlphanumeric.ReplaceAllString(courseName, "_") + "." + string(format)
}

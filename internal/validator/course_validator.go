package validator

import (
	"fmt"
	"strings"

	"github.com/SAP-F-2025/course-service/internal/errors"
	"github.com/SAP-F-2025/course-service/internal/models"
)

// CourseValidator turns an extracted provider payload into a Course or reports the first violation.
type CourseValidator struct{}

func NewCourseValidator() *CourseValidator {
	return &CourseValidator{}
}

// Validate checks, in order: top-level fields and lesson count, then per lesson its title,
// explanation and quiz count, then per quiz its question, type, answer and option rules.
// At every level presence is checked before types. The returned error names the first
// offending position; there is no repair.
func (v *CourseValidator) Validate(payload map[string]any, expectedLessons int) (*models.Course, error) {
	if payload == nil {
		return nil, errors.NewIndexedValidationError("course", "payload is empty", nil)
	}
	if err := checkNode(payload, "", courseNodeSchema, "course_name", "goal", "lessons"); err != nil {
		return nil, err
	}

	lessons, _ := payload["lessons"].([]any)
	if len(lessons) == 0 {
		return nil, errors.NewIndexedValidationError("lessons", "must contain at least 1 lesson", 0)
	}
	if expectedLessons > 0 && len(lessons) != expectedLessons {
		return nil, errors.NewIndexedValidationError("lessons",
			fmt.Sprintf("must contain exactly %d lessons", expectedLessons), len(lessons))
	}

	course := &models.Course{
		Name:    text(payload["course_name"]),
		Goal:    text(payload["goal"]),
		Lessons: make([]models.Lesson, len(lessons)),
	}

	for li, rl := range lessons {
		lesson, err := v.validateLesson(fmt.Sprintf("lessons[%d]", li), rl)
		if err != nil {
			return nil, err
		}
		course.Lessons[li] = lesson
	}

	return course, nil
}

func (v *CourseValidator) validateLesson(path string, raw any) (models.Lesson, error) {
	node, ok := raw.(map[string]any)
	if !ok {
		return models.Lesson{}, errors.NewIndexedValidationError(path, "must be an object", nil)
	}
	if err := checkNode(node, path, lessonNodeSchema, "title", "explanation", "quizzes"); err != nil {
		return models.Lesson{}, err
	}

	quizzes, _ := node["quizzes"].([]any)
	if len(quizzes) != models.QuizzesPerLesson {
		return models.Lesson{}, errors.NewIndexedValidationError(path+".quizzes",
			fmt.Sprintf("must contain exactly %d quizzes", models.QuizzesPerLesson), len(quizzes))
	}

	lesson := models.Lesson{
		Title:       text(node["title"]),
		Explanation: text(node["explanation"]),
		Quizzes:     make([]models.Quiz, len(quizzes)),
	}
	for qi, rq := range quizzes {
		quiz, err := v.validateQuiz(fmt.Sprintf("%s.quizzes[%d]", path, qi), rq)
		if err != nil {
			return models.Lesson{}, err
		}
		lesson.Quizzes[qi] = quiz
	}
	return lesson, nil
}

func (v *CourseValidator) validateQuiz(path string, raw any) (models.Quiz, error) {
	node, ok := raw.(map[string]any)
	if !ok {
		return models.Quiz{}, errors.NewIndexedValidationError(path, "must be an object", nil)
	}
	if err := checkNode(node, path, quizNodeSchema, "question", "type", "answer"); err != nil {
		return models.Quiz{}, err
	}

	rawType := text(node["type"])
	quizType, ok := models.ParseQuizType(rawType)
	if !ok {
		return models.Quiz{}, errors.NewIndexedValidationError(path+".type",
			"must be a valid quiz type (multiple choice, true/false, short answer)", rawType)
	}
	answer, _ := scalarText(node["answer"])

	quiz := models.Quiz{
		Question: text(node["question"]),
		Type:     quizType,
		Answer:   answer,
	}
	if quizType != models.MultipleChoice {
		// stray options on other types are dropped unread
		return quiz, nil
	}

	options, err := validateOptions(path+".options", node["options"], answer)
	if err != nil {
		return models.Quiz{}, err
	}
	quiz.Options = options
	return quiz, nil
}

func validateOptions(path string, raw any, answer string) ([]string, error) {
	list, _ := raw.([]any)
	if len(list) != models.MultipleChoiceOptions {
		return nil, errors.NewIndexedValidationError(path,
			fmt.Sprintf("must have exactly %d entries", models.MultipleChoiceOptions), len(list))
	}

	options := make([]string, len(list))
	matched := false
	for oi, ro := range list {
		opt, ok := scalarText(ro)
		if !ok || opt == "" {
			return nil, errors.NewIndexedValidationError(fmt.Sprintf("%s[%d]", path, oi), "must not be empty", nil)
		}
		options[oi] = opt
		if strings.EqualFold(opt, answer) {
			matched = true
		}
	}
	if !matched {
		return nil, errors.NewIndexedValidationError(strings.TrimSuffix(path, ".options")+".answer",
			"must match one of the options", answer)
	}
	return options, nil
}

// checkNode reports the first missing field, then the first mistyped one.
func checkNode(node map[string]any, path string, schema nodeSchema, required ...string) error {
	for _, field := range required {
		if !present(node[field]) {
			return errors.NewIndexedValidationError(join(path, field), "is required", nil)
		}
	}
	if field, reason, ok := schema.check(node); !ok {
		return errors.NewIndexedValidationError(join(path, field), reason, nil)
	}
	return nil
}

func join(path, field string) string {
	switch {
	case field == "":
		if path == "" {
			return "course"
		}
		return path
	case path == "":
		return field
	default:
		return path + "." + field
	}
}

// present is false for absent, null and blank string values. Values of the wrong type count
// as present and are reported by the type check.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	default:
		return true
	}
}

func text(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// scalarText renders a string, number or boolean answer as trimmed text.
func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case bool:
		if t {
			return "True", true
		}
		return "False", true
	case float64:
		return strings.TrimSpace(fmt.Sprintf("%v", t)), true
	default:
		return "", false
	}
}

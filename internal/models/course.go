package models

import (
	"strings"
	"time"
)

type QuizType string

const (
	MultipleChoice QuizType = "multiple choice"
	TrueFalse      QuizType = "true/false"
	ShortAnswer    QuizType = "short answer"
)

const (
	QuizzesPerLesson      = 5
	MultipleChoiceOptions = 4
	MinLessons            = 1
	MaxLessons            = 10
)

var quizTypeAliases = map[string]QuizType{
	"multiple choice": MultipleChoice,
	"multiple_choice": MultipleChoice,
	"multiple-choice": MultipleChoice,
	"multiplechoice":  MultipleChoice,
	"mcq":             MultipleChoice,
	"true/false":      TrueFalse,
	"true_false":      TrueFalse,
	"true-false":      TrueFalse,
	"truefalse":       TrueFalse,
	"true or false":   TrueFalse,
	"boolean":         TrueFalse,
	"short answer":    ShortAnswer,
	"short_answer":    ShortAnswer,
	"short-answer":    ShortAnswer,
	"shortanswer":     ShortAnswer,
}

// ParseQuizType maps a provider- or client-supplied type label to its canonical value.
func ParseQuizType(raw string) (QuizType, bool) {
	t, ok := quizTypeAliases[strings.ToLower(strings.TrimSpace(raw))]
	return t, ok
}

func (t QuizType) Valid() bool {
	return t == MultipleChoice || t == TrueFalse || t == ShortAnswer
}

// CourseRequest is the caller input of one generation run.
type CourseRequest struct {
	Topic       string `json:"prompt" validate:"required,notblank,max=500"`
	LessonCount int    `json:"lessons" validate:"min=1,max=10"`
}

type Quiz struct {
	Question string   `json:"question"`
	Type     QuizType `json:"type"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
}

type VideoRef struct {
	Title     string `json:"title"`
	ID        string `json:"videoId"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

type Lesson struct {
	Title       string     `json:"title"`
	Explanation string     `json:"explanation"`
	Quizzes     []Quiz     `json:"quizzes"`
	Videos      []VideoRef `json:"videos"`
}

type Course struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"course_name"`
	Goal      string    `json:"goal"`
	Lessons   []Lesson  `json:"lessons"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy so callers never share slices with a stored or cached course.
func (c Course) Clone() Course {
	out := c
	if c.Lessons == nil {
		return out
	}
	out.Lessons = make([]Lesson, len(c.Lessons))
	for i, l := range c.Lessons {
		out.Lessons[i] = l.Clone()
	}
	return out
}

func (l Lesson) Clone() Lesson {
	out := l
	if l.Quizzes != nil {
		out.Quizzes = make([]Quiz, len(l.Quizzes))
		for i, q := range l.Quizzes {
			out.Quizzes[i] = q
			if q.Options != nil {
				out.Quizzes[i].Options = append([]string(nil), q.Options...)
			}
		}
	}
	if l.Videos != nil {
		out.Videos = append([]VideoRef(nil), l.Videos...)
	}
	return out
}

func (c Course) VideoCount() int {
	n := 0
	for _, l := range c.Lessons {
		n += len(l.Videos)
	}
	return n
}

package models

// LessonAnswers maps lessonIndex -> quizIndex -> submitted answer text.
type LessonAnswers map[int]map[int]string

// GradingResult maps lessonIndex -> quizIndex -> correctness. It is never persisted with the course.
type GradingResult map[int]map[int]bool

type GradingSummary struct {
	Results GradingResult `json:"results"`
	Correct int           `json:"correct"`
	Total   int           `json:"total"`
}

func (r GradingResult) Summary() GradingSummary {
	s := GradingSummary{Results: r}
	for _, quizzes := range r {
		for _, ok := range quizzes {
			s.Total++
			if ok {
				s.Correct++
			}
		}
	}
	return s
}

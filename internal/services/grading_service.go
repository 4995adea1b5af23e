package services

import (
	"strings"

	"github.com/SAP-F-2025/course-service/internal/models"
)

// Grade compares submitted answers with each lesson's first QuizzesPerLesson quizzes.
// Both sides are trimmed and lowercased; a missing or empty submission is incorrect.
// Grade is pure: the course is never modified.
func Grade(course *models.Course, answers models.LessonAnswers) models.GradingResult {
	result := make(models.GradingResult)
	if course == nil {
		return result
	}

	for li, lesson := range course.Lessons {
		quizzes := lesson.Quizzes
		if len(quizzes) > models.QuizzesPerLesson {
			quizzes = quizzes[:models.QuizzesPerLesson]
		}

		marks := make(map[int]bool, len(quizzes))
		for qi, quiz := range quizzes {
			submitted := answers[li][qi]
			marks[qi] = submitted != "" && normalizeAnswer(submitted) == normalizeAnswer(quiz.Answer)
		}
		result[li] = marks
	}
	return result
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

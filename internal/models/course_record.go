package models

import (
	"time"

	"gorm.io/datatypes"
)

// CourseRecord is the persisted shape of a course: the whole enriched document in one jsonb column,
// saved and read as a unit.
type CourseRecord struct {
	ID          string                     `json:"id" gorm:"primaryKey;size:36"`
	Name        string                     `json:"course_name" gorm:"type:text;not null;index"`
	LessonCount int                        `json:"lesson_count" gorm:"not null"`
	Document    datatypes.JSONType[Course] `json:"document" gorm:"type:jsonb;not null"`
	CreatedAt   time.Time                  `json:"created_at" gorm:"index"`
}

func (CourseRecord) TableName() string {
	return "courses"
}

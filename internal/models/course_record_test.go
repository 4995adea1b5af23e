package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestCourseRecord_NameIsUnboundedText(t *testing.T) {
	s, err := schema.Parse(&CourseRecord{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("Name")
	require.NotNil(t, field)
	assert.Equal(t, schema.DataType("text"), field.DataType)
	assert.Zero(t, field.Size)
	assert.Equal(t, "courses", s.Table)
}

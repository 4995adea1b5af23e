package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	t.Run("surrounding noise", func(t *testing.T) {
		payload, ok := ExtractJSONObject(`noise {"a":1} trailing`)
		require.True(t, ok)
		assert.Equal(t, Payload{"a": float64(1)}, payload)
	})

	t.Run("markdown fence", func(t *testing.T) {
		raw := "Here is your course:\n```json\n{\"course_name\": \"Go\", \"lessons\": []}\n```"
		payload, ok := ExtractJSONObject(raw)
		require.True(t, ok)
		assert.Equal(t, "Go", payload["course_name"])
		assert.Equal(t, []any{}, payload["lessons"])
	})

	t.Run("nested objects use outermost braces", func(t *testing.T) {
		payload, ok := ExtractJSONObject(`x {"a":{"b":{"c":true}}} y`)
		require.True(t, ok)
		assert.Equal(t, map[string]any{"b": map[string]any{"c": true}}, payload["a"])
	})

	cases := map[string]string{
		"no braces":    "the model refused to answer",
		"empty":        "",
		"only opening": `{"a": 1`,
		"only closing": `"a": 1}`,
		"reversed":     `} nothing {`,
		"truncated":    `{"a": [1, 2}`,
		"two objects":  `{"a":1} and {"b":2}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			payload, ok := ExtractJSONObject(raw)
			assert.False(t, ok)
			assert.Nil(t, payload)
		})
	}
}

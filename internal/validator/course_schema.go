package validator

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// nodeSchema pins the JSON types of one level of the payload (course, lesson or quiz). Nested
// levels are checked separately so violations are reported in walk order.
type nodeSchema struct {
	schema *gojsonschema.Schema
	order  []string
}

var (
	courseNodeSchema = mustCompileNode(`{
		"type": "object",
		"properties": {
			"course_name": {"type": "string"},
			"goal": {"type": "string"},
			"lessons": {"type": "array"}
		}
	}`, "course_name", "goal", "lessons")

	lessonNodeSchema = mustCompileNode(`{
		"type": "object",
		"properties": {
			"title": {"type": "string"},
			"explanation": {"type": "string"},
			"quizzes": {"type": "array"}
		}
	}`, "title", "explanation", "quizzes")

	// options are typed only for multiple choice, in validateOptions
	quizNodeSchema = mustCompileNode(`{
		"type": "object",
		"properties": {
			"question": {"type": "string"},
			"type": {"type": "string"},
			"answer": {"type": ["string", "number", "boolean"]}
		}
	}`, "question", "type", "answer")
)

func mustCompileNode(s string, order ...string) nodeSchema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("invalid course payload schema: %v", err))
	}
	return nodeSchema{schema: schema, order: order}
}

// check returns the first mistyped field of node, following the declared field order.
func (n nodeSchema) check(node map[string]any) (string, string, bool) {
	result, err := n.schema.Validate(gojsonschema.NewGoLoader(node))
	if err != nil {
		return "", err.Error(), false
	}
	if result.Valid() {
		return "", "", true
	}

	byField := make(map[string]string, len(result.Errors()))
	for _, e := range result.Errors() {
		if _, seen := byField[e.Field()]; !seen {
			byField[e.Field()] = e.Description()
		}
	}
	for _, field := range n.order {
		if reason, ok := byField[field]; ok {
			return field, reason, false
		}
	}
	return "", result.Errors()[0].Description(), false
}

package model

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const generateSchema = `{
  "type": "object",
  "required": ["template", "data"],
  "properties": {
    "template": {"type": "string", "minLength": 1},
    "data": {"type": "object"}
  }
}`

const previewSchema = `{
  "type": "object",
  "required": ["data"],
  "properties": {
    "template": {"type": "string"},
    "data": {"type": "object"}
  }
}`

var (
	generateLoader = gojsonschema.NewStringLoader(generateSchema)
	previewLoader  = gojsonschema.NewStringLoader(previewSchema)
)

// ValidationError lists every schema violation of a request envelope.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %s", strings.Join(e.Problems, "; "))
}

// ValidateGenerate checks a {template, data} envelope. Only the envelope is
// checked; the resume inside data is normalized, never rejected.
func ValidateGenerate(body []byte) error {
	return validate(generateLoader, body)
}

// ValidatePreview checks a {template?, data} envelope.
func ValidatePreview(body []byte) error {
	return validate(previewLoader, body)
}

func validate(schema gojsonschema.JSONLoader, body []byte) error {
	res, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &ValidationError{Problems: []string{err.Error()}}
	}
	if res.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, e := range res.Errors() {
		ve.Problems = append(ve.Problems, e.String())
	}
	return ve
}

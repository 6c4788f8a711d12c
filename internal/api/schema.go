package api

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var answerSchemaJSON []byte

// validator checks the shape of an Answer Set before it reaches the core.
// Values that only fail coercion (a year written as words) are left to the
// core, which treats them as absent.
type validator struct {
	schema *gojsonschema.Schema
}

func newValidator() (*validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(answerSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile answer schema: %w", err)
	}
	return &validator{schema: schema}, nil
}

// Validate returns one message per violation, or nil when the payload is acceptable.
func (v *validator) Validate(payload map[string]any) ([]string, error) {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return errs, nil
}

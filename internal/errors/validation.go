package errors

import (
	"fmt"
	"slices"
	"strings"
)

// validationMetaKey holds the per-field problems on the error Build returns
const validationMetaKey = "validation_errors"

// ValidationBuilder gathers every problem with an input before failing, so
// one InvalidArgument names all missing fields at once.
type ValidationBuilder struct {
	fields map[string][]string
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a problem with field
func (vb *ValidationBuilder) Field(field, problem string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], problem)
	return vb
}

func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns nil when nothing was recorded. Otherwise the error lists the
// fields in sorted order and carries them under the validation_errors key.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for field := range vb.fields {
		names = append(names, field)
	}
	slices.Sort(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(vb.fields[field], ", "))
	}

	return InvalidArgumentf("validation failed: %s", strings.Join(parts, "; ")).
		WithMeta(validationMetaKey, vb.fields)
}

// ValidateRequired records field as required when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

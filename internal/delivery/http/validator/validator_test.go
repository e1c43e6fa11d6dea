package validator

import (
	"strings"
	"testing"

	domainerrors "taskboard/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Titulo      string `json:"titulo" validate:"required,min=3,max=200"`
	Descripcion string `json:"descripcion" validate:"required,min=10,max=2000"`
	Estado      string `json:"estado" validate:"omitempty,oneof=pendiente en_progreso completada"`
}

func TestRequestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Titulo:      "Write spec",
		Descripcion: "Draft the design doc",
		Estado:      "pendiente",
	})

	assert.NoError(t, err)
}

func TestRequestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Titulo:      "ab",
		Descripcion: "short",
	})

	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	fields := validationErr.Fields()
	require.Len(t, fields, 2)
	// Field names come from json tags, not Go struct fields
	assert.Equal(t, "titulo", fields[0].Field)
	assert.Equal(t, "descripcion", fields[1].Field)
}

func TestRequestValidator_EnumeratesEveryField(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Titulo:      "",
		Descripcion: "",
		Estado:      "archived",
	})

	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Fields(), 3)
}

func TestRequestValidator_MaxLength(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Titulo:      strings.Repeat("a", 201),
		Descripcion: "Draft the design doc",
	})

	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Fields(), 1)
	assert.Contains(t, validationErr.Fields()[0].Message, "at most 200")
}

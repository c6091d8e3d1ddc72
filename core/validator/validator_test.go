package validator_test

import (
	"errors"
	"testing"

	"inventory-manager/core/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required,notblank,max=10"`
	Count int    `validate:"gte=0"`
}

func TestDefaultValidator(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(sample{Name: "Widget", Count: 0}))

	tests := []struct {
		name    string
		in      sample
		field   string
		message string
	}{
		{"MissingName", sample{Count: 1}, "Name", "field is required"},
		{"BlankName", sample{Name: "   ", Count: 1}, "Name", "must not be blank"},
		{"LongName", sample{Name: "abcdefghijk", Count: 1}, "Name", "must be at most 10"},
		{"NegativeCount", sample{Name: "ok", Count: -1}, "Count", "must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			require.Error(t, err)
			assert.True(t, validator.IsValidationError(err))

			fe, ok := validator.FirstFieldError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, fe.Field())
			assert.Equal(t, tt.message, validator.ValidationErrorMessage(fe))
		})
	}
}

func TestIsValidationError_Plain(t *testing.T) {
	assert.False(t, validator.IsValidationError(errors.New("nope")))
	_, ok := validator.FirstFieldError(errors.New("nope"))
	assert.False(t, ok)
}

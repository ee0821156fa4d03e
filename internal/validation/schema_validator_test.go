package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {
			"type": "string"
		},
		"age": {
			"type": "integer",
			"minimum": 0
		}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	validator := NewSchemaValidator()
	require.NoError(t, validator.Register("person.schema.json", []byte(personSchema)))

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid data",
			data:      `{"name": "John", "age": 30}`,
			wantError: false,
		},
		{
			name:      "valid data without optional field",
			data:      `{"name": "Jane"}`,
			wantError: false,
		},
		{
			name:      "missing required field",
			data:      `{"age": 25}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "wrong type for field",
			data:      `{"name": "John", "age": "thirty"}`,
			wantError: true,
			errorMsg:  "/age",
		},
		{
			name:      "constraint violation",
			data:      `{"name": "John", "age": -5}`,
			wantError: true,
			errorMsg:  "minimum",
		},
		{
			name:      "invalid JSON",
			data:      `{"name": "John", "age": }`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), "person.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_Register(t *testing.T) {
	t.Run("registering twice is a no-op", func(t *testing.T) {
		validator := NewSchemaValidator()
		require.NoError(t, validator.Register("person.schema.json", []byte(personSchema)))
		assert.NoError(t, validator.Register("person.schema.json", []byte(personSchema)))
	})

	t.Run("invalid schema JSON", func(t *testing.T) {
		validator := NewSchemaValidator()
		err := validator.Register("broken.schema.json", []byte(`{"type": `))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse schema JSON")
	})

	t.Run("unregistered schema", func(t *testing.T) {
		validator := NewSchemaValidator()
		err := validator.ValidateBytes([]byte(`{}`), "missing.schema.json")
		assert.ErrorIs(t, err, ErrSchemaNotRegistered)
	})
}

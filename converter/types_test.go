package converter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oas2jsonschema/oaserrors"
)

func TestValidateType(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantType  string
		wantShape bool
	}{
		{name: "absent", value: nil},
		{name: "integer", value: "integer"},
		{name: "number", value: "number"},
		{name: "string", value: "string"},
		{name: "boolean", value: "boolean"},
		{name: "object", value: "object"},
		{name: "array", value: "array"},
		{name: "unknown name", value: "foo", wantType: "foo"},
		{name: "null alone is not a scalar type", value: "null", wantType: "null"},
		{name: "legacy enum sentinel", value: "enum", wantType: "enum"},
		{name: "normalized list", value: []any{"string", "null"}},
		{name: "list with invalid member", value: []any{"string", "date"}, wantType: "date"},
		{name: "list with non-string member", value: []any{"string", 7}, wantType: "7"},
		{name: "number value", value: 12, wantShape: true},
		{name: "object value", value: Node{}, wantShape: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateType(tt.value)
			switch {
			case tt.wantShape:
				require.Error(t, err)
				assert.True(t, errors.Is(err, oaserrors.ErrShape))
			case tt.wantType != "":
				var typeErr *oaserrors.InvalidTypeError
				require.True(t, errors.As(err, &typeErr), "expected InvalidTypeError, got %v", err)
				assert.Equal(t, tt.wantType, typeErr.Type)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeTypes(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		in   Node
		want Node
	}{
		{
			name: "no type and not nullable is untouched",
			in:   Node{"format": "date", "description": "x"},
			want: Node{"format": "date", "description": "x"},
		},
		{
			name: "nullable scalar",
			in:   Node{"type": "string", "nullable": true},
			want: Node{"type": []any{"string", "null"}, "nullable": true},
		},
		{
			name: "nullable false keeps scalar",
			in:   Node{"type": "string", "nullable": false},
			want: Node{"type": "string", "nullable": false},
		},
		{
			name: "nullable list gets null once",
			in:   Node{"type": []any{"string", "integer"}, "nullable": true},
			want: Node{"type": []any{"string", "integer", "null"}, "nullable": true},
		},
		{
			name: "nullable list already containing null",
			in:   Node{"type": []any{"string", "null"}, "nullable": true},
			want: Node{"type": []any{"string", "null"}, "nullable": true},
		},
		{
			name: "nullable oneOf gains null alternative",
			in:   Node{"oneOf": []any{Node{"type": "string"}}, "nullable": true},
			want: Node{"oneOf": []any{Node{"type": "string"}, Node{"type": "null"}}, "nullable": true},
		},
		{
			name: "nullable anyOf and oneOf both gain null alternative",
			in: Node{
				"anyOf":    []any{Node{"type": "integer"}},
				"oneOf":    []any{Node{"type": "string"}},
				"nullable": true,
			},
			want: Node{
				"anyOf":    []any{Node{"type": "integer"}, Node{"type": "null"}},
				"oneOf":    []any{Node{"type": "string"}, Node{"type": "null"}},
				"nullable": true,
			},
		},
		{
			name: "date kept without flag",
			in:   Node{"type": "string", "format": "date"},
			want: Node{"type": "string", "format": "date"},
		},
		{
			name: "date becomes date-time with flag",
			opts: []Option{WithDateToDateTime(true)},
			in:   Node{"type": "string", "format": "date"},
			want: Node{"type": "string", "format": "date-time"},
		},
		{
			name: "date on non-string untouched",
			opts: []Option{WithDateToDateTime(true)},
			in:   Node{"type": "integer", "format": "date"},
			want: Node{"type": "integer", "format": "date"},
		},
		{
			name: "missing format stays absent",
			opts: []Option{WithDateToDateTime(true)},
			in:   Node{"type": "string"},
			want: Node{"type": "string"},
		},
		{
			name: "enum sentinel",
			in:   Node{"type": "enum"},
			want: Node{"type": []any{"enum", "integer"}},
		},
		{
			name: "nullable enum sentinel is only made nullable",
			in:   Node{"type": "enum", "nullable": true},
			want: Node{"type": []any{"enum", "null"}, "nullable": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts...)
			require.NoError(t, err)

			got, err := c.NormalizeTypes(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTypes_NonBoolNullable(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	_, err = c.NormalizeTypes(Node{"type": "string", "nullable": "yes"})
	var shapeErr *oaserrors.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "nullable", shapeErr.Key)
	assert.Equal(t, "string", shapeErr.Actual)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayValue(t *testing.T) {
	tests := []struct {
		name  string
		input StringArray
		want  string
	}{
		{"nil array", nil, "[]"},
		{"empty array", StringArray{}, "[]"},
		{"options", StringArray{"Email", "Phone"}, `["Email","Phone"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringArrayScan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  StringArray
	}{
		{"nil value", nil, StringArray{}},
		{"json array bytes", []byte(`["a","b"]`), StringArray{"a", "b"}},
		{"json array string", `["x"]`, StringArray{"x"}},
		{"empty string", "", StringArray{}},
		{"sql null literal", "null", StringArray{}},
		{"legacy quoted string", `"Walk-in"`, StringArray{"Walk-in"}},
		{"legacy bare string", "Referral", StringArray{"Referral"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringArray
			require.NoError(t, got.Scan(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringArrayScanUnsupportedType(t *testing.T) {
	var got StringArray
	assert.Error(t, got.Scan(42))
}

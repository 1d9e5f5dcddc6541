package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowOrigin(t *testing.T) {
	t.Run("empty pattern list allows everything", func(t *testing.T) {
		allow := allowOrigin(nil)
		assert.True(t, allow("https://anywhere.example.com"))
	})

	allow := allowOrigin([]string{"crm.example.com", "*.example.org", "localhost:*"})

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://crm.example.com", true},
		{"https://evil.example.com", false},
		{"https://app.example.org", true},
		{"http://localhost:3000", true},
		{"http://localhost:5173", true},
		{"http://remotehost:3000", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.want, allow(tt.origin))
		})
	}
}

package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		expected  int
		expectErr bool
	}{
		{"absent uses default", "/x", 10, false},
		{"valid value", "/x?limit=25", 25, false},
		{"at max", "/x?limit=500", 500, false},
		{"above max", "/x?limit=501", 0, true},
		{"zero", "/x?limit=0", 0, true},
		{"negative", "/x?limit=-5", 0, true},
		{"not an integer", "/x?limit=abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			value, err := ParseIntParam(r, "limit", 10, 500)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("0")
	assert.Error(t, err)

	_, err = ParseID("abc")
	assert.Error(t, err)

	_, err = ParseID("-3")
	assert.Error(t, err)
}

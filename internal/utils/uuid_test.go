package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID(t *testing.T) {
	id, err := uuid.Parse(NewTraceID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestIsValidTraceID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "550e8400-e29b-41d4-a716-446655440000", want: true},
		{id: "my-custom-trace-id", want: true},
		{id: "", want: false},
		{id: "has space", want: false},
		{id: "line\nbreak", want: false},
		{id: "трасса", want: false},
		{id: strings.Repeat("a", 129), want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidTraceID(tt.id), "id %q", tt.id)
	}
}

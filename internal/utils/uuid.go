package utils

import (
	"unicode"

	"github.com/google/uuid"
)

const maxTraceIDLength = 128

// NewTraceID returns a UUIDv7, so ids of consecutive requests sort by time.
// A random v4 is used if the clock source fails.
func NewTraceID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// IsValidTraceID reports whether a caller-supplied trace id can be logged
// and echoed back as is.
func IsValidTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, r := range id {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || r == ' ' {
			return false
		}
	}
	return true
}

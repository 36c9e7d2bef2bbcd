package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, incoming string, next http.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_Header(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "incoming id is reused", incoming: "my-custom-trace-id"},
		{name: "uuid incoming id", incoming: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "id generated when absent"},
		{name: "unprintable id replaced", incoming: "bad\tid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			nextCalled := false

			rr := executeWithTraceID(h, tt.incoming, func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			assert.True(t, nextCalled)
			got := rr.Header().Get(traceIDHeader)
			if tt.incoming != "" && tt.incoming != "bad\tid" {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "generated trace id must be a uuid, got %q", got)
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

	first := executeWithTraceID(h, "", next).Header().Get(traceIDHeader)
	second := executeWithTraceID(h, "", next).Header().Get(traceIDHeader)

	assert.NotEqual(t, first, second)
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.NewWriterLogger(&buf, "test")}

	executeWithTraceID(h, "trace-42", func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
		w.WriteHeader(http.StatusOK)
	})

	require.Contains(t, buf.String(), "inside handler")
	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	assert.Contains(t, buf.String(), `"role":"test"`)
}

func TestWithTraceID_ParentLoggerUnchanged(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.NewWriterLogger(&buf, "test")}

	executeWithTraceID(h, "trace-1", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	buf.Reset()
	h.logger.Info().Msg("after request")

	assert.NotContains(t, buf.String(), "trace_id")
}

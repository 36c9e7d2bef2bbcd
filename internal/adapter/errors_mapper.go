package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/clinical-records/internal/app"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{StatusCode: resp.StatusCode(), Errors: errorsField(resp.Body())}
	message := respErr.Message()

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		respErr.kind = ErrValidation
		if message == app.MsgResourceAlreadyExists {
			respErr.kind = ErrAlreadyExists
		}
	case http.StatusUnauthorized:
		respErr.kind = ErrUnauthorized
		if message == app.MsgInvalidCredentials {
			respErr.kind = ErrInvalidCredentials
		}
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	case http.StatusInternalServerError:
		respErr.kind = ErrInternalServerError
	}

	return respErr
}

// errorsField extracts "errors" from a JSON envelope. Bodies that are not an
// envelope (proxies, plain-text errors) are kept as a JSON string.
func errorsField(body []byte) json.RawMessage {
	var env struct {
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &env); err == nil && len(env.Errors) > 0 {
		return env.Errors
	}

	raw, _ := json.Marshal(strings.TrimSpace(string(body)))
	return raw
}

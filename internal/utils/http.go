package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/clinical-records/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response
// with the "Content-Type: application/json" header and the given status code.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteData writes a successful envelope carrying data.
func WriteData(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: true, Data: data}, statusCode)
}

// WriteMessage writes a successful envelope carrying only a message.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: true, Message: message}, statusCode)
}

// WriteErrors writes a failed envelope. errs is either a message string or a
// field-to-messages map.
func WriteErrors(w http.ResponseWriter, errs any, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: false, Errors: errs}, statusCode)
}

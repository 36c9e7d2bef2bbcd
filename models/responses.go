package models

// Response is the JSON envelope of every API response.
//
// Success is always present. A failed request fills Errors with either a
// single message or a map of field names to messages; a successful one fills
// Data and/or Message.
type Response struct {
	Success bool   `json:"success"`
	Errors  any    `json:"errors,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

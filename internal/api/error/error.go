// Package error contains the error body returned by the API and the codes
// it may carry.
package error

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is the JSON body of every failed request.
type Error struct {
	Status  int       `json:"status"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	ErrorID string    `json:"error_id"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

func New(code ErrorCode, message, requestID string) *Error {
	return &Error{
		Status:  code.StatusCode(),
		Code:    code,
		Message: message,
		ErrorID: requestID,
	}
}

// WriteJSON writes body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	return nil
}

// EncodeError writes an error body for code.
func EncodeError(w http.ResponseWriter, code ErrorCode, message, requestID string) error {
	e := New(code, message, requestID)
	return WriteJSON(w, e.Status, e)
}

func EncodeInternalError(w http.ResponseWriter, requestID string) error {
	return EncodeError(w, InternalServerError, "internal server error", requestID)
}

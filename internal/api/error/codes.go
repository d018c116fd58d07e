package error

import "net/http"

type ErrorCode string

const (
	UnknownError        ErrorCode = "unknown_error"
	InternalServerError ErrorCode = "internal_server_error"
	BadRequest          ErrorCode = "bad_request"
	UnknownField        ErrorCode = "unknown_field"
	ValidationFailed    ErrorCode = "validation_failed"
	MethodNotAllowed    ErrorCode = "method_not_allowed"
	NotFound            ErrorCode = "not_found"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:        0, // No error code - unknown
	InternalServerError: http.StatusInternalServerError,
	BadRequest:          http.StatusBadRequest,
	UnknownField:        http.StatusNotFound,
	ValidationFailed:    http.StatusUnprocessableEntity,
	MethodNotAllowed:    http.StatusMethodNotAllowed,
	NotFound:            http.StatusNotFound,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}

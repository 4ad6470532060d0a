// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorDetail is the body shape for all client-facing errors.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// InternalErrorBody is the body shape produced by the panic-recovery boundary.
type InternalErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Detail writes an error response with the given status and detail message.
func Detail(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, ErrorDetail{Detail: detail})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, detail string) {
	Detail(w, http.StatusBadRequest, detail)
}

// Unauthorized writes a 401 response.
func Unauthorized(w http.ResponseWriter, detail string) {
	Detail(w, http.StatusUnauthorized, detail)
}

// Forbidden writes a 403 response.
func Forbidden(w http.ResponseWriter, detail string) {
	Detail(w, http.StatusForbidden, detail)
}

// UploadFailed writes a 500 response for a staging or provider failure.
func UploadFailed(w http.ResponseWriter, detail string) {
	Detail(w, http.StatusInternalServerError, detail)
}

// InternalError writes the generic 500 response for unhandled failures.
func InternalError(w http.ResponseWriter, detail string) {
	JSON(w, http.StatusInternalServerError, InternalErrorBody{
		Status:  "error",
		Message: "Internal server error",
		Detail:  detail,
	})
}

package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope written for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// New builds the envelope for status.
func New(status int) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   status,
		Message: Message(status),
	}
}

// RespondError writes the standard error envelope with status.
func RespondError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(New(status))
}

// RespondBadRequest writes a 400 envelope.
func RespondBadRequest(w http.ResponseWriter) {
	RespondError(w, http.StatusBadRequest)
}

// RespondNotFound writes a 404 envelope.
func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound)
}

// RespondMethodNotAllowed writes a 405 envelope.
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed)
}

// RespondUnprocessable writes a 422 envelope.
func RespondUnprocessable(w http.ResponseWriter) {
	RespondError(w, http.StatusUnprocessableEntity)
}

// RespondInternalError writes a 500 envelope.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError)
}

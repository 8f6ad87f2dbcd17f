package errors

import "net/http"

// Short messages rendered in the error envelope, keyed by HTTP status.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusForbidden:           "access forbidden",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusConflict:            "conflict",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "server error",
	http.StatusBadGateway:          "upstream error",
}

// Message returns the envelope message for status.
func Message(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

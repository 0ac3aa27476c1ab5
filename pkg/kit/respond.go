package kit

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError renders any failure as the uniform error body. Untyped errors
// never leak their text; they become a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	status, kind, msg := http.StatusInternalServerError, KindInternal, "internal server error"

	var e *Error
	if errors.As(err, &e) {
		status, kind, msg = e.Status, e.Kind, e.Message
	}

	WriteJSON(w, status, ErrorResponse{Error: ErrorDetail{Message: msg, Type: kind}})
}

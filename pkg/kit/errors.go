package kit

import "net/http"

const (
	KindNotFound     = "NotFoundError"
	KindValidation   = "ValidationError"
	KindUnauthorized = "UnauthorizedError"
	KindRateLimit    = "RateLimitError"
	KindInternal     = "InternalServerError"
)

// Error is a failure with an HTTP status and a stable kind string. Anything
// else that reaches the translator is reported as a 500 internal error.
type Error struct {
	Status  int
	Kind    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Kind: KindNotFound, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Kind: KindValidation, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Kind: KindUnauthorized, Message: msg}
}

func RateLimited(msg string) *Error {
	return &Error{Status: http.StatusTooManyRequests, Kind: KindRateLimit, Message: msg}
}

// HandlerFunc reports failures instead of writing them itself.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handle adapts a HandlerFunc so that every failure it reports goes through
// the one translator that owns the error body.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			WriteError(w, err)
		}
	}
}

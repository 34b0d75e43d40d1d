package cerror

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// ThrowError writes message as a plain-text body with the given status.
// The body is written verbatim, without the trailing newline http.Error adds.
func ThrowError(w http.ResponseWriter, message string, status int) bool {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	_, _ = w.Write([]byte(message))

	errorLogger(message, status)

	return true
}

// ThrowFromError maps err onto a response: validation failures become 400
// with their fixed message, anything else a 500.
func ThrowFromError(w http.ResponseWriter, err error) bool {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return ThrowError(w, verr.Message(), http.StatusBadRequest)
	}

	logger.Error("unexpected error", zap.Error(err))
	return ThrowError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

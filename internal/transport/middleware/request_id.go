package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with a correlation ID. A client-supplied
// X-Request-Id is honored so upstream proxies can trace through; otherwise a
// fresh UUID is generated. The ID goes into the context for the Logger
// middleware and is echoed back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

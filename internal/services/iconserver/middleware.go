package iconserver

import (
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/iconkit/internal/platform/id"
	"github.com/louisbranch/iconkit/internal/platform/requestctx"
)

const (
	requestIDHeader = "X-Request-Id"
	// maxRequestIDLen bounds caller-supplied request ids.
	maxRequestIDLen = 128
)

// withRequestID reuses the caller's X-Request-Id or assigns a new one, echoes
// it on the response and stores it in the request context.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if requestID == "" || len(requestID) > maxRequestIDLen {
			generated, err := id.NewID()
			if err != nil {
				log.Printf("generate request id: %v", err)
			}
			requestID = generated
		}
		if requestID != "" {
			w.Header().Set(requestIDHeader, requestID)
		}
		next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), requestID)))
	})
}

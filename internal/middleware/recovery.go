package middleware

import (
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymmanager/internal/telemetry/metrics"
	"github.com/2beens/gymmanager/pkg"
)

const msgInternalError = "internal server error"

// PanicRecovery turns a handler panic into a 500 JSON error. It runs before
// LogRequest, so the request id is taken from the response header.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				log.WithFields(log.Fields{
					"request_id": w.Header().Get(RequestIDHeader),
					"method":     req.Method,
					"path":       req.URL.Path,
				}).Errorf("panic serving request: %v\n%s", r, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSONError(w, http.StatusInternalServerError, msgInternalError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}

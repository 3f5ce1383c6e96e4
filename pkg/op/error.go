package op

import (
	"log/slog"
	"net/http"

	"github.com/zitadel/logging"

	httphelper "github.com/provenid/oplogout/pkg/http"
	"github.com/provenid/oplogout/pkg/oidc"
)

// RequestError writes the protocol error as JSON response and logs it
// with the level suggested by the error. Non protocol errors are
// defaulted to server_error first, so no internal detail leaks.
func RequestError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	e := oidc.DefaultToServerError(err, err.Error())
	status := http.StatusBadRequest
	if e.ErrorType == oidc.ServerError {
		status = http.StatusInternalServerError
	}
	logger.Log(r.Context(), e.LogLevel(), "request error", "oidc_error", e)
	httphelper.MarshalJSONWithStatus(w, e, status) // Parent is excluded from JSON
}

func loggerFromContextOr(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if logger, ok := logging.FromContext(r.Context()); ok {
		return logger
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}

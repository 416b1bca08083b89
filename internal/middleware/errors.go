package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"tracegate-api/internal/shared"
	"tracegate-api/internal/trace"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewHTTPErrorHandler is the single place errors become responses. Every
// handled error triggers at most one error span and exactly one fixed-shape
// failure body carrying the request id. Span recording is best-effort and
// never replaces the original error.
func NewHTTPErrorHandler(rec *trace.Recorder, log *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Set by the track middleware before the handler ran.
		reqID := c.Response().Header().Get(shared.HeaderRequestID)

		var svcErr *shared.ServiceError
		var reqErr *shared.RequestError
		var httpErr *echo.HTTPError

		var writeErr error
		switch {
		case errors.As(err, &svcErr):
			recordErrorSpan(rec, c, err, reqID, shared.CategoryServiceError)
			writeErr = c.JSON(http.StatusInternalServerError, shared.ErrorBody{
				Detail:    shared.DetailServiceError,
				RequestID: reqID,
			})
		case errors.As(err, &reqErr):
			writeErr = c.JSON(reqErr.StatusCode, shared.ErrorBody{
				Detail:    reqErr.Err.Error(),
				RequestID: reqID,
			})
		case errors.As(err, &httpErr):
			writeErr = c.JSON(httpErr.Code, shared.ErrorBody{
				Detail:    fmt.Sprintf("%v", httpErr.Message),
				RequestID: reqID,
			})
		default:
			recordErrorSpan(rec, c, err, reqID, shared.CategoryUnhandled)
			writeErr = c.JSON(http.StatusInternalServerError, shared.ErrorBody{
				Detail:    shared.DetailInternal,
				RequestID: reqID,
			})
		}
		if writeErr != nil {
			log.Errorw("Failed to write error response", "error", writeErr)
		}
	}
}

func recordErrorSpan(rec *trace.Recorder, c echo.Context, err error, reqID, category string) {
	rec.RecordError(c.Request().Context(), category,
		map[string]any{
			"path":       c.Request().URL.Path,
			"method":     c.Request().Method,
			"request_id": reqID,
		},
		map[string]any{
			"error":      err.Error(),
			"error_type": category,
		},
	)
}

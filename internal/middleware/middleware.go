package middleware

import (
	"fmt"
	"time"

	"tracegate-api/internal/metrics"
	"tracegate-api/internal/setup"
	"tracegate-api/internal/shared"

	"github.com/aidarkhanov/nanoid"
	"github.com/labstack/echo/v4"
	emw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewTrackMiddleware establishes the request identity: an incoming
// X-Request-ID wins, otherwise a fresh id is generated. The id is written to
// the response header before the handler runs, so it is echoed on success,
// handler-error and panic paths alike.
func NewTrackMiddleware(log *zap.SugaredLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(shared.HeaderRequestID)
			if reqID == "" {
				id, _ := nanoid.Generate(requestIDAlphabet, 28)
				reqID = "req_" + id
			}
			c.Response().Header().Set(shared.HeaderRequestID, reqID)

			logger := log.With("request_id", reqID)

			cc := &setup.Context{Context: c, Log: logger, Reqid: reqID}
			start := time.Now()
			err := next(cc)
			if err != nil {
				// Convert the error here so the response status is final
				// before it is logged and counted. The error handler's
				// Committed guard keeps this single-shot.
				cc.Error(err)
				err = nil
			}
			duration := time.Since(start)
			cc.Log.Infow("end_of_request", "status_code", fmt.Sprintf("%d", cc.Response().Status), "duration", duration.String())
			metrics.RequestDuration.WithLabelValues(cc.Path()).Observe(duration.Seconds())
			metrics.ResponseCodes.WithLabelValues(cc.Path(), fmt.Sprintf("%d", cc.Response().Status)).Inc()
			return err
		}
	}
}

// NewRecoverMiddleware converts panics into errors that flow to the HTTP
// error handler, so even a panicking handler produces the uniform failure
// body and an error span.
func NewRecoverMiddleware(log *zap.SugaredLogger) echo.MiddlewareFunc {
	return emw.RecoverWithConfig(emw.RecoverConfig{
		StackSize: 1 << 10, // 1 KB
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			defer func() {
				_ = log.Sync()
			}()
			log.Errorw("Api Panic", "error", err.Error())
			return err
		},
	})
}

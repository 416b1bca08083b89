// Package setup server
package setup

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Context carries the per-request identity and scoped logger so downstream
// handlers never thread them by hand. Immutable after the track middleware
// builds it.
type Context struct {
	echo.Context
	Log   *zap.SugaredLogger
	Reqid string
}

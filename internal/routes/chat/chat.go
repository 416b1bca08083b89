// Package chat includes the route and dispatch logic for traced chat requests
package chat

import (
	"context"
	"net/http"
	"strings"

	"tracegate-api/internal/llm"
	"tracegate-api/internal/pool"
	"tracegate-api/internal/setup"
	"tracegate-api/internal/shared"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Invoker is the synchronous call the dispatcher offloads to the worker pool.
type Invoker interface {
	Invoke(ctx context.Context, inv llm.Invocation) (string, error)
}

type Manager struct {
	svc  Invoker
	pool *pool.Pool
	log  *zap.SugaredLogger
}

func NewManager(svc Invoker, p *pool.Pool, log *zap.SugaredLogger) *Manager {
	return &Manager{svc: svc, pool: p, log: log}
}

// HandleChat validates the request, resolves the session id (body field over
// header, else absent) and offloads the invocation. Errors are returned, not
// handled: the HTTP error handler owns the single error path.
func (m *Manager) HandleChat(cc echo.Context) error {
	c := cc.(*setup.Context)

	var req shared.ChatRequest
	if err := c.Bind(&req); err != nil {
		return shared.ErrInvalidRequest
	}
	if strings.TrimSpace(req.Message) == "" {
		return shared.ErrMissingMessage
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.Request().Header.Get(shared.HeaderSessionID)
	}

	inv := llm.Invocation{
		Prompt:    req.Message,
		RequestID: c.Reqid,
		SessionID: sessionID,
		Model:     req.Model,
	}

	ctx := c.Request().Context()
	var out string
	err := m.pool.Do(ctx, func() error {
		var invokeErr error
		out, invokeErr = m.svc.Invoke(ctx, inv)
		return invokeErr
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, shared.ChatResponse{
		Response:  out,
		RequestID: c.Reqid,
	})
}

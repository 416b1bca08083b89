// Package routers registers route groups on the echo server
package routers

import (
	"tracegate-api/internal/pool"
	"tracegate-api/internal/routes/chat"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func RegisterChatRoutes(base *echo.Group, svc chat.Invoker, workers *pool.Pool, log *zap.SugaredLogger) {
	manager := chat.NewManager(svc, workers, log)
	base.POST("/chat", manager.HandleChat)
}

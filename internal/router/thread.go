package router

import (
	"net/http"

	"github.com/deppfellow/threads-backend/internal/handler"
	"github.com/deppfellow/threads-backend/internal/validation"
	"github.com/labstack/echo/v4"
)

func registerThreadRoutes(g *echo.Group, h *handler.Handlers) {
	threads := g.Group("/threads")

	threads.POST("", handler.Handle(
		h.Thread.Handler,
		h.Thread.CreateThread,
		http.StatusCreated,
		&validation.ThreadRequest{},
	))

	threads.POST("/:threadId/comments", handler.Handle(
		h.Thread.Handler,
		h.Thread.AddComment,
		http.StatusCreated,
		&validation.CommentRequest{},
	))
}

package handler

import (
	"github.com/deppfellow/threads-backend/internal/middleware"
	"github.com/deppfellow/threads-backend/internal/model"
	"github.com/deppfellow/threads-backend/internal/server"
	"github.com/deppfellow/threads-backend/internal/service"
	"github.com/deppfellow/threads-backend/internal/validation"
	"github.com/labstack/echo/v4"
)

type ThreadHandler struct {
	Handler
	threads *service.ThreadService
}

func NewThreadHandler(s *server.Server, threads *service.ThreadService) *ThreadHandler {
	return &ThreadHandler{
		Handler: NewHandler(s),
		threads: threads,
	}
}

func (h *ThreadHandler) CreateThread(c echo.Context, req *validation.ThreadRequest) (*model.Thread, error) {
	return h.threads.CreateThread(c.Request().Context(), middleware.GetUserID(c), req)
}

func (h *ThreadHandler) AddComment(c echo.Context, req *validation.CommentRequest) (*model.Thread, error) {
	return h.threads.AddComment(c.Request().Context(), middleware.GetUserID(c), req)
}

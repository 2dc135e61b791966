package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/deppfellow/threads-backend/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIUIPath is the docs page, relative to the working directory.
const OpenAPIUIPath = "static/openapi.html"

type OpenAPIHandler struct {
	Handler
	path string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		path:    OpenAPIUIPath,
	}
}

func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := os.ReadFile(h.path)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}

package api

import (
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/triggerflow/triggerflow/pkg/webhook"
)

// maxWebhookBody caps inbound webhook payloads at 1 MiB.
const maxWebhookBody = 1 << 20

// webhookHandler handles GET/POST /webhooks/:service. The webhook service
// owns the whole pipeline (handshake, signature, parse, tenant resolution,
// enqueue); this handler only translates between HTTP and its request type.
func (s *Server) webhookHandler(c *echo.Context) error {
	service := c.Param("service")
	if service == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "service is required")
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	result := s.webhooks.Process(c.Request().Context(), &webhook.Request{
		Service: service,
		Method:  c.Request().Method,
		Query:   c.QueryParams(),
		Headers: c.Request().Header,
		Body:    body,
	})

	// Handshake echoes must go back as plain text, not JSON.
	if result.Text != "" {
		return c.String(result.Status, result.Text)
	}
	if result.JSON != nil {
		return c.JSON(result.Status, result.JSON)
	}
	return c.NoContent(result.Status)
}

package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/triggerflow/triggerflow/pkg/services"
)

// createAutomationHandler handles POST /api/v1/automations. New automations
// land in pending_review and must be activated via PATCH before they run.
func (s *Server) createAutomationHandler(c *echo.Context) error {
	var req CreateAutomationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	auto, err := s.automations.Create(c.Request().Context(), services.CreateAutomationInput{
		OwnerID:       req.UserID,
		Name:          req.Name,
		TriggerType:   req.TriggerType,
		TriggerConfig: req.TriggerConfig,
		Actions:       req.Actions,
		Variables:     req.Variables,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, toAutomationResponse(auto))
}

// listAutomationsHandler handles GET /api/v1/automations?user_id=&status=.
func (s *Server) listAutomationsHandler(c *echo.Context) error {
	autos, err := s.automations.List(c.Request().Context(), c.QueryParam("user_id"), c.QueryParam("status"))
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]*AutomationResponse, 0, len(autos))
	for _, auto := range autos {
		out = append(out, toAutomationResponse(auto))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"automations": out,
		"count":       len(out),
	})
}

// getAutomationHandler handles GET /api/v1/automations/:id.
func (s *Server) getAutomationHandler(c *echo.Context) error {
	auto, err := s.automations.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toAutomationResponse(auto))
}

// updateAutomationHandler handles PATCH /api/v1/automations/:id — lifecycle
// status transitions only (pending_review→active, active↔paused,
// any→disabled).
func (s *Server) updateAutomationHandler(c *echo.Context) error {
	var req UpdateAutomationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	auto, err := s.automations.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toAutomationResponse(auto))
}

// deleteAutomationHandler handles DELETE /api/v1/automations/:id.
func (s *Server) deleteAutomationHandler(c *echo.Context) error {
	if err := s.automations.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// automationLogsHandler handles GET /api/v1/automations/:id/logs.
func (s *Server) automationLogsHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		} else {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-500")
		}
	}

	logs, err := s.automations.Logs(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]*ExecutionLogResponse, 0, len(logs))
	for _, row := range logs {
		out = append(out, toExecutionLogResponse(row))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"logs":  out,
		"count": len(out),
	})
}

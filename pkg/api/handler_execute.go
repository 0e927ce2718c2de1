package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// executeHandler handles POST /api/v1/execute — a manual (or test-mode) run
// of one automation.
func (s *Server) executeHandler(c *echo.Context) error {
	var req ExecuteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AutomationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "automation_id is required")
	}

	row, result, err := s.executions.ExecuteManual(c.Request().Context(), req.AutomationID, req.TriggerData, req.TestMode)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ExecuteResponse{
		ExecutionID: row.ID,
		Result:      result,
	})
}

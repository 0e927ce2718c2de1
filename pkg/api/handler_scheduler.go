package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/pkg/scheduler"
)

// schedulerRunHandler handles POST /api/v1/scheduler/run. Sweeps one
// interval bucket, or all of them when no interval is given. Exposed for
// external cron and operators; the in-process cron drives the same sweeps.
func (s *Server) schedulerRunHandler(c *echo.Context) error {
	var req SchedulerRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Interval == "" {
		metrics, err := s.scheduler.RunAll(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]any{"buckets": metrics})
	}

	metrics, err := s.scheduler.RunBucket(c.Request().Context(), req.Interval)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, metrics)
}

// schedulerPollingHandler handles POST /api/v1/scheduler/polling. Runs the
// due polling automations, optionally restricted to one service category,
// or force-polls one automation.
func (s *Server) schedulerPollingHandler(c *echo.Context) error {
	var req SchedulerPollingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.AutomationID != "" {
		metrics, err := s.poller.ForcePoll(c.Request().Context(), req.AutomationID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, metrics)
	}

	metrics, err := s.poller.RunDue(c.Request().Context(), req.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, metrics)
}

// scheduledRunsHandler handles POST /api/v1/scheduler/scheduled-runs —
// introspection over active scheduled automations and their next fire time.
func (s *Server) scheduledRunsHandler(c *echo.Context) error {
	var req ScheduledRunsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	runs, err := s.scheduler.ScheduledRuns(c.Request().Context(), req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Interval != "" {
		filtered := make([]scheduler.ScheduledRun, 0, len(runs))
		for _, run := range runs {
			if run.Interval == req.Interval {
				filtered = append(filtered, run)
			}
		}
		runs = filtered
	}
	if req.Limit > 0 && len(runs) > req.Limit {
		runs = runs[:req.Limit]
	}

	return c.JSON(http.StatusOK, map[string]any{
		"scheduled_runs": runs,
		"count":          len(runs),
	})
}

// schedulerTriggerHandler handles POST /api/v1/scheduler/trigger — fire one
// scheduled or polling automation immediately, bypassing its cadence.
func (s *Server) schedulerTriggerHandler(c *echo.Context) error {
	var req SchedulerTriggerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AutomationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "automation_id is required")
	}

	auto, err := s.automations.Get(c.Request().Context(), req.AutomationID)
	if err != nil {
		return mapServiceError(err)
	}
	if req.UserID != "" && auto.OwnerID != req.UserID {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}

	if auto.TriggerType == automation.TriggerTypePolling {
		metrics, err := s.poller.ForcePoll(c.Request().Context(), auto.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, metrics)
	}

	row, result, err := s.executions.Run(c.Request().Context(), auto, string(auto.TriggerType),
		map[string]any{"type": "scheduled", "manual": true})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ExecuteResponse{
		ExecutionID: row.ID,
		Result:      result,
	})
}

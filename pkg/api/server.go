// Package api exposes the HTTP surface: webhook ingress, scheduler and
// poller entry points, manual execution, automation CRUD, and health.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/triggerflow/triggerflow/pkg/config"
	"github.com/triggerflow/triggerflow/pkg/database"
	"github.com/triggerflow/triggerflow/pkg/poller"
	"github.com/triggerflow/triggerflow/pkg/queue"
	"github.com/triggerflow/triggerflow/pkg/scheduler"
	"github.com/triggerflow/triggerflow/pkg/services"
	"github.com/triggerflow/triggerflow/pkg/webhook"
)

// Server is the HTTP server. Handlers bind and validate requests, call the
// service layer, and map domain errors to HTTP statuses.
type Server struct {
	cfg         *config.Config
	dbClient    *database.Client
	automations *services.AutomationService
	executions  *services.ExecutionService
	webhooks    *webhook.Service
	scheduler   *scheduler.Scheduler
	poller      *poller.Poller
	pool        *queue.DispatcherPool

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	automations *services.AutomationService,
	executions *services.ExecutionService,
	webhooks *webhook.Service,
	sched *scheduler.Scheduler,
	p *poller.Poller,
	pool *queue.DispatcherPool,
) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		automations: automations,
		executions:  executions,
		webhooks:    webhooks,
		scheduler:   sched,
		poller:      p,
		pool:        pool,
	}

	e := echo.New()
	e.Use(securityHeaders())
	s.registerRoutes(e)
	s.echo = e
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", s.healthHandler)

	// Fitbit and Microsoft deliver verification probes as GET before any
	// POST notification arrives.
	e.GET("/webhooks/:service", s.webhookHandler)
	e.POST("/webhooks/:service", s.webhookHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/execute", s.executeHandler)

	v1.POST("/scheduler/run", s.schedulerRunHandler)
	v1.POST("/scheduler/polling", s.schedulerPollingHandler)
	v1.POST("/scheduler/scheduled-runs", s.scheduledRunsHandler)
	v1.POST("/scheduler/trigger", s.schedulerTriggerHandler)

	v1.POST("/automations", s.createAutomationHandler)
	v1.GET("/automations", s.listAutomationsHandler)
	v1.GET("/automations/:id", s.getAutomationHandler)
	v1.PATCH("/automations/:id", s.updateAutomationHandler)
	v1.DELETE("/automations/:id", s.deleteAutomationHandler)
	v1.GET("/automations/:id/logs", s.automationLogsHandler)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start begins serving on addr. Blocks until the listener closes.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

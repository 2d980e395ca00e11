package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-tracker/errors"
	"github.com/johnquangdev/meeting-tracker/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg       *config.Config
	logger    *zap.Logger
	auth      echo.MiddlewareFunc
	dashboard *Dashboard
	meetings  *Meeting
	tasks     *Task
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, logger *zap.Logger, auth echo.MiddlewareFunc, dashboard *Dashboard, meetings *Meeting, tasks *Task) *Router {
	return &Router{
		cfg:       cfg,
		logger:    logger,
		auth:      auth,
		dashboard: dashboard,
		meetings:  meetings,
		tasks:     tasks,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.HTTPErrorHandler = rt.handleHTTPError

	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	var mw []echo.MiddlewareFunc
	if rt.auth != nil {
		mw = append(mw, rt.auth)
	}
	v1 := e.Group("/v1", mw...)

	v1.GET("/dashboard", rt.dashboard.GetDashboard)
	rt.setupMeetingRoutes(v1)
	rt.setupTaskRoutes(v1)
}

func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.GET("", rt.meetings.ListMeetings)
	meetings.POST("", rt.meetings.CreateMeeting)
	meetings.GET("/stats", rt.meetings.GetMeetingStats)
	meetings.GET("/:id", rt.meetings.GetMeeting)
	meetings.PUT("/:id/transcript", rt.meetings.UpdateTranscript)
	meetings.POST("/:id/transcribe", rt.meetings.TranscribeMeeting)
	meetings.POST("/:id/summarize", rt.meetings.SummarizeMeeting)
}

func (rt *Router) setupTaskRoutes(g *echo.Group) {
	tasks := g.Group("/tasks")

	tasks.GET("", rt.tasks.ListTasks)
	tasks.POST("", rt.tasks.CreateTask)
	tasks.GET("/stats", rt.tasks.GetTaskStats)
	tasks.GET("/:id", rt.tasks.GetTask)
	tasks.PATCH("/:id/status", rt.tasks.UpdateTaskStatus)
}

// handleHTTPError renders errors returned by middleware or the router itself
// (auth rejections, rate limiting, unknown routes) in the error envelope
func (rt *Router) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if stdErrors.As(err, &he) {
		message := ""
		if he.Message != nil {
			message = fmt.Sprint(he.Message)
		}
		err = errors.FromHTTPStatus(he.Code, message)
	}
	_ = HandleError(rt.logger, c, err)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := ""
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}

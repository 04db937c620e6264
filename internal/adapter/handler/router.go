package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/meetingmind-team/meetingmind/internal/infrastructure/metrics"
	"github.com/meetingmind-team/meetingmind/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	meetingHandler  *Meeting
	realtimeHandler *Realtime
	wsHandler       *WebSocket
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, realtimeHandler *Realtime, wsHandler *WebSocket) *Router {
	return &Router{
		cfg:             cfg,
		meetingHandler:  meetingHandler,
		realtimeHandler: realtimeHandler,
		wsHandler:       wsHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Realtime endpoint
	e.GET("/ws/:meeting_id", rt.wsHandler.Serve)

	// REST API
	api := e.Group("/api")
	rt.setupMeetingRoutes(api)

	api.POST("/analyze/text", rt.meetingHandler.AnalyzeText)
	api.GET("/realtime/stats", rt.realtimeHandler.Stats)
}

// setupMeetingRoutes configures meeting management routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.POST("", rt.meetingHandler.CreateMeeting)
	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
	meetings.PATCH("/:id/status", rt.meetingHandler.UpdateMeetingStatus)
	meetings.DELETE("/:id", rt.meetingHandler.DeleteMeeting)

	meetings.GET("/:id/participants", rt.realtimeHandler.GetParticipants)

	meetings.POST("/:id/summary", rt.meetingHandler.GenerateSummary)
	meetings.GET("/:id/summary", rt.meetingHandler.GetSummary)
	meetings.GET("/:id/summary/export", rt.meetingHandler.ExportSummary)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
		"version":     "1.0.0",
	})
}

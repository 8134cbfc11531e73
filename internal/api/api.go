// Package api implements the HTTP trigger surface: a health probe and an
// endpoint that runs a discovery pass on demand.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jonesrussell/blogwatch/internal/config"
	"github.com/jonesrussell/blogwatch/internal/domain"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/internal/notify"
)

// Runner executes one discovery pass. Satisfied by discovery.Engine.
type Runner interface {
	Run(ctx context.Context, lookback time.Duration) ([]domain.Article, error)
}

// Sender delivers discovery results. Satisfied by notify.Notifier.
type Sender interface {
	Notify(ctx context.Context, articles []domain.Article) error
}

// discoverRequest is the optional POST /api/v1/discover body.
type discoverRequest struct {
	// LookbackHours overrides the configured lookback window.
	LookbackHours int `json:"lookback_hours"`
	// Notify sends the result to the configured Telegram chat.
	Notify bool `json:"notify"`
}

// discoverResponse reports one triggered run.
type discoverResponse struct {
	RunID         string           `json:"run_id"`
	LookbackHours int              `json:"lookback_hours"`
	Count         int              `json:"count"`
	Articles      []domain.Article `json:"articles"`
	Notified      bool             `json:"notified"`
}

// SetupRouter creates and configures the Gin router with all routes.
func SetupRouter(
	log logger.Interface,
	runner Runner,
	sender Sender,
	cfg config.Interface,
) *gin.Engine {
	// Disable Gin's default logging
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.POST("/discover", handleDiscover(log, runner, sender, cfg))

	return router
}

// handleDiscover runs the engine once. The request body is optional; its
// absence means "configured lookback, no notification".
func handleDiscover(
	log logger.Interface,
	runner Runner,
	sender Sender,
	cfg config.Interface,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := discoverRequest{}
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
		}

		if req.LookbackHours < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lookback_hours must not be negative"})
			return
		}
		if req.LookbackHours == 0 {
			req.LookbackHours = cfg.GetDiscoveryConfig().LookbackHours
		}

		runID := uuid.NewString()
		lookback := time.Duration(req.LookbackHours) * time.Hour

		log.Info("Discovery run triggered",
			"run_id", runID,
			"lookback_hours", req.LookbackHours,
			"notify", req.Notify)

		articles, err := runner.Run(c.Request.Context(), lookback)
		if err != nil {
			log.Error("Discovery run failed", "run_id", runID, "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "discovery run failed"})

			return
		}

		notified := false
		if req.Notify {
			notified = sendNotification(c.Request.Context(), log, sender, runID, articles)
		}

		if articles == nil {
			articles = []domain.Article{}
		}

		c.JSON(http.StatusOK, discoverResponse{
			RunID:         runID,
			LookbackHours: req.LookbackHours,
			Count:         len(articles),
			Articles:      articles,
			Notified:      notified,
		})
	}
}

// sendNotification forwards articles to the sender. Notification failures
// never fail the request; the run result is already in hand.
func sendNotification(
	ctx context.Context,
	log logger.Interface,
	sender Sender,
	runID string,
	articles []domain.Article,
) bool {
	if len(articles) == 0 {
		return false
	}

	if err := sender.Notify(ctx, articles); err != nil {
		if errors.Is(err, notify.ErrMissingCredentials) {
			log.Warn("Notification skipped, credentials not configured", "run_id", runID)
		} else {
			log.Error("Notification failed", "run_id", runID, "error", err.Error())
		}

		return false
	}

	return true
}

// loggingMiddleware creates a middleware that logs HTTP requests.
func loggingMiddleware(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("HTTP Request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/config"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/handler"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/middleware"
)

// Handlers bundles the HTTP handlers the router wires up.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Timeline  *handler.TimelineHandler
	Ingest    *handler.IngestHandler
}

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// CORS middleware: the dashboard front-end is served from a different
	// origin during development.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Urban Rhythm API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("", h.Dashboard.GetDashboard)
			dashboard.POST("/update", h.Dashboard.Update)
			dashboard.GET("/aggregates/:dataset", h.Dashboard.GetAggregates)
			dashboard.GET("/correlations", h.Dashboard.GetCorrelations)
			dashboard.GET("/impacts", h.Dashboard.GetImpacts)
			dashboard.GET("/clusters", h.Dashboard.GetClusters)
			dashboard.GET("/insights", h.Dashboard.GetInsights)
		}

		timeline := api.Group("/timeline")
		{
			timeline.GET("/marks", h.Timeline.GetMarks)
			timeline.POST("/select", h.Timeline.SelectMark)
		}

		ingest := api.Group("/ingest")
		{
			ingest.POST("/:source", h.Ingest.Ingest)
			ingest.GET("/status", h.Ingest.GetStatus)
		}
	}

	return r
}

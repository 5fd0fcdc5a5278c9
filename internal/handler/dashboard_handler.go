package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/service"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/pkg/response"
)

// DashboardHandler handles HTTP requests for the aggregated dashboard
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

type updateRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// Update handles POST /api/v1/dashboard/update
func (h *DashboardHandler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "start_date and end_date are required (YYYY-MM-DD)")
		return
	}

	snapshot, err := h.dashboardService.Update(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, service.ErrUpdateInProgress) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"version":    snapshot.Version,
		"start_date": snapshot.StartDate,
		"end_date":   snapshot.EndDate,
		"summaries":  snapshot.Summaries(),
	})
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snapshot, err := h.dashboardService.Snapshot()
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"version":     snapshot.Version,
		"start_date":  snapshot.StartDate,
		"end_date":    snapshot.EndDate,
		"computed_at": snapshot.ComputedAt,
		"summaries":   snapshot.Summaries(),
		"drops":       snapshot.Drops,
	})
}

// GetAggregates handles GET /api/v1/dashboard/aggregates/:dataset
func (h *DashboardHandler) GetAggregates(c *gin.Context) {
	dataset := c.Param("dataset")
	if !models.ValidDataset(dataset) {
		response.BadRequest(c, "unknown dataset: "+dataset)
		return
	}

	snapshot, err := h.dashboardService.Snapshot()
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, snapshot.Bundles[models.Dataset(dataset)])
}

// GetCorrelations handles GET /api/v1/dashboard/correlations
func (h *DashboardHandler) GetCorrelations(c *gin.Context) {
	snapshot, err := h.dashboardService.Snapshot()
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"matrix":  snapshot.Matrix,
		"weather": snapshot.Weather,
	})
}

// GetImpacts handles GET /api/v1/dashboard/impacts
func (h *DashboardHandler) GetImpacts(c *gin.Context) {
	snapshot, err := h.dashboardService.Snapshot()
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, snapshot.Impacts)
}

// GetClusters handles GET /api/v1/dashboard/clusters
func (h *DashboardHandler) GetClusters(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	snapshot, err := h.dashboardService.Snapshot()
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	clusters := snapshot.Clusters
	if len(clusters) > limit {
		clusters = clusters[:limit]
	}
	response.Success(c, clusters)
}

// GetInsights handles GET /api/v1/dashboard/insights
func (h *DashboardHandler) GetInsights(c *gin.Context) {
	snapshot, err := h.dashboardService.Snapshot()
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, snapshot.Insights)
}

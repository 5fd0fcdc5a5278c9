package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/service"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/pkg/response"
)

// TimelineHandler handles HTTP requests for the interactive timeline
type TimelineHandler struct {
	dashboardService *service.DashboardService
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(dashboardService *service.DashboardService) *TimelineHandler {
	return &TimelineHandler{
		dashboardService: dashboardService,
	}
}

// GetMarks handles GET /api/v1/timeline/marks
func (h *TimelineHandler) GetMarks(c *gin.Context) {
	granularity := c.DefaultQuery("granularity", string(models.GranularityDay))
	if !models.ValidGranularity(granularity) {
		response.BadRequest(c, "granularity must be one of hour, day, week, month")
		return
	}

	marks, err := h.dashboardService.Marks(models.Granularity(granularity), c.Query("start"), c.Query("end"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, marks)
}

type selectMarkRequest struct {
	Granularity string `json:"granularity" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Hour        int    `json:"hour"`
}

// SelectMark handles POST /api/v1/timeline/select. The windowed aggregates
// it returns are a preview; the canonical dashboard state is unchanged.
func (h *TimelineHandler) SelectMark(c *gin.Context) {
	var req selectMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "granularity, start_date and end_date are required")
		return
	}
	if !models.ValidGranularity(req.Granularity) {
		response.BadRequest(c, "granularity must be one of hour, day, week, month")
		return
	}
	if req.Hour < 0 || req.Hour > 23 {
		response.BadRequest(c, "hour must be in [0,23]")
		return
	}

	view, err := h.dashboardService.SelectMark(models.TimeMark{
		Granularity: models.Granularity(req.Granularity),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Hour:        req.Hour,
	})
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, view)
}

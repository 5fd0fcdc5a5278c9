package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/service"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/pkg/response"
)

// IngestHandler handles HTTP requests for raw feed ingestion
type IngestHandler struct {
	ingestService *service.IngestService
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(ingestService *service.IngestService) *IngestHandler {
	return &IngestHandler{
		ingestService: ingestService,
	}
}

// Ingest handles POST /api/v1/ingest/:source with a JSON array body of
// already-parsed rows for that source.
func (h *IngestHandler) Ingest(c *gin.Context) {
	source := c.Param("source")
	if !models.ValidDataset(source) {
		response.BadRequest(c, "unknown source: "+source)
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "failed to read request body")
		return
	}

	count, err := h.ingestService.Ingest(source, payload)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"source": source, "rows": count})
}

// GetStatus handles GET /api/v1/ingest/status
func (h *IngestHandler) GetStatus(c *gin.Context) {
	statuses, err := h.ingestService.Statuses()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	counts, err := h.ingestService.RowCounts()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"statuses": statuses, "row_counts": counts})
}

package handler

import (
	"bytes"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/wavescout/wavetrack-backend-go/internal/service"
	"github.com/wavescout/wavetrack-backend-go/pkg/response"
)

// SessionHandler handles HTTP requests for the current session
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Upload handles POST /api/v1/sessions
// Expects a multipart form with a "file" field holding a GPX or CSV track.
func (h *SessionHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file upload")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Cannot read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.sessions.Load(file, fileHeader.Filename)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	log.Printf("[SessionHandler] Loaded %q: %d points, %d waves",
		fileHeader.Filename, result.PointCount, result.WaveCount)
	response.Success(c, result)
}

// Detect handles POST /api/v1/sessions/detect
// The body is a DetectionConfig; absent fields fall back to the session's
// active configuration.
func (h *SessionHandler) Detect(c *gin.Context) {
	cfg := h.sessions.Config()
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&cfg); err != nil {
			response.BadRequest(c, "Invalid detection parameters")
			return
		}
	}

	result, err := h.sessions.Detect(cfg)
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetSegments handles GET /api/v1/sessions/segments
func (h *SessionHandler) GetSegments(c *gin.Context) {
	segments, err := h.sessions.Segments()
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, segments)
}

// GetWaves handles GET /api/v1/sessions/waves
func (h *SessionHandler) GetWaves(c *gin.Context) {
	waves, err := h.sessions.Waves()
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, waves)
}

// GetStats handles GET /api/v1/sessions/stats
func (h *SessionHandler) GetStats(c *gin.Context) {
	stats, err := h.sessions.Stats()
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, stats)
}

// GetConfig handles GET /api/v1/sessions/config
func (h *SessionHandler) GetConfig(c *gin.Context) {
	response.Success(c, h.sessions.Config())
}

// Export handles GET /api/v1/sessions/export
func (h *SessionHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.sessions.Export(&buf); err != nil {
		response.NotFound(c, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "session-waves.gpx"))
	c.Data(200, "application/gpx+xml", buf.Bytes())
}

// Package server exposes the aggregate over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"betaradar/internal/metrics"
	"betaradar/internal/pipeline"
	"betaradar/internal/summary"
)

// Handler serves the JSON API around the pipeline.
type Handler struct {
	pipeline   *pipeline.Pipeline
	translator OnDemandTranslator
	targetLang string
	scheduler  interface {
		NextRun() time.Time
	}
}

// OnDemandTranslator translates a single text for POST /api/translate.
type OnDemandTranslator interface {
	Translate(ctx context.Context, text, target string) string
}

// NewHandler creates the API handler.
func NewHandler(p *pipeline.Pipeline, translator OnDemandTranslator, targetLang string) *Handler {
	return &Handler{pipeline: p, translator: translator, targetLang: targetLang}
}

// SetScheduler wires the cron reference used by /api/status.
func (h *Handler) SetScheduler(s interface{ NextRun() time.Time }) {
	h.scheduler = s
}

// RegisterRoutes attaches the API routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/news", h.GetNews)
		api.GET("/refresh", h.Refresh)
		api.GET("/status", h.GetStatus)
		api.POST("/translate", h.Translate)
		api.POST("/summary", h.Summarize)
	}
}

// GetNews returns the cached snapshot without refreshing.
func (h *Handler) GetNews(c *gin.Context) {
	result, err := h.pipeline.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Refresh triggers a full pipeline run and returns the new snapshot.
func (h *Handler) Refresh(c *gin.Context) {
	result, err := h.pipeline.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetStatus reports health, run telemetry and the next scheduled run.
func (h *Handler) GetStatus(c *gin.Context) {
	result, _ := h.pipeline.Load()

	status := gin.H{
		"status":       "running",
		"last_updated": result.LastUpdated,
		"total_items":  result.TotalCount,
		"metrics":      metrics.Global.GetStats(),
	}
	if h.scheduler != nil {
		status["next_run"] = h.scheduler.NextRun().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, status)
}

type translateRequest struct {
	Text   string `json:"text" binding:"required"`
	Target string `json:"target"`
}

// Translate translates arbitrary text on demand. This is the read-time
// fallback for items the pipeline could not enrich.
func (h *Handler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Target == "" {
		req.Target = h.targetLang
	}

	translated := h.translator.Translate(c.Request.Context(), req.Text, req.Target)
	c.JSON(http.StatusOK, gin.H{"translated": translated})
}

type summaryRequest struct {
	Text      string `json:"text" binding:"required"`
	Title     string `json:"title"`
	Sentences int    `json:"sentences"`
}

// Summarize returns a short extractive summary of the posted text,
// plus a single-sentence variant for card views.
func (h *Handler) Summarize(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Sentences <= 0 {
		req.Sentences = 2
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":  summary.KeySentences(req.Text, req.Sentences),
		"one_line": summary.OneLine(req.Title, req.Text),
	})
}

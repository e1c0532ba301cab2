package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "bannerstore/internal/domain/order"
)

// StatusHandler serves the read-only status registry. It holds no state.
type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

func (h *StatusHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": domain.Statuses()})
}

func (h *StatusHandler) GetStatus(c *gin.Context) {
	meta, ok := domain.DisplayStatus(domain.StatusID(c.Param("id")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrUnknownStatus.Error()})
		return
	}
	c.JSON(http.StatusOK, meta)
}

type pipelineStage struct {
	domain.StatusMeta
	Next     *domain.StatusID `json:"next"`
	Previous *domain.StatusID `json:"previous"`
}

// Pipeline lists the forward stages with their neighbours resolved, so a
// client can render the progress bar without duplicating the ordering.
func (h *StatusHandler) Pipeline(c *gin.Context) {
	stages := domain.Pipeline()
	out := make([]pipelineStage, 0, len(stages))
	for _, s := range stages {
		stage := pipelineStage{StatusMeta: s}
		if next, ok := domain.NextStatus(s.ID); ok {
			stage.Next = &next
		}
		if prev, ok := domain.PreviousStatus(s.ID); ok {
			stage.Previous = &prev
		}
		out = append(out, stage)
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verdantly/garden-care-backend/internal/care/climate"
	"github.com/verdantly/garden-care-backend/internal/care/domain"
	"github.com/verdantly/garden-care-backend/internal/care/service"
)

type Handler struct {
	scheduler *service.SchedulerService
	climate   *climate.Resolver
}

func Register(rg *gin.RouterGroup, scheduler *service.SchedulerService, resolver *climate.Resolver) {
	h := &Handler{scheduler: scheduler, climate: resolver}

	rg.POST("/schedule", h.generate)
	rg.POST("/schedule/preview", h.preview)
	rg.GET("/climate/:county", h.climateProfile)
}

func (h *Handler) generate(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "code": "invalid_body", "error": err.Error()})
		return
	}

	tasks, err := h.scheduler.GenerateForPlant(c.Request.Context(), req.UserPlant.toDomain())
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "tasks": tasks})
}

func (h *Handler) preview(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "code": "invalid_body", "error": err.Error()})
		return
	}

	tasks, err := h.scheduler.PreviewForPlant(c.Request.Context(), req.UserPlant.toDomain())
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "tasks": tasks})
}

func (h *Handler) climateProfile(c *gin.Context) {
	profile := h.climate.Resolve(c.Request.Context(), c.Param("county"))
	c.JSON(http.StatusOK, gin.H{"ok": true, "climate": profile})
}

// writeScheduleError maps the pipeline's failure taxonomy onto HTTP statuses:
// missing upstream records are client errors, a schema violation is a logic
// defect, a sink failure is an upstream write failure and anything else
// (transient trait/garden read errors) is a plain internal error.
func writeScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPlantNotFound), errors.Is(err, domain.ErrGardenNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "code": "missing_record", "error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTask):
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "code": "invalid_task", "error": err.Error()})
	case errors.Is(err, domain.ErrPersistFailed):
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "code": "persist_failed", "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "code": "upstream_failed", "error": err.Error()})
	}
}

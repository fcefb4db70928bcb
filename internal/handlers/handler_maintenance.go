package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/foxentulhos/dumpster_rental_app/internal/apperrors"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
	"github.com/foxentulhos/dumpster_rental_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maintenanceHandler handles dumpster maintenance records.
type maintenanceHandler struct {
	maintenanceService portssvc.MaintenanceSvcFacade
}

func newMaintenanceHandler(ms portssvc.MaintenanceSvcFacade) *maintenanceHandler {
	return &maintenanceHandler{
		maintenanceService: ms,
	}
}

// registerMaintenanceRoutes registers maintenance routes. Creation and listing
// hang off the dumpster, completion addresses the record directly.
func registerMaintenanceRoutes(rg *gin.RouterGroup, maintenanceService portssvc.MaintenanceSvcFacade) {
	h := newMaintenanceHandler(maintenanceService)

	rg.POST("/dumpsters/:id/maintenance", h.createMaintenance)
	rg.GET("/dumpsters/:id/maintenance", h.listMaintenanceForDumpster)
	rg.PATCH("/maintenance/:id/complete", h.completeMaintenance)
}

// createMaintenance godoc
// @Summary Open a maintenance record for a dumpster
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Dumpster ID"
// @Param maintenance body dto.CreateMaintenanceRequest true "Maintenance details"
// @Success 200 {object} dto.MaintenanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Dumpster not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dumpsters/{id}/maintenance [post]
func (h *maintenanceHandler) createMaintenance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dumpsterID := c.Param("id")

	var req dto.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.maintenanceService.CreateMaintenance(c.Request.Context(), dumpsterID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Dumpster not found"})
			return
		}
		logger.Error("Failed to create maintenance record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create maintenance record"})
		return
	}

	logger.Info("Maintenance record created",
		slog.String("maintenance_id", record.MaintenanceID),
		slog.String("dumpster_id", dumpsterID))
	c.JSON(http.StatusOK, dto.ToMaintenanceResponse(record))
}

// listMaintenanceForDumpster godoc
// @Summary List maintenance records of a dumpster
// @Tags maintenance
// @Produce json
// @Param id path string true "Dumpster ID"
// @Success 200 {array} dto.MaintenanceResponse
// @Failure 404 {object} ErrorResponse "Dumpster not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dumpsters/{id}/maintenance [get]
func (h *maintenanceHandler) listMaintenanceForDumpster(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dumpsterID := c.Param("id")

	records, err := h.maintenanceService.ListMaintenanceForDumpster(c.Request.Context(), dumpsterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Dumpster not found"})
			return
		}
		logger.Error("Failed to list maintenance records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list maintenance records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceResponseList(records))
}

// completeMaintenance godoc
// @Summary Complete a maintenance record
// @Description Stamps the actual end date and optionally the actual cost
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance ID"
// @Param completion body dto.CompleteMaintenanceRequest true "Completion details"
// @Success 200 {object} dto.MaintenanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Maintenance record not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /maintenance/{id}/complete [patch]
func (h *maintenanceHandler) completeMaintenance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	maintenanceID := c.Param("id")

	var req dto.CompleteMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.maintenanceService.CompleteMaintenance(c.Request.Context(), maintenanceID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Maintenance record not found"})
			return
		}
		logger.Error("Failed to complete maintenance record", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete maintenance record"})
		return
	}

	logger.Info("Maintenance record completed", slog.String("maintenance_id", maintenanceID))
	c.JSON(http.StatusOK, dto.ToMaintenanceResponse(record))
}

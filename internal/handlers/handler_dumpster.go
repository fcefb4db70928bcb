package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/foxentulhos/dumpster_rental_app/internal/apperrors"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
	"github.com/foxentulhos/dumpster_rental_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dumpsterHandler handles HTTP requests related to dumpsters.
type dumpsterHandler struct {
	dumpsterService portssvc.DumpsterSvcFacade
}

func newDumpsterHandler(ds portssvc.DumpsterSvcFacade) *dumpsterHandler {
	return &dumpsterHandler{
		dumpsterService: ds,
	}
}

// registerDumpsterRoutes registers routes related to dumpsters.
func registerDumpsterRoutes(rg *gin.RouterGroup, dumpsterService portssvc.DumpsterSvcFacade) {
	h := newDumpsterHandler(dumpsterService)

	dumpsters := rg.Group("/dumpsters")
	{
		dumpsters.POST("", h.createDumpster)
		dumpsters.GET("", h.listDumpsters)
		dumpsters.GET("/:id", h.getDumpsterByID)
		dumpsters.PUT("/:id", h.updateDumpster)
		dumpsters.PATCH("/:id/status", h.updateDumpsterStatus)
		dumpsters.DELETE("/:id", h.deleteDumpster)
	}
}

// createDumpster godoc
// @Summary Create a new dumpster
// @Description Registers a dumpster; status starts as available
// @Tags dumpsters
// @Accept json
// @Produce json
// @Param dumpster body dto.CreateDumpsterRequest true "Dumpster details"
// @Success 200 {object} dto.DumpsterResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dumpsters [post]
func (h *dumpsterHandler) createDumpster(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDumpsterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDumpster", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	dumpster, err := h.dumpsterService.CreateDumpster(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create dumpster", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create dumpster"})
		return
	}

	logger.Info("Dumpster created", slog.String("dumpster_id", dumpster.DumpsterID))
	c.JSON(http.StatusOK, dto.ToDumpsterResponse(dumpster))
}

// listDumpsters godoc
// @Summary List all dumpsters
// @Tags dumpsters
// @Produce json
// @Success 200 {array} dto.DumpsterResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dumpsters [get]
func (h *dumpsterHandler) listDumpsters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dumpsters, err := h.dumpsterService.ListDumpsters(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list dumpsters", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list dumpsters"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDumpsterResponseList(dumpsters))
}

// getDumpsterByID godoc
// @Summary Get a dumpster by ID
// @Tags dumpsters
// @Produce json
// @Param id path string true "Dumpster ID"
// @Success 200 {object} dto.DumpsterResponse
// @Failure 404 {object} ErrorResponse "Dumpster not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dumpsters/{id} [get]
func (h *dumpsterHandler) getDumpsterByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dumpsterID := c.Param("id")

	dumpster, err := h.dumpsterService.GetDumpsterByID(c.Request.Context(), dumpsterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Dumpster not found"})
			return
		}
		logger.Error("Failed to get dumpster", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve dumpster"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDumpsterResponse(dumpster))
}

// updateDumpster godoc
// @Summary Update a dumpster
// @Description Replaces identifier, size, capacity and description. Status and
// @Description location are managed by the order lifecycle and the status patch.
// @Tags dumpsters
// @Accept json
// @Produce json
// @Param id path string true "Dumpster ID"
// @Param dumpster body dto.CreateDumpsterRequest true "Dumpster details"
// @Success 200 {object} dto.DumpsterResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Dumpster not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dumpsters/{id} [put]
func (h *dumpsterHandler) updateDumpster(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dumpsterID := c.Param("id")

	var req dto.CreateDumpsterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	dumpster, err := h.dumpsterService.UpdateDumpster(c.Request.Context(), dumpsterID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Dumpster not found"})
			return
		}
		logger.Error("Failed to update dumpster", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update dumpster"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDumpsterResponse(dumpster))
}

// updateDumpsterStatus godoc
// @Summary Set a dumpster's status directly
// @Description Sets status and optionally location via query parameters,
// @Description independent of order logic
// @Tags dumpsters
// @Produce json
// @Param id path string true "Dumpster ID"
// @Param status query string true "New status" Enums(available, rented, maintenance, in_transit)
// @Param location query string false "Current location"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Dumpster not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dumpsters/{id}/status [patch]
func (h *dumpsterHandler) updateDumpsterStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dumpsterID := c.Param("id")

	var params dto.UpdateDumpsterStatusParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status parameter: " + err.Error()})
		return
	}

	err := h.dumpsterService.UpdateDumpsterStatus(c.Request.Context(), dumpsterID, domain.DumpsterStatus(params.Status), params.Location)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Dumpster not found"})
			return
		}
		logger.Error("Failed to update dumpster status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update dumpster status"})
		return
	}

	logger.Info("Dumpster status updated",
		slog.String("dumpster_id", dumpsterID),
		slog.String("status", params.Status))
	c.JSON(http.StatusOK, gin.H{"message": "Dumpster status updated"})
}

// deleteDumpster godoc
// @Summary Delete a dumpster
// @Description Hard delete; maintenance records cascade with the dumpster
// @Tags dumpsters
// @Produce json
// @Param id path string true "Dumpster ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Dumpster not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dumpsters/{id} [delete]
func (h *dumpsterHandler) deleteDumpster(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dumpsterID := c.Param("id")

	if err := h.dumpsterService.DeleteDumpster(c.Request.Context(), dumpsterID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Dumpster not found"})
			return
		}
		logger.Error("Failed to delete dumpster", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete dumpster"})
		return
	}

	logger.Info("Dumpster deleted", slog.String("dumpster_id", dumpsterID))
	c.JSON(http.StatusOK, gin.H{"message": "Dumpster deleted"})
}

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

// cepHandler proxies postal code lookups to the external CEP service.
type cepHandler struct {
	cepService portssvc.CEPSvcFacade
}

func newCEPHandler(cs portssvc.CEPSvcFacade) *cepHandler {
	return &cepHandler{
		cepService: cs,
	}
}

func registerCEPRoutes(rg *gin.RouterGroup, cepService portssvc.CEPSvcFacade) {
	h := newCEPHandler(cepService)

	rg.GET("/cep/:cep", h.lookupCEP)
}

// lookupCEP godoc
// @Summary Look up an address by CEP
// @Description Queries the external postal code service. Upstream failures
// @Description surface as 503 and never crash the request pipeline.
// @Tags cep
// @Produce json
// @Param cep path string true "CEP (8 digits)"
// @Success 200 {object} dto.CEPResponse
// @Failure 400 {object} ErrorResponse "Malformed CEP"
// @Failure 404 {object} ErrorResponse "CEP not found"
// @Failure 503 {object} ErrorResponse "Postal service unavailable"
// @Security BearerAuth
// @Router /cep/{cep} [get]
func (h *cepHandler) lookupCEP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cep := c.Param("cep")

	address, err := h.cepService.Lookup(c.Request.Context(), cep)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Malformed CEP"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CEP not found"})
		case errors.Is(err, apperrors.ErrUpstreamUnavailable):
			logger.Warn("Postal service unavailable", slog.String("cep", cep))
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Postal service unavailable"})
		default:
			logger.Error("Failed to look up CEP", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to look up CEP"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCEPResponse(address))
}

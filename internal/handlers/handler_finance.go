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

// financeHandler handles payables and receivables.
type financeHandler struct {
	financeService portssvc.FinanceSvcFacade
}

func newFinanceHandler(fs portssvc.FinanceSvcFacade) *financeHandler {
	return &financeHandler{
		financeService: fs,
	}
}

// registerFinanceRoutes registers the accounts-payable and accounts-receivable
// routes. Receivables have no create endpoint; they only appear as an order
// creation side effect.
func registerFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := newFinanceHandler(financeService)

	payables := rg.Group("/finance/accounts-payable")
	{
		payables.POST("", h.createPayable)
		payables.GET("", h.listPayables)
		payables.PATCH("/:id/pay", h.payPayable)
		payables.DELETE("/:id", h.deletePayable)
	}

	receivables := rg.Group("/finance/accounts-receivable")
	{
		receivables.GET("", h.listReceivables)
		receivables.PATCH("/:id/receive", h.receiveReceivable)
		receivables.DELETE("/:id", h.deleteReceivable)
	}
}

// createPayable godoc
// @Summary Create a new payable
// @Tags finance
// @Accept json
// @Produce json
// @Param payable body dto.CreatePayableRequest true "Payable details"
// @Success 200 {object} dto.PayableResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/accounts-payable [post]
func (h *financeHandler) createPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payable, err := h.financeService.CreatePayable(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create payable", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create payable"})
		return
	}

	logger.Info("Payable created", slog.String("payable_id", payable.PayableID))
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// listPayables godoc
// @Summary List all payables
// @Tags finance
// @Produce json
// @Success 200 {array} dto.PayableResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/accounts-payable [get]
func (h *financeHandler) listPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payables, err := h.financeService.ListPayables(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payables", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payables"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayableResponseList(payables))
}

// payPayable godoc
// @Summary Mark a payable as paid
// @Description Sets is_paid and stamps paid_date with the current time. Paying
// @Description an already paid entry refreshes the date.
// @Tags finance
// @Produce json
// @Param id path string true "Payable ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Payable not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/accounts-payable/{id}/pay [patch]
func (h *financeHandler) payPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("id")

	if err := h.financeService.PayPayable(c.Request.Context(), payableID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payable not found"})
			return
		}
		logger.Error("Failed to pay payable", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to pay payable"})
		return
	}

	logger.Info("Payable marked paid", slog.String("payable_id", payableID))
	c.JSON(http.StatusOK, gin.H{"message": "Payable marked as paid"})
}

// deletePayable godoc
// @Summary Delete a payable
// @Tags finance
// @Produce json
// @Param id path string true "Payable ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Payable not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/accounts-payable/{id} [delete]
func (h *financeHandler) deletePayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("id")

	if err := h.financeService.DeletePayable(c.Request.Context(), payableID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payable not found"})
			return
		}
		logger.Error("Failed to delete payable", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete payable"})
		return
	}

	logger.Info("Payable deleted", slog.String("payable_id", payableID))
	c.JSON(http.StatusOK, gin.H{"message": "Payable deleted"})
}

// listReceivables godoc
// @Summary List all receivables
// @Tags finance
// @Produce json
// @Success 200 {array} dto.ReceivableResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/accounts-receivable [get]
func (h *financeHandler) listReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receivables, err := h.financeService.ListReceivables(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list receivables", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list receivables"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReceivableResponseList(receivables))
}

// receiveReceivable godoc
// @Summary Mark a receivable as received
// @Description Sets is_received and stamps received_date with the current
// @Description time. Receiving an already received entry refreshes the date.
// @Tags finance
// @Produce json
// @Param id path string true "Receivable ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Receivable not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/accounts-receivable/{id}/receive [patch]
func (h *financeHandler) receiveReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("id")

	if err := h.financeService.ReceiveReceivable(c.Request.Context(), receivableID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receivable not found"})
			return
		}
		logger.Error("Failed to receive receivable", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to receive receivable"})
		return
	}

	logger.Info("Receivable marked received", slog.String("receivable_id", receivableID))
	c.JSON(http.StatusOK, gin.H{"message": "Receivable marked as received"})
}

// deleteReceivable godoc
// @Summary Delete a receivable
// @Tags finance
// @Produce json
// @Param id path string true "Receivable ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Receivable not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/accounts-receivable/{id} [delete]
func (h *financeHandler) deleteReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("id")

	if err := h.financeService.DeleteReceivable(c.Request.Context(), receivableID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receivable not found"})
			return
		}
		logger.Error("Failed to delete receivable", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete receivable"})
		return
	}

	logger.Info("Receivable deleted", slog.String("receivable_id", receivableID))
	c.JSON(http.StatusOK, gin.H{"message": "Receivable deleted"})
}

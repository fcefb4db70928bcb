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

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{
		orderService: os,
	}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrderByID)
		orders.PATCH("/:id/status", h.updateOrderStatus)
		orders.DELETE("/:id", h.deleteOrder)
	}
}

// createOrder godoc
// @Summary Create a new order
// @Description Creates an order with its receivable. A placement order rents
// @Description the target dumpster and requires it to be available.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Invalid input or dumpster not available"
// @Failure 404 {object} ErrorResponse "Client or dumpster not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client or dumpster not found"})
		case errors.Is(err, apperrors.ErrDumpsterUnavailable):
			logger.Warn("Placement order against unavailable dumpster",
				slog.String("dumpster_id", req.DumpsterID))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Dumpster is not available"})
		default:
			logger.Error("Failed to create order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create order"})
		}
		return
	}

	logger.Info("Order created",
		slog.String("order_id", order.OrderID),
		slog.String("order_type", string(order.OrderType)))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Success 200 {array} dto.OrderResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponseList(orders))
}

// getOrderByID godoc
// @Summary Get an order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrderByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
			return
		}
		logger.Error("Failed to get order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// updateOrderStatus godoc
// @Summary Update an order's status
// @Description Sets any lifecycle status via query parameter. Completing a
// @Description removal order frees its dumpster.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Param status query string true "New status" Enums(pending, in_progress, completed, cancelled)
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/status [patch]
func (h *orderHandler) updateOrderStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	var params dto.UpdateOrderStatusParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status parameter: " + err.Error()})
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), orderID, domain.OrderStatus(params.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
			return
		}
		logger.Error("Failed to update order status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update order status"})
		return
	}

	logger.Info("Order status updated",
		slog.String("order_id", orderID),
		slog.String("status", params.Status))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// deleteOrder godoc
// @Summary Delete an order
// @Description Hard delete. The order's receivable and the dumpster state are
// @Description left untouched.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
			return
		}
		logger.Error("Failed to delete order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete order"})
		return
	}

	logger.Info("Order deleted", slog.String("order_id", orderID))
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/apperrors"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Test Suite ---
type OrderHandlerTestSuite struct {
	suite.Suite
	mockService *MockOrderService
	router      *gin.Engine
}

func (suite *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockOrderService)
	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	registerOrderRoutes(v1, suite.mockService)
}

func (suite *OrderHandlerTestSuite) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *OrderHandlerTestSuite) validCreateRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		ClientID:        uuid.NewString(),
		DumpsterID:      uuid.NewString(),
		OrderType:       "placement",
		DeliveryAddress: "Rua das Obras 123",
		RentalValue:     decimal.RequireFromString("500.00"),
		PaymentMethod:   "pix",
		ScheduledDate:   time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *OrderHandlerTestSuite) TestCreateOrder_Success() {
	req := suite.validCreateRequest()
	created := &domain.Order{
		OrderID:   uuid.NewString(),
		ClientID:  req.ClientID,
		OrderType: domain.OrderPlacement,
		Status:    domain.OrderPending,
	}

	suite.mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("dto.CreateOrderRequest")).Return(created, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/orders", req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.OrderID, resp.ID)
	suite.Equal("pending", resp.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_InvalidOrderType() {
	req := suite.validCreateRequest()
	req.OrderType = "teleport"

	w := suite.performJSON(http.MethodPost, "/api/v1/orders", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_DumpsterUnavailable() {
	req := suite.validCreateRequest()

	suite.mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("dto.CreateOrderRequest")).Return(nil, apperrors.ErrDumpsterUnavailable).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/orders", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "not available")
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_ClientOrDumpsterMissing() {
	req := suite.validCreateRequest()

	suite.mockService.On("CreateOrder", mock.Anything, mock.AnythingOfType("dto.CreateOrderRequest")).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/orders", req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *OrderHandlerTestSuite) TestGetOrderByID_NotFound() {
	orderID := uuid.NewString()

	suite.mockService.On("GetOrderByID", mock.Anything, orderID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/orders/"+orderID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *OrderHandlerTestSuite) TestUpdateOrderStatus_ViaQueryParam() {
	orderID := uuid.NewString()
	updated := &domain.Order{
		OrderID: orderID,
		Status:  domain.OrderCompleted,
	}

	suite.mockService.On("UpdateOrderStatus", mock.Anything, orderID, domain.OrderCompleted).Return(updated, nil).Once()

	w := suite.performJSON(http.MethodPatch, "/api/v1/orders/"+orderID+"/status?status=completed", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("completed", resp.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestUpdateOrderStatus_RejectsUnknownValue() {
	orderID := uuid.NewString()

	w := suite.performJSON(http.MethodPatch, "/api/v1/orders/"+orderID+"/status?status=exploded", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderHandlerTestSuite) TestDeleteOrder_Success() {
	orderID := uuid.NewString()

	suite.mockService.On("DeleteOrder", mock.Anything, orderID).Return(nil).Once()

	w := suite.performJSON(http.MethodDelete, "/api/v1/orders/"+orderID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Order deleted")
}

func (suite *OrderHandlerTestSuite) TestListOrders_Success() {
	orders := []domain.Order{
		{OrderID: uuid.NewString(), Status: domain.OrderPending},
		{OrderID: uuid.NewString(), Status: domain.OrderCompleted},
	}

	suite.mockService.On("ListOrders", mock.Anything).Return(orders, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/orders", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

// --- Run Suite ---
func TestOrderHandler(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

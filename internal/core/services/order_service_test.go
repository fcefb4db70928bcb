package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/apperrors"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order domain.Order, receivable domain.AccountsReceivable, markRented bool) error {
	args := m.Called(ctx, order, receivable, markRented)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, completedDate *time.Time) error {
	args := m.Called(ctx, orderID, status, completedDate)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Mock DumpsterRepository ---
type MockDumpsterRepository struct {
	mock.Mock
}

func (m *MockDumpsterRepository) SaveDumpster(ctx context.Context, dumpster domain.Dumpster) error {
	args := m.Called(ctx, dumpster)
	return args.Error(0)
}

func (m *MockDumpsterRepository) FindDumpsterByID(ctx context.Context, dumpsterID string) (*domain.Dumpster, error) {
	args := m.Called(ctx, dumpsterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dumpster), args.Error(1)
}

func (m *MockDumpsterRepository) FindDumpsters(ctx context.Context) ([]domain.Dumpster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Dumpster), args.Error(1)
}

func (m *MockDumpsterRepository) UpdateDumpster(ctx context.Context, dumpster domain.Dumpster) error {
	args := m.Called(ctx, dumpster)
	return args.Error(0)
}

func (m *MockDumpsterRepository) SetDumpsterStatus(ctx context.Context, dumpsterID string, status domain.DumpsterStatus, location *string) error {
	args := m.Called(ctx, dumpsterID, status, location)
	return args.Error(0)
}

func (m *MockDumpsterRepository) FreeDumpster(ctx context.Context, dumpsterID string) error {
	args := m.Called(ctx, dumpsterID)
	return args.Error(0)
}

func (m *MockDumpsterRepository) DeleteDumpster(ctx context.Context, dumpsterID string) error {
	args := m.Called(ctx, dumpsterID)
	return args.Error(0)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo    *MockOrderRepository
	mockClientRepo   *MockClientRepository
	mockDumpsterRepo *MockDumpsterRepository
	service          portssvc.OrderSvcFacade

	client   *domain.Client
	dumpster *domain.Dumpster
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockDumpsterRepo = new(MockDumpsterRepository)
	suite.service = services.NewOrderService(suite.mockOrderRepo, suite.mockClientRepo, suite.mockDumpsterRepo)

	suite.client = &domain.Client{
		ClientID: uuid.NewString(),
		Name:     "Construtora Almeida",
	}
	suite.dumpster = &domain.Dumpster{
		DumpsterID: uuid.NewString(),
		Identifier: "CB-07",
		Status:     domain.DumpsterAvailable,
	}
}

func (suite *OrderServiceTestSuite) placementRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		ClientID:        suite.client.ClientID,
		DumpsterID:      suite.dumpster.DumpsterID,
		OrderType:       "placement",
		DeliveryAddress: "Rua das Obras 123",
		RentalValue:     decimal.RequireFromString("500.00"),
		PaymentMethod:   "pix",
		ScheduledDate:   time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *OrderServiceTestSuite) TestCreatePlacementOrder_Success() {
	ctx := context.Background()
	req := suite.placementRequest()

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(suite.client, nil).Once()
	suite.mockDumpsterRepo.On("FindDumpsterByID", ctx, suite.dumpster.DumpsterID).Return(suite.dumpster, nil).Once()
	suite.mockOrderRepo.On("CreateOrder", ctx,
		mock.MatchedBy(func(o domain.Order) bool {
			return o.ClientID == suite.client.ClientID &&
				o.ClientName == suite.client.Name &&
				o.DumpsterIdentifier == suite.dumpster.Identifier &&
				o.OrderType == domain.OrderPlacement &&
				o.Status == domain.OrderPending &&
				o.CompletedDate == nil &&
				o.RentalValue.Equal(req.RentalValue)
		}),
		mock.MatchedBy(func(r domain.AccountsReceivable) bool {
			return r.ClientID == suite.client.ClientID &&
				r.Amount.Equal(req.RentalValue) &&
				r.DueDate.Equal(req.ScheduledDate) &&
				!r.IsReceived &&
				r.Notes == "Order placement - CB-07"
		}),
		true,
	).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderPending, order.Status)
	suite.Equal(suite.client.Name, order.ClientName)
	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockDumpsterRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_ClientNotFound() {
	ctx := context.Background()
	req := suite.placementRequest()

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(nil, apperrors.ErrNotFound).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateOrder_DumpsterNotFound() {
	ctx := context.Background()
	req := suite.placementRequest()

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(suite.client, nil).Once()
	suite.mockDumpsterRepo.On("FindDumpsterByID", ctx, suite.dumpster.DumpsterID).Return(nil, apperrors.ErrNotFound).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestCreatePlacementOrder_DumpsterUnavailable() {
	ctx := context.Background()
	req := suite.placementRequest()
	suite.dumpster.Status = domain.DumpsterRented

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(suite.client, nil).Once()
	suite.mockDumpsterRepo.On("FindDumpsterByID", ctx, suite.dumpster.DumpsterID).Return(suite.dumpster, nil).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrDumpsterUnavailable)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreateRemovalOrder_RentedDumpsterAllowed() {
	ctx := context.Background()
	req := suite.placementRequest()
	req.OrderType = "removal"
	suite.dumpster.Status = domain.DumpsterRented

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(suite.client, nil).Once()
	suite.mockDumpsterRepo.On("FindDumpsterByID", ctx, suite.dumpster.DumpsterID).Return(suite.dumpster, nil).Once()
	suite.mockOrderRepo.On("CreateOrder", ctx, mock.AnythingOfType("domain.Order"), mock.AnythingOfType("domain.AccountsReceivable"), false).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderRemoval, order.OrderType)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_RepoError() {
	ctx := context.Background()
	req := suite.placementRequest()
	expectedErr := assert.AnError

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(suite.client, nil).Once()
	suite.mockDumpsterRepo.On("FindDumpsterByID", ctx, suite.dumpster.DumpsterID).Return(suite.dumpster, nil).Once()
	suite.mockOrderRepo.On("CreateOrder", ctx, mock.AnythingOfType("domain.Order"), mock.AnythingOfType("domain.AccountsReceivable"), true).Return(expectedErr).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, expectedErr)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_CompletedRemovalFreesDumpster() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.Order{
		OrderID:    orderID,
		OrderType:  domain.OrderRemoval,
		Status:     domain.OrderInProgress,
		DumpsterID: suite.dumpster.DumpsterID,
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, domain.OrderCompleted, mock.AnythingOfType("*time.Time")).Return(nil).Once()
	suite.mockDumpsterRepo.On("FreeDumpster", ctx, suite.dumpster.DumpsterID).Return(nil).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, orderID, domain.OrderCompleted)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderCompleted, order.Status)
	suite.Require().NotNil(order.CompletedDate)
	suite.mockDumpsterRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_CompletedPlacementLeavesDumpster() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.Order{
		OrderID:    orderID,
		OrderType:  domain.OrderPlacement,
		Status:     domain.OrderInProgress,
		DumpsterID: suite.dumpster.DumpsterID,
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, domain.OrderCompleted, mock.AnythingOfType("*time.Time")).Return(nil).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, orderID, domain.OrderCompleted)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.mockDumpsterRepo.AssertNotCalled(suite.T(), "FreeDumpster", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_CancelledSkipsCompletedDate() {
	ctx := context.Background()
	orderID := uuid.NewString()
	existing := &domain.Order{
		OrderID:   orderID,
		OrderType: domain.OrderPlacement,
		Status:    domain.OrderPending,
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(existing, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, domain.OrderCancelled, (*time.Time)(nil)).Return(nil).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, orderID, domain.OrderCancelled)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderCancelled, order.Status)
	suite.Nil(order.CompletedDate)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_NotFound() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(nil, apperrors.ErrNotFound).Once()

	order, err := suite.service.UpdateOrderStatus(ctx, orderID, domain.OrderCompleted)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestDeleteOrder_Success() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("DeleteOrder", ctx, orderID).Return(nil).Once()

	err := suite.service.DeleteOrder(ctx, orderID)

	suite.Require().NoError(err)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestDeleteOrder_NotFound() {
	ctx := context.Background()
	orderID := uuid.NewString()

	suite.mockOrderRepo.On("DeleteOrder", ctx, orderID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteOrder(ctx, orderID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestOrderService(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetDashboardData(ctx context.Context, monthStart time.Time) (*domain.DashboardData, error) {
	args := m.Called(ctx, monthStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardData), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_Success() {
	ctx := context.Background()
	data := &domain.DashboardData{
		TotalDumpsters:        10,
		AvailableDumpsters:    6,
		RentedDumpsters:       3,
		ActiveOrders:          4,
		PendingOrders:         2,
		RevenueMonth:          decimal.RequireFromString("1500.00"),
		ReceivableOutstanding: decimal.RequireFromString("350.00"),
		ReceivableReceived:    decimal.RequireFromString("500.00"),
		PayableOutstanding:    decimal.RequireFromString("120.00"),
		PayablePaid:           decimal.RequireFromString("200.00"),
	}

	suite.mockRepo.On("GetDashboardData", ctx, mock.AnythingOfType("time.Time")).Return(data, nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.Equal(10, stats.TotalDumpsters)
	suite.Equal(6, stats.AvailableDumpsters)
	suite.Equal(3, stats.RentedDumpsters)
	suite.Equal(4, stats.ActiveOrders)
	suite.Equal(2, stats.PendingOrders)
	suite.True(stats.TotalRevenueMonth.Equal(decimal.RequireFromString("1500.00")))
	suite.True(stats.TotalReceivable.Equal(decimal.RequireFromString("350.00")))
	suite.True(stats.TotalPayable.Equal(decimal.RequireFromString("120.00")))
	// 500.00 received - 200.00 paid
	suite.True(stats.CashBalance.Equal(decimal.RequireFromString("300.00")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_MonthStartIsFirstInstantUTC() {
	ctx := context.Background()
	data := &domain.DashboardData{}

	suite.mockRepo.On("GetDashboardData", ctx, mock.MatchedBy(func(monthStart time.Time) bool {
		now := time.Now().UTC()
		return monthStart.Year() == now.Year() &&
			monthStart.Month() == now.Month() &&
			monthStart.Day() == 1 &&
			monthStart.Hour() == 0 &&
			monthStart.Minute() == 0 &&
			monthStart.Second() == 0 &&
			monthStart.Nanosecond() == 0 &&
			monthStart.Location() == time.UTC
	})).Return(data, nil).Once()

	_, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_ZeroState() {
	ctx := context.Background()
	data := &domain.DashboardData{}

	suite.mockRepo.On("GetDashboardData", ctx, mock.AnythingOfType("time.Time")).Return(data, nil).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, stats.TotalDumpsters)
	suite.True(stats.CashBalance.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardStats_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("GetDashboardData", ctx, mock.AnythingOfType("time.Time")).Return(nil, expectedErr).Once()

	stats, err := suite.service.GetDashboardStats(ctx)

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

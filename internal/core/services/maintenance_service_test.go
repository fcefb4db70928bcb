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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MaintenanceRepository ---
type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) SaveMaintenance(ctx context.Context, record domain.MaintenanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) FindMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceRecord, error) {
	args := m.Called(ctx, maintenanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRecord), args.Error(1)
}

func (m *MockMaintenanceRepository) FindMaintenanceByDumpster(ctx context.Context, dumpsterID string) ([]domain.MaintenanceRecord, error) {
	args := m.Called(ctx, dumpsterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceRecord), args.Error(1)
}

func (m *MockMaintenanceRepository) CompleteMaintenance(ctx context.Context, maintenanceID string, endedAt time.Time, actualCost *decimal.Decimal) error {
	args := m.Called(ctx, maintenanceID, endedAt, actualCost)
	return args.Error(0)
}

// --- Test Suite ---
type MaintenanceServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockMaintenanceRepository
	mockDumpsterRepo *MockDumpsterRepository
	service          portssvc.MaintenanceSvcFacade
}

func (suite *MaintenanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMaintenanceRepository)
	suite.mockDumpsterRepo = new(MockDumpsterRepository)
	suite.service = services.NewMaintenanceService(suite.mockRepo, suite.mockDumpsterRepo)
}

// --- Test Cases ---

func (suite *MaintenanceServiceTestSuite) TestCreateMaintenance_Success() {
	ctx := context.Background()
	dumpsterID := uuid.NewString()
	reason := "hydraulic leak"
	req := dto.CreateMaintenanceRequest{
		Reason:    &reason,
		StartDate: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	dumpster := &domain.Dumpster{DumpsterID: dumpsterID, Identifier: "CB-07"}

	suite.mockDumpsterRepo.On("FindDumpsterByID", ctx, dumpsterID).Return(dumpster, nil).Once()
	suite.mockRepo.On("SaveMaintenance", ctx, mock.MatchedBy(func(r domain.MaintenanceRecord) bool {
		return r.DumpsterID == dumpsterID &&
			r.Status == domain.MaintenanceInProgress &&
			r.Reason != nil && *r.Reason == reason &&
			r.ActualEndDate == nil
	})).Return(nil).Once()

	record, err := suite.service.CreateMaintenance(ctx, dumpsterID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Equal(domain.MaintenanceInProgress, record.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestCreateMaintenance_DumpsterNotFound() {
	ctx := context.Background()
	dumpsterID := uuid.NewString()

	suite.mockDumpsterRepo.On("FindDumpsterByID", ctx, dumpsterID).Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.service.CreateMaintenance(ctx, dumpsterID, dto.CreateMaintenanceRequest{StartDate: time.Now()})

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveMaintenance", mock.Anything, mock.Anything)
}

func (suite *MaintenanceServiceTestSuite) TestCompleteMaintenance_ReturnsUpdatedRecord() {
	ctx := context.Background()
	maintenanceID := uuid.NewString()
	cost := decimal.RequireFromString("180.00")
	endedAt := time.Date(2025, 6, 3, 17, 0, 0, 0, time.UTC)
	completed := &domain.MaintenanceRecord{
		MaintenanceID: maintenanceID,
		Status:        domain.MaintenanceCompleted,
		ActualEndDate: &endedAt,
		ActualCost:    &cost,
	}

	suite.mockRepo.On("CompleteMaintenance", ctx, maintenanceID, mock.AnythingOfType("time.Time"), &cost).Return(nil).Once()
	suite.mockRepo.On("FindMaintenanceByID", ctx, maintenanceID).Return(completed, nil).Once()

	record, err := suite.service.CompleteMaintenance(ctx, maintenanceID, dto.CompleteMaintenanceRequest{ActualCost: &cost})

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Equal(domain.MaintenanceCompleted, record.Status)
	suite.Require().NotNil(record.ActualCost)
	suite.True(record.ActualCost.Equal(cost))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestCompleteMaintenance_NotFound() {
	ctx := context.Background()
	maintenanceID := uuid.NewString()

	suite.mockRepo.On("CompleteMaintenance", ctx, maintenanceID, mock.AnythingOfType("time.Time"), (*decimal.Decimal)(nil)).Return(apperrors.ErrNotFound).Once()

	record, err := suite.service.CompleteMaintenance(ctx, maintenanceID, dto.CompleteMaintenanceRequest{})

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindMaintenanceByID", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestMaintenanceService(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceTestSuite))
}

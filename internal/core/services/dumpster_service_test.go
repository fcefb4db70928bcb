package services_test

import (
	"context"
	"testing"

	"github.com/foxentulhos/dumpster_rental_app/internal/apperrors"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type DumpsterServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDumpsterRepository
	service  portssvc.DumpsterSvcFacade
}

func (suite *DumpsterServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDumpsterRepository)
	suite.service = services.NewDumpsterService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *DumpsterServiceTestSuite) TestUpdateDumpsterStatus_WithLocation() {
	ctx := context.Background()
	dumpsterID := uuid.NewString()
	location := "Av. Paulista 1000"

	suite.mockRepo.On("SetDumpsterStatus", ctx, dumpsterID, domain.DumpsterRented, &location).Return(nil).Once()

	err := suite.service.UpdateDumpsterStatus(ctx, dumpsterID, domain.DumpsterRented, &location)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DumpsterServiceTestSuite) TestUpdateDumpsterStatus_NilLocationPreservesStored() {
	ctx := context.Background()
	dumpsterID := uuid.NewString()

	// Patching to available without a location must not clear the stored
	// location. Only a completed removal frees and clears a dumpster.
	suite.mockRepo.On("SetDumpsterStatus", ctx, dumpsterID, domain.DumpsterAvailable, (*string)(nil)).Return(nil).Once()

	err := suite.service.UpdateDumpsterStatus(ctx, dumpsterID, domain.DumpsterAvailable, nil)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "FreeDumpster", mock.Anything, mock.Anything)
}

func (suite *DumpsterServiceTestSuite) TestUpdateDumpsterStatus_NotFound() {
	ctx := context.Background()
	dumpsterID := uuid.NewString()

	suite.mockRepo.On("SetDumpsterStatus", ctx, dumpsterID, domain.DumpsterMaintenance, (*string)(nil)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.UpdateDumpsterStatus(ctx, dumpsterID, domain.DumpsterMaintenance, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestDumpsterService(t *testing.T) {
	suite.Run(t, new(DumpsterServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/crewpay/crewpay-backend/internal/apperrors"
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portssvc "github.com/crewpay/crewpay-backend/internal/core/ports/services"
	"github.com/crewpay/crewpay-backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.SettingsSvc

	fixedNow time.Time
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockSettingsRepo)

	suite.fixedNow = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	suite.service.(interface{ SetClock(func() time.Time) }).SetClock(func() time.Time { return suite.fixedNow })
}

func (suite *SettingsServiceTestSuite) TestGetSettings_Persisted() {
	ctx := context.Background()
	stored := &domain.CompanySettings{MonthlyLateAllowance: 5, HalfDayAllowance: 1}

	suite.mockSettingsRepo.On("GetCompanySettings", ctx).Return(stored, nil).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Equal(stored, settings)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_DefaultsWhenUnset() {
	ctx := context.Background()

	suite.mockSettingsRepo.On("GetCompanySettings", ctx).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(settings)
	suite.Equal(domain.DefaultMonthlyLateAllowance, settings.MonthlyLateAllowance)
	suite.Equal(domain.DefaultHalfDayAllowance, settings.HalfDayAllowance)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_Success() {
	ctx := context.Background()
	actingUserID := uuid.NewString()

	suite.mockSettingsRepo.On("UpdateCompanySettings", ctx, mock.MatchedBy(func(settings domain.CompanySettings) bool {
		return settings.MonthlyLateAllowance == 4 &&
			settings.HalfDayAllowance == 1 &&
			settings.LastUpdatedBy == actingUserID &&
			settings.LastUpdatedAt.Equal(suite.fixedNow)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateSettings(ctx, domain.CompanySettings{
		MonthlyLateAllowance: 4,
		HalfDayAllowance:     1,
	}, actingUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(4, updated.MonthlyLateAllowance)
	suite.Equal(actingUserID, updated.LastUpdatedBy)
	assert.Equal(suite.T(), suite.fixedNow, updated.CreatedAt)

	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_NegativeAllowance() {
	ctx := context.Background()

	updated, err := suite.service.UpdateSettings(ctx, domain.CompanySettings{
		MonthlyLateAllowance: -1,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "UpdateCompanySettings", mock.Anything, mock.Anything)
}

func TestSettingsService(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

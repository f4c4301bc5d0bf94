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
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockEmployeeRepository is a mock type for the EmployeeRepositoryFacade interface
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) ResetBonusInTx(ctx context.Context, tx pgx.Tx, employeeID string, userID string, now time.Time) error {
	args := m.Called(ctx, tx, employeeID, userID, now)
	return args.Error(0)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByEmployeeID(ctx context.Context, employeeID string) (*domain.Account, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateBaseSalary(ctx context.Context, employeeID string, baseSalary decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, employeeID, baseSalary, userID, now)
	return args.Error(0)
}

// MockSalaryLogRepository is a mock type for the SalaryLogRepositoryWithTx interface
type MockSalaryLogRepository struct {
	mock.Mock
}

func (m *MockSalaryLogRepository) FindSalaryLogByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*domain.NetSalaryLog, error) {
	args := m.Called(ctx, employeeID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetSalaryLog), args.Error(1)
}

func (m *MockSalaryLogRepository) ListSalaryLogsByEmployee(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.NetSalaryLog, *string, error) {
	args := m.Called(ctx, employeeID, limit, nextToken)
	var logs []domain.NetSalaryLog
	if args.Get(0) != nil {
		logs = args.Get(0).([]domain.NetSalaryLog)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return logs, token, args.Error(2)
}

func (m *MockSalaryLogRepository) UpsertSalaryLog(ctx context.Context, log domain.NetSalaryLog) (*domain.NetSalaryLog, error) {
	args := m.Called(ctx, log)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetSalaryLog), args.Error(1)
}

func (m *MockSalaryLogRepository) FindUnpaidLogForUpdate(ctx context.Context, tx pgx.Tx, employeeID string, month string) (*domain.NetSalaryLog, error) {
	args := m.Called(ctx, tx, employeeID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetSalaryLog), args.Error(1)
}

func (m *MockSalaryLogRepository) MarkPaidInTx(ctx context.Context, tx pgx.Tx, salaryLogID string, paidOn time.Time, processedBy string, method string) error {
	args := m.Called(ctx, tx, salaryLogID, paidOn, processedBy, method)
	return args.Error(0)
}

func (m *MockSalaryLogRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockSalaryLogRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSalaryLogRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockHRLogRepository is a mock type for the HRLogWriter interface
type MockHRLogRepository struct {
	mock.Mock
}

func (m *MockHRLogRepository) SaveHRLog(ctx context.Context, entry domain.HRLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHRLogRepository) SaveHRLogInTx(ctx context.Context, tx pgx.Tx, entry domain.HRLog) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

// MockDeductionService is a mock type for the DeductionSvc interface
type MockDeductionService struct {
	mock.Mock
}

func (m *MockDeductionService) CalculateDeductions(ctx context.Context, employeeID string, month string) (*domain.DeductionBreakdown, error) {
	args := m.Called(ctx, employeeID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeductionBreakdown), args.Error(1)
}

func (m *MockDeductionService) CalculateAllEmployeesDeductions(ctx context.Context, month string) (*domain.BatchDeductionResult, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BatchDeductionResult), args.Error(1)
}

// --- Test Suite Setup ---

type SalaryServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo  *MockEmployeeRepository
	mockAccountRepo   *MockAccountRepository
	mockSalaryLogRepo *MockSalaryLogRepository
	mockSalesDeptRepo *MockSalesDepartmentRepository
	mockHRLogRepo     *MockHRLogRepository
	mockDeductionSvc  *MockDeductionService
	service           portssvc.SalarySvcFacade

	fixedNow time.Time
}

func (suite *SalaryServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockSalaryLogRepo = new(MockSalaryLogRepository)
	suite.mockSalesDeptRepo = new(MockSalesDepartmentRepository)
	suite.mockHRLogRepo = new(MockHRLogRepository)
	suite.mockDeductionSvc = new(MockDeductionService)
	suite.service = services.NewSalaryService(
		suite.mockEmployeeRepo,
		suite.mockAccountRepo,
		suite.mockSalaryLogRepo,
		suite.mockSalesDeptRepo,
		suite.mockHRLogRepo,
		suite.mockDeductionSvc,
	)

	suite.fixedNow = time.Date(2025, time.June, 30, 0, 5, 0, 0, time.UTC)
	suite.service.(interface{ SetClock(func() time.Time) }).SetClock(func() time.Time { return suite.fixedNow })
}

func (suite *SalaryServiceTestSuite) activeEmployee(employeeID string) *domain.Employee {
	return &domain.Employee{
		EmployeeID: employeeID,
		Name:       "Jordan Lee",
		Status:     domain.EmploymentActive,
		Department: domain.DepartmentOther,
		StartDate:  time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		Bonus:      decimal.Zero,
	}
}

func (suite *SalaryServiceTestSuite) accountWithBase(employeeID string, base int64) *domain.Account {
	baseSalary := decimal.NewFromInt(base)
	return &domain.Account{
		AccountID:  uuid.NewString(),
		EmployeeID: employeeID,
		BaseSalary: &baseSalary,
	}
}

// --- Test Cases ---

func (suite *SalaryServiceTestSuite) TestCalculateSalary_FullMonth() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(suite.activeEmployee(employeeID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, employeeID).Return(suite.accountWithBase(employeeID, 30000), nil).Once()
	suite.mockSalesDeptRepo.On("FindSalesDepartmentByEmployeeID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	var captured domain.NetSalaryLog
	suite.mockSalaryLogRepo.On("UpsertSalaryLog", ctx, mock.AnythingOfType("domain.NetSalaryLog")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(domain.NetSalaryLog) }).
		Return(&domain.NetSalaryLog{SalaryLogID: uuid.NewString()}, nil).Once()

	saved, err := suite.service.CalculateSalary(ctx, employeeID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(saved)

	// A full month pays the base salary unchanged.
	suite.Equal(employeeID, captured.EmployeeID)
	suite.Equal("2025-06", captured.Month)
	suite.True(captured.BaseSalary.Equal(decimal.NewFromInt(30000)))
	suite.True(captured.Commission.IsZero())
	suite.True(captured.Bonus.IsZero())
	suite.True(captured.Deductions.IsZero())
	suite.True(captured.NetSalary.Equal(decimal.NewFromInt(30000)))
	suite.Equal(domain.SalaryUnpaid, captured.Status)

	suite.mockSalaryLogRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestCalculateSalary_MidMonthJoiner() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	startDate := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(suite.activeEmployee(employeeID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, employeeID).Return(suite.accountWithBase(employeeID, 30000), nil).Once()
	suite.mockSalesDeptRepo.On("FindSalesDepartmentByEmployeeID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	var captured domain.NetSalaryLog
	suite.mockSalaryLogRepo.On("UpsertSalaryLog", ctx, mock.AnythingOfType("domain.NetSalaryLog")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(domain.NetSalaryLog) }).
		Return(&domain.NetSalaryLog{SalaryLogID: uuid.NewString()}, nil).Once()

	_, err := suite.service.CalculateSalary(ctx, employeeID, &startDate, nil)

	suite.Require().NoError(err)
	// Joining on day 10 pays 21 of 30 days: 21000 of 30000.
	suite.True(captured.NetSalary.Equal(decimal.NewFromInt(21000)), "got %s", captured.NetSalary)
	suite.Equal("2025-06", captured.Month)
}

func (suite *SalaryServiceTestSuite) TestCalculateSalary_MidMonthTermination() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	endDate := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(suite.activeEmployee(employeeID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, employeeID).Return(suite.accountWithBase(employeeID, 30000), nil).Once()
	suite.mockSalesDeptRepo.On("FindSalesDepartmentByEmployeeID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	var captured domain.NetSalaryLog
	suite.mockSalaryLogRepo.On("UpsertSalaryLog", ctx, mock.AnythingOfType("domain.NetSalaryLog")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(domain.NetSalaryLog) }).
		Return(&domain.NetSalaryLog{SalaryLogID: uuid.NewString()}, nil).Once()

	_, err := suite.service.CalculateSalary(ctx, employeeID, nil, &endDate)

	suite.Require().NoError(err)
	// Leaving on day 15 pays 15 of 30 days.
	suite.True(captured.NetSalary.Equal(decimal.NewFromInt(15000)), "got %s", captured.NetSalary)
}

func (suite *SalaryServiceTestSuite) TestCalculateSalary_CommissionAndBonuses() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	employee := suite.activeEmployee(employeeID)
	employee.Department = domain.DepartmentSales
	employee.Bonus = decimal.NewFromInt(500)

	dept := &domain.SalesDepartment{
		SalesDepartmentID: uuid.NewString(),
		EmployeeID:        employeeID,
		CommissionAmount:  decimal.NewFromInt(2500),
		SalesBonus:        decimal.NewFromInt(1000),
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(employee, nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, employeeID).Return(suite.accountWithBase(employeeID, 30000), nil).Once()
	suite.mockSalesDeptRepo.On("FindSalesDepartmentByEmployeeID", ctx, employeeID).Return(dept, nil).Once()

	var captured domain.NetSalaryLog
	suite.mockSalaryLogRepo.On("UpsertSalaryLog", ctx, mock.AnythingOfType("domain.NetSalaryLog")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(domain.NetSalaryLog) }).
		Return(&domain.NetSalaryLog{SalaryLogID: uuid.NewString()}, nil).Once()

	_, err := suite.service.CalculateSalary(ctx, employeeID, nil, nil)

	suite.Require().NoError(err)
	suite.True(captured.Commission.Equal(decimal.NewFromInt(2500)))
	// Discretionary bonus and sales bonus add up.
	suite.True(captured.Bonus.Equal(decimal.NewFromInt(1500)))
	suite.True(captured.NetSalary.Equal(decimal.NewFromInt(34000)), "got %s", captured.NetSalary)
}

func (suite *SalaryServiceTestSuite) TestCalculateSalary_NoBaseSalary() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	account := &domain.Account{AccountID: uuid.NewString(), EmployeeID: employeeID, BaseSalary: nil}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(suite.activeEmployee(employeeID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, employeeID).Return(account, nil).Once()

	saved, err := suite.service.CalculateSalary(ctx, employeeID, nil, nil)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrInvalidState)

	suite.mockSalaryLogRepo.AssertNotCalled(suite.T(), "UpsertSalaryLog", mock.Anything, mock.Anything)
}

func (suite *SalaryServiceTestSuite) TestCalculateSalary_PaidMonthRejected() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(suite.activeEmployee(employeeID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, employeeID).Return(suite.accountWithBase(employeeID, 30000), nil).Once()
	suite.mockSalesDeptRepo.On("FindSalesDepartmentByEmployeeID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSalaryLogRepo.On("UpsertSalaryLog", ctx, mock.AnythingOfType("domain.NetSalaryLog")).
		Return(nil, apperrors.ErrInvalidState).Once()

	saved, err := suite.service.CalculateSalary(ctx, employeeID, nil, nil)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *SalaryServiceTestSuite) TestCalculateSalary_EmployeeNotFound() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	saved, err := suite.service.CalculateSalary(ctx, employeeID, nil, nil)

	suite.Require().Error(err)
	suite.Nil(saved)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SalaryServiceTestSuite) TestCalculateAllEmployees_IsolatesFailures() {
	ctx := context.Background()
	okID := uuid.NewString()
	failID := uuid.NewString()

	okEmployee := *suite.activeEmployee(okID)
	failEmployee := *suite.activeEmployee(failID)

	suite.mockEmployeeRepo.On("ListActiveEmployees", ctx).Return([]domain.Employee{okEmployee, failEmployee}, nil).Once()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, okID).Return(&okEmployee, nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, okID).Return(suite.accountWithBase(okID, 30000), nil).Once()
	suite.mockSalesDeptRepo.On("FindSalesDepartmentByEmployeeID", ctx, okID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSalaryLogRepo.On("UpsertSalaryLog", ctx, mock.AnythingOfType("domain.NetSalaryLog")).
		Return(&domain.NetSalaryLog{SalaryLogID: uuid.NewString()}, nil).Once()

	// The second employee has no payroll account; the batch keeps going.
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, failID).Return(&failEmployee, nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, failID).Return(nil, apperrors.ErrNotFound).Once()

	suite.service.CalculateAllEmployees(ctx)

	suite.mockEmployeeRepo.AssertExpectations(suite.T())
	suite.mockSalaryLogRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestCalculateAllEmployees_DetectsJoinerAndTermination() {
	ctx := context.Background()
	joinerID := uuid.NewString()
	leaverID := uuid.NewString()

	joiner := *suite.activeEmployee(joinerID)
	joiner.StartDate = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	leaver := *suite.activeEmployee(leaverID)
	endDate := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	leaver.EndDate = &endDate

	suite.mockEmployeeRepo.On("ListActiveEmployees", ctx).Return([]domain.Employee{joiner, leaver}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, joinerID).Return(&joiner, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, leaverID).Return(&leaver, nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, joinerID).Return(suite.accountWithBase(joinerID, 30000), nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, leaverID).Return(suite.accountWithBase(leaverID, 30000), nil).Once()
	suite.mockSalesDeptRepo.On("FindSalesDepartmentByEmployeeID", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Twice()

	captured := map[string]domain.NetSalaryLog{}
	suite.mockSalaryLogRepo.On("UpsertSalaryLog", ctx, mock.AnythingOfType("domain.NetSalaryLog")).
		Run(func(args mock.Arguments) {
			log := args.Get(1).(domain.NetSalaryLog)
			captured[log.EmployeeID] = log
		}).
		Return(&domain.NetSalaryLog{SalaryLogID: uuid.NewString()}, nil).Twice()

	suite.service.CalculateAllEmployees(ctx)

	suite.Require().Len(captured, 2)
	// The joiner gets a prorated 21 days, the leaver 15 days.
	suite.True(captured[joinerID].NetSalary.Equal(decimal.NewFromInt(21000)), "got %s", captured[joinerID].NetSalary)
	suite.True(captured[leaverID].NetSalary.Equal(decimal.NewFromInt(15000)), "got %s", captured[leaverID].NetSalary)
}

func (suite *SalaryServiceTestSuite) TestUpdateSalary_AdminSuccess() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(suite.activeEmployee(employeeID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, employeeID).Return(suite.accountWithBase(employeeID, 30000), nil).Once()
	suite.mockAccountRepo.On("UpdateBaseSalary", ctx, employeeID,
		mock.MatchedBy(func(base decimal.Decimal) bool { return base.Equal(decimal.NewFromInt(35000)) }),
		domain.AdminProcessor, suite.fixedNow).Return(nil).Once()

	err := suite.service.UpdateSalary(ctx, employeeID, decimal.NewFromInt(35000), uuid.NewString(), true)

	suite.Require().NoError(err)
	// Admin changes leave no HR audit entry.
	suite.mockHRLogRepo.AssertNotCalled(suite.T(), "SaveHRLog", mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestUpdateSalary_NonAdminWritesAuditEntry() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	actingEmployeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(suite.activeEmployee(employeeID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, employeeID).Return(suite.accountWithBase(employeeID, 30000), nil).Once()
	suite.mockAccountRepo.On("UpdateBaseSalary", ctx, employeeID,
		mock.AnythingOfType("decimal.Decimal"), actingEmployeeID, suite.fixedNow).Return(nil).Once()
	suite.mockHRLogRepo.On("SaveHRLog", ctx, mock.MatchedBy(func(entry domain.HRLog) bool {
		return entry.Action == "salary_updated" && entry.ActorEmployeeID == actingEmployeeID
	})).Return(nil).Once()

	err := suite.service.UpdateSalary(ctx, employeeID, decimal.NewFromInt(32000), actingEmployeeID, false)

	suite.Require().NoError(err)
	suite.mockHRLogRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestUpdateSalary_NegativeRejected() {
	ctx := context.Background()

	err := suite.service.UpdateSalary(ctx, uuid.NewString(), decimal.NewFromInt(-1), uuid.NewString(), true)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "FindEmployeeByID", mock.Anything, mock.Anything)
}

func (suite *SalaryServiceTestSuite) TestUpdateSalary_SelfForbidden() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(suite.activeEmployee(employeeID), nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, employeeID).Return(suite.accountWithBase(employeeID, 30000), nil).Once()

	err := suite.service.UpdateSalary(ctx, employeeID, decimal.NewFromInt(99000), employeeID, false)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateBaseSalary",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SalaryServiceTestSuite) TestUpdateSalary_SalaryPermittedHRNeedsAdmin() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	hrEmployee := suite.activeEmployee(employeeID)
	hrEmployee.Department = domain.DepartmentHR
	hrEmployee.SalaryPermission = true

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(hrEmployee, nil).Once()
	suite.mockAccountRepo.On("FindAccountByEmployeeID", ctx, employeeID).Return(suite.accountWithBase(employeeID, 30000), nil).Once()

	err := suite.service.UpdateSalary(ctx, employeeID, decimal.NewFromInt(40000), uuid.NewString(), false)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *SalaryServiceTestSuite) TestUpdateSalary_InactiveEmployee() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	terminated := suite.activeEmployee(employeeID)
	terminated.Status = domain.EmploymentTerminated

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(terminated, nil).Once()

	err := suite.service.UpdateSalary(ctx, employeeID, decimal.NewFromInt(40000), uuid.NewString(), true)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *SalaryServiceTestSuite) TestGetSalaryBreakdown_Delegates() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	expected := &domain.DeductionBreakdown{EmployeeID: employeeID, Month: "2025-06"}

	suite.mockDeductionSvc.On("CalculateDeductions", ctx, employeeID, "2025-06").Return(expected, nil).Once()

	breakdown, err := suite.service.GetSalaryBreakdown(ctx, employeeID, "2025-06")

	suite.Require().NoError(err)
	suite.Equal(expected, breakdown)
	suite.mockDeductionSvc.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestListSalaryLogs_Success() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	logs := []domain.NetSalaryLog{
		{SalaryLogID: uuid.NewString(), EmployeeID: employeeID, Month: "2025-06"},
		{SalaryLogID: uuid.NewString(), EmployeeID: employeeID, Month: "2025-05"},
	}
	token := "next"

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(suite.activeEmployee(employeeID), nil).Once()
	suite.mockSalaryLogRepo.On("ListSalaryLogsByEmployee", ctx, employeeID, 12, (*string)(nil)).Return(logs, &token, nil).Once()

	got, nextToken, err := suite.service.ListSalaryLogs(ctx, employeeID, 12, nil)

	suite.Require().NoError(err)
	suite.Equal(logs, got)
	suite.Require().NotNil(nextToken)
	assert.Equal(suite.T(), "next", *nextToken)
}

func (suite *SalaryServiceTestSuite) TestListSalaryLogs_EmployeeNotFound() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	got, nextToken, err := suite.service.ListSalaryLogs(ctx, employeeID, 12, nil)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.Nil(nextToken)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockSalaryLogRepo.AssertNotCalled(suite.T(), "ListSalaryLogsByEmployee",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestSalaryService(t *testing.T) {
	suite.Run(t, new(SalaryServiceTestSuite))
}

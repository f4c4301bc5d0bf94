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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockFinanceRepository is a mock type for the FinanceRepositoryFacade interface
type MockFinanceRepository struct {
	mock.Mock
}

func (m *MockFinanceRepository) CreateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockFinanceRepository) CreateExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	args := m.Called(ctx, tx, expense)
	return args.Error(0)
}

func (m *MockFinanceRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Test Suite Setup ---

type PaymentServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo  *MockEmployeeRepository
	mockSalaryLogRepo *MockSalaryLogRepository
	mockSalesDeptRepo *MockSalesDepartmentRepository
	mockFinanceRepo   *MockFinanceRepository
	mockHRLogRepo     *MockHRLogRepository
	service           portssvc.PaymentSvc

	fixedNow time.Time
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockSalaryLogRepo = new(MockSalaryLogRepository)
	suite.mockSalesDeptRepo = new(MockSalesDepartmentRepository)
	suite.mockFinanceRepo = new(MockFinanceRepository)
	suite.mockHRLogRepo = new(MockHRLogRepository)
	suite.service = services.NewPaymentService(
		suite.mockEmployeeRepo,
		suite.mockSalaryLogRepo,
		suite.mockSalesDeptRepo,
		suite.mockFinanceRepo,
		suite.mockHRLogRepo,
	)

	suite.fixedNow = time.Date(2025, time.June, 30, 10, 0, 0, 0, time.UTC)
	suite.service.(interface{ SetClock(func() time.Time) }).SetClock(func() time.Time { return suite.fixedNow })
}

func (suite *PaymentServiceTestSuite) employee(employeeID string, dept domain.DepartmentType) *domain.Employee {
	return &domain.Employee{
		EmployeeID: employeeID,
		Name:       "Sam Rivera",
		Status:     domain.EmploymentActive,
		Department: dept,
		StartDate:  time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *PaymentServiceTestSuite) unpaidLog(employeeID string) *domain.NetSalaryLog {
	return &domain.NetSalaryLog{
		SalaryLogID: uuid.NewString(),
		EmployeeID:  employeeID,
		Month:       "2025-06",
		BaseSalary:  decimal.NewFromInt(30000),
		NetSalary:   decimal.NewFromInt(32500),
		Status:      domain.SalaryUnpaid,
	}
}

// --- Test Cases ---

func (suite *PaymentServiceTestSuite) TestMarkSalaryPaid_AdminSuccess() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	log := suite.unpaidLog(employeeID)

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).
		Return(suite.employee(employeeID, domain.DepartmentSales), nil).Once()
	suite.mockSalaryLogRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockSalaryLogRepo.On("FindUnpaidLogForUpdate", ctx, mock.Anything, employeeID, "2025-06").Return(log, nil).Once()
	suite.mockSalaryLogRepo.On("MarkPaidInTx", ctx, mock.Anything, log.SalaryLogID, suite.fixedNow, domain.AdminProcessor, "bank_transfer").Return(nil).Once()
	suite.mockEmployeeRepo.On("ResetBonusInTx", ctx, mock.Anything, employeeID, domain.AdminProcessor, suite.fixedNow).Return(nil).Once()
	// Sales employees also get the sales bonus reset.
	suite.mockSalesDeptRepo.On("ResetSalesBonusInTx", ctx, mock.Anything, employeeID, domain.AdminProcessor, suite.fixedNow).Return(nil).Once()
	suite.mockFinanceRepo.On("CreateTransactionInTx", ctx, mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.EmployeeID == employeeID &&
			txn.Type == domain.TransactionSalary &&
			txn.Status == domain.TransactionCompleted &&
			txn.Amount.Equal(log.NetSalary) &&
			txn.Method == "bank_transfer"
	})).Return(nil).Once()
	suite.mockFinanceRepo.On("CreateExpenseInTx", ctx, mock.Anything, mock.MatchedBy(func(expense domain.Expense) bool {
		return expense.Category == domain.ExpenseSalary && expense.Amount.Equal(log.NetSalary)
	})).Return(nil).Once()
	suite.mockSalaryLogRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockSalaryLogRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	receipt, err := suite.service.MarkSalaryPaid(ctx, employeeID, "bank_transfer", uuid.NewString(), true)

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)
	suite.Equal(employeeID, receipt.EmployeeID)
	suite.Equal(log.SalaryLogID, receipt.SalaryLogID)
	suite.NotEmpty(receipt.TransactionID)
	suite.NotEmpty(receipt.ExpenseID)
	suite.True(receipt.Amount.Equal(log.NetSalary))
	suite.Equal("bank_transfer", receipt.PaymentMethod)
	suite.Equal(suite.fixedNow, receipt.PaidOn)

	// Admin payments skip the HR audit log.
	suite.mockHRLogRepo.AssertNotCalled(suite.T(), "SaveHRLogInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockSalaryLogRepo.AssertExpectations(suite.T())
	suite.mockFinanceRepo.AssertExpectations(suite.T())
	suite.mockSalesDeptRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestMarkSalaryPaid_NonAdminWritesAuditEntry() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	actingUserID := uuid.NewString()
	log := suite.unpaidLog(employeeID)

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).
		Return(suite.employee(employeeID, domain.DepartmentOther), nil).Once()
	suite.mockSalaryLogRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockSalaryLogRepo.On("FindUnpaidLogForUpdate", ctx, mock.Anything, employeeID, "2025-06").Return(log, nil).Once()
	suite.mockSalaryLogRepo.On("MarkPaidInTx", ctx, mock.Anything, log.SalaryLogID, suite.fixedNow, actingUserID, "cash").Return(nil).Once()
	suite.mockEmployeeRepo.On("ResetBonusInTx", ctx, mock.Anything, employeeID, actingUserID, suite.fixedNow).Return(nil).Once()
	suite.mockFinanceRepo.On("CreateTransactionInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockFinanceRepo.On("CreateExpenseInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockHRLogRepo.On("SaveHRLogInTx", ctx, mock.Anything, mock.MatchedBy(func(entry domain.HRLog) bool {
		return entry.Action == "salary_paid" && entry.ActorEmployeeID == actingUserID
	})).Return(nil).Once()
	suite.mockSalaryLogRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockSalaryLogRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	receipt, err := suite.service.MarkSalaryPaid(ctx, employeeID, "cash", actingUserID, false)

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)

	// Non-sales employees keep their sales ledger untouched.
	suite.mockSalesDeptRepo.AssertNotCalled(suite.T(), "ResetSalesBonusInTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockHRLogRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestMarkSalaryPaid_NoUnpaidSalary() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).
		Return(suite.employee(employeeID, domain.DepartmentOther), nil).Once()
	suite.mockSalaryLogRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockSalaryLogRepo.On("FindUnpaidLogForUpdate", ctx, mock.Anything, employeeID, "2025-06").Return(nil, nil).Once()
	suite.mockSalaryLogRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	receipt, err := suite.service.MarkSalaryPaid(ctx, employeeID, "cash", uuid.NewString(), true)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrNoUnpaidSalary)

	suite.mockSalaryLogRepo.AssertNotCalled(suite.T(), "MarkPaidInTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockSalaryLogRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockFinanceRepo.AssertNotCalled(suite.T(), "CreateTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestMarkSalaryPaid_InactiveEmployee() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	terminated := suite.employee(employeeID, domain.DepartmentOther)
	terminated.Status = domain.EmploymentTerminated

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(terminated, nil).Once()

	receipt, err := suite.service.MarkSalaryPaid(ctx, employeeID, "cash", uuid.NewString(), true)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrInvalidState)

	suite.mockSalaryLogRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestMarkSalaryPaid_EmptyMethodDefaultsToCash() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	log := suite.unpaidLog(employeeID)

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).
		Return(suite.employee(employeeID, domain.DepartmentOther), nil).Once()
	suite.mockSalaryLogRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockSalaryLogRepo.On("FindUnpaidLogForUpdate", ctx, mock.Anything, employeeID, "2025-06").Return(log, nil).Once()
	// An omitted method settles as cash.
	suite.mockSalaryLogRepo.On("MarkPaidInTx", ctx, mock.Anything, log.SalaryLogID, suite.fixedNow, domain.AdminProcessor, domain.PaymentMethodCash).Return(nil).Once()
	suite.mockEmployeeRepo.On("ResetBonusInTx", ctx, mock.Anything, employeeID, domain.AdminProcessor, suite.fixedNow).Return(nil).Once()
	suite.mockFinanceRepo.On("CreateTransactionInTx", ctx, mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Method == domain.PaymentMethodCash
	})).Return(nil).Once()
	suite.mockFinanceRepo.On("CreateExpenseInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockSalaryLogRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockSalaryLogRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	receipt, err := suite.service.MarkSalaryPaid(ctx, employeeID, "", uuid.NewString(), true)

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)
	suite.Equal(domain.PaymentMethodCash, receipt.PaymentMethod)

	suite.mockSalaryLogRepo.AssertExpectations(suite.T())
	suite.mockFinanceRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestMarkSalariesPaidBulk_MixedOutcomes() {
	ctx := context.Background()
	paidID := uuid.NewString()
	unpaidID := uuid.NewString()
	log := suite.unpaidLog(paidID)

	// First employee pays out normally.
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, paidID).
		Return(suite.employee(paidID, domain.DepartmentOther), nil).Once()
	suite.mockSalaryLogRepo.On("FindUnpaidLogForUpdate", ctx, mock.Anything, paidID, "2025-06").Return(log, nil).Once()
	suite.mockSalaryLogRepo.On("MarkPaidInTx", ctx, mock.Anything, log.SalaryLogID, suite.fixedNow, domain.AdminProcessor, "cash").Return(nil).Once()
	suite.mockEmployeeRepo.On("ResetBonusInTx", ctx, mock.Anything, paidID, domain.AdminProcessor, suite.fixedNow).Return(nil).Once()
	suite.mockFinanceRepo.On("CreateTransactionInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockFinanceRepo.On("CreateExpenseInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	// Second employee has nothing unpaid this month.
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, unpaidID).
		Return(suite.employee(unpaidID, domain.DepartmentOther), nil).Once()
	suite.mockSalaryLogRepo.On("FindUnpaidLogForUpdate", ctx, mock.Anything, unpaidID, "2025-06").Return(nil, nil).Once()

	suite.mockSalaryLogRepo.On("Begin", ctx).Return(nil, nil).Twice()
	suite.mockSalaryLogRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockSalaryLogRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	rows := suite.service.MarkSalariesPaidBulk(ctx, []string{paidID, unpaidID}, "cash", uuid.NewString(), true)

	suite.Require().Len(rows, 2)

	suite.Equal(paidID, rows[0].EmployeeID)
	suite.Require().NotNil(rows[0].Receipt)
	suite.Empty(rows[0].Error)

	suite.Equal(unpaidID, rows[1].EmployeeID)
	suite.Nil(rows[1].Receipt)
	suite.Equal("no unpaid salary for the current month", rows[1].Error)

	suite.mockSalaryLogRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestMarkSalariesPaidBulk_UnknownEmployee() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	rows := suite.service.MarkSalariesPaidBulk(ctx, []string{unknownID}, "cash", uuid.NewString(), true)

	suite.Require().Len(rows, 1)
	suite.Nil(rows[0].Receipt)
	suite.Equal("employee not found", rows[0].Error)
}

// --- Run Test Suite ---

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

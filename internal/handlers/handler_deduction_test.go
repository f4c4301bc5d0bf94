package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portssvc "github.com/crewpay/crewpay-backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DeductionService ---
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

// Ensure mock implements the interface
var _ portssvc.DeductionSvc = (*MockDeductionService)(nil)

// --- Test Suite ---
type DeductionHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockDeductionService *MockDeductionService
}

func (suite *DeductionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockDeductionService = new(MockDeductionService)

	h := newDeductionHandler(suite.mockDeductionService)
	suite.router.GET("/api/v1/deductions", h.getAllDeductions)
	suite.router.GET("/api/v1/salaries/:employeeID/deductions", h.getDeductions)
}

// --- Test Cases ---

func (suite *DeductionHandlerTestSuite) TestGetDeductions_Success() {
	employeeID := uuid.NewString()
	breakdown := &domain.DeductionBreakdown{
		EmployeeID:     employeeID,
		Month:          "2025-06",
		BaseSalary:     decimal.NewFromInt(30000),
		TotalDeduction: decimal.NewFromInt(2000),
	}
	suite.mockDeductionService.On("CalculateDeductions", mock.Anything, employeeID, "2025-06").
		Return(breakdown, nil).Once()

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/salaries/%s/deductions?month=2025-06", employeeID), nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	suite.Equal(http.StatusOK, rr.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(employeeID, resp["employeeID"])
	suite.Equal("2025-06", resp["month"])
	suite.mockDeductionService.AssertExpectations(suite.T())
}

func (suite *DeductionHandlerTestSuite) TestGetDeductions_MalformedMonth() {
	employeeID := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/salaries/%s/deductions?month=not-a-month", employeeID), nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockDeductionService.AssertNotCalled(suite.T(), "CalculateDeductions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DeductionHandlerTestSuite) TestGetDeductions_MissingMonth() {
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/salaries/%s/deductions", uuid.NewString()), nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockDeductionService.AssertNotCalled(suite.T(), "CalculateDeductions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DeductionHandlerTestSuite) TestGetAllDeductions_MalformedMonth() {
	// 13 is not a month, so a well-shaped but invalid value is still rejected.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/deductions?month=2025-13", nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockDeductionService.AssertNotCalled(suite.T(), "CalculateAllEmployeesDeductions", mock.Anything, mock.Anything)
}

func (suite *DeductionHandlerTestSuite) TestGetAllDeductions_Success() {
	result := &domain.BatchDeductionResult{
		Month:           "2025-06",
		TotalEmployees:  2,
		TotalDeductions: decimal.NewFromInt(3500),
		TotalNetSalary:  decimal.NewFromInt(56500),
	}
	suite.mockDeductionService.On("CalculateAllEmployeesDeductions", mock.Anything, "2025-06").
		Return(result, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/deductions?month=2025-06", nil)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)

	suite.Equal(http.StatusOK, rr.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal("2025-06", resp["month"])
	suite.Equal(float64(2), resp["totalEmployees"])
	suite.mockDeductionService.AssertExpectations(suite.T())
}

func TestDeductionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DeductionHandlerTestSuite))
}

package services

import (
	portsrepo "github.com/crewpay/crewpay-backend/internal/core/ports/repositories"
	portssvc "github.com/crewpay/crewpay-backend/internal/core/ports/services"
	"github.com/crewpay/crewpay-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Deduction service first since the salary breakdown depends on it.
	container.Deduction = NewDeductionService(
		repos.EmployeeRepo,
		repos.AccountRepo,
		repos.SalesDeptRepo,
		repos.AttendanceRepo,
		repos.SettingsRepo,
	)

	container.Salary = NewSalaryService(
		repos.EmployeeRepo,
		repos.AccountRepo,
		repos.SalaryLogRepo,
		repos.SalesDeptRepo,
		repos.HRLogRepo,
		container.Deduction,
	)

	container.Commission = NewCommissionService(
		repos.SalesDeptRepo,
		repos.ProjectRepo,
	)

	container.Payment = NewPaymentService(
		repos.EmployeeRepo,
		repos.SalaryLogRepo,
		repos.SalesDeptRepo,
		repos.FinanceRepo,
		repos.HRLogRepo,
	)

	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.User = NewUserService(repos.UserRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

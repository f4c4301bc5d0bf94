package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	EmployeeRepo   EmployeeRepositoryFacade
	AccountRepo    AccountRepositoryFacade
	SalaryLogRepo  SalaryLogRepositoryWithTx
	SalesDeptRepo  SalesDepartmentRepositoryWithTx
	ProjectRepo    ProjectReader
	AttendanceRepo AttendanceRepositoryFacade
	FinanceRepo    FinanceRepositoryFacade
	HRLogRepo      HRLogWriter
	SettingsRepo   SettingsRepositoryFacade
	UserRepo       UserRepositoryFacade
}

package pgsql

import (
	portsrepo "github.com/crewpay/crewpay-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:   newPgxEmployeeRepository(dbPool),
		AccountRepo:    newPgxAccountRepository(dbPool),
		SalaryLogRepo:  newPgxSalaryLogRepository(dbPool),
		SalesDeptRepo:  newPgxSalesDepartmentRepository(dbPool),
		ProjectRepo:    newPgxProjectRepository(dbPool),
		AttendanceRepo: newPgxAttendanceRepository(dbPool),
		FinanceRepo:    newPgxFinanceRepository(dbPool),
		HRLogRepo:      newPgxHRLogRepository(dbPool),
		SettingsRepo:   newPgxSettingsRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
	}
}

package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mkopo/chama_management_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	groupPerfRepo := newPgxGroupPerformanceRepository(dbPool)
	monthlyPerfRepo := newPgxMonthlyPerformanceRepository(dbPool)
	advanceRepo := newPgxAdvanceRepository(dbPool)
	advanceCreditRepo := newPgxAdvanceCreditRepository(dbPool)
	historyRepo := newPgxHistoryRepository(dbPool)
	advanceArchiveRepo := newPgxAdvanceArchiveRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		GroupPerformanceRepo:   groupPerfRepo,
		MonthlyPerformanceRepo: monthlyPerfRepo,
		AdvanceRepo:            advanceRepo,
		AdvanceCreditRepo:      advanceCreditRepo,
		HistoryRepo:            historyRepo,
		AdvanceArchiveRepo:     advanceArchiveRepo,
		UserRepo:               userRepo,
		TransactionRepo:        transactionRepo,
		NotificationRepo:       notificationRepo,
	}
}

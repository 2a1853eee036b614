package services

import (
	portsrepo "github.com/mkopo/chama_management_app/internal/core/ports/repositories"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/platform/config"
)

// NewServiceContainer wires every application service over the repository
// provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Performance: NewPerformanceService(repos.GroupPerformanceRepo, repos.MonthlyPerformanceRepo, repos.UserRepo),
		Advance:     NewAdvanceService(repos.AdvanceRepo, repos.AdvanceCreditRepo, repos.GroupPerformanceRepo, repos.MonthlyPerformanceRepo),
		Archive: NewArchiveService(
			repos.HistoryRepo,
			repos.AdvanceArchiveRepo,
			repos.GroupPerformanceRepo,
			repos.MonthlyPerformanceRepo,
			repos.AdvanceRepo,
			repos.AdvanceCreditRepo,
			repos.UserRepo,
		),
		User:         NewUserService(repos.UserRepo),
		OAuth:        NewGoogleOAuthService(cfg),
		Transaction:  NewTransactionService(repos.TransactionRepo),
		Notification: NewNotificationService(repos.NotificationRepo),
	}
}

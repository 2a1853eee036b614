package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	GroupPerformanceRepo   GroupPerformanceRepositoryFacade
	MonthlyPerformanceRepo MonthlyPerformanceRepositoryFacade
	AdvanceRepo            AdvanceRepositoryFacade
	AdvanceCreditRepo      AdvanceCreditRepositoryFacade
	HistoryRepo            HistoryRepositoryFacade
	AdvanceArchiveRepo     AdvanceArchiveRepositoryFacade
	UserRepo               UserRepositoryFacade
	TransactionRepo        TransactionRepositoryFacade
	NotificationRepo       NotificationRepositoryFacade
}

package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo        AccountRepository
	JournalRepo        JournalRepository
	OpeningBalanceRepo OpeningBalanceRepository
	ReportingRepo      ReportingRepository
}

package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	InvoiceRepo  InvoiceRepositoryFacade
	JournalRepo  JournalRepositoryFacade
	ReportRepo   ReportRepositoryFacade
	ActivityRepo ActivityLogRepository
	CustomerRepo CustomerRepository
	UserRepo     UserRepository
	SessionRepo  SessionRepository
	Batch        BatchRunner
}

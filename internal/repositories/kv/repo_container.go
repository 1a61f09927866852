package kv

import (
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every collection repository to store.
func NewRepositoryProvider(store portsrepo.KeyValueStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:  newInvoiceRepository(store),
		JournalRepo:  newJournalRepository(store),
		ReportRepo:   newReportRepository(store),
		ActivityRepo: newActivityRepository(store),
		CustomerRepo: newCustomerRepository(store),
		UserRepo:     newUserRepository(store),
		SessionRepo:  newSessionRepository(store),
		Batch:        NewBatchRunner(store),
	}
}

package services

import (
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, events EventSink, options ...Option) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Activity comes first since every mutating service records to it
	activityOptions := []ActivityOption{WithActivityLimit(cfg.ActivityLogLimit), WithActivityBatch(repos.Batch)}
	if events != nil {
		activityOptions = append(activityOptions, WithEventSink(events))
	}
	container.Activity = NewActivityService(repos.ActivityRepo, repos.SessionRepo, options, activityOptions...)

	container.Report = NewReportingService(repos.ReportRepo, repos.InvoiceRepo, repos.Batch, options...)
	container.Journal = NewJournalService(repos.JournalRepo, container.Report, container.Activity, repos.Batch, options...)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, container.Journal, container.Report, container.Activity, repos.Batch, options...)
	container.Customer = NewCustomerService(repos.CustomerRepo, container.Activity, repos.Batch, options...)
	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.SessionRepo, container.Activity, options...)

	// The page registry resolves its routines against the finished container
	container.Pages = NewPageRegistry(container, repos.Batch, options...)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InvoiceSvcFacade   = (*invoiceService)(nil)
	_ portssvc.JournalSvcFacade   = (*journalService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)

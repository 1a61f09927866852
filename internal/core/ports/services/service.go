package services

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Invoice  InvoiceSvcFacade
	Journal  JournalSvcFacade
	Report   ReportingSvcFacade
	Activity ActivitySvc
	Customer CustomerSvc
	Auth     AuthSvc
	Pages    PageSvc
}

// Notifier surfaces a message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string, severity domain.Severity)
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

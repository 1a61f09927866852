package services

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/dto"
)

// PageSvc prepares the data a page needs when it is opened.
type PageSvc interface {
	// InitializePage sweeps orphaned report rows, runs the page routine and
	// logs the visit.
	InitializePage(ctx context.Context, page string) (*dto.PageResponse, error)

	// Pages lists the registered page names.
	Pages() []string
}

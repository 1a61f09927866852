package repositories

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
)

// CustomerRepository stores the customer collection.
type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	SaveCustomers(ctx context.Context, customers []domain.Customer) error
}

package kv

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
)

type customerRepository struct {
	baseRepository
}

func newCustomerRepository(store portsrepo.KeyValueStore) portsrepo.CustomerRepository {
	return &customerRepository{baseRepository{store: store}}
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return loadCollection[domain.Customer](ctx, r.storeFor(ctx), portsrepo.KeyCustomers)
}

func (r *customerRepository) SaveCustomers(ctx context.Context, customers []domain.Customer) error {
	return saveCollection(ctx, r.storeFor(ctx), portsrepo.KeyCustomers, customers)
}

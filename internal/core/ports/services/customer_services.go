package services

import (
	"context"

	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/dto"
)

// CustomerSvc manages the customer list.
type CustomerSvc interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, req dto.CustomerRequest) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, index int, req dto.CustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, index int, confirmer Confirmer) (bool, error)
}

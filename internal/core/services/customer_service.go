package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bukukas_app/internal/core/ports/services"
	"github.com/SscSPs/bukukas_app/internal/dto"
	"github.com/SscSPs/bukukas_app/internal/utils"
)

const msgCustomerNotFound = "Data pelanggan tidak ditemukan"

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
	activitySvc  portssvc.ActivitySvc
	batch        portsrepo.BatchRunner
}

// NewCustomerService creates the customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepository, activitySvc portssvc.ActivitySvc, batch portsrepo.BatchRunner, options ...Option) portssvc.CustomerSvc {
	return &customerService{
		BaseService:  newBaseService(options),
		customerRepo: customerRepo,
		activitySvc:  activitySvc,
		batch:        batch,
	}
}

var _ portssvc.CustomerSvc = (*customerService)(nil)

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CustomerRequest) (*domain.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		s.Notify(ctx, "Data pelanggan tidak valid", domain.SeverityError)
		return nil, err
	}
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
	}

	err := s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		customers, err := s.customerRepo.ListCustomers(ctx)
		if err != nil {
			return err
		}
		if err := s.customerRepo.SaveCustomers(ctx, append(customers, customer)); err != nil {
			return fmt.Errorf("failed to save customers: %w", err)
		}
		return s.activitySvc.Record(ctx, fmt.Sprintf("Menambah pelanggan: %s", customer.Name))
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create customer")
		s.Notify(ctx, "Gagal menyimpan data pelanggan", domain.SeverityError)
		return nil, err
	}
	s.Notify(ctx, "Data pelanggan berhasil disimpan", domain.SeveritySuccess)
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, index int, req dto.CustomerRequest) (*domain.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		s.Notify(ctx, "Data pelanggan tidak valid", domain.SeverityError)
		return nil, err
	}
	var customer domain.Customer
	err := s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		customers, err := s.customerAt(ctx, index)
		if err != nil {
			return err
		}
		customer = customers[index]
		customer.Name = strings.TrimSpace(req.Name)
		customer.Phone = req.Phone
		customer.Email = req.Email
		customer.Address = req.Address
		if customer.CustomerID == "" {
			customer.CustomerID = uuid.NewString()
		}
		customers[index] = customer

		if err := s.customerRepo.SaveCustomers(ctx, customers); err != nil {
			return fmt.Errorf("failed to save customers: %w", err)
		}
		return s.activitySvc.Record(ctx, fmt.Sprintf("Mengubah pelanggan: %s", customer.Name))
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.Notify(ctx, msgCustomerNotFound, domain.SeverityError)
		return nil, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to update customer")
		s.Notify(ctx, "Gagal menyimpan data pelanggan", domain.SeverityError)
		return nil, err
	}
	s.Notify(ctx, "Data pelanggan berhasil diperbarui", domain.SeveritySuccess)
	return &customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, index int, confirmer portssvc.Confirmer) (bool, error) {
	var customer domain.Customer
	declined := false
	err := s.batch.RunInBatch(ctx, func(ctx context.Context) error {
		customers, err := s.customerAt(ctx, index)
		if err != nil {
			return err
		}
		customer = customers[index]
		if !confirmer.Confirm(ctx, fmt.Sprintf("Apakah Anda yakin ingin menghapus pelanggan %s?", customer.Name)) {
			declined = true
			return nil
		}

		remaining := make([]domain.Customer, 0, len(customers)-1)
		remaining = append(remaining, customers[:index]...)
		remaining = append(remaining, customers[index+1:]...)
		if err := s.customerRepo.SaveCustomers(ctx, remaining); err != nil {
			return fmt.Errorf("failed to save customers: %w", err)
		}
		return s.activitySvc.Record(ctx, fmt.Sprintf("Menghapus pelanggan: %s", customer.Name))
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.Notify(ctx, msgCustomerNotFound, domain.SeverityError)
		return false, err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to delete customer")
		s.Notify(ctx, "Terjadi kesalahan saat menghapus pelanggan", domain.SeverityError)
		return false, err
	}
	if declined {
		return false, nil
	}
	s.Notify(ctx, fmt.Sprintf("Pelanggan %s berhasil dihapus", customer.Name), domain.SeveritySuccess)
	return true, nil
}

func (s *customerService) customerAt(ctx context.Context, index int) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(customers) {
		return nil, fmt.Errorf("%w: customer index %d", apperrors.ErrNotFound, index)
	}
	return customers, nil
}

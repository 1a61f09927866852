package services_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/services"
	"github.com/SscSPs/bukukas_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_Lifecycle(t *testing.T) {
	env := newTestEnv()
	svc := env.svc.Customer

	created, err := svc.CreateCustomer(env.ctx, dto.CustomerRequest{Name: " Budi ", Phone: "0812", Email: "budi@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Budi", created.Name)
	assert.NotEmpty(t, created.CustomerID)

	updated, err := svc.UpdateCustomer(env.ctx, 0, dto.CustomerRequest{Name: "Budi Santoso", Address: "Bandung"})
	require.NoError(t, err)
	assert.Equal(t, created.CustomerID, updated.CustomerID)
	assert.Equal(t, "Bandung", updated.Address)

	list, err := svc.ListCustomers(env.ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Budi Santoso", list[0].Name)

	deleted, err := svc.DeleteCustomer(env.ctx, 0, services.StaticConfirmer(false))
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.DeleteCustomer(env.ctx, 0, services.StaticConfirmer(true))
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Contains(t, env.messages(), "Pelanggan Budi Santoso berhasil dihapus")

	logs, err := env.svc.Activity.ListActivityLogs(env.ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}

func TestCustomerService_Errors(t *testing.T) {
	env := newTestEnv()
	svc := env.svc.Customer

	_, err := svc.CreateCustomer(env.ctx, dto.CustomerRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = svc.CreateCustomer(env.ctx, dto.CustomerRequest{Name: "Ani", Email: "bukan-email"})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = svc.UpdateCustomer(env.ctx, 2, dto.CustomerRequest{Name: "Ani"})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	_, err = svc.DeleteCustomer(env.ctx, 0, services.StaticConfirmer(true))
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Contains(t, env.messages(), "Data pelanggan tidak ditemukan")
}

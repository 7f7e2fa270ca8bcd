package usecase

import (
	"errors"
	"testing"

	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/domain/entity"
	"serviturnos-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerUpdateProfileOnly(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")

	// Block the account first, then update the profile
	_, err := env.customers.SoftDelete(testCtx(), customer.ID)
	require.NoError(t, err)

	updated, err := env.customers.Update(testCtx(), customer.ID, &dto.UpdateCustomerRequest{
		City: "Cordoba",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cordoba", updated.City)

	// Updating the profile does not resurrect a blocked account
	assert.False(t, updated.Available)
}

func TestCustomerGetNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.customers.Get(testCtx(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestProfessionalGetByProfession(t *testing.T) {
	env := newTestEnv(t)
	env.createProfessional(t, "leo@example.com", entity.ProfessionPlumber)
	env.createProfessional(t, "mia@example.com", entity.ProfessionPlumber)
	env.createProfessional(t, "sam@example.com", entity.ProfessionPainter)

	plumbers, err := env.professional.GetByProfession(testCtx(), "plumber")
	require.NoError(t, err)
	assert.Equal(t, 2, plumbers.Total)

	_, err = env.professional.GetByProfession(testCtx(), "wizard")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestAdminSoftDeleteAndAuditLogs(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createAdmin(t, "root@example.com")

	result, err := env.admins.SoftDelete(testCtx(), admin.ID)
	require.NoError(t, err)
	assert.True(t, result.WasAvailable)
	assert.False(t, result.Available)

	logs, err := env.admins.GetAuditLogs(testCtx(), 0)
	require.NoError(t, err)
	require.Equal(t, 1, logs.Total)
	assert.Equal(t, entity.AuditActionAdminSoftDelete, logs.AuditLogs[0].Action)
}

func TestProfessionalUpdateFee(t *testing.T) {
	env := newTestEnv(t)
	professional := env.createProfessional(t, "leo@example.com", entity.ProfessionCarpenter)

	fee := 1800.0
	updated, err := env.professional.Update(testCtx(), professional.ID, &dto.UpdateProfessionalRequest{
		Fee:        &fee,
		Profession: "locksmith",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Fee)
	assert.InDelta(t, fee, *updated.Fee, 0.001)
	assert.Equal(t, "locksmith", updated.Profession)
}

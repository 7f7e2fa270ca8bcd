package usecase

import (
	"errors"
	"testing"

	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/domain/entity"
	"serviturnos-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterCustomer(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.RegisterCustomer(testCtx(), &dto.RegisterCustomerRequest{
		Email:     "ana@example.com",
		Password:  "secret123",
		FirstName: "Ana",
		LastName:  "Gomez",
		City:      "Rosario",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.True(t, resp.Available)

	// The stored password is a bcrypt hash, not the plaintext
	var customer entity.Customer
	require.NoError(t, env.db.Where("email = ?", "ana@example.com").First(&customer).Error)
	assert.NotEqual(t, "secret123", customer.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte("secret123")))
}

func TestRegisterProfessionalWithFee(t *testing.T) {
	env := newTestEnv(t)

	fee := 2500.50
	resp, err := env.auth.RegisterProfessional(testCtx(), &dto.RegisterProfessionalRequest{
		Email:      "leo@example.com",
		Password:   "secret123",
		Profession: "electrician",
		Fee:        &fee,
	})
	require.NoError(t, err)
	assert.Equal(t, "electrician", resp.Profession)
	require.NotNil(t, resp.Fee)
	assert.InDelta(t, fee, *resp.Fee, 0.001)
	assert.Empty(t, resp.AvailableSlots)
	assert.Empty(t, resp.NotAvailableSlots)
}

func TestRegisterProfessionalUnknownProfession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.RegisterProfessional(testCtx(), &dto.RegisterProfessionalRequest{
		Email:      "leo@example.com",
		Password:   "secret123",
		Profession: "wizard",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestRegisterDuplicateEmailAcrossKinds(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.RegisterCustomer(testCtx(), &dto.RegisterCustomerRequest{
		Email:    "shared@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// The same email cannot register as another account kind either
	_, err = env.auth.RegisterProfessional(testCtx(), &dto.RegisterProfessionalRequest{
		Email:      "shared@example.com",
		Password:   "secret123",
		Profession: "plumber",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))

	_, err = env.auth.RegisterAdmin(testCtx(), &dto.RegisterAdminRequest{
		Email:    "shared@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestLoginChecksCredentials(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.RegisterCustomer(testCtx(), &dto.RegisterCustomerRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Matching credentials on an available account resolve the right identity
	acc, err := env.auth.(*authUsecase).authenticate(testCtx(), "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, acc.id)
	assert.Equal(t, entity.UserTypeCustomer, acc.userType)
	assert.True(t, acc.available)

	_, err = env.auth.Login(testCtx(), &dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))

	_, err = env.auth.Login(testCtx(), &dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}

func TestLoginBlockedAccount(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.RegisterCustomer(testCtx(), &dto.RegisterCustomerRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = env.customers.SoftDelete(testCtx(), resp.ID)
	require.NoError(t, err)

	// The right password is not enough while the account is blocked
	_, err = env.auth.Login(testCtx(), &dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccountBlocked))
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))

	// Toggling availability back restores the login
	_, err = env.customers.SoftDelete(testCtx(), resp.ID)
	require.NoError(t, err)

	acc, err := env.auth.(*authUsecase).authenticate(testCtx(), "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.True(t, acc.available)
}

func TestGetCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ana@example.com")

	resp, err := env.auth.GetCurrentUser(testCtx(), customer.ID, entity.UserTypeCustomer)
	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeCustomer, resp.UserType)
	require.NotNil(t, resp.Customer)
	assert.Equal(t, customer.ID, resp.Customer.ID)
	assert.Nil(t, resp.Professional)
	assert.Nil(t, resp.Admin)

	_, err = env.auth.GetCurrentUser(testCtx(), customer.ID, "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidArgument))
}

func TestRegistrationWritesAuditTrail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.RegisterCustomer(testCtx(), &dto.RegisterCustomerRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, env.db.Model(&entity.AuditLog{}).
		Where("action = ?", entity.AuditActionUserRegister).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

package usecase

import (
	"context"

	"serviturnos-api/internal/converter"
	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/domain/entity"
	"serviturnos-api/internal/domain/repository"
	"serviturnos-api/internal/service"
	"serviturnos-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = apperror.Wrap(apperror.ErrNotFound, "customer not found")

type CustomerUsecase interface {
	GetAll(ctx context.Context) (*dto.CustomerListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*dto.SoftDeleteResponse, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type customerUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	customerRepo repository.CustomerRepository
	meetingRepo  repository.MeetingRepository
	auditService service.AuditService
}

func NewCustomerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	customerRepo repository.CustomerRepository,
	meetingRepo repository.MeetingRepository,
	auditService service.AuditService,
) CustomerUsecase {
	return &customerUsecase{
		db:           db,
		log:          log,
		customerRepo: customerRepo,
		meetingRepo:  meetingRepo,
		auditService: auditService,
	}
}

func (u *customerUsecase) GetAll(ctx context.Context) (*dto.CustomerListResponse, error) {
	customers, err := u.customerRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find customers: %+v", err)
		return nil, err
	}

	responses := converter.CustomersToResponses(customers)
	return &dto.CustomerListResponse{
		Customers: responses,
		Total:     len(responses),
	}, nil
}

func (u *customerUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := u.customerRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	return converter.CustomerToResponse(customer), nil
}

// Update changes profile fields only; the available flag is reachable solely
// through SoftDelete.
func (u *customerUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := u.customerRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if req.FirstName != "" {
		customer.FirstName = req.FirstName
	}
	if req.LastName != "" {
		customer.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		customer.PhoneNumber = req.PhoneNumber
	}
	if req.City != "" {
		customer.City = req.City
	}
	if req.ImageURL != "" {
		customer.ImageURL = req.ImageURL
	}

	if err := u.customerRepo.Update(ctx, u.db, customer); err != nil {
		u.log.Warnf("Failed to update customer: %+v", err)
		return nil, err
	}

	return converter.CustomerToResponse(customer), nil
}

// SoftDelete toggles the customer's availability and applies the same state
// to every meeting of that customer, regardless of meeting status.
func (u *customerUsecase) SoftDelete(ctx context.Context, id uuid.UUID) (*dto.SoftDeleteResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	customer, err := u.customerRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	wasAvailable := entity.ToggleAvailability(customer)

	if err := u.customerRepo.Update(ctx, tx, customer); err != nil {
		u.log.Warnf("Failed to update customer: %+v", err)
		return nil, err
	}

	if err := u.meetingRepo.SetAvailabilityByCustomer(ctx, tx, id, customer.IsAvailable()); err != nil {
		u.log.Warnf("Failed to cascade availability to meetings: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &id, entity.AuditActionCustomerSoftDelete, entity.JSON{
		"was_available": wasAvailable,
		"available":     customer.IsAvailable(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SoftDeleteResponse{
		ID:           id,
		WasAvailable: wasAvailable,
		Available:    customer.IsAvailable(),
	}, nil
}

// HardDelete hides the customer's meetings before removing the record; the
// meeting rows themselves survive with a dangling customer id.
func (u *customerUsecase) HardDelete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	customer, err := u.customerRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}

	if err := u.meetingRepo.SetAvailabilityByCustomer(ctx, tx, id, false); err != nil {
		u.log.Warnf("Failed to cascade availability to meetings: %+v", err)
		return err
	}

	if err := u.customerRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete customer: %+v", err)
		return err
	}

	if err := u.auditService.Log(ctx, tx, &id, entity.AuditActionCustomerHardDelete, entity.JSON{
		"email": customer.Email,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

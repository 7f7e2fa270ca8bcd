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

var ErrAdminNotFound = apperror.Wrap(apperror.ErrNotFound, "admin not found")

type AdminUsecase interface {
	GetAll(ctx context.Context) (*dto.AdminListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AdminResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdminRequest) (*dto.AdminResponse, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*dto.SoftDeleteResponse, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
	GetAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
}

type adminUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	adminRepo    repository.AdminRepository
	auditRepo    repository.AuditLogRepository
	auditService service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	adminRepo repository.AdminRepository,
	auditRepo repository.AuditLogRepository,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:           db,
		log:          log,
		adminRepo:    adminRepo,
		auditRepo:    auditRepo,
		auditService: auditService,
	}
}

func (u *adminUsecase) GetAll(ctx context.Context) (*dto.AdminListResponse, error) {
	admins, err := u.adminRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find admins: %+v", err)
		return nil, err
	}

	responses := converter.AdminsToResponses(admins)
	return &dto.AdminListResponse{
		Admins: responses,
		Total:  len(responses),
	}, nil
}

func (u *adminUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AdminResponse, error) {
	admin, err := u.adminRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	return converter.AdminToResponse(admin), nil
}

func (u *adminUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	admin, err := u.adminRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	if req.FirstName != "" {
		admin.FirstName = req.FirstName
	}
	if req.LastName != "" {
		admin.LastName = req.LastName
	}

	if err := u.adminRepo.Update(ctx, u.db, admin); err != nil {
		u.log.Warnf("Failed to update admin: %+v", err)
		return nil, err
	}

	return converter.AdminToResponse(admin), nil
}

// SoftDelete toggles the admin's availability. Admins hold no meetings, so
// there is nothing to cascade.
func (u *adminUsecase) SoftDelete(ctx context.Context, id uuid.UUID) (*dto.SoftDeleteResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := u.adminRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	wasAvailable := entity.ToggleAvailability(admin)

	if err := u.adminRepo.Update(ctx, tx, admin); err != nil {
		u.log.Warnf("Failed to update admin: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &id, entity.AuditActionAdminSoftDelete, entity.JSON{
		"was_available": wasAvailable,
		"available":     admin.IsAvailable(),
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
		Available:    admin.IsAvailable(),
	}, nil
}

func (u *adminUsecase) HardDelete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := u.adminRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}

	if err := u.adminRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete admin: %+v", err)
		return err
	}

	if err := u.auditService.Log(ctx, tx, &id, entity.AuditActionAdminHardDelete, entity.JSON{
		"email": admin.Email,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *adminUsecase) GetAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	logs, err := u.auditRepo.FindRecent(ctx, u.db, limit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	responses := converter.AuditLogsToResponses(logs)
	return &dto.AuditLogListResponse{
		AuditLogs: responses,
		Total:     len(responses),
	}, nil
}

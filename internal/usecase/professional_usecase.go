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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrProfessionalNotFound = apperror.Wrap(apperror.ErrNotFound, "professional not found")

type ProfessionalUsecase interface {
	GetAll(ctx context.Context) (*dto.ProfessionalListResponse, error)
	GetByProfession(ctx context.Context, profession string) (*dto.ProfessionalListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*dto.SoftDeleteResponse, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	meetingRepo      repository.MeetingRepository
	auditService     service.AuditService
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	meetingRepo repository.MeetingRepository,
	auditService service.AuditService,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		meetingRepo:      meetingRepo,
		auditService:     auditService,
	}
}

func (u *professionalUsecase) GetAll(ctx context.Context) (*dto.ProfessionalListResponse, error) {
	professionals, err := u.professionalRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find professionals: %+v", err)
		return nil, err
	}

	responses := converter.ProfessionalsToResponses(professionals)
	return &dto.ProfessionalListResponse{
		Professionals: responses,
		Total:         len(responses),
	}, nil
}

func (u *professionalUsecase) GetByProfession(ctx context.Context, profession string) (*dto.ProfessionalListResponse, error) {
	parsed, err := entity.ParseProfession(profession)
	if err != nil {
		return nil, err
	}

	professionals, err := u.professionalRepo.FindByProfession(ctx, u.db, parsed)
	if err != nil {
		u.log.Warnf("Failed to find professionals by profession: %+v", err)
		return nil, err
	}

	responses := converter.ProfessionalsToResponses(professionals)
	return &dto.ProfessionalListResponse{
		Professionals: responses,
		Total:         len(responses),
	}, nil
}

func (u *professionalUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}

// Update changes profile fields only; the available flag is reachable solely
// through SoftDelete, and the slot lists through the slot operations.
func (u *professionalUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	if req.Profession != "" {
		profession, err := entity.ParseProfession(req.Profession)
		if err != nil {
			return nil, err
		}
		professional.Profession = profession
	}
	if req.Fee != nil {
		professional.Fee = decimal.NewNullDecimal(decimal.NewFromFloat(*req.Fee))
	}
	if req.FirstName != "" {
		professional.FirstName = req.FirstName
	}
	if req.LastName != "" {
		professional.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		professional.PhoneNumber = req.PhoneNumber
	}
	if req.City != "" {
		professional.City = req.City
	}
	if req.ImageURL != "" {
		professional.ImageURL = req.ImageURL
	}

	if err := u.professionalRepo.Update(ctx, u.db, professional); err != nil {
		u.log.Warnf("Failed to update professional: %+v", err)
		return nil, err
	}

	return converter.ProfessionalToResponse(professional), nil
}

// SoftDelete toggles the professional's availability and applies the same
// state to every meeting of that professional, regardless of meeting status.
func (u *professionalUsecase) SoftDelete(ctx context.Context, id uuid.UUID) (*dto.SoftDeleteResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, err := u.professionalRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	wasAvailable := entity.ToggleAvailability(professional)

	if err := u.professionalRepo.Update(ctx, tx, professional); err != nil {
		u.log.Warnf("Failed to update professional: %+v", err)
		return nil, err
	}

	if err := u.meetingRepo.SetAvailabilityByProfessional(ctx, tx, id, professional.IsAvailable()); err != nil {
		u.log.Warnf("Failed to cascade availability to meetings: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &id, entity.AuditActionProfessionalSoftDelete, entity.JSON{
		"was_available": wasAvailable,
		"available":     professional.IsAvailable(),
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
		Available:    professional.IsAvailable(),
	}, nil
}

// HardDelete hides the professional's meetings before removing the record;
// the meeting rows themselves survive with a dangling professional id.
func (u *professionalUsecase) HardDelete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, err := u.professionalRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return err
	}
	if professional == nil {
		return ErrProfessionalNotFound
	}

	if err := u.meetingRepo.SetAvailabilityByProfessional(ctx, tx, id, false); err != nil {
		u.log.Warnf("Failed to cascade availability to meetings: %+v", err)
		return err
	}

	if err := u.professionalRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete professional: %+v", err)
		return err
	}

	if err := u.auditService.Log(ctx, tx, &id, entity.AuditActionProfessionalHardDelete, entity.JSON{
		"email": professional.Email,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

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

var ErrTimeSlotNotFound = apperror.Wrap(apperror.ErrNotFound, "time slot not found")

// SlotUsecase manages the weekly time slot catalog and each professional's
// two membership lists over it. A slot is never in both lists at once.
type SlotUsecase interface {
	ListTimeSlots(ctx context.Context) (*dto.TimeSlotListResponse, error)

	AddAvailableSlot(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error)
	RemoveAvailableSlot(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error)
	AddNotAvailableSlot(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error)
	RemoveNotAvailableSlot(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error)
	MoveToNotAvailable(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error)
	MoveToAvailable(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error)
	ClearAvailableSlots(ctx context.Context, professionalID uuid.UUID) (*dto.ProfessionalResponse, error)
	ClearNotAvailableSlots(ctx context.Context, professionalID uuid.UUID) (*dto.ProfessionalResponse, error)
}

type slotUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	timeSlotRepo     repository.TimeSlotRepository
	auditService     service.AuditService
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	timeSlotRepo repository.TimeSlotRepository,
	auditService service.AuditService,
) SlotUsecase {
	return &slotUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		timeSlotRepo:     timeSlotRepo,
		auditService:     auditService,
	}
}

func (u *slotUsecase) ListTimeSlots(ctx context.Context) (*dto.TimeSlotListResponse, error) {
	slots, err := u.timeSlotRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find time slots: %+v", err)
		return nil, err
	}

	responses := converter.TimeSlotsToResponses(slots)
	return &dto.TimeSlotListResponse{
		TimeSlots: responses,
		Total:     len(responses),
	}, nil
}

// load fetches the professional and the slot, in that order, inside db.
func (u *slotUsecase) load(ctx context.Context, db *gorm.DB, professionalID uuid.UUID, slotID int) (*entity.Professional, *entity.TimeSlot, error) {
	professional, err := u.professionalRepo.FindByID(ctx, db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, nil, err
	}
	if professional == nil {
		return nil, nil, ErrProfessionalNotFound
	}

	slot, err := u.timeSlotRepo.FindByID(ctx, db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find time slot: %+v", err)
		return nil, nil, err
	}
	if slot == nil {
		return nil, nil, ErrTimeSlotNotFound
	}

	return professional, slot, nil
}

// refresh re-reads the professional so the response carries the slot lists as
// stored, not as mutated in memory.
func (u *slotUsecase) refresh(ctx context.Context, professionalID uuid.UUID) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(ctx, u.db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to reload professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *slotUsecase) AddAvailableSlot(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, slot, err := u.load(ctx, tx, professionalID, slotID)
	if err != nil {
		return nil, err
	}

	if professional.HasAvailableSlot(slotID) {
		return nil, apperror.Wrap(apperror.ErrAlreadyPresent, "slot %d is already in the available list", slotID)
	}
	if professional.HasNotAvailableSlot(slotID) {
		return nil, apperror.Wrap(apperror.ErrAlreadyPresent, "slot %d is in the not available list", slotID)
	}

	if err := u.professionalRepo.AddAvailableSlot(ctx, tx, professional, slot); err != nil {
		u.log.Warnf("Failed to add available slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &professionalID, entity.AuditActionSlotAdd, entity.JSON{
		"slot_id": slotID,
		"list":    "available",
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.refresh(ctx, professionalID)
}

func (u *slotUsecase) RemoveAvailableSlot(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, slot, err := u.load(ctx, tx, professionalID, slotID)
	if err != nil {
		return nil, err
	}

	if !professional.HasAvailableSlot(slotID) {
		return nil, apperror.Wrap(apperror.ErrNotFound, "slot %d is not in the available list", slotID)
	}

	if err := u.professionalRepo.RemoveAvailableSlot(ctx, tx, professional, slot); err != nil {
		u.log.Warnf("Failed to remove available slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &professionalID, entity.AuditActionSlotRemove, entity.JSON{
		"slot_id": slotID,
		"list":    "available",
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.refresh(ctx, professionalID)
}

func (u *slotUsecase) AddNotAvailableSlot(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, slot, err := u.load(ctx, tx, professionalID, slotID)
	if err != nil {
		return nil, err
	}

	if professional.HasNotAvailableSlot(slotID) {
		return nil, apperror.Wrap(apperror.ErrAlreadyPresent, "slot %d is already in the not available list", slotID)
	}
	if professional.HasAvailableSlot(slotID) {
		return nil, apperror.Wrap(apperror.ErrAlreadyPresent, "slot %d is in the available list", slotID)
	}

	if err := u.professionalRepo.AddNotAvailableSlot(ctx, tx, professional, slot); err != nil {
		u.log.Warnf("Failed to add not available slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &professionalID, entity.AuditActionSlotAdd, entity.JSON{
		"slot_id": slotID,
		"list":    "not_available",
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.refresh(ctx, professionalID)
}

func (u *slotUsecase) RemoveNotAvailableSlot(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, slot, err := u.load(ctx, tx, professionalID, slotID)
	if err != nil {
		return nil, err
	}

	if !professional.HasNotAvailableSlot(slotID) {
		return nil, apperror.Wrap(apperror.ErrNotFound, "slot %d is not in the not available list", slotID)
	}

	if err := u.professionalRepo.RemoveNotAvailableSlot(ctx, tx, professional, slot); err != nil {
		u.log.Warnf("Failed to remove not available slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &professionalID, entity.AuditActionSlotRemove, entity.JSON{
		"slot_id": slotID,
		"list":    "not_available",
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.refresh(ctx, professionalID)
}

// MoveToNotAvailable removes the slot from the available list and adds it to
// the not available list in one transaction. The slot must be in the
// available list.
func (u *slotUsecase) MoveToNotAvailable(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, slot, err := u.load(ctx, tx, professionalID, slotID)
	if err != nil {
		return nil, err
	}

	if !professional.HasAvailableSlot(slotID) {
		return nil, apperror.Wrap(apperror.ErrNotFound, "slot %d is not in the available list", slotID)
	}

	if err := u.professionalRepo.RemoveAvailableSlot(ctx, tx, professional, slot); err != nil {
		u.log.Warnf("Failed to remove available slot: %+v", err)
		return nil, err
	}
	if err := u.professionalRepo.AddNotAvailableSlot(ctx, tx, professional, slot); err != nil {
		u.log.Warnf("Failed to add not available slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &professionalID, entity.AuditActionSlotMove, entity.JSON{
		"slot_id": slotID,
		"to":      "not_available",
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.refresh(ctx, professionalID)
}

// MoveToAvailable is the inverse of MoveToNotAvailable.
func (u *slotUsecase) MoveToAvailable(ctx context.Context, professionalID uuid.UUID, slotID int) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, slot, err := u.load(ctx, tx, professionalID, slotID)
	if err != nil {
		return nil, err
	}

	if !professional.HasNotAvailableSlot(slotID) {
		return nil, apperror.Wrap(apperror.ErrNotFound, "slot %d is not in the not available list", slotID)
	}

	if err := u.professionalRepo.RemoveNotAvailableSlot(ctx, tx, professional, slot); err != nil {
		u.log.Warnf("Failed to remove not available slot: %+v", err)
		return nil, err
	}
	if err := u.professionalRepo.AddAvailableSlot(ctx, tx, professional, slot); err != nil {
		u.log.Warnf("Failed to add available slot: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &professionalID, entity.AuditActionSlotMove, entity.JSON{
		"slot_id": slotID,
		"to":      "available",
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.refresh(ctx, professionalID)
}

func (u *slotUsecase) ClearAvailableSlots(ctx context.Context, professionalID uuid.UUID) (*dto.ProfessionalResponse, error) {
	return u.clear(ctx, professionalID, "available", u.professionalRepo.ClearAvailableSlots)
}

func (u *slotUsecase) ClearNotAvailableSlots(ctx context.Context, professionalID uuid.UUID) (*dto.ProfessionalResponse, error) {
	return u.clear(ctx, professionalID, "not_available", u.professionalRepo.ClearNotAvailableSlots)
}

func (u *slotUsecase) clear(ctx context.Context, professionalID uuid.UUID, list string, clearFn func(context.Context, *gorm.DB, *entity.Professional) error) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, err := u.professionalRepo.FindByID(ctx, tx, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	if err := clearFn(ctx, tx, professional); err != nil {
		u.log.Warnf("Failed to clear %s slots: %+v", list, err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &professionalID, entity.AuditActionSlotClear, entity.JSON{
		"list": list,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.refresh(ctx, professionalID)
}

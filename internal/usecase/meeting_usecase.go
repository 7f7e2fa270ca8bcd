package usecase

import (
	"context"
	"time"
	"unicode/utf8"

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

var (
	ErrMeetingNotFound    = apperror.Wrap(apperror.ErrNotFound, "meeting not found")
	ErrInvalidMeetingDate = apperror.Wrap(apperror.ErrInvalidArgument, "invalid meeting date, use RFC 3339")
	ErrJobInfoTooLong     = apperror.Wrap(apperror.ErrInvalidArgument, "job info must be at most 200 characters")
)

type MeetingUsecase interface {
	Create(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error)
	GetAll(ctx context.Context) (*dto.MeetingListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)

	Accept(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)
	Reject(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)
	Finalize(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)

	UpdateDetails(ctx context.Context, id uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error)

	GetByCustomer(ctx context.Context, customerID uuid.UUID) (*dto.MeetingListResponse, error)
	GetByProfessional(ctx context.Context, professionalID uuid.UUID) (*dto.MeetingListResponse, error)
	GetByStatus(ctx context.Context, status string) (*dto.MeetingListResponse, error)
	GetPendingForProfessional(ctx context.Context, professionalID uuid.UUID) (*dto.MeetingListResponse, error)

	SoftDelete(ctx context.Context, id uuid.UUID) (*dto.SoftDeleteResponse, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type meetingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	meetingRepo      repository.MeetingRepository
	customerRepo     repository.CustomerRepository
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
}

func NewMeetingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	meetingRepo repository.MeetingRepository,
	customerRepo repository.CustomerRepository,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
) MeetingUsecase {
	return &meetingUsecase{
		db:               db,
		log:              log,
		meetingRepo:      meetingRepo,
		customerRepo:     customerRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

// Create books a meeting between an existing customer and professional.
// New meetings always start pending.
func (u *meetingUsecase) Create(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	if utf8.RuneCountInString(req.JobInfo) > 200 {
		return nil, ErrJobInfoTooLong
	}

	var meetingDate *time.Time
	if req.MeetingDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.MeetingDate)
		if err != nil {
			return nil, ErrInvalidMeetingDate
		}
		meetingDate = &parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	customer, err := u.customerRepo.FindByID(ctx, tx, req.CustomerID)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	professional, err := u.professionalRepo.FindByID(ctx, tx, req.ProfessionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	meeting := &entity.Meeting{
		CustomerID:     req.CustomerID,
		ProfessionalID: req.ProfessionalID,
		Status:         entity.MeetingStatusPending,
		MeetingDate:    meetingDate,
		JobInfo:        req.JobInfo,
	}

	if err := u.meetingRepo.Create(ctx, tx, meeting); err != nil {
		u.log.Warnf("Failed to create meeting: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &meeting.CustomerID, entity.AuditActionMeetingCreate, entity.JSON{
		"meeting_id":      meeting.ID.String(),
		"professional_id": meeting.ProfessionalID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MeetingToResponse(meeting), nil
}

func (u *meetingUsecase) GetAll(ctx context.Context) (*dto.MeetingListResponse, error) {
	meetings, err := u.meetingRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find meetings: %+v", err)
		return nil, err
	}

	return u.listResponse(meetings), nil
}

func (u *meetingUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	meeting, err := u.meetingRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find meeting: %+v", err)
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	return converter.MeetingToResponse(meeting), nil
}

// transition loads the meeting, applies the guarded mutation and persists the
// result. The guard failing leaves the stored status untouched.
func (u *meetingUsecase) transition(ctx context.Context, id uuid.UUID, action string, mutate func(*entity.Meeting) error) (*dto.MeetingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	meeting, err := u.meetingRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find meeting: %+v", err)
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	if err := mutate(meeting); err != nil {
		return nil, err
	}

	if err := u.meetingRepo.Update(ctx, tx, meeting); err != nil {
		u.log.Warnf("Failed to update meeting: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, nil, action, entity.JSON{
		"meeting_id": meeting.ID.String(),
		"status":     string(meeting.Status),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MeetingToResponse(meeting), nil
}

func (u *meetingUsecase) Accept(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	return u.transition(ctx, id, entity.AuditActionMeetingAccept, (*entity.Meeting).Accept)
}

func (u *meetingUsecase) Reject(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	return u.transition(ctx, id, entity.AuditActionMeetingReject, (*entity.Meeting).Reject)
}

func (u *meetingUsecase) Cancel(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	return u.transition(ctx, id, entity.AuditActionMeetingCancel, (*entity.Meeting).Cancel)
}

func (u *meetingUsecase) Finalize(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	return u.transition(ctx, id, entity.AuditActionMeetingFinalize, (*entity.Meeting).Finalize)
}

// UpdateDetails changes the meeting date and job description regardless of
// lifecycle status. It never touches the available flag.
func (u *meetingUsecase) UpdateDetails(ctx context.Context, id uuid.UUID, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error) {
	meeting, err := u.meetingRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find meeting: %+v", err)
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	if req.MeetingDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.MeetingDate)
		if err != nil {
			return nil, ErrInvalidMeetingDate
		}
		meeting.MeetingDate = &parsed
	}
	if req.JobInfo != nil {
		if utf8.RuneCountInString(*req.JobInfo) > 200 {
			return nil, ErrJobInfoTooLong
		}
		meeting.JobInfo = *req.JobInfo
	}

	if err := u.meetingRepo.Update(ctx, u.db, meeting); err != nil {
		u.log.Warnf("Failed to update meeting: %+v", err)
		return nil, err
	}

	return converter.MeetingToResponse(meeting), nil
}

func (u *meetingUsecase) GetByCustomer(ctx context.Context, customerID uuid.UUID) (*dto.MeetingListResponse, error) {
	customer, err := u.customerRepo.FindByID(ctx, u.db, customerID)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	meetings, err := u.meetingRepo.FindByCustomerID(ctx, u.db, customerID)
	if err != nil {
		u.log.Warnf("Failed to find meetings: %+v", err)
		return nil, err
	}

	return u.listResponse(meetings), nil
}

func (u *meetingUsecase) GetByProfessional(ctx context.Context, professionalID uuid.UUID) (*dto.MeetingListResponse, error) {
	professional, err := u.professionalRepo.FindByID(ctx, u.db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	meetings, err := u.meetingRepo.FindByProfessionalID(ctx, u.db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find meetings: %+v", err)
		return nil, err
	}

	return u.listResponse(meetings), nil
}

// GetByStatus validates only that the status string parses; it resolves no
// ids.
func (u *meetingUsecase) GetByStatus(ctx context.Context, status string) (*dto.MeetingListResponse, error) {
	parsed, err := entity.ParseMeetingStatus(status)
	if err != nil {
		return nil, err
	}

	meetings, err := u.meetingRepo.FindByStatus(ctx, u.db, parsed)
	if err != nil {
		u.log.Warnf("Failed to find meetings by status: %+v", err)
		return nil, err
	}

	return u.listResponse(meetings), nil
}

func (u *meetingUsecase) GetPendingForProfessional(ctx context.Context, professionalID uuid.UUID) (*dto.MeetingListResponse, error) {
	professional, err := u.professionalRepo.FindByID(ctx, u.db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	meetings, err := u.meetingRepo.FindPendingByProfessionalID(ctx, u.db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find pending meetings: %+v", err)
		return nil, err
	}

	return u.listResponse(meetings), nil
}

// SoftDelete toggles the meeting's own availability flag, independent of its
// lifecycle status.
func (u *meetingUsecase) SoftDelete(ctx context.Context, id uuid.UUID) (*dto.SoftDeleteResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	meeting, err := u.meetingRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find meeting: %+v", err)
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	wasAvailable := entity.ToggleAvailability(meeting)

	if err := u.meetingRepo.Update(ctx, tx, meeting); err != nil {
		u.log.Warnf("Failed to update meeting: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, nil, entity.AuditActionMeetingSoftDelete, entity.JSON{
		"meeting_id":    meeting.ID.String(),
		"was_available": wasAvailable,
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
		Available:    meeting.IsAvailable(),
	}, nil
}

func (u *meetingUsecase) HardDelete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	meeting, err := u.meetingRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find meeting: %+v", err)
		return err
	}
	if meeting == nil {
		return ErrMeetingNotFound
	}

	if err := u.meetingRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete meeting: %+v", err)
		return err
	}

	if err := u.auditService.Log(ctx, tx, nil, entity.AuditActionMeetingHardDelete, entity.JSON{
		"meeting_id": meeting.ID.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *meetingUsecase) listResponse(meetings []entity.Meeting) *dto.MeetingListResponse {
	responses := converter.MeetingsToResponses(meetings)
	return &dto.MeetingListResponse{
		Meetings: responses,
		Total:    len(responses),
	}
}

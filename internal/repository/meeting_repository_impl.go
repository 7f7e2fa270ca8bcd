package repository

import (
	"context"
	"errors"

	"serviturnos-api/internal/domain/entity"
	domainRepo "serviturnos-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type meetingRepository struct{}

func NewMeetingRepository() domainRepo.MeetingRepository {
	return &meetingRepository{}
}

func (r *meetingRepository) Create(ctx context.Context, db *gorm.DB, meeting *entity.Meeting) error {
	return db.WithContext(ctx).Create(meeting).Error
}

func (r *meetingRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Meeting, error) {
	var meetings []entity.Meeting
	err := db.WithContext(ctx).Order("created_at").Find(&meetings).Error
	return meetings, err
}

func (r *meetingRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Meeting, error) {
	var meeting entity.Meeting
	err := db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (r *meetingRepository) FindByCustomerID(ctx context.Context, db *gorm.DB, customerID uuid.UUID) ([]entity.Meeting, error) {
	var meetings []entity.Meeting
	err := db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at").
		Find(&meetings).Error
	return meetings, err
}

func (r *meetingRepository) FindByProfessionalID(ctx context.Context, db *gorm.DB, professionalID uuid.UUID) ([]entity.Meeting, error) {
	var meetings []entity.Meeting
	err := db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("created_at").
		Find(&meetings).Error
	return meetings, err
}

func (r *meetingRepository) FindByStatus(ctx context.Context, db *gorm.DB, status entity.MeetingStatus) ([]entity.Meeting, error) {
	var meetings []entity.Meeting
	err := db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at").
		Find(&meetings).Error
	return meetings, err
}

func (r *meetingRepository) FindPendingByProfessionalID(ctx context.Context, db *gorm.DB, professionalID uuid.UUID) ([]entity.Meeting, error) {
	var meetings []entity.Meeting
	err := db.WithContext(ctx).
		Where("professional_id = ? AND status = ?", professionalID, entity.MeetingStatusPending).
		Order("created_at").
		Find(&meetings).Error
	return meetings, err
}

func (r *meetingRepository) Update(ctx context.Context, db *gorm.DB, meeting *entity.Meeting) error {
	return db.WithContext(ctx).Save(meeting).Error
}

func (r *meetingRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Delete(&entity.Meeting{}, "id = ?", id).Error
}

func (r *meetingRepository) SetAvailabilityByCustomer(ctx context.Context, db *gorm.DB, customerID uuid.UUID, available bool) error {
	return db.WithContext(ctx).
		Model(&entity.Meeting{}).
		Where("customer_id = ?", customerID).
		Update("available", available).Error
}

func (r *meetingRepository) SetAvailabilityByProfessional(ctx context.Context, db *gorm.DB, professionalID uuid.UUID, available bool) error {
	return db.WithContext(ctx).
		Model(&entity.Meeting{}).
		Where("professional_id = ?", professionalID).
		Update("available", available).Error
}

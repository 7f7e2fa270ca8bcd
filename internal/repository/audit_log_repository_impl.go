package repository

import (
	"context"

	"serviturnos-api/internal/domain/entity"
	domainRepo "serviturnos-api/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *auditLogRepository) FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

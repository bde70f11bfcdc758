package repository

import (
	"context"

	"github.com/Eursukkul/event-portal/internal/models"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg *models.Registration) error
	CountByEvent(ctx context.Context, eventID string) (int64, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepository) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Registration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/subscription"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type SubscriptionGormRepository struct {
	db *gorm.DB
}

func NewSubscriptionGormRepository(db *gorm.DB) *SubscriptionGormRepository {
	return &SubscriptionGormRepository{db: db}
}

func (r *SubscriptionGormRepository) GetProviderBySubscriptionID(
	ctx context.Context,
	externalID string,
) (*models.Provider, error) {

	var p models.Provider
	err := r.db.WithContext(ctx).
		Where("external_subscription_id = ?", externalID).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *SubscriptionGormRepository) UpdateProviderSubscription(
	ctx context.Context,
	p *models.Provider,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Provider{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"subscription_state":    p.SubscriptionState,
			"subscription_event_at": p.SubscriptionEventAt,
		}).Error
}

// Compile-time check
var _ domain.Repository = (*SubscriptionGormRepository)(nil)

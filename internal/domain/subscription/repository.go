package subscription

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Repository interface {
	// Retorna (nil, nil) quando a assinatura é desconhecida — evento
	// para id inexistente é no-op do webhook, não erro.
	GetProviderBySubscriptionID(
		ctx context.Context,
		externalID string,
	) (*models.Provider, error)

	UpdateProviderSubscription(
		ctx context.Context,
		p *models.Provider,
	) error
}

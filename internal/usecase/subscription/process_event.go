package subscription

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/subscription"
)

// ======================================================
// INPUT
// ======================================================

type GatewayEventInput struct {
	Type                   domain.EventType
	ExternalSubscriptionID string
	OccurredAt             time.Time
}

// ======================================================
// USE CASE
// ======================================================

type ProcessGatewayEvent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewProcessGatewayEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ProcessGatewayEvent {
	return &ProcessGatewayEvent{repo: repo, audit: audit}
}

// Execute aplica um evento do gateway à assinatura do profissional.
// Assinatura desconhecida, evento atrasado e transição não definida
// são todos no-op: o webhook precisa tolerar reentrega e desordem.
func (uc *ProcessGatewayEvent) Execute(
	ctx context.Context,
	in GatewayEventInput,
) error {

	p, err := uc.repo.GetProviderBySubscriptionID(ctx, in.ExternalSubscriptionID)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}

	// evento mais velho que o último aplicado → descarta
	if p.SubscriptionEventAt != nil && in.OccurredAt.Before(*p.SubscriptionEventAt) {
		return nil
	}

	next, ok := domain.Transition(domain.State(p.SubscriptionState), in.Type)
	if !ok {
		return nil
	}

	p.SubscriptionState = string(next)
	p.SubscriptionEventAt = &in.OccurredAt

	if err := uc.repo.UpdateProviderSubscription(ctx, p); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: p.ID,
		Action:     "subscription_" + string(next),
		Entity:     "provider",
		EntityID:   &p.ID,
		Metadata:   map[string]any{"event": string(in.Type)},
	})

	return nil
}

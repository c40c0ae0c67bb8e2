package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const dedupTTL = 24 * time.Hour

// EventDedup marca eventos de webhook já processados para que
// reentregas do gateway virem no-op barato.
type EventDedup struct {
	rdb *redis.Client
}

func NewEventDedup(rdb *redis.Client) *EventDedup {
	return &EventDedup{rdb: rdb}
}

// FirstDelivery devolve true só na primeira vez que o evento é visto.
func (d *EventDedup) FirstDelivery(
	ctx context.Context,
	eventID string,
) (bool, error) {
	return d.rdb.SetNX(ctx, "webhook:event:"+eventID, 1, dedupTTL).Result()
}

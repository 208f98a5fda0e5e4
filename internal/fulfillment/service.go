package fulfillment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/tovenkitchen/storefront/internal/kafka"
	"github.com/tovenkitchen/storefront/internal/ordering"
	"github.com/tovenkitchen/storefront/internal/redisx"
)

type Recorder interface {
	AlreadyScheduled(ctx context.Context, orderID string, lineCount int) (bool, error)
	ScheduleAll(ctx context.Context, orderID, userID, deliveryDate string, lines []ordering.OrderLine) error
}

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service turns AddonOrderPlaced events into scheduled delivery rows and
// announces the scheduled day downstream.
type Service struct {
	Repo        Recorder
	Redis       *redis.Client
	Producer    Publisher
	ServiceName string
}

// HandleOrderPlaced is wired as the consumer handler for addon.order.placed.
func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	var env ordering.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != ordering.EventAddonOrderPlaced {
		return nil // ignore
	}

	// dedup on event_id
	dkey := fmt.Sprintf(redisx.KeyDedup, "fulfillment", env.EventID)
	exists, _ := redisx.Exists(ctx, s.Redis, dkey)
	if exists {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := kafkax.UnwrapPayload[ordering.AddonOrderPlacedPayload](env.Payload)
	if err != nil {
		return err
	}

	// idempotent short-circuit: replayed order already on the schedule
	if ok, _ := s.Repo.AlreadyScheduled(ctx, p.OrderID, len(p.Lines)); ok {
		s.publishScheduled(p, env.TraceID)
		return nil
	}

	if err := s.Repo.ScheduleAll(ctx, p.OrderID, p.UserID, p.DeliveryDate, p.Lines); err != nil {
		return err
	}
	s.publishScheduled(p, env.TraceID)
	return nil
}

func (s *Service) publishScheduled(p ordering.AddonOrderPlacedPayload, trace string) {
	ev := ordering.Envelope{
		EventID:       uuid.NewString(),
		EventType:     ordering.EventDeliveryScheduled,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		TraceID:       trace,
		CorrelationID: p.OrderID,
		Payload: kafkax.MustMarshal(ordering.DeliveryScheduledPayload{
			OrderID:      p.OrderID,
			DeliveryDate: p.DeliveryDate,
			Lines:        p.Lines,
		}),
	}
	s.Producer.Publish(ordering.PartitionKey(p.OrderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(ordering.EventDeliveryScheduled)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

package fulfillment

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kafkax "github.com/tovenkitchen/storefront/internal/kafka"
	"github.com/tovenkitchen/storefront/internal/ordering"
)

type fakeRecorder struct {
	scheduled map[string][]ordering.OrderLine
}

func (f *fakeRecorder) AlreadyScheduled(ctx context.Context, orderID string, lineCount int) (bool, error) {
	return len(f.scheduled[orderID]) == lineCount && lineCount > 0, nil
}

func (f *fakeRecorder) ScheduleAll(ctx context.Context, orderID, userID, deliveryDate string, lines []ordering.OrderLine) error {
	f.scheduled[orderID] = lines
	return nil
}

type publishRecorder struct{ values [][]byte }

func (p *publishRecorder) Publish(key, value []byte, headers ...kafkago.Header) {
	p.values = append(p.values, value)
}

func placedMessage(t *testing.T, eventID, orderID string) kafkago.Message {
	t.Helper()
	env := ordering.Envelope{
		EventID:      eventID,
		EventType:    ordering.EventAddonOrderPlaced,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "storefront-api-test",
		Payload: kafkax.MustMarshal(ordering.AddonOrderPlacedPayload{
			OrderID:      orderID,
			UserID:       "u1",
			DeliveryDate: "2024-03-16",
			Lines:        []ordering.OrderLine{{AddonID: "a1", Qty: 2}},
			TotalCoins:   120,
		}),
	}
	return kafkago.Message{Key: ordering.PartitionKey(orderID), Value: kafkax.MustMarshal(env)}
}

func newService(t *testing.T) (*Service, *fakeRecorder, *publishRecorder) {
	t.Helper()
	mr := miniredis.RunT(t)
	repo := &fakeRecorder{scheduled: map[string][]ordering.OrderLine{}}
	pub := &publishRecorder{}
	return &Service{
		Repo:        repo,
		Redis:       redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		Producer:    pub,
		ServiceName: "storefront-fulfillment-test",
	}, repo, pub
}

func TestHandleOrderPlaced(t *testing.T) {
	svc, repo, pub := newService(t)

	err := svc.HandleOrderPlaced(context.Background(), placedMessage(t, "ev-1", "order-1"))
	require.NoError(t, err)
	assert.Len(t, repo.scheduled["order-1"], 1)
	require.Len(t, pub.values, 1)

	var out ordering.Envelope
	require.NoError(t, json.Unmarshal(pub.values[0], &out))
	assert.Equal(t, ordering.EventDeliveryScheduled, out.EventType)
	p, err := kafkax.UnwrapPayload[ordering.DeliveryScheduledPayload](out.Payload)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-16", p.DeliveryDate)
}

func TestHandleOrderPlacedDedupsByEventID(t *testing.T) {
	svc, _, pub := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.HandleOrderPlaced(ctx, placedMessage(t, "ev-1", "order-1")))
	require.NoError(t, svc.HandleOrderPlaced(ctx, placedMessage(t, "ev-1", "order-1")))
	assert.Len(t, pub.values, 1, "duplicate event must be dropped")
}

func TestHandleOrderPlacedReplayedOrderStillAnnounces(t *testing.T) {
	svc, repo, pub := newService(t)
	ctx := context.Background()
	repo.scheduled["order-1"] = []ordering.OrderLine{{AddonID: "a1", Qty: 2}}

	// new event id, order already on the schedule
	require.NoError(t, svc.HandleOrderPlaced(ctx, placedMessage(t, "ev-2", "order-1")))
	assert.Len(t, pub.values, 1)
	assert.Len(t, repo.scheduled["order-1"], 1)
}

func TestHandleOrderPlacedIgnoresOtherEvents(t *testing.T) {
	svc, repo, pub := newService(t)
	env := ordering.Envelope{EventID: "ev-9", EventType: ordering.EventDeliveryScheduled, Payload: []byte(`{}`)}
	err := svc.HandleOrderPlaced(context.Background(), kafkago.Message{Value: kafkax.MustMarshal(env)})
	require.NoError(t, err)
	assert.Empty(t, repo.scheduled)
	assert.Empty(t, pub.values)
}

package addons

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/tovenkitchen/storefront/internal/cart"
	"github.com/tovenkitchen/storefront/internal/catalog"
	kafkax "github.com/tovenkitchen/storefront/internal/kafka"
	"github.com/tovenkitchen/storefront/internal/ordering"
	"github.com/tovenkitchen/storefront/internal/runtimecfg"
	"github.com/tovenkitchen/storefront/internal/subscriptions"
	"github.com/tovenkitchen/storefront/internal/toast"
)

type AddonFinder interface {
	FindAddon(ctx context.Context, id string) (*catalog.FoodItem, error)
}

type CartStore interface {
	AddOrUpdate(ctx context.Context, userID string, line cart.Line) error
	Quantity(ctx context.Context, userID, addonID string) (int, error)
	SetPending(ctx context.Context, sessionID string, line cart.Line) error
}

type SubscriptionSource interface {
	Ensure(ctx context.Context, userID string) ([]subscriptions.Request, error)
}

type ConfigSource interface {
	Ensure(ctx context.Context) (runtimecfg.SiteConfig, error)
}

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service runs the add-on ordering flow: cutoff-aware delivery scheduling,
// subscription gating, cart mutation, and the resulting notifications.
type Service struct {
	Catalog     AddonFinder
	Cart        CartStore
	Subs        SubscriptionSource
	Config      ConfigSource
	Toasts      toast.Notifier
	Producer    Publisher
	ServiceName string

	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time

	window windowCache
}

type Outcome string

const (
	OutcomeAdded         Outcome = "added"
	OutcomeRemoved       Outcome = "removed"
	OutcomeLoginRequired Outcome = "login_required"
	OutcomeRejected      Outcome = "rejected"
	OutcomeChecking      Outcome = "checking"
)

type AddRequest struct {
	AddonID   string `json:"addon_id"`
	Quantity  int    `json:"quantity"`
	UserID    string `json:"-"`
	SessionID string `json:"-"`
	TraceID   string `json:"-"`
}

type AddResult struct {
	Outcome       Outcome `json:"outcome"`
	Message       string  `json:"message"`
	DeliveryDate  string  `json:"delivery_date,omitempty"`
	DeliveryLabel string  `json:"delivery_label,omitempty"`
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CutoffHour resolves the effective cutoff from site config, falling back to
// the default whenever config is missing, still loading, or unreadable.
func (s *Service) CutoffHour(ctx context.Context) int {
	cfg, err := s.Config.Ensure(ctx)
	if err != nil {
		log.Printf("site config load: %v", err)
	}
	return ordering.ResolveCutoffHour(cfg.AddonOrderCutoffHour)
}

// AddToCart applies one add-to-cart action end to end. Rejections are
// communicated as toasts plus a non-error AddResult; only infrastructure
// failures surface as errors.
func (s *Service) AddToCart(ctx context.Context, req AddRequest) (AddResult, error) {
	recipient := req.UserID
	if recipient == "" {
		recipient = req.SessionID
	}

	addon, err := s.Catalog.FindAddon(ctx, req.AddonID)
	if errors.Is(err, catalog.ErrNotFound) {
		msg := "Unable to find that add-on right now. Please try again."
		s.Toasts.Push(ctx, recipient, msg, toast.LevelError)
		return AddResult{Outcome: OutcomeRejected, Message: msg}, nil
	}
	if err != nil {
		return AddResult{}, err
	}

	inCartQty := 0
	if req.UserID != "" {
		if inCartQty, err = s.Cart.Quantity(ctx, req.UserID, req.AddonID); err != nil {
			return AddResult{}, err
		}
	}
	if req.Quantity <= 0 && inCartQty == 0 {
		msg := "Choose at least one quantity before adding to cart."
		s.Toasts.Push(ctx, recipient, msg, toast.LevelWarning)
		return AddResult{Outcome: OutcomeRejected, Message: msg}, nil
	}

	now := s.now()
	cutoff := s.CutoffHour(ctx)
	line := cart.Line{
		AddonID:       addon.ID,
		Name:          addon.Name,
		Diet:          string(addon.Diet),
		MealType:      string(addon.MealType),
		Coins:         addon.Coins,
		DiscountCoins: addon.DiscountCoins,
		Image:         addon.Image,
		DeliveryDate:  ordering.DeliveryDateKey(now, cutoff),
		Quantity:      req.Quantity,
	}

	if req.UserID == "" {
		if err := s.Cart.SetPending(ctx, req.SessionID, line); err != nil {
			return AddResult{}, err
		}
		msg := "Log in to keep building your add-on cart."
		s.Toasts.Push(ctx, recipient, msg, toast.LevelInfo)
		return AddResult{Outcome: OutcomeLoginRequired, Message: msg, DeliveryDate: line.DeliveryDate}, nil
	}

	reqs, err := s.Subs.Ensure(ctx, req.UserID)
	if errors.Is(err, subscriptions.ErrStillChecking) {
		msg := "Checking your subscription status. Please try again in a moment."
		s.Toasts.Push(ctx, recipient, msg, toast.LevelInfo)
		return AddResult{Outcome: OutcomeChecking, Message: msg}, nil
	}
	if err != nil {
		return AddResult{}, err
	}
	if !subscriptions.HasActiveForDate(reqs, req.UserID, line.DeliveryDate) {
		msg := "You need an active subscription for this date to order add-ons."
		s.Toasts.Push(ctx, recipient, msg, toast.LevelWarning)
		return AddResult{Outcome: OutcomeRejected, Message: msg, DeliveryDate: line.DeliveryDate}, nil
	}

	if err := s.Cart.AddOrUpdate(ctx, req.UserID, line); err != nil {
		return AddResult{}, err
	}

	label := ordering.DeliveryLabel(now, cutoff)
	if req.Quantity <= 0 {
		msg := fmt.Sprintf("%s removed from Addon Cart.", addon.Name)
		s.Toasts.Push(ctx, recipient, msg, toast.LevelInfo)
		return AddResult{Outcome: OutcomeRemoved, Message: msg}, nil
	}

	s.publishOrderPlaced(req, line)
	msg := fmt.Sprintf("%s added to Addon Cart for %s (%d items).", addon.Name, label, req.Quantity)
	s.Toasts.Push(ctx, recipient, msg, toast.LevelSuccess)
	return AddResult{
		Outcome:       OutcomeAdded,
		Message:       msg,
		DeliveryDate:  line.DeliveryDate,
		DeliveryLabel: label,
	}, nil
}

func (s *Service) publishOrderPlaced(req AddRequest, line cart.Line) {
	if s.Producer == nil {
		return
	}
	price := line.Coins
	if line.DiscountCoins > 0 {
		price = line.DiscountCoins
	}
	orderID := uuid.NewString()
	ev := ordering.Envelope{
		EventID:       uuid.NewString(),
		EventType:     ordering.EventAddonOrderPlaced,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		TraceID:       req.TraceID,
		CorrelationID: orderID,
		Payload: kafkax.MustMarshal(ordering.AddonOrderPlacedPayload{
			OrderID:      orderID,
			UserID:       req.UserID,
			DeliveryDate: line.DeliveryDate,
			Lines:        []ordering.OrderLine{{AddonID: line.AddonID, Qty: line.Quantity}},
			TotalCoins:   price * line.Quantity,
		}),
	}
	s.Producer.Publish(ordering.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(ordering.EventAddonOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tovenkitchen/storefront/internal/redisx"
)

var ErrNoPending = errors.New("no pending cart request")

// Line is one staged add-on order line. DeliveryDate is the YYYY-MM-DD key
// computed at the moment the line entered the cart.
type Line struct {
	AddonID       string `json:"addon_id"`
	Name          string `json:"name"`
	Diet          string `json:"diet"`
	MealType      string `json:"meal_type"`
	Coins         int    `json:"coins"`
	DiscountCoins int    `json:"discount_coins"`
	Image         string `json:"image,omitempty"`
	DeliveryDate  string `json:"delivery_date"`
	Quantity      int    `json:"quantity"`
}

// Store keeps per-user carts in Redis hashes, one field per addon id.
type Store struct{ RDB *redis.Client }

// AddOrUpdate writes the line at its quantity; quantity zero removes it.
func (s *Store) AddOrUpdate(ctx context.Context, userID string, line Line) error {
	key := fmt.Sprintf(redisx.KeyCart, userID)
	if line.Quantity <= 0 {
		return s.RDB.HDel(ctx, key, line.AddonID).Err()
	}
	b, err := json.Marshal(line)
	if err != nil {
		return err
	}
	pipe := s.RDB.TxPipeline()
	pipe.HSet(ctx, key, line.AddonID, b)
	pipe.Expire(ctx, key, redisx.TTLCart)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) Items(ctx context.Context, userID string) (map[string]Line, error) {
	key := fmt.Sprintf(redisx.KeyCart, userID)
	raw, err := s.RDB.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	items := make(map[string]Line, len(raw))
	for id, v := range raw {
		var line Line
		if err := json.Unmarshal([]byte(v), &line); err != nil {
			return nil, fmt.Errorf("decode cart line %s: %w", id, err)
		}
		items[id] = line
	}
	return items, nil
}

func (s *Store) Quantity(ctx context.Context, userID, addonID string) (int, error) {
	key := fmt.Sprintf(redisx.KeyCart, userID)
	v, err := s.RDB.HGet(ctx, key, addonID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var line Line
	if err := json.Unmarshal([]byte(v), &line); err != nil {
		return 0, err
	}
	return line.Quantity, nil
}

func (s *Store) TotalQuantity(ctx context.Context, userID string) (int, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, line := range items {
		total += line.Quantity
	}
	return total, nil
}

// SetPending stages a cart action for an anonymous session so it can be
// replayed once the visitor logs in.
func (s *Store) SetPending(ctx context.Context, sessionID string, line Line) error {
	b, err := json.Marshal(line)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(redisx.KeyPendingCart, sessionID)
	return s.RDB.Set(ctx, key, b, redisx.TTLPendingCart).Err()
}

// ClaimPending moves the staged action into the user's cart and clears it.
func (s *Store) ClaimPending(ctx context.Context, sessionID, userID string) (*Line, error) {
	key := fmt.Sprintf(redisx.KeyPendingCart, sessionID)
	v, err := s.RDB.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoPending
	}
	if err != nil {
		return nil, err
	}
	var line Line
	if err := json.Unmarshal([]byte(v), &line); err != nil {
		return nil, err
	}
	if err := s.AddOrUpdate(ctx, userID, line); err != nil {
		return nil, err
	}
	return &line, nil
}

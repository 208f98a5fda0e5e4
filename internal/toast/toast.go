package toast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tovenkitchen/storefront/internal/redisx"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Toast struct {
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier is what page flows use to surface transient user-facing messages.
type Notifier interface {
	Push(ctx context.Context, recipient, message string, level Level)
}

// Store keeps a short-lived toast inbox per recipient (user or anonymous
// session) as a Redis list. Toasts are advisory; push failures are dropped.
type Store struct{ RDB *redis.Client }

func (s *Store) Push(ctx context.Context, recipient, message string, level Level) {
	b, err := json.Marshal(Toast{Message: message, Level: level, CreatedAt: time.Now().UTC()})
	if err != nil {
		return
	}
	key := fmt.Sprintf(redisx.KeyToasts, recipient)
	pipe := s.RDB.TxPipeline()
	pipe.RPush(ctx, key, b)
	pipe.Expire(ctx, key, redisx.TTLToasts)
	_, _ = pipe.Exec(ctx)
}

// Drain pops every queued toast for the recipient, oldest first.
func (s *Store) Drain(ctx context.Context, recipient string) ([]Toast, error) {
	key := fmt.Sprintf(redisx.KeyToasts, recipient)
	pipe := s.RDB.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	raw, err := rangeCmd.Result()
	if err != nil {
		return nil, err
	}
	out := make([]Toast, 0, len(raw))
	for _, v := range raw {
		var tt Toast
		if err := json.Unmarshal([]byte(v), &tt); err != nil {
			continue
		}
		out = append(out, tt)
	}
	return out, nil
}

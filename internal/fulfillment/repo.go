package fulfillment

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tovenkitchen/storefront/internal/ordering"
)

type Repo struct{ DB *pgxpool.Pool }

// AlreadyScheduled reports whether every line of the order has a delivery row
// (idempotency short-circuit for replayed events).
func (r *Repo) AlreadyScheduled(ctx context.Context, orderID string, lineCount int) (bool, error) {
	var n int
	err := r.DB.QueryRow(ctx, `
		SELECT COUNT(*) FROM scheduled_deliveries
		WHERE order_id = $1`, orderID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == lineCount, nil
}

// ScheduleAll records one delivery row per order line for the delivery day.
// Re-inserts are no-ops, so replays commit cleanly.
func (r *Repo) ScheduleAll(ctx context.Context, orderID, userID, deliveryDate string, lines []ordering.OrderLine) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, ln := range lines {
		if _, err := tx.Exec(ctx, `
			INSERT INTO scheduled_deliveries(order_id, user_id, addon_id, qty, delivery_date)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (order_id, addon_id) DO NOTHING
		`, orderID, userID, ln.AddonID, ln.Qty, deliveryDate); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

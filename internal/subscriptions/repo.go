package subscriptions

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) ListByUser(ctx context.Context, userID string) ([]Request, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, status, start_date, end_date
		FROM subscription_requests
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var (
			req        Request
			start, end *time.Time
		)
		if err := rows.Scan(&req.ID, &req.UserID, &req.Status, &start, &end); err != nil {
			return nil, err
		}
		if start != nil {
			req.StartDate = start.Format("2006-01-02")
		}
		if end != nil {
			req.EndDate = end.Format("2006-01-02")
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

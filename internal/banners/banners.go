package banners

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Placement string

const (
	PlacementAbout        Placement = "about"
	PlacementAddons       Placement = "addons"
	PlacementSubscription Placement = "subscription"
	PlacementPartyOrders  Placement = "party-orders"
)

// Banner is a hero/placement image managed by the marketing team. Image may
// be a hosted URL or inline data; either can be absent.
type Banner struct {
	ID        string    `json:"id"`
	Placement Placement `json:"placement"`
	ImageURL  string    `json:"image_url,omitempty"`
	ImageData string    `json:"image_data,omitempty"`
	Alt       string    `json:"alt,omitempty"`
	SortOrder int       `json:"sort_order"`
}

// ImageSrc resolves the source to render: hosted URL first, inline data as
// fallback, empty when the banner has no usable image (render nothing).
func ImageSrc(b *Banner) string {
	if b == nil {
		return ""
	}
	if url := strings.TrimSpace(b.ImageURL); url != "" {
		return url
	}
	return strings.TrimSpace(b.ImageData)
}

// AltText returns the banner's alt text or the supplied fallback.
func AltText(b *Banner, fallback string) string {
	if b == nil {
		return fallback
	}
	if alt := strings.TrimSpace(b.Alt); alt != "" {
		return alt
	}
	return fallback
}

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) ListActive(ctx context.Context, placement Placement) ([]Banner, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, placement, COALESCE(image_url, ''), COALESCE(image_data, ''), COALESCE(alt, ''), sort_order
		FROM banners
		WHERE placement = $1 AND active
		ORDER BY sort_order`, placement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Banner
	for rows.Next() {
		var b Banner
		if err := rows.Scan(&b.ID, &b.Placement, &b.ImageURL, &b.ImageData, &b.Alt, &b.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("addon not found")

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) ListAddonItems(ctx context.Context) ([]FoodItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, diet, meal_type, coins, discount_coins, COALESCE(image_url, ''), is_addon
		FROM food_items
		WHERE is_addon
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FoodItem
	for rows.Next() {
		var it FoodItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Diet, &it.MealType, &it.Coins, &it.DiscountCoins, &it.Image, &it.IsAddon); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) FindAddon(ctx context.Context, id string) (*FoodItem, error) {
	var it FoodItem
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, diet, meal_type, coins, discount_coins, COALESCE(image_url, ''), is_addon
		FROM food_items
		WHERE id = $1 AND is_addon`, id).
		Scan(&it.ID, &it.Name, &it.Diet, &it.MealType, &it.Coins, &it.DiscountCoins, &it.Image, &it.IsAddon)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *Repo) ListAddonCategories(ctx context.Context) ([]AddonCategory, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, addon_ids
		FROM addon_categories
		ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AddonCategory
	for rows.Next() {
		var c AddonCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.AddonIDs); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) ListAvailableCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), price,
		       COALESCE(accent_from, ''), COALESCE(accent_to, ''),
		       COALESCE(image_url, ''), status, sort_order
		FROM categories
		WHERE status = 'Available'
		ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Price,
			&c.AccentFrom, &c.AccentTo, &c.Image, &c.Status, &c.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

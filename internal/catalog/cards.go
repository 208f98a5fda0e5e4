package catalog

import "github.com/tovenkitchen/storefront/internal/theme"

// SubscriptionCard is a plan card ready for rendering: sanitized copy, price
// badge, and derived accent theming.
type SubscriptionCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PriceLine   string `json:"price_line,omitempty"`
	Image       string `json:"image,omitempty"`
	AccentColor string `json:"accent_color"`
	Gradient    string `json:"gradient"`
}

// BuildCards assembles cards for every available plan.
func BuildCards(categories []Category, locale string) []SubscriptionCard {
	cards := make([]SubscriptionCard, 0, len(categories))
	for _, cat := range categories {
		if cat.Status != StatusAvailable {
			continue
		}
		cards = append(cards, SubscriptionCard{
			ID:          cat.ID,
			Title:       cat.Name,
			Description: theme.SanitizeDescription(cat.Description),
			PriceLine:   theme.FormatPriceLine(cat.Price, locale),
			Image:       cat.Image,
			AccentColor: theme.AccentColor(cat.AccentFrom, cat.AccentTo),
			Gradient:    theme.BuildGradient(cat.AccentFrom, cat.AccentTo).CSS(),
		})
	}
	return cards
}

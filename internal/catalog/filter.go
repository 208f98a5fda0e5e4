package catalog

import "strings"

// Filter narrows the grouped catalog the way the storefront filter bar does.
type Filter struct {
	Query    string // matches category name, else addon name/diet
	MealType string // "all" or a MealType value
	Veg      bool   // veg toggle: true = Veg only, false = Non-Veg only
}

// Apply filters each shelf by meal type and the veg toggle first, then by the
// search query: a query hit on the shelf name keeps the whole shelf, a hit on
// individual add-ons keeps just those. Shelves left empty are dropped.
func (f Filter) Apply(groups []AddonGroup) []AddonGroup {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	results := make([]AddonGroup, 0, len(groups))

	for _, g := range groups {
		byChoices := make([]FoodItem, 0, len(g.Addons))
		for _, a := range g.Addons {
			if !f.matchesChoices(a) {
				continue
			}
			byChoices = append(byChoices, a)
		}
		if len(byChoices) == 0 {
			continue
		}

		if query == "" {
			results = append(results, AddonGroup{Category: g.Category, Addons: byChoices})
			continue
		}

		if strings.Contains(strings.ToLower(g.Category.Name), query) {
			results = append(results, AddonGroup{Category: g.Category, Addons: byChoices})
			continue
		}

		matching := make([]FoodItem, 0, len(byChoices))
		for _, a := range byChoices {
			name := strings.ToLower(a.Name)
			diet := strings.ToLower(string(a.Diet))
			if strings.Contains(name, query) || strings.Contains(diet, query) {
				matching = append(matching, a)
			}
		}
		if len(matching) > 0 {
			results = append(results, AddonGroup{Category: g.Category, Addons: matching})
		}
	}
	return results
}

func (f Filter) matchesChoices(a FoodItem) bool {
	if f.MealType != "" && f.MealType != "all" && string(a.MealType) != f.MealType {
		return false
	}
	if f.Veg {
		return a.Diet == DietVeg
	}
	return a.Diet == DietNonVeg
}

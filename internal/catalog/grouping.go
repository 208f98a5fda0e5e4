package catalog

// Synthetic shelf ids for add-ons that fall outside the curated categories.
const (
	uncategorizedID   = "__uncategorized"
	uncategorizedName = "Other add-ons"
	allAddonsID       = "__all"
	allAddonsName     = "Available add-ons"
)

// GroupAddons resolves curated category shelves against the add-on library,
// preserving the curated order within each shelf. Add-ons not referenced by
// any category land in a trailing "Other add-ons" shelf; when no categories
// exist at all, everything lands in a single "Available add-ons" shelf.
// Empty shelves are dropped.
func GroupAddons(addons []FoodItem, categories []AddonCategory) []AddonGroup {
	if len(categories) == 0 {
		if len(addons) == 0 {
			return nil
		}
		ids := make([]string, 0, len(addons))
		for _, a := range addons {
			ids = append(ids, a.ID)
		}
		return []AddonGroup{{
			Category: AddonCategory{ID: allAddonsID, Name: allAddonsName, AddonIDs: ids},
			Addons:   addons,
		}}
	}

	byID := make(map[string]FoodItem, len(addons))
	for _, a := range addons {
		byID[a.ID] = a
	}
	seen := make(map[string]bool)

	grouped := make([]AddonGroup, 0, len(categories)+1)
	for _, cat := range categories {
		resolved := make([]FoodItem, 0, len(cat.AddonIDs))
		for _, id := range cat.AddonIDs {
			a, ok := byID[id]
			if !ok {
				continue
			}
			seen[a.ID] = true
			resolved = append(resolved, a)
		}
		grouped = append(grouped, AddonGroup{Category: cat, Addons: resolved})
	}

	var uncategorized []FoodItem
	for _, a := range addons {
		if !seen[a.ID] {
			uncategorized = append(uncategorized, a)
		}
	}
	if len(uncategorized) > 0 {
		grouped = append(grouped, AddonGroup{
			Category: AddonCategory{ID: uncategorizedID, Name: uncategorizedName},
			Addons:   uncategorized,
		})
	}

	out := grouped[:0]
	for _, g := range grouped {
		if len(g.Addons) > 0 {
			out = append(out, g)
		}
	}
	return out
}

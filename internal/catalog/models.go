package catalog

type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
)

type Diet string

const (
	DietVeg    Diet = "Veg"
	DietNonVeg Diet = "Non-Veg"
)

// FoodItem is a dish from the kitchen library. Items flagged as add-ons are
// orderable on top of an active subscription.
type FoodItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Diet          Diet     `json:"diet"`
	MealType      MealType `json:"meal_type"`
	Coins         int      `json:"coins"`
	DiscountCoins int      `json:"discount_coins"`
	Image         string   `json:"image,omitempty"`
	IsAddon       bool     `json:"is_addon"`
}

// AddonCategory is a curated, ordered shelf of add-on ids.
type AddonCategory struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	AddonIDs []string `json:"addon_ids"`
}

// AddonGroup is a shelf resolved against the item library.
type AddonGroup struct {
	Category AddonCategory `json:"category"`
	Addons   []FoodItem    `json:"addons"`
}

// Category is a subscription plan shown on the subscription page.
type Category struct {
	ID          string
	Name        string
	Description string
	Price       *float64
	AccentFrom  string
	AccentTo    string
	Image       string
	Status      string
	SortOrder   int
}

const StatusAvailable = "Available"

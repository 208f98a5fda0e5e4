// Package content serves the static marketing copy for the About and Party
// Orders pages. The copy is versioned with the code on purpose: it changes
// through the same review process as the rest of the storefront.
package content

type Differentiator struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AccentBg    string `json:"accent_bg"`
	AccentText  string `json:"accent_text"`
	Glow        string `json:"glow"`
}

type Stat struct {
	Value string `json:"value"`
	Title string `json:"title"`
	Note  string `json:"note"`
}

type AboutContent struct {
	Heading         string           `json:"heading"`
	Intro           string           `json:"intro"`
	OriginTitle     string           `json:"origin_title"`
	OriginStory     string           `json:"origin_story"`
	OriginPillars   []string         `json:"origin_pillars"`
	Stats           []Stat           `json:"stats"`
	Differentiators []Differentiator `json:"differentiators"`
}

type Offering struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func About() AboutContent {
	return AboutContent{
		Heading: "About Toven",
		Intro: "Toven is India's first pre-order, only food ecosystem built to make everyday eating delicious, " +
			"flexible and wholesome. We blend homemade quality with convenient scheduling, personalized plans, " +
			"and reliable delivery so every meal fits your lifestyle.",
		OriginTitle: "Why We Started?",
		OriginStory: "We created TOVEN to solve the everyday struggle of finding meals that are fresh, healthy, " +
			"and truly satisfying. Mess food often feels repetitive, restaurant food leans unhealthy, and most " +
			"cloud kitchens miss the personal touch. We started TOVEN to bring back the comfort of wholesome, " +
			"homely meals cooked with care, delivered on time, and designed to fit modern lifestyles.",
		OriginPillars: []string{"Built for routines", "Home-chef powered", "Delivered with care"},
		Stats: []Stat{
			{Value: "8+", Title: "Reasons you'll stay", Note: "From pre-planning to mindful packaging, every step is designed with you in mind."},
			{Value: "98%", Title: "On-time delivery score", Note: "Precision routing keeps your meals hot, safe, and right on schedule."},
		},
		Differentiators: differentiators,
	}
}

func PartyOfferings() []Offering {
	return offerings
}

var differentiators = []Differentiator{
	{
		Title:       "Pre-Order, Zero Waste",
		Description: "We prepare only what is pre-booked, keeping every plate fresh and eliminating kitchen waste.",
		AccentBg:    "bg-purple-100/80",
		AccentText:  "text-purple-700",
		Glow:        "from-purple-400/25 via-purple-300/15 to-transparent",
	},
	{
		Title:       "Homemade Craftsmanship",
		Description: "Family-style recipes cooked with slow techniques that honour homely flavours.",
		AccentBg:    "bg-amber-100/80",
		AccentText:  "text-amber-600",
		Glow:        "from-amber-300/25 via-amber-200/15 to-transparent",
	},
	{
		Title:       "Plans Made Yours",
		Description: "Pick cuisines, portions, and nutrition goals that match exactly how you want to eat.",
		AccentBg:    "bg-emerald-100/80",
		AccentText:  "text-emerald-600",
		Glow:        "from-emerald-300/25 via-emerald-200/15 to-transparent",
	},
	{
		Title:       "Curated Add-ons & Sides",
		Description: "Top up with breakfast bowls, desserts, or extras that keep the excitement in every box.",
		AccentBg:    "bg-rose-100/80",
		AccentText:  "text-rose-600",
		Glow:        "from-rose-300/25 via-rose-200/15 to-transparent",
	},
	{
		Title:       "Flexible Scheduling",
		Description: "Pause, skip, or shift delivery days in seconds when your calendar changes.",
		AccentBg:    "bg-sky-100/80",
		AccentText:  "text-sky-600",
		Glow:        "from-sky-300/25 via-sky-200/15 to-transparent",
	},
	{
		Title:       "Dependable Delivery",
		Description: "98% on-time arrivals powered by mapped routes and warm insulated carriers.",
		AccentBg:    "bg-indigo-100/80",
		AccentText:  "text-indigo-600",
		Glow:        "from-indigo-300/25 via-indigo-200/15 to-transparent",
	},
	{
		Title:       "Premium Packing",
		Description: "Leak-proof, recyclable packs that lock in aroma, heat, and hygiene for every course.",
		AccentBg:    "bg-fuchsia-100/80",
		AccentText:  "text-fuchsia-600",
		Glow:        "from-fuchsia-300/25 via-fuchsia-200/15 to-transparent",
	},
	{
		Title:       "Daily & Fitness Fuel",
		Description: "Wholesome classics and macro-counted fitness bowls, the spectrum you need to stay consistent.",
		AccentBg:    "bg-teal-100/80",
		AccentText:  "text-teal-600",
		Glow:        "from-teal-300/25 via-teal-200/15 to-transparent",
	},
}

var offerings = []Offering{
	{Title: "Full Buffet Service", Description: "Perfect for weddings and large corporate events.", Image: "/image1.webp"},
	{Title: "Snack Platters", Description: "Ideal for meetings and casual get-togethers.", Image: "/image2.webp"},
	{Title: "Corporate Lunch Boxes", Description: "Individual, hygienic, and delicious meals for your team.", Image: "/image3.webp"},
	{Title: "Desserts & Add-ons", Description: "Custom cakes, sweets, and more for your event.", Image: "/image4.webp"},
}

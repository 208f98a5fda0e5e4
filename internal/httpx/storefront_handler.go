package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tovenkitchen/storefront/internal/addons"
	"github.com/tovenkitchen/storefront/internal/banners"
	"github.com/tovenkitchen/storefront/internal/cart"
	"github.com/tovenkitchen/storefront/internal/catalog"
	"github.com/tovenkitchen/storefront/internal/content"
	"github.com/tovenkitchen/storefront/internal/theme"
	"github.com/tovenkitchen/storefront/internal/toast"
)

type CatalogSource interface {
	ListAddonItems(ctx context.Context) ([]catalog.FoodItem, error)
	ListAddonCategories(ctx context.Context) ([]catalog.AddonCategory, error)
	ListAvailableCategories(ctx context.Context) ([]catalog.Category, error)
}

type BannerSource interface {
	ListActive(ctx context.Context, placement banners.Placement) ([]banners.Banner, error)
}

type CartReader interface {
	Items(ctx context.Context, userID string) (map[string]cart.Line, error)
	TotalQuantity(ctx context.Context, userID string) (int, error)
	ClaimPending(ctx context.Context, sessionID, userID string) (*cart.Line, error)
}

type ToastDrainer interface {
	Drain(ctx context.Context, recipient string) ([]toast.Toast, error)
}

type StorefrontHandler struct {
	Catalog CatalogSource
	Banners BannerSource
	Addons  *addons.Service
	Cart    CartReader
	Toasts  ToastDrainer
	Locale  string
}

func (h *StorefrontHandler) Register(r *chi.Mux) {
	r.Get("/content/about", h.about)
	r.Get("/content/party-orders", h.partyOrders)
	r.Get("/subscription/cards", h.subscriptionCards)
	r.Get("/addons", h.addonCatalog)
	r.Get("/addons/cart", h.cartContents)
	r.Post("/addons/cart", h.addToCart)
	r.Post("/addons/cart/claim", h.claimPending)
	r.Get("/toasts", h.toasts)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type bannerView struct {
	Src string `json:"src,omitempty"`
	Alt string `json:"alt"`
}

func (h *StorefrontHandler) heroBanner(ctx context.Context, placement banners.Placement, fallbackAlt string) *bannerView {
	bs, err := h.Banners.ListActive(ctx, placement)
	if err != nil || len(bs) == 0 {
		return nil
	}
	hero := &bs[0]
	src := banners.ImageSrc(hero)
	if src == "" {
		return nil
	}
	return &bannerView{Src: src, Alt: banners.AltText(hero, fallbackAlt)}
}

func (h *StorefrontHandler) about(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	writeJSON(w, http.StatusOK, map[string]any{
		"content": content.About(),
		"banner":  h.heroBanner(ctx, banners.PlacementAbout, "About Toven banner"),
	})
}

func (h *StorefrontHandler) partyOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	writeJSON(w, http.StatusOK, map[string]any{
		"offerings": content.PartyOfferings(),
		"banner":    h.heroBanner(ctx, banners.PlacementPartyOrders, "Party orders hero banner"),
	})
}

func (h *StorefrontHandler) subscriptionCards(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	cats, err := h.Catalog.ListAvailableCategories(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cards":  catalog.BuildCards(cats, h.Locale),
		"banner": h.heroBanner(ctx, banners.PlacementSubscription, "Subscription hero banner"),
	})
}

type addonCardView struct {
	catalog.FoodItem
	Backdrop string `json:"backdrop"`
}

type addonGroupView struct {
	Category catalog.AddonCategory `json:"category"`
	Addons   []addonCardView       `json:"addons"`
}

func (h *StorefrontHandler) addonCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.Catalog.ListAddonItems(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	cats, err := h.Catalog.ListAddonCategories(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	q := r.URL.Query()
	filter := catalog.Filter{
		Query:    q.Get("q"),
		MealType: q.Get("meal"),
		Veg:      q.Get("diet") != "nonveg", // veg is the default toggle state
	}
	if filter.MealType == "" {
		filter.MealType = "all"
	}
	groups := filter.Apply(catalog.GroupAddons(items, cats))

	views := make([]addonGroupView, 0, len(groups))
	for _, g := range groups {
		gv := addonGroupView{Category: g.Category, Addons: make([]addonCardView, 0, len(g.Addons))}
		for i, a := range g.Addons {
			gv.Addons = append(gv.Addons, addonCardView{FoodItem: a, Backdrop: theme.PaletteAt(i).CSS()})
		}
		views = append(views, gv)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"groups": views,
		"window": h.Addons.WindowInfo(ctx),
		"banner": h.heroBanner(ctx, banners.PlacementAddons, "Add-on hero banner"),
	})
}

func (h *StorefrontHandler) cartContents(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "login required"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	items, err := h.Cart.Items(ctx, userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	total := 0
	for _, line := range items {
		total += line.Quantity
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total_quantity": total})
}

func (h *StorefrontHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addons.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.AddonID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing addon_id"})
		return
	}
	req.UserID = r.Header.Get("X-User-Id")
	req.SessionID = r.Header.Get("X-Session-Id")
	req.TraceID = r.Header.Get("X-Request-Id")
	if req.UserID == "" && req.SessionID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing session"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := h.Addons.AddToCart(ctx, req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, statusForOutcome(res.Outcome), res)
}

func statusForOutcome(o addons.Outcome) int {
	switch o {
	case addons.OutcomeLoginRequired:
		return http.StatusUnauthorized
	case addons.OutcomeRejected:
		return http.StatusUnprocessableEntity
	case addons.OutcomeChecking:
		return http.StatusAccepted
	default:
		return http.StatusOK
	}
}

func (h *StorefrontHandler) claimPending(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	sessionID := r.Header.Get("X-Session-Id")
	if userID == "" || sessionID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing session or user"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	line, err := h.Cart.ClaimPending(ctx, sessionID, userID)
	if errors.Is(err, cart.ErrNoPending) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no pending cart request"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, line)
}

func (h *StorefrontHandler) toasts(w http.ResponseWriter, r *http.Request) {
	recipient := r.Header.Get("X-User-Id")
	if recipient == "" {
		recipient = r.Header.Get("X-Session-Id")
	}
	if recipient == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing session"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ts, err := h.Toasts.Drain(ctx, recipient)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"toasts": ts})
}

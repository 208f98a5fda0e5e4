package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovenkitchen/storefront/internal/addons"
	"github.com/tovenkitchen/storefront/internal/banners"
	"github.com/tovenkitchen/storefront/internal/cart"
	"github.com/tovenkitchen/storefront/internal/catalog"
	"github.com/tovenkitchen/storefront/internal/runtimecfg"
	"github.com/tovenkitchen/storefront/internal/subscriptions"
	"github.com/tovenkitchen/storefront/internal/toast"
)

type stubCatalog struct {
	items []catalog.FoodItem
	cats  []catalog.AddonCategory
	plans []catalog.Category
}

func (s *stubCatalog) ListAddonItems(ctx context.Context) ([]catalog.FoodItem, error) {
	return s.items, nil
}
func (s *stubCatalog) ListAddonCategories(ctx context.Context) ([]catalog.AddonCategory, error) {
	return s.cats, nil
}
func (s *stubCatalog) ListAvailableCategories(ctx context.Context) ([]catalog.Category, error) {
	return s.plans, nil
}
func (s *stubCatalog) FindAddon(ctx context.Context, id string) (*catalog.FoodItem, error) {
	for _, it := range s.items {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, catalog.ErrNotFound
}

type stubBanners struct{ byPlacement map[banners.Placement][]banners.Banner }

func (s *stubBanners) ListActive(ctx context.Context, p banners.Placement) ([]banners.Banner, error) {
	return s.byPlacement[p], nil
}

type stubConfig struct{}

func (stubConfig) Ensure(ctx context.Context) (runtimecfg.SiteConfig, error) {
	return runtimecfg.SiteConfig{}, nil
}

type stubSubs struct{ reqs []subscriptions.Request }

func (s *stubSubs) Ensure(ctx context.Context, userID string) ([]subscriptions.Request, error) {
	return s.reqs, nil
}

func price(f float64) *float64 { return &f }

func newTestHandler(t *testing.T) (*StorefrontHandler, *chi.Mux) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cartStore := &cart.Store{RDB: rdb}
	toastStore := &toast.Store{RDB: rdb}

	cat := &stubCatalog{
		items: []catalog.FoodItem{
			{ID: "a1", Name: "Idli Sambar", Diet: catalog.DietVeg, MealType: catalog.MealBreakfast, Coins: 40, IsAddon: true},
			{ID: "a2", Name: "Chicken Kebab", Diet: catalog.DietNonVeg, MealType: catalog.MealDinner, Coins: 90, IsAddon: true},
		},
		cats: []catalog.AddonCategory{{ID: "c1", Name: "Morning starters", AddonIDs: []string{"a1"}}},
		plans: []catalog.Category{
			{ID: "p1", Name: "Daily Thali", Price: price(250), Status: catalog.StatusAvailable},
		},
	}
	svc := &addons.Service{
		Catalog: cat,
		Cart:    cartStore,
		Subs: &stubSubs{reqs: []subscriptions.Request{{
			UserID: "u1", Status: subscriptions.StatusApproved,
			StartDate: "2000-01-01", EndDate: "2099-12-31",
		}}},
		Config:      stubConfig{},
		Toasts:      toastStore,
		ServiceName: "storefront-api-test",
		Now:         func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local) },
	}

	h := &StorefrontHandler{
		Catalog: cat,
		Banners: &stubBanners{byPlacement: map[banners.Placement][]banners.Banner{
			banners.PlacementAddons: {{ID: "b1", Placement: banners.PlacementAddons, ImageURL: "https://cdn/hero.webp"}},
		}},
		Addons: svc,
		Cart:   cartStore,
		Toasts: toastStore,
		Locale: "en-IN",
	}
	r := NewRouter()
	h.Register(r)
	return h, r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestAddonCatalogEndpoint(t *testing.T) {
	_, r := newTestHandler(t)

	rec, out := doJSON(t, r, http.MethodGet, "/addons", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	groups := out["groups"].([]any)
	require.Len(t, groups, 1, "veg default hides the kebab shelf")
	window := out["window"].(map[string]any)
	assert.Equal(t, "6:00 PM", window["cutoff_label"])
	assert.Equal(t, false, window["window_closed"])
	assert.Equal(t, "2024-03-16", window["delivery_date"])
	banner := out["banner"].(map[string]any)
	assert.Equal(t, "https://cdn/hero.webp", banner["src"])
	assert.Equal(t, "Add-on hero banner", banner["alt"])

	rec, out = doJSON(t, r, http.MethodGet, "/addons?diet=nonveg", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	groups = out["groups"].([]any)
	require.Len(t, groups, 1)
	g := groups[0].(map[string]any)
	assert.Equal(t, "Other add-ons", g["category"].(map[string]any)["name"])
}

func TestSubscriptionCardsEndpoint(t *testing.T) {
	_, r := newTestHandler(t)

	rec, out := doJSON(t, r, http.MethodGet, "/subscription/cards", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cards := out["cards"].([]any)
	require.Len(t, cards, 1)
	card := cards[0].(map[string]any)
	assert.Equal(t, "Daily Thali", card["title"])
	assert.Contains(t, card["price_line"], "250")
	assert.Contains(t, card["gradient"], "linear-gradient(135deg,")
}

func TestAddToCartEndpoint(t *testing.T) {
	_, r := newTestHandler(t)

	// anonymous: staged, login required
	rec, out := doJSON(t, r, http.MethodPost, "/addons/cart",
		`{"addon_id":"a1","quantity":2}`, map[string]string{"X-Session-Id": "sess-1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, string(addons.OutcomeLoginRequired), out["outcome"])

	// claim after login
	rec, _ = doJSON(t, r, http.MethodPost, "/addons/cart/claim", "",
		map[string]string{"X-Session-Id": "sess-1", "X-User-Id": "u1"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// authenticated add
	rec, out = doJSON(t, r, http.MethodPost, "/addons/cart",
		`{"addon_id":"a1","quantity":1}`, map[string]string{"X-User-Id": "u1"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(addons.OutcomeAdded), out["outcome"])
	assert.Equal(t, "2024-03-16", out["delivery_date"])

	// re-add replaced the claimed line's quantity
	rec, out = doJSON(t, r, http.MethodGet, "/addons/cart", "", map[string]string{"X-User-Id": "u1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), out["total_quantity"])

	// toasts queued along the way
	rec, out = doJSON(t, r, http.MethodGet, "/toasts", "", map[string]string{"X-User-Id": "u1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, out["toasts"])
}

func TestAddToCartValidation(t *testing.T) {
	_, r := newTestHandler(t)

	rec, _ := doJSON(t, r, http.MethodPost, "/addons/cart", `{"quantity":1}`, map[string]string{"X-User-Id": "u1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, r, http.MethodPost, "/addons/cart", `{"addon_id":"a1","quantity":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, r, http.MethodGet, "/toasts", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovenkitchen/storefront/internal/theme"
)

func fptr(f float64) *float64 { return &f }

func TestBuildCards(t *testing.T) {
	cats := []Category{
		{
			ID: "c1", Name: "Daily Thali", Description: "  Comfort classics every day. ",
			Price: fptr(250), AccentFrom: "#fff", AccentTo: "#000", Status: StatusAvailable,
		},
		{ID: "c2", Name: "Fitness Bowl", Status: StatusAvailable},
		{ID: "c3", Name: "Retired Plan", Status: "Hidden"},
	}

	cards := BuildCards(cats, "en-IN")
	require.Len(t, cards, 2, "hidden plans are excluded")

	assert.Equal(t, "Daily Thali", cards[0].Title)
	assert.Equal(t, "Comfort classics every day.", cards[0].Description)
	assert.Contains(t, cards[0].PriceLine, "250")
	assert.Equal(t, "#000", cards[0].AccentColor)
	assert.Equal(t, "linear-gradient(135deg, #fff, #000)", cards[0].Gradient)

	// no accents, no price: defaults and no badge
	assert.Empty(t, cards[1].PriceLine)
	assert.Empty(t, cards[1].Description)
	assert.Equal(t, theme.DefaultAccentColor, cards[1].AccentColor)
	assert.Equal(t, theme.Gradient{From: theme.DefaultAccentFrom, To: theme.DefaultAccentTo}.CSS(), cards[1].Gradient)
}

package quote

import (
	"testing"

	"webnest/models"

	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func testService() *models.Service {
	return &models.Service{
		ID:         "landing-page",
		Title:      "Landing Page",
		BasePrice:  500,
		LocalPrice: fp(1550),
		Features: []models.Feature{
			{ID: "responsive", Name: "Responsive design", Price: 0, Category: models.FeatureCore},
			{ID: "seo-setup", Name: "SEO setup", Price: 120, Category: models.FeatureAddon},
			{ID: "copywriting", Name: "Copywriting", Price: 150, Category: models.FeatureAddon},
		},
	}
}

func TestBuildViewFreshSelection(t *testing.T) {
	sel := models.NewQuoteSelection(testService(), models.CurrencyUSD)
	v := BuildView(sel)

	require.Equal(t, "landing-page", v.ServiceID)
	require.Equal(t, 500, v.BasePrice)
	require.Equal(t, 500, v.Total)
	require.Empty(t, v.Selected)
	require.Len(t, v.Features, 3)
}

func TestBuildViewRepricesInSessionCurrency(t *testing.T) {
	sel := models.NewQuoteSelection(testService(), models.CurrencyTND)
	sel.ToggleFeature("seo-setup")
	v := BuildView(sel)

	// Curated local price plus converted addon.
	require.Equal(t, 1550, v.BasePrice)
	require.Equal(t, 1550+372, v.Total) // 120 * 3.1
	require.Equal(t, []string{"seo-setup"}, v.Selected)

	for _, f := range v.Features {
		if f.ID == "seo-setup" {
			require.True(t, f.Selected)
			require.Equal(t, 372, f.Price)
		}
	}
}

func TestBuildViewCoreFeatureNeverSelected(t *testing.T) {
	sel := models.NewQuoteSelection(testService(), models.CurrencyUSD)
	sel.ToggleFeature("responsive")
	v := BuildView(sel)

	require.Equal(t, 500, v.Total)
	require.Empty(t, v.Selected)
	for _, f := range v.Features {
		if f.ID == "responsive" {
			require.False(t, f.Selected)
			require.Equal(t, 0, f.Price)
		}
	}
}

func TestToggleFlipsMembership(t *testing.T) {
	sel := models.NewQuoteSelection(testService(), models.CurrencyUSD)
	sel.ToggleFeature("copywriting")
	require.Equal(t, 650, BuildView(sel).Total)
	sel.ToggleFeature("copywriting")
	require.Equal(t, 500, BuildView(sel).Total)
}

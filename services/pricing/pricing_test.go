package pricing

import (
	"testing"

	"webnest/models"
)

func fp(v float64) *float64 { return &v }

func testService() *models.Service {
	return &models.Service{
		ID:         "ecommerce-store",
		Title:      "E-commerce Store",
		BasePrice:  2500,
		LocalPrice: fp(7750),
		EuroPrice:  fp(2300),
		Features: []models.Feature{
			{ID: "catalog", Name: "Product catalog", Price: 0, Category: models.FeatureCore},
			{ID: "shipping", Name: "Shipping rules", Price: 300, Category: models.FeatureAddon},
			{ID: "coupons", Name: "Coupons", Price: 200, Category: models.FeatureAddon},
		},
	}
}

func TestResolveServicePrice(t *testing.T) {
	tests := []struct {
		name     string
		svc      *models.Service
		currency models.Currency
		want     int
	}{
		{
			name:     "USD returns base price exactly",
			svc:      testService(),
			currency: models.CurrencyUSD,
			want:     2500,
		},
		{
			name:     "TND prefers curated local price over conversion",
			svc:      testService(),
			currency: models.CurrencyTND,
			want:     7750,
		},
		{
			name:     "EUR prefers curated euro price",
			svc:      testService(),
			currency: models.CurrencyEUR,
			want:     2300,
		},
		{
			name:     "EUR falls back to computed conversion",
			svc:      &models.Service{ID: "web-app", BasePrice: 1000},
			currency: models.CurrencyEUR,
			want:     920, // 1000 * 0.92
		},
		{
			name:     "TND falls back to computed conversion",
			svc:      &models.Service{ID: "web-app", BasePrice: 2000},
			currency: models.CurrencyTND,
			want:     6200, // 2000 * 3.1
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveServicePrice(tt.svc, tt.currency)
			if got != tt.want {
				t.Errorf("ResolveServicePrice() = %d, want %d", got, tt.want)
			}
			if got < 0 {
				t.Errorf("ResolveServicePrice() = %d, must be non-negative", got)
			}
		})
	}
}

func TestResolveFeaturePrice(t *testing.T) {
	addon := &models.Feature{ID: "seo", Price: 400, Category: models.FeatureAddon}
	if got := ResolveFeaturePrice(addon, models.CurrencyUSD); got != 400 {
		t.Errorf("USD feature price = %d, want 400", got)
	}
	if got := ResolveFeaturePrice(addon, models.CurrencyTND); got != 1240 {
		t.Errorf("TND feature price = %d, want 1240", got)
	}
	if got := ResolveFeaturePrice(addon, models.CurrencyEUR); got != 368 {
		t.Errorf("EUR feature price = %d, want 368", got)
	}

	// Core features resolve to zero in every currency.
	core := &models.Feature{ID: "responsive", Price: 0, Category: models.FeatureCore}
	for _, c := range []models.Currency{models.CurrencyUSD, models.CurrencyEUR, models.CurrencyTND} {
		if got := ResolveFeaturePrice(core, c); got != 0 {
			t.Errorf("core feature price in %s = %d, want 0", c, got)
		}
	}
}

func TestCalculateTotal(t *testing.T) {
	t.Run("no service selected totals zero", func(t *testing.T) {
		sel := models.QuoteSelection{Currency: models.CurrencyUSD}
		if got := CalculateTotal(sel); got != 0 {
			t.Errorf("CalculateTotal() = %d, want 0", got)
		}
	})

	t.Run("base plus one addon in USD", func(t *testing.T) {
		svc := &models.Service{
			ID:        "business-website",
			BasePrice: 2000,
			Features: []models.Feature{
				{ID: "blog", Price: 400, Category: models.FeatureAddon},
			},
		}
		sel := models.NewQuoteSelection(svc, models.CurrencyUSD)
		sel.ToggleFeature("blog")
		if got := CalculateTotal(sel); got != 2400 {
			t.Errorf("CalculateTotal() = %d, want 2400", got)
		}
	})

	t.Run("base plus addon converted to TND without local price", func(t *testing.T) {
		svc := &models.Service{
			ID:        "business-website",
			BasePrice: 2000,
			Features: []models.Feature{
				{ID: "blog", Price: 400, Category: models.FeatureAddon},
			},
		}
		sel := models.NewQuoteSelection(svc, models.CurrencyTND)
		sel.ToggleFeature("blog")
		// round(2000*3.1) + round(400*3.1)
		if got := CalculateTotal(sel); got != 7440 {
			t.Errorf("CalculateTotal() = %d, want 7440", got)
		}
	})

	t.Run("core features never contribute even when chosen", func(t *testing.T) {
		svc := testService()
		sel := models.NewQuoteSelection(svc, models.CurrencyUSD)
		sel.ToggleFeature("catalog")
		if got := CalculateTotal(sel); got != 2500 {
			t.Errorf("CalculateTotal() = %d, want base 2500", got)
		}
	})

	t.Run("idempotent for an unchanged selection", func(t *testing.T) {
		sel := models.NewQuoteSelection(testService(), models.CurrencyEUR)
		sel.ToggleFeature("shipping")
		first := CalculateTotal(sel)
		second := CalculateTotal(sel)
		if first != second {
			t.Errorf("CalculateTotal() not idempotent: %d then %d", first, second)
		}
	})

	t.Run("adding an addon never decreases the total", func(t *testing.T) {
		for _, c := range []models.Currency{models.CurrencyUSD, models.CurrencyEUR, models.CurrencyTND} {
			sel := models.NewQuoteSelection(testService(), c)
			before := CalculateTotal(sel)
			sel.ToggleFeature("shipping")
			after := CalculateTotal(sel)
			if after < before {
				t.Errorf("total decreased in %s: %d -> %d", c, before, after)
			}
		}
	})

	t.Run("re-selecting the same currency returns the same total", func(t *testing.T) {
		sel := models.NewQuoteSelection(testService(), models.CurrencyTND)
		sel.ToggleFeature("coupons")
		first := CalculateTotal(sel)
		sel.Currency = models.CurrencyEUR
		sel.Currency = models.CurrencyTND
		if got := CalculateTotal(sel); got != first {
			t.Errorf("total after currency round-trip = %d, want %d", got, first)
		}
	})

	t.Run("unknown feature ids are ignored", func(t *testing.T) {
		sel := models.NewQuoteSelection(testService(), models.CurrencyUSD)
		sel.ToggleFeature("no-such-feature")
		if got := CalculateTotal(sel); got != 2500 {
			t.Errorf("CalculateTotal() = %d, want 2500", got)
		}
	})
}

func TestBuildPayload(t *testing.T) {
	svc := testService()
	sel := models.NewQuoteSelection(svc, models.CurrencyTND)
	sel.ToggleFeature("shipping")
	sel.ToggleFeature("catalog") // core, must not appear in payload

	contact := models.ContactFields{Name: "Amira", Email: "amira@example.com", Details: "Store for handmade goods"}
	payload := BuildPayload(sel, contact, "tok-123")

	if payload.ServiceID != "ecommerce-store" || payload.ServiceTitle != "E-commerce Store" {
		t.Errorf("payload service fields wrong: %+v", payload)
	}
	if payload.BasePrice != 7750 {
		t.Errorf("payload base = %d, want curated 7750", payload.BasePrice)
	}
	if want := 7750 + 930; payload.Total != want { // shipping 300*3.1
		t.Errorf("payload total = %d, want %d", payload.Total, want)
	}
	if payload.Currency != models.CurrencyTND {
		t.Errorf("payload currency = %s, want TND", payload.Currency)
	}
	if len(payload.Features) != 1 || payload.Features[0].ID != "shipping" || payload.Features[0].Price != 930 {
		t.Errorf("payload features wrong: %+v", payload.Features)
	}
	if payload.CSRFToken != "tok-123" || payload.Website != "" {
		t.Errorf("payload token/honeypot wrong: %+v", payload)
	}
	if payload.Name != "Amira" || payload.Email != "amira@example.com" {
		t.Errorf("payload contact fields wrong: %+v", payload)
	}
}

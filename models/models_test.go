package models

import "testing"

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in      string
		want    Currency
		wantErr bool
	}{
		{"USD", CurrencyUSD, false},
		{"EUR", CurrencyEUR, false},
		{"TND", CurrencyTND, false},
		{"", CurrencyUSD, false}, // default
		{"usd", "", true},        // case-sensitive wire value
		{"GBP", "", true},
		{"bitcoin", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCurrency(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCurrency(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCurrency(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCurrency(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestExchangeRatesCoverAllCurrencies(t *testing.T) {
	for _, c := range []Currency{CurrencyUSD, CurrencyEUR, CurrencyTND} {
		rate, ok := ExchangeRates[c]
		if !ok || rate <= 0 {
			t.Errorf("missing or invalid exchange rate for %s", c)
		}
	}
	if ExchangeRates[CurrencyUSD] != 1.0 {
		t.Error("USD must be the reference currency with rate 1")
	}
}

func TestToggleFeature(t *testing.T) {
	sel := NewQuoteSelection(&Service{ID: "s"}, CurrencyUSD)
	sel.ToggleFeature("seo")
	if !sel.FeatureIDs["seo"] {
		t.Error("feature should be toggled on")
	}
	sel.ToggleFeature("seo")
	if sel.FeatureIDs["seo"] {
		t.Error("feature should be toggled off")
	}

	// Toggling on a zero-value selection must not panic.
	var bare QuoteSelection
	bare.ToggleFeature("x")
	if !bare.FeatureIDs["x"] {
		t.Error("toggle on nil map should initialize it")
	}
}

package models

import "fmt"

// Currency is one of the fixed set of currencies the site quotes in.
// USD is the reference currency; every stored amount is USD unless a
// manually curated regional price says otherwise.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyTND Currency = "TND"
)

// ExchangeRates maps a currency to its multiplier relative to USD.
// It is the fallback for service prices lacking a curated regional
// amount, and always applies to feature prices.
var ExchangeRates = map[Currency]float64{
	CurrencyUSD: 1.0,
	CurrencyEUR: 0.92,
	CurrencyTND: 3.1,
}

// ParseCurrency normalizes external input into a Currency. It is the
// single validation point for currency values entering the system.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyUSD, CurrencyEUR, CurrencyTND:
		return Currency(s), nil
	case "":
		return CurrencyUSD, nil
	default:
		return "", fmt.Errorf("unsupported currency %q", s)
	}
}

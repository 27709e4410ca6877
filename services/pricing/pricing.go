// File: webnest/services/pricing/pricing.go
package pricing

import (
	"math"

	"webnest/models"
)

// round converts a computed amount to a whole unit of the target
// currency, half away from zero. No currency displays decimals.
func round(v float64) int {
	return int(math.Round(v))
}

// ResolveServicePrice returns the display amount for a service's base
// price in the requested currency. Curated regional amounts win over
// the computed conversion; USD is always the stored base price.
func ResolveServicePrice(svc *models.Service, currency models.Currency) int {
	switch currency {
	case models.CurrencyTND:
		if svc.LocalPrice != nil {
			return round(*svc.LocalPrice)
		}
		return round(svc.BasePrice * models.ExchangeRates[models.CurrencyTND])
	case models.CurrencyEUR:
		if svc.EuroPrice != nil {
			return round(*svc.EuroPrice)
		}
		return round(svc.BasePrice * models.ExchangeRates[models.CurrencyEUR])
	default:
		return round(svc.BasePrice)
	}
}

// ResolveFeaturePrice returns the display amount for a feature in the
// requested currency. Features carry no curated regional prices, so a
// rate change moves feature amounts while curated service amounts stay
// fixed until someone updates them by hand. That asymmetry is the
// pricing team's call; do not "fix" it here.
func ResolveFeaturePrice(f *models.Feature, currency models.Currency) int {
	if currency == models.CurrencyUSD {
		return round(f.Price)
	}
	return round(f.Price * models.ExchangeRates[currency])
}

// CalculateTotal computes the quoted total for a selection: resolved
// base price plus every chosen addon feature. Core features never
// contribute, even when present in the chosen set. A selection with no
// service yet is a valid state and totals zero.
func CalculateTotal(sel models.QuoteSelection) int {
	if sel.Service == nil {
		return 0
	}
	total := ResolveServicePrice(sel.Service, sel.Currency)
	for id := range sel.FeatureIDs {
		f := sel.Service.FindFeature(id)
		if f == nil || f.Category != models.FeatureAddon {
			continue
		}
		total += ResolveFeaturePrice(f, sel.Currency)
	}
	return total
}

// BuildPayload assembles the submission record from a selection and the
// requester's contact fields. It is a pure transformation: validation
// of the inputs happens at the HTTP boundary before this is called.
func BuildPayload(sel models.QuoteSelection, contact models.ContactFields, csrfToken string) models.SubmissionPayload {
	payload := models.SubmissionPayload{
		Name:         contact.Name,
		Email:        contact.Email,
		Details:      contact.Details,
		ServiceID:    sel.Service.ID,
		ServiceTitle: sel.Service.Title,
		BasePrice:    ResolveServicePrice(sel.Service, sel.Currency),
		Total:        CalculateTotal(sel),
		Currency:     sel.Currency,
		CSRFToken:    csrfToken,
	}
	for _, f := range sel.Service.Features {
		if f.Category != models.FeatureAddon || !sel.FeatureIDs[f.ID] {
			continue
		}
		payload.Features = append(payload.Features, models.PricedFeature{
			ID:    f.ID,
			Name:  f.Name,
			Price: ResolveFeaturePrice(&f, sel.Currency),
		})
	}
	return payload
}

package quote

import (
	"context"

	"webnest/models"
)

// View is the recomputed state of a customization session returned to
// the UI after every transition.
type View struct {
	SessionID string          `json:"sessionId,omitempty"`
	ServiceID string          `json:"serviceId"`
	Title     string          `json:"title"`
	Currency  models.Currency `json:"currency"`
	BasePrice int             `json:"basePrice"`
	Features  []FeatureView   `json:"features"`
	Selected  []string        `json:"selected"`
	Total     int             `json:"total"`
}

// FeatureView is a feature re-priced in the session currency.
type FeatureView struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       int                    `json:"price"`
	Category    models.FeatureCategory `json:"category"`
	Selected    bool                   `json:"selected"`
}

// Update carries one session transition: toggling a feature or
// switching the display currency. Both may be set in one call; the
// feature selection survives a currency switch.
type Update struct {
	ToggleFeature string `json:"toggleFeature,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

// SessionService manages the lifecycle of quote customization
// sessions: open, mutate, close. Sessions are ephemeral and
// TTL-bounded; a successful submission closes its session.
type SessionService interface {
	Open(ctx context.Context, serviceID, currency string) (*View, error)
	Apply(ctx context.Context, sessionID string, upd Update) (*View, error)
	Selection(ctx context.Context, sessionID string) (*models.QuoteSelection, error)
	Close(ctx context.Context, sessionID string) error
}

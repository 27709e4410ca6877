// File: webnest/services/quote/session.go
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"webnest/catalog"
	"webnest/models"
	"webnest/services/pricing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionTTL bounds how long an untouched customization session lives.
const SessionTTL = 30 * time.Minute

// storedSession is the compact form kept in Redis. The service is
// re-resolved from the catalog on every read so catalog edits never
// leave stale prices in a session.
type storedSession struct {
	ServiceID  string   `json:"serviceId"`
	FeatureIDs []string `json:"featureIds"`
	Currency   string   `json:"currency"`
}

// DefaultSessionService implements SessionService over Redis.
type DefaultSessionService struct {
	Catalog catalog.Repository
	Cache   *redis.Client
	Logger  *zap.Logger
	TTL     time.Duration
}

func NewSessionService(repo catalog.Repository, cache *redis.Client, logger *zap.Logger) *DefaultSessionService {
	return &DefaultSessionService{Catalog: repo, Cache: cache, Logger: logger, TTL: SessionTTL}
}

func sessionKey(id string) string { return fmt.Sprintf("quote:session:%s", id) }

// BuildView recomputes the quote for a selection. Pure; shared by the
// session service and the one-shot quote endpoint.
func BuildView(sel models.QuoteSelection) *View {
	v := &View{
		ServiceID: sel.Service.ID,
		Title:     sel.Service.Title,
		Currency:  sel.Currency,
		BasePrice: pricing.ResolveServicePrice(sel.Service, sel.Currency),
		Total:     pricing.CalculateTotal(sel),
	}
	for _, f := range sel.Service.Features {
		selected := sel.FeatureIDs[f.ID] && f.Category == models.FeatureAddon
		v.Features = append(v.Features, FeatureView{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			Price:       pricing.ResolveFeaturePrice(&f, sel.Currency),
			Category:    f.Category,
			Selected:    selected,
		})
		if selected {
			v.Selected = append(v.Selected, f.ID)
		}
	}
	return v
}

func (s *DefaultSessionService) save(ctx context.Context, id string, sel models.QuoteSelection) error {
	stored := storedSession{
		ServiceID: sel.Service.ID,
		Currency:  string(sel.Currency),
	}
	for fid := range sel.FeatureIDs {
		stored.FeatureIDs = append(stored.FeatureIDs, fid)
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("quote: failed to marshal session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(id), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("quote: failed to cache session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) load(ctx context.Context, id string) (*models.QuoteSelection, error) {
	data, err := s.Cache.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("quote: session not found or expired")
		}
		return nil, fmt.Errorf("quote: failed to load session: %w", err)
	}
	var stored storedSession
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, fmt.Errorf("quote: failed to parse session: %w", err)
	}
	svc, err := s.Catalog.GetService(stored.ServiceID)
	if err != nil {
		return nil, err
	}
	currency, err := models.ParseCurrency(stored.Currency)
	if err != nil {
		return nil, err
	}
	sel := models.NewQuoteSelection(svc, currency)
	for _, fid := range stored.FeatureIDs {
		sel.FeatureIDs[fid] = true
	}
	return &sel, nil
}

// Open starts a session for a service with no features selected.
func (s *DefaultSessionService) Open(ctx context.Context, serviceID, currency string) (*View, error) {
	svc, err := s.Catalog.GetService(serviceID)
	if err != nil {
		return nil, err
	}
	cur, err := models.ParseCurrency(currency)
	if err != nil {
		return nil, err
	}
	sel := models.NewQuoteSelection(svc, cur)

	id := uuid.New().String()
	if err := s.save(ctx, id, sel); err != nil {
		return nil, err
	}
	s.Logger.Debug("Quote session opened",
		zap.String("sessionID", id),
		zap.String("service", serviceID))

	view := BuildView(sel)
	view.SessionID = id
	return view, nil
}

// Apply mutates an open session and returns the recomputed quote.
// Toggling flips feature membership; a currency switch preserves the
// selection. Every transition refreshes the TTL.
func (s *DefaultSessionService) Apply(ctx context.Context, sessionID string, upd Update) (*View, error) {
	sel, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if upd.ToggleFeature != "" {
		if sel.Service.FindFeature(upd.ToggleFeature) == nil {
			return nil, fmt.Errorf("quote: service %q has no feature %q", sel.Service.ID, upd.ToggleFeature)
		}
		sel.ToggleFeature(upd.ToggleFeature)
	}
	if upd.Currency != "" {
		cur, err := models.ParseCurrency(upd.Currency)
		if err != nil {
			return nil, err
		}
		sel.Currency = cur
	}
	if err := s.save(ctx, sessionID, *sel); err != nil {
		return nil, err
	}

	view := BuildView(*sel)
	view.SessionID = sessionID
	return view, nil
}

// Selection returns the current selection of an open session.
func (s *DefaultSessionService) Selection(ctx context.Context, sessionID string) (*models.QuoteSelection, error) {
	return s.load(ctx, sessionID)
}

// Close discards a session. Closing an already-expired session is not
// an error.
func (s *DefaultSessionService) Close(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("quote: failed to discard session: %w", err)
	}
	return nil
}

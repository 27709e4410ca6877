// File: webnest/services/geo/geo.go
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"webnest/models"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GeoLocation is the subset of the ipapi.co response we care about.
type GeoLocation struct {
	IP          string `json:"ip"`
	City        string `json:"city"`
	Country     string `json:"country_name"`
	CountryCode string `json:"country_code"`
	Timezone    string `json:"timezone"`
}

// Detector guesses a visitor's preferred currency from their IP.
// Lookups are best-effort: every failure falls back to the timezone
// heuristic and nothing is ever surfaced to the caller.
type Detector struct {
	Cache  *redis.Client
	HTTP   *http.Client
	Logger *zap.Logger
}

const geoCacheTTL = 24 * time.Hour

func NewDetector(cache *redis.Client, logger *zap.Logger) *Detector {
	return &Detector{
		Cache:  cache,
		HTTP:   &http.Client{Timeout: 5 * time.Second},
		Logger: logger,
	}
}

// euCountries are the eurozone country codes mapped to EUR pricing.
var euCountries = map[string]bool{
	"AT": true, "BE": true, "HR": true, "CY": true, "EE": true,
	"FI": true, "FR": true, "DE": true, "GR": true, "IE": true,
	"IT": true, "LV": true, "LT": true, "LU": true, "MT": true,
	"NL": true, "PT": true, "SK": true, "SI": true, "ES": true,
}

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	return parsedIP.IsLoopback() || parsedIP.IsPrivate()
}

// lookup retrieves geolocation data for an IP from ipapi.co, caching
// results in Redis. The HTTP call is retried briefly with exponential
// backoff before giving up.
func (d *Detector) lookup(ctx context.Context, ip string) (*GeoLocation, error) {
	cacheKey := fmt.Sprintf("geo:%s", ip)
	if d.Cache != nil {
		if data, err := d.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var geo GeoLocation
			if err := json.Unmarshal([]byte(data), &geo); err == nil {
				return &geo, nil
			}
		}
	}

	if ip == "" || isPrivateIP(ip) {
		return nil, fmt.Errorf("geo: no public IP to look up")
	}

	url := fmt.Sprintf("https://ipapi.co/%s/json/", ip)
	var geo GeoLocation

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 10 * time.Second
	retryPolicy.MaxInterval = 3 * time.Second

	err := backoff.RetryNotify(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return backoff.Permanent(err)
			}
			resp, err := d.HTTP.Do(req)
			if err != nil {
				return fmt.Errorf("request: %w", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status: %d", resp.StatusCode)
			}
			if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			d.Logger.Warn("Geolocation lookup failed, retrying...",
				zap.String("ip", ip),
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("geo: lookup failed for %s: %w", ip, err)
	}

	if d.Cache != nil {
		if data, err := json.Marshal(&geo); err == nil {
			if err := d.Cache.Set(ctx, cacheKey, data, geoCacheTTL).Err(); err != nil {
				d.Logger.Warn("Failed to cache geolocation", zap.String("ip", ip), zap.Error(err))
			}
		}
	}
	return &geo, nil
}

// CurrencyForCountry maps an ISO country code to a display currency.
func CurrencyForCountry(code string) models.Currency {
	code = strings.ToUpper(code)
	switch {
	case code == "TN":
		return models.CurrencyTND
	case euCountries[code]:
		return models.CurrencyEUR
	default:
		return models.CurrencyUSD
	}
}

// CurrencyFromTimezone is the fallback heuristic when no geolocation
// is available: a timezone naming Tunis means TND, any European zone
// means EUR, everything else USD.
func CurrencyFromTimezone(tz string) models.Currency {
	switch {
	case strings.Contains(tz, "Tunis"):
		return models.CurrencyTND
	case strings.Contains(tz, "Europe"):
		return models.CurrencyEUR
	default:
		return models.CurrencyUSD
	}
}

// DetectCurrency resolves the default currency for a visitor. tzHint
// is the client-reported timezone (optional); it is the fallback when
// the IP lookup fails or yields nothing useful.
func (d *Detector) DetectCurrency(ctx context.Context, ip, tzHint string) models.Currency {
	geo, err := d.lookup(ctx, ip)
	if err != nil {
		d.Logger.Debug("Geolocation unavailable, using timezone heuristic",
			zap.String("ip", ip), zap.Error(err))
		return CurrencyFromTimezone(tzHint)
	}
	if geo.CountryCode == "" {
		if geo.Timezone != "" {
			return CurrencyFromTimezone(geo.Timezone)
		}
		return CurrencyFromTimezone(tzHint)
	}
	return CurrencyForCountry(geo.CountryCode)
}

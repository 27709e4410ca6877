package models

// FeatureCategory splits features into bundled ("core") and separately
// priced ("addon") entries.
type FeatureCategory string

const (
	FeatureCore  FeatureCategory = "core"
	FeatureAddon FeatureCategory = "addon"
)

// Feature is an add-on belonging to exactly one service. Prices are in
// USD only; regional display amounts are derived with the exchange-rate
// table. Core features are always included and carry a zero price.
type Feature struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    FeatureCategory `json:"category"`
}

// Service is a purchasable offering from the catalog.
// BasePrice is USD. LocalPrice (TND) and EuroPrice are optional
// hand-tuned regional amounts; when nil the display amount is computed
// from BasePrice and the exchange rate instead.
type Service struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	BasePrice    float64   `json:"basePrice"`
	LocalPrice   *float64  `json:"localPrice,omitempty"`
	EuroPrice    *float64  `json:"euroPrice,omitempty"`
	DeliveryTime string    `json:"deliveryTime"`
	Features     []Feature `json:"features"`
}

// FindFeature returns the feature with the given id, or nil if the
// service has no such feature.
func (s *Service) FindFeature(id string) *Feature {
	for i := range s.Features {
		if s.Features[i].ID == id {
			return &s.Features[i]
		}
	}
	return nil
}

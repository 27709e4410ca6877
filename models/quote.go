package models

// QuoteSelection is the ephemeral state of one customization session:
// a chosen service, the set of toggled feature ids (all belonging to
// that service), and the display currency. It exists only for the
// lifetime of a session and is discarded on close or submission.
type QuoteSelection struct {
	Service    *Service        `json:"service,omitempty"`
	FeatureIDs map[string]bool `json:"featureIds"`
	Currency   Currency        `json:"currency"`
}

// NewQuoteSelection opens a selection for a service with no features
// toggled yet.
func NewQuoteSelection(svc *Service, currency Currency) QuoteSelection {
	return QuoteSelection{
		Service:    svc,
		FeatureIDs: make(map[string]bool),
		Currency:   currency,
	}
}

// ToggleFeature flips membership of a feature id in the selection.
func (q *QuoteSelection) ToggleFeature(id string) {
	if q.FeatureIDs == nil {
		q.FeatureIDs = make(map[string]bool)
	}
	if q.FeatureIDs[id] {
		delete(q.FeatureIDs, id)
	} else {
		q.FeatureIDs[id] = true
	}
}

// ContactFields are the requester's details captured by the quote form.
type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Details string `json:"details"`
}

// PricedFeature is a chosen addon re-priced in the submission currency.
type PricedFeature struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// SubmissionPayload is the materialized record handed to the submission
// pipeline. Immutable once built; fire-and-forget to the mail layer.
type SubmissionPayload struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Details      string          `json:"details"`
	ServiceID    string          `json:"serviceId"`
	ServiceTitle string          `json:"serviceTitle"`
	BasePrice    int             `json:"basePrice"`
	Total        int             `json:"total"`
	Currency     Currency        `json:"currency"`
	Features     []PricedFeature `json:"features"`
	CSRFToken    string          `json:"csrfToken"`
	// Website is the honeypot field; humans never fill it.
	Website string `json:"website"`
}

// QuoteRequest is the wire form of a pricing submission as posted by
// the UI. Feature ids are re-validated and re-priced server-side.
type QuoteRequest struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Details   string   `json:"details" binding:"required"`
	ServiceID string   `json:"serviceId" binding:"required"`
	Features  []string `json:"features"`
	Currency  string   `json:"currency"`
	CSRFToken string   `json:"csrfToken" binding:"required"`
	Website   string   `json:"website"`
	// SessionID optionally ties the submission to an open
	// customization session, cleared on success.
	SessionID string `json:"sessionId"`
}

// SubmitResponse is the uniform response shape of the form endpoints.
type SubmitResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Errors  []SubmitError `json:"errors,omitempty"`
}

type SubmitError struct {
	Message string `json:"message"`
}

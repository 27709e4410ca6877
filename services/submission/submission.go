// File: webnest/services/submission/submission.go
package submission

import (
	"context"
	"fmt"
	"strings"

	"webnest/catalog"
	"webnest/models"
	"webnest/services/mailer"
	"webnest/services/pricing"
	"webnest/services/quote"

	"go.uber.org/zap"
)

// TokenStore validates and consumes one-time anti-forgery tokens.
type TokenStore interface {
	Consume(ctx context.Context, token string) error
}

// Service accepts form submissions, rejects forgeries and bots, and
// forwards accepted payloads to the email dispatcher.
type Service interface {
	SubmitQuote(ctx context.Context, req models.QuoteRequest, submitterIP string) (*models.SubmissionPayload, error)
	SubmitPartnership(ctx context.Context, inquiry models.PartnershipInquiry, submitterIP string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Catalog    catalog.Repository
	Tokens     TokenStore
	Dispatcher mailer.Dispatcher
	Sessions   quote.SessionService
	Logger     *zap.Logger
}

// guard applies the anti-automation checks shared by every form:
// honeypot first, then the one-time token. Neither failure reaches the
// mail layer.
func (s *DefaultService) guard(ctx context.Context, honeypot, token, submitterIP string) error {
	if strings.TrimSpace(honeypot) != "" {
		s.Logger.Warn("Honeypot field filled, dropping submission",
			zap.String("ip", submitterIP))
		return ErrBot
	}
	if err := s.Tokens.Consume(ctx, token); err != nil {
		s.Logger.Warn("CSRF validation failed",
			zap.String("ip", submitterIP),
			zap.Error(err))
		return ErrCSRF
	}
	return nil
}

// buildSelection resolves the request against the catalog. Unknown
// service or feature ids are validation errors; the client never
// dictates prices.
func (s *DefaultService) buildSelection(req models.QuoteRequest) (models.QuoteSelection, error) {
	var problems []string

	currency, err := models.ParseCurrency(req.Currency)
	if err != nil {
		problems = append(problems, err.Error())
	}
	svc, err := s.Catalog.GetService(req.ServiceID)
	if err != nil {
		problems = append(problems, fmt.Sprintf("unknown service %q", req.ServiceID))
	}
	if len(problems) > 0 {
		return models.QuoteSelection{}, &ValidationError{Messages: problems}
	}

	sel := models.NewQuoteSelection(svc, currency)
	for _, fid := range req.Features {
		if svc.FindFeature(fid) == nil {
			problems = append(problems, fmt.Sprintf("service %q has no feature %q", req.ServiceID, fid))
			continue
		}
		sel.FeatureIDs[fid] = true
	}
	if len(problems) > 0 {
		return models.QuoteSelection{}, &ValidationError{Messages: problems}
	}
	return sel, nil
}

// SubmitQuote validates a pricing submission, recomputes the quote
// server-side and dispatches the email pair. On success it returns the
// materialized payload and closes the originating session, if any.
func (s *DefaultService) SubmitQuote(ctx context.Context, req models.QuoteRequest, submitterIP string) (*models.SubmissionPayload, error) {
	if err := s.guard(ctx, req.Website, req.CSRFToken, submitterIP); err != nil {
		return nil, err
	}

	sel, err := s.buildSelection(req)
	if err != nil {
		return nil, err
	}

	contact := models.ContactFields{Name: req.Name, Email: req.Email, Details: req.Details}
	payload := pricing.BuildPayload(sel, contact, req.CSRFToken)

	if err := s.Dispatcher.SendQuote(ctx, payload, submitterIP); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	// Confirmed success clears the customization session; a failed
	// submission above leaves it intact so the user can retry.
	if req.SessionID != "" && s.Sessions != nil {
		if err := s.Sessions.Close(ctx, req.SessionID); err != nil {
			s.Logger.Warn("Failed to close quote session after submission",
				zap.String("sessionID", req.SessionID),
				zap.Error(err))
		}
	}

	s.Logger.Info("Quote submitted",
		zap.String("service", payload.ServiceID),
		zap.Int("total", payload.Total),
		zap.String("currency", string(payload.Currency)))
	return &payload, nil
}

// SubmitPartnership validates a partnership inquiry and dispatches its
// email pair. The payload passes through unchanged.
func (s *DefaultService) SubmitPartnership(ctx context.Context, inquiry models.PartnershipInquiry, submitterIP string) error {
	if err := s.guard(ctx, inquiry.Website, inquiry.CSRFToken, submitterIP); err != nil {
		return err
	}

	var problems []string
	if !models.ValidCompanySize(inquiry.CompanySize) {
		problems = append(problems, fmt.Sprintf("unknown company size %q", inquiry.CompanySize))
	}
	if !models.ValidPartnershipType(inquiry.PartnershipType) {
		problems = append(problems, fmt.Sprintf("unknown partnership type %q", inquiry.PartnershipType))
	}
	if len(problems) > 0 {
		return &ValidationError{Messages: problems}
	}

	if err := s.Dispatcher.SendPartnership(ctx, inquiry, submitterIP); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	s.Logger.Info("Partnership inquiry submitted", zap.String("company", inquiry.Company))
	return nil
}

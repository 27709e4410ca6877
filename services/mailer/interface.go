package mailer

import (
	"context"

	"webnest/models"
)

// Dispatcher renders and delivers the site's transactional emails.
// Each submission produces two documents: a confirmation for the
// requester and a notification for the site owner. Delivery failures
// are surfaced to the caller; no retry happens at this layer.
type Dispatcher interface {
	SendQuote(ctx context.Context, payload models.SubmissionPayload, submitterIP string) error
	SendPartnership(ctx context.Context, inquiry models.PartnershipInquiry, submitterIP string) error
	SendWelcome(ctx context.Context, payload models.WelcomeMailPayload) error
}

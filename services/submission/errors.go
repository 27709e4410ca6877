package submission

import "errors"

// ErrBot marks a submission caught by the honeypot. Handlers answer
// these with a fake success so bots learn nothing; no email is sent.
var ErrBot = errors.New("submission: honeypot tripped")

// ErrCSRF marks a missing, unknown or expired anti-forgery token.
var ErrCSRF = errors.New("submission: invalid or expired CSRF token")

// ErrDelivery wraps a mail-layer failure. The submission itself was
// valid; the user may retry.
var ErrDelivery = errors.New("submission: email delivery failed")

// ValidationError collects field-level problems with a submission.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "submission: invalid request"
	}
	return "submission: " + e.Messages[0]
}

// AsValidation extracts a ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

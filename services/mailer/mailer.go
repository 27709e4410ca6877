// File: webnest/services/mailer/mailer.go
package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"webnest/config"
	"webnest/models"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// Sender abstracts the SMTP dial-and-send so tests can capture
// messages instead of opening a connection.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPDispatcher is the production Dispatcher: it renders the embedded
// HTML templates and hands the messages to an SMTP relay.
type SMTPDispatcher struct {
	Sender     Sender
	From       string
	AdminEmail string
	Logger     *zap.Logger
	templates  *template.Template
}

// NewSMTPDispatcher builds a dispatcher from the loaded configuration.
func NewSMTPDispatcher(logger *zap.Logger) (*SMTPDispatcher, error) {
	cfg := config.AppConfig
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("mailer: failed to parse templates: %w", err)
	}
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return &SMTPDispatcher{
		Sender:     dialer,
		From:       cfg.MailFrom,
		AdminEmail: cfg.AdminEmail,
		Logger:     logger,
		templates:  tmpl,
	}, nil
}

func (d *SMTPDispatcher) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := d.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("mailer: render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (d *SMTPDispatcher) message(to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", d.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return m
}

// quoteMailData feeds the quote templates. The confirmation variant
// carries only the requester's own quote; the admin variant adds the
// full contact details and submitter IP.
type quoteMailData struct {
	Payload     models.SubmissionPayload
	SubmitterIP string
}

// SendQuote delivers the two quote emails in one SMTP session.
func (d *SMTPDispatcher) SendQuote(ctx context.Context, payload models.SubmissionPayload, submitterIP string) error {
	data := quoteMailData{Payload: payload, SubmitterIP: submitterIP}

	confirmBody, err := d.render("quote_confirmation.html", data)
	if err != nil {
		return err
	}
	adminBody, err := d.render("quote_admin.html", data)
	if err != nil {
		return err
	}

	confirm := d.message(payload.Email, fmt.Sprintf("Your %s quote", payload.ServiceTitle), confirmBody)
	notify := d.message(d.AdminEmail, fmt.Sprintf("New quote request: %s (%d %s)", payload.ServiceTitle, payload.Total, payload.Currency), adminBody)

	if err := d.Sender.DialAndSend(confirm, notify); err != nil {
		d.Logger.Error("Quote email delivery failed",
			zap.String("service", payload.ServiceID),
			zap.Error(err))
		return fmt.Errorf("mailer: delivery failed: %w", err)
	}
	d.Logger.Info("Quote emails sent",
		zap.String("service", payload.ServiceID),
		zap.Int("total", payload.Total),
		zap.String("currency", string(payload.Currency)))
	return nil
}

type partnershipMailData struct {
	Inquiry     models.PartnershipInquiry
	SubmitterIP string
}

// SendPartnership delivers the partnership inquiry email pair.
func (d *SMTPDispatcher) SendPartnership(ctx context.Context, inquiry models.PartnershipInquiry, submitterIP string) error {
	data := partnershipMailData{Inquiry: inquiry, SubmitterIP: submitterIP}

	confirmBody, err := d.render("partnership_confirmation.html", data)
	if err != nil {
		return err
	}
	adminBody, err := d.render("partnership_admin.html", data)
	if err != nil {
		return err
	}

	confirm := d.message(inquiry.Email, "We received your partnership inquiry", confirmBody)
	notify := d.message(d.AdminEmail, fmt.Sprintf("New partnership inquiry from %s", inquiry.Company), adminBody)

	if err := d.Sender.DialAndSend(confirm, notify); err != nil {
		d.Logger.Error("Partnership email delivery failed",
			zap.String("company", inquiry.Company),
			zap.Error(err))
		return fmt.Errorf("mailer: delivery failed: %w", err)
	}
	d.Logger.Info("Partnership emails sent", zap.String("company", inquiry.Company))
	return nil
}

// SendWelcome delivers the newsletter welcome email.
func (d *SMTPDispatcher) SendWelcome(ctx context.Context, payload models.WelcomeMailPayload) error {
	body, err := d.render("newsletter_welcome.html", payload)
	if err != nil {
		return err
	}
	m := d.message(payload.Email, "Welcome to the Webnest newsletter", body)
	if err := d.Sender.DialAndSend(m); err != nil {
		d.Logger.Error("Welcome email delivery failed", zap.Error(err))
		return fmt.Errorf("mailer: delivery failed: %w", err)
	}
	return nil
}

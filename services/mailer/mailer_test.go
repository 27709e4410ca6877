package mailer

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"testing"

	"webnest/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func testDispatcher(t *testing.T, sender Sender) *SMTPDispatcher {
	t.Helper()
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	require.NoError(t, err)
	return &SMTPDispatcher{
		Sender:     sender,
		From:       "no-reply@webnest.tn",
		AdminEmail: "hello@webnest.tn",
		Logger:     zap.NewNop(),
		templates:  tmpl,
	}
}

func testPayload() models.SubmissionPayload {
	return models.SubmissionPayload{
		Name:         "Amira",
		Email:        "amira@example.com",
		Details:      "Store for handmade goods",
		ServiceID:    "ecommerce-store",
		ServiceTitle: "E-commerce Store",
		BasePrice:    7750,
		Total:        8680,
		Currency:     models.CurrencyTND,
		Features: []models.PricedFeature{
			{ID: "shipping", Name: "Shipping rules", Price: 930},
		},
	}
}

func TestSendQuoteDeliversBothDocuments(t *testing.T) {
	sender := &fakeSender{}
	d := testDispatcher(t, sender)

	err := d.SendQuote(context.Background(), testPayload(), "41.226.11.1")
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)

	confirm, notify := sender.sent[0], sender.sent[1]
	require.Equal(t, []string{"amira@example.com"}, confirm.GetHeader("To"))
	require.Equal(t, []string{"hello@webnest.tn"}, notify.GetHeader("To"))
}

func TestSendQuoteSurfacesDeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	d := testDispatcher(t, sender)

	err := d.SendQuote(context.Background(), testPayload(), "41.226.11.1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "delivery failed")
}

func TestQuoteTemplatesRender(t *testing.T) {
	d := testDispatcher(t, &fakeSender{})
	data := quoteMailData{Payload: testPayload(), SubmitterIP: "41.226.11.1"}

	confirm, err := d.render("quote_confirmation.html", data)
	require.NoError(t, err)
	require.Contains(t, confirm, "Amira")
	require.Contains(t, confirm, "8680")
	// The requester's copy never exposes the submitter IP.
	require.NotContains(t, confirm, "41.226.11.1")

	admin, err := d.render("quote_admin.html", data)
	require.NoError(t, err)
	require.Contains(t, admin, "41.226.11.1")
	require.Contains(t, admin, "amira@example.com")
	require.Contains(t, admin, "Shipping rules")
}

func TestSendPartnership(t *testing.T) {
	sender := &fakeSender{}
	d := testDispatcher(t, sender)

	inquiry := models.PartnershipInquiry{
		Name:               "Nadia",
		Email:              "nadia@agency.example",
		Company:            "Agency X",
		CompanySize:        "small",
		PartnershipType:    "white-label",
		ProjectDescription: "Ongoing white-label builds",
		Timeline:           "Q4",
		Budget:             "10k-20k",
	}
	err := d.SendPartnership(context.Background(), inquiry, "8.8.8.8")
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)
	require.Equal(t, []string{"nadia@agency.example"}, sender.sent[0].GetHeader("To"))
}

func TestSendWelcome(t *testing.T) {
	sender := &fakeSender{}
	d := testDispatcher(t, sender)

	err := d.SendWelcome(context.Background(), models.WelcomeMailPayload{Email: "y@example.com", Name: "Yassine"})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	subject := sender.sent[0].GetHeader("Subject")
	require.Len(t, subject, 1)
	require.True(t, strings.Contains(subject[0], "Welcome"))
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:generate mockgen -source=mailer.go -destination=mock_mailer_test.go -package=main Mailer

// Mailer delivers a single outbound email.
type Mailer interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// Message is a provider-agnostic plain-text email.
type Message struct {
	FromEmail string
	FromName  string
	To        string
	ReplyTo   string
	Subject   string
	Body      string
}

// Receipt is what the provider tells us about an accepted message.
type Receipt struct {
	ID string
}

// ProviderError is returned when the provider answers with a non-2xx status.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("email provider returned %d: %s", e.StatusCode, e.Body)
}

const sendgridSendPath = "/v3/mail/send"

type sendgridMailer struct {
	apiKey  string
	host    string
	timeout time.Duration
}

func newSendgridMailer(apiKey, host string, timeout time.Duration) *sendgridMailer {
	return &sendgridMailer{apiKey: apiKey, host: host, timeout: timeout}
}

func (m *sendgridMailer) Send(ctx context.Context, msg Message) (Receipt, error) {
	v3 := mail.NewV3Mail()
	v3.SetFrom(mail.NewEmail(msg.FromName, msg.FromEmail))
	v3.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", msg.To))
	v3.AddPersonalizations(p)

	v3.AddContent(mail.NewContent("text/plain", msg.Body))
	v3.SetReplyTo(mail.NewEmail("", msg.ReplyTo))

	req := sendgrid.GetRequest(m.apiKey, sendgridSendPath, m.host)
	req.Method = rest.Post
	req.Body = mail.GetRequestBody(v3)

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return Receipt{}, fmt.Errorf("sendgrid request: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Receipt{}, &ProviderError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	var id string
	if ids := http.Header(resp.Headers).Values("X-Message-Id"); len(ids) > 0 {
		id = ids[0]
	}
	return Receipt{ID: id}, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingFields         = errors.New("missing fields")
	ErrProviderNotConfigured = errors.New("email provider not configured")
)

// ContactSubmission is a visitor's contact-form input. It lives for a single
// request and is never stored.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

var submissionValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that every field is present. The address is not checked
// for format.
func (s ContactSubmission) Validate() error {
	if err := submissionValidator.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingFields, err)
	}
	return nil
}

// Relay turns a submission into one email to the site owner.
type Relay struct {
	mailer     Mailer
	to         string
	fromEmail  string
	fromName   string
	subjectTag string
}

func newRelay(cfg Config, mailer Mailer) *Relay {
	return &Relay{
		mailer:     mailer,
		to:         cfg.ContactToEmail,
		fromEmail:  cfg.ContactFromEmail,
		fromName:   cfg.ContactFromName,
		subjectTag: cfg.ContactSubjectTag,
	}
}

func (r *Relay) message(s ContactSubmission) Message {
	subject := s.Subject
	if r.subjectTag != "" {
		subject = fmt.Sprintf("[%s] %s", r.subjectTag, s.Subject)
	}
	return Message{
		FromEmail: r.fromEmail,
		FromName:  r.fromName,
		To:        r.to,
		ReplyTo:   s.Email,
		Subject:   subject,
		Body:      fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", s.Name, s.Email, s.Message),
	}
}

// Send validates the submission and hands it to the mailer exactly once.
// Nothing is retried.
func (r *Relay) Send(ctx context.Context, s ContactSubmission) (Receipt, error) {
	if err := s.Validate(); err != nil {
		return Receipt{}, err
	}
	if r.mailer == nil {
		return Receipt{}, ErrProviderNotConfigured
	}
	return r.mailer.Send(ctx, r.message(s))
}

// Handle contact form submission
func contactHandler(relay *Relay, metrics *Metrics, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub ContactSubmission
		if err := c.ShouldBindJSON(&sub); err != nil {
			logger.Warn("contact: unreadable body", "error", err, "request_id", requestID(c))
			metrics.ContactSubmission("malformed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if err := sub.Validate(); err != nil {
			metrics.ContactSubmission("invalid")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}

		start := time.Now()
		receipt, err := relay.Send(c.Request.Context(), sub)
		if !errors.Is(err, ErrProviderNotConfigured) {
			metrics.ObserveProvider(time.Since(start))
		}

		var providerErr *ProviderError
		switch {
		case err == nil:
		case errors.Is(err, ErrProviderNotConfigured):
			logger.Error("contact: SENDGRID_API_KEY is not set", "request_id", requestID(c))
			metrics.ContactSubmission("unconfigured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email provider not configured"})
			return
		case errors.As(err, &providerErr):
			logger.Error("contact: provider rejected message",
				"status", providerErr.StatusCode, "request_id", requestID(c))
			metrics.ContactSubmission("provider_error")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message", "details": providerErr.Body})
			return
		default:
			logger.Error("contact: provider call failed", "error", err, "request_id", requestID(c))
			metrics.ContactSubmission("provider_error")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message", "details": err.Error()})
			return
		}

		logger.Info("contact: message relayed", "message_id", receipt.ID, "request_id", requestID(c))
		metrics.ContactSubmission("sent")

		resp := gin.H{"success": true}
		if receipt.ID != "" {
			resp["id"] = receipt.ID
		}
		c.JSON(http.StatusOK, resp)
	}
}

// Package mailer renders ARIS notification emails and delivers them through
// a prioritized provider chain: Microsoft Graph first, plain SMTP next, and
// a mock transport last so the demo flow never hard-fails on mail delivery.
package mailer

import (
	"context"
	"fmt"
	"log"
	"net/mail"
	"time"

	"aris-service/internal/config"
)

// Provider is a single mail transport.
type Provider interface {
	Name() string
	Send(ctx context.Context, to, subject, htmlBody, textBody string) (messageID string, err error)
}

// SendResult reports which provider delivered the message.
type SendResult struct {
	Success        bool      `json:"success"`
	MessageID      string    `json:"messageId"`
	Provider       string    `json:"provider"`
	SentAt         time.Time `json:"sentAt"`
	FallbackReason string    `json:"fallbackReason,omitempty"`
}

type Mailer struct {
	providers []Provider
}

// New builds the provider chain from config. Providers whose credentials are
// missing are skipped; the mock provider is always last.
func New(cfg config.EmailConfig) *Mailer {
	var providers []Provider
	if g := newGraphProvider(cfg.Graph, cfg.Name); g != nil {
		providers = append(providers, g)
	}
	if s := newSMTPProvider(cfg.SMTP, cfg.From, cfg.Name); s != nil {
		providers = append(providers, s)
	}
	providers = append(providers, &mockProvider{})
	return &Mailer{providers: providers}
}

// NewWithProviders builds a mailer over an explicit chain, used in tests.
func NewWithProviders(providers ...Provider) *Mailer {
	return &Mailer{providers: providers}
}

// ValidateAddress rejects malformed recipient addresses before any provider
// is attempted.
func ValidateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("recipient address is empty")
	}
	if _, err := mail.ParseAddress(address); err != nil {
		return fmt.Errorf("invalid email address %q: %w", address, err)
	}
	return nil
}

// Send renders the template for the given type and walks the provider chain
// until one delivers. The error from the last failing real provider is
// reported as the fallback reason when the mock ends up delivering.
func (m *Mailer) Send(ctx context.Context, to, subject string, emailType EmailType, data TemplateData) (*SendResult, error) {
	if err := ValidateAddress(to); err != nil {
		return nil, err
	}

	data.Subject = subject
	htmlBody, textBody, err := Render(emailType, data)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, provider := range m.providers {
		messageID, err := provider.Send(ctx, to, subject, htmlBody, textBody)
		if err != nil {
			log.Printf("Warning: %s provider failed for %s: %v", provider.Name(), to, err)
			lastErr = err
			continue
		}

		result := &SendResult{
			Success:   true,
			MessageID: messageID,
			Provider:  provider.Name(),
			SentAt:    time.Now(),
		}
		if lastErr != nil {
			result.FallbackReason = lastErr.Error()
		}
		log.Printf("Email sent to %s via %s (type=%s)", to, provider.Name(), emailType)
		return result, nil
	}

	return nil, fmt.Errorf("all email providers failed: %w", lastErr)
}

// mockProvider logs instead of sending. It keeps demo environments working
// without mail credentials.
type mockProvider struct{}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Send(_ context.Context, to, subject, _, textBody string) (string, error) {
	log.Printf("MOCK EMAIL to=%s subject=%q bytes=%d", to, subject, len(textBody))
	return fmt.Sprintf("mock_%d", time.Now().UnixNano()), nil
}

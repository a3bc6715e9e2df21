package mailer

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	name  string
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Send(_ context.Context, _, _, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.name + "_msg", nil
}

func TestSendFallsThroughToNextProvider(t *testing.T) {
	first := &stubProvider{name: "outlook", err: errors.New("auth failed")}
	second := &stubProvider{name: "smtp"}
	m := NewWithProviders(first, second)

	result, err := m.Send(context.Background(), "user@example.com", "Subject", TypeGeneral, TemplateData{Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Provider != "smtp" {
		t.Errorf("provider = %s, want smtp", result.Provider)
	}
	if result.FallbackReason == "" {
		t.Error("fallback reason must carry the first provider's error")
	}
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", first.calls, second.calls)
	}
}

func TestSendFirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "outlook"}
	second := &stubProvider{name: "smtp"}
	m := NewWithProviders(first, second)

	result, err := m.Send(context.Background(), "user@example.com", "Subject", TypeGeneral, TemplateData{Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Provider != "outlook" || result.FallbackReason != "" {
		t.Errorf("result = %+v, want outlook with no fallback reason", result)
	}
	if second.calls != 0 {
		t.Error("second provider must not be attempted when the first succeeds")
	}
}

func TestSendAllProvidersFail(t *testing.T) {
	m := NewWithProviders(
		&stubProvider{name: "outlook", err: errors.New("down")},
		&stubProvider{name: "smtp", err: errors.New("also down")},
	)

	if _, err := m.Send(context.Background(), "user@example.com", "Subject", TypeGeneral, TemplateData{Message: "hi"}); err == nil {
		t.Error("exhausted provider chain must return an error")
	}
}

func TestSendRejectsBadAddressBeforeProviders(t *testing.T) {
	provider := &stubProvider{name: "outlook"}
	m := NewWithProviders(provider)

	if _, err := m.Send(context.Background(), "not-an-email", "Subject", TypeGeneral, TemplateData{Message: "hi"}); err == nil {
		t.Error("invalid address must fail before any provider attempt")
	}
	if provider.calls != 0 {
		t.Error("no provider should be called for an invalid address")
	}
}

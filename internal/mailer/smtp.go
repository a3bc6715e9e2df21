package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"aris-service/internal/config"
)

// smtpProvider is the fallback transport using plain SMTP with AUTH.
type smtpProvider struct {
	host     string
	port     string
	username string
	password string
	from     string
	fromName string
}

func newSMTPProvider(cfg config.SMTPConfig, from, fromName string) *smtpProvider {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}
	return &smtpProvider{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     from,
		fromName: fromName,
	}
}

func (s *smtpProvider) Name() string { return "smtp" }

func (s *smtpProvider) Send(ctx context.Context, to, subject, htmlBody, textBody string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%d@%s>", time.Now().UnixNano(), s.host)
	boundary := fmt.Sprintf("aris-%d", time.Now().UnixNano())

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.fromName, s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Message-ID: %s\r\n", messageID)
	fmt.Fprintf(&msg, "Reply-To: %s\r\n", s.from)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(textBody)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		return "", fmt.Errorf("SMTP send failed: %w", err)
	}

	return messageID, nil
}

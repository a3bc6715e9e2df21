package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"aris-service/internal/config"
)

const graphSendMailURL = "https://graph.microsoft.com/v1.0/users/%s/sendMail"

// graphProvider sends mail through the Microsoft Graph sendMail endpoint
// using client-credential OAuth. The TokenSource caches and refreshes the
// access token internally.
type graphProvider struct {
	sender   string
	fromName string
	tokens   oauth2.TokenSource
	client   *http.Client
}

func newGraphProvider(cfg config.GraphConfig, fromName string) *graphProvider {
	if cfg.ClientID == "" || cfg.Secret == "" || cfg.TenantID == "" || cfg.SenderMail == "" {
		return nil
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.Secret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.TenantID),
		Scopes:       []string{"https://graph.microsoft.com/.default"},
	}

	return &graphProvider{
		sender:   cfg.SenderMail,
		fromName: fromName,
		tokens:   creds.TokenSource(context.Background()),
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *graphProvider) Name() string { return "outlook" }

type graphAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type graphRecipient struct {
	EmailAddress graphAddress `json:"emailAddress"`
}

type graphMessage struct {
	Subject string `json:"subject"`
	Body    struct {
		ContentType string `json:"contentType"`
		Content     string `json:"content"`
	} `json:"body"`
	ToRecipients []graphRecipient `json:"toRecipients"`
	From         graphRecipient   `json:"from"`
}

type graphSendRequest struct {
	Message         graphMessage `json:"message"`
	SaveToSentItems bool         `json:"saveToSentItems"`
}

func (g *graphProvider) Send(ctx context.Context, to, subject, htmlBody, _ string) (string, error) {
	token, err := g.tokens.Token()
	if err != nil {
		return "", fmt.Errorf("failed to obtain Graph access token: %w", err)
	}

	payload := graphSendRequest{SaveToSentItems: true}
	payload.Message.Subject = subject
	payload.Message.Body.ContentType = "HTML"
	payload.Message.Body.Content = htmlBody
	payload.Message.ToRecipients = []graphRecipient{{EmailAddress: graphAddress{Address: to}}}
	payload.Message.From = graphRecipient{EmailAddress: graphAddress{Address: g.sender, Name: g.fromName}}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal Graph request: %w", err)
	}

	url := fmt.Sprintf(graphSendMailURL, g.sender)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build Graph request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Graph sendMail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("Graph sendMail returned status %d: %s", resp.StatusCode, detail)
	}

	return fmt.Sprintf("outlook_%d", time.Now().UnixNano()), nil
}

package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultAPIBaseURL = "https://gmail.googleapis.com/gmail/v1"
	defaultTokenURL   = "https://oauth2.googleapis.com/token"

	// InboxWindow is how far back ListInbox looks, wide enough that a missed
	// sync run does not drop messages.
	InboxWindow = 7 * 24 * time.Hour

	maxListResults = 100
)

// Stage names the phase of an inbox run that failed. A stage failure aborts
// the whole batch request; per-message fetch failures are skipped instead.
type Stage string

const (
	StageAuthentication Stage = "authentication"
	StageListing        Stage = "listing"
)

// StageError wraps a transport failure with the stage it occurred in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("inbox %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	APIBaseURL   string
	TokenURL     string
}

// GmailClient reads the monitored inbox over the Gmail REST API, refreshing
// its OAuth2 access token from the configured refresh token. Safe for use
// across concurrent requests.
type GmailClient struct {
	http *http.Client
	cfg  Config

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewGmailClient(cfg Config) (*GmailClient, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, fmt.Errorf("gmail client requires client id, secret and refresh token")
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaultTokenURL
	}

	return &GmailClient{
		http: &http.Client{Timeout: 30 * time.Second},
		cfg:  cfg,
	}, nil
}

// ListInbox fetches inbox messages received within InboxWindow, subject and
// body payload included, newest batch first as the provider returns them.
func (c *GmailClient) ListInbox(ctx context.Context) ([]Message, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, &StageError{Stage: StageAuthentication, Err: err}
	}

	after := time.Now().Add(-InboxWindow).Unix()
	query := fmt.Sprintf("in:inbox after:%d", after)

	ids, err := c.listMessageIDs(ctx, token, query)
	if err != nil {
		return nil, &StageError{Stage: StageListing, Err: err}
	}
	slog.Info("Listed inbox messages", "query", query, "count", len(ids))

	// A message that cannot be fetched is skipped, not batch-fatal.
	messages := make([]Message, 0, len(ids))
	for _, id := range ids {
		msg, err := c.getMessage(ctx, token, id)
		if err != nil {
			slog.Warn("Skipping unfetchable message", "message", id, "error", err)
			continue
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

func (c *GmailClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"refresh_token": {c.cfg.RefreshToken},
		"grant_type":    {"refresh_token"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := c.do(req, &body); err != nil {
		return "", fmt.Errorf("refresh access token: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	c.accessToken = body.AccessToken
	// Renew a minute early so in-flight requests never race expiry.
	c.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn)*time.Second - time.Minute)

	return c.accessToken, nil
}

func (c *GmailClient) listMessageIDs(ctx context.Context, token, query string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/users/me/messages?q=%s&maxResults=%d",
		c.cfg.APIBaseURL, url.QueryEscape(query), maxListResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var body struct {
		Messages []struct {
			ID string `json:"id"`
		} `json:"messages"`
	}
	if err := c.do(req, &body); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	ids := make([]string, 0, len(body.Messages))
	for _, m := range body.Messages {
		if m.ID != "" {
			ids = append(ids, m.ID)
		}
	}

	return ids, nil
}

func (c *GmailClient) getMessage(ctx context.Context, token, id string) (Message, error) {
	endpoint := fmt.Sprintf("%s/users/me/messages/%s?format=full", c.cfg.APIBaseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Message{}, fmt.Errorf("build get request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var body struct {
		ID      string    `json:"id"`
		Payload gmailPart `json:"payload"`
	}
	if err := c.do(req, &body); err != nil {
		return Message{}, fmt.Errorf("get message %s: %w", id, err)
	}

	return Message{
		ID:      body.ID,
		Subject: body.Payload.header("Subject"),
		Payload: body.Payload.toPayload(),
	}, nil
}

func (c *GmailClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("gmail api %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

type gmailPart struct {
	MimeType string `json:"mimeType"`
	Headers  []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"headers"`
	Body struct {
		Data string `json:"data"`
	} `json:"body"`
	Parts []gmailPart `json:"parts"`
}

func (p gmailPart) header(name string) string {
	for _, h := range p.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

func (p gmailPart) toPayload() Payload {
	payload := Payload{
		MimeType: p.MimeType,
		Data:     p.Body.Data,
	}
	for _, part := range p.Parts {
		payload.Parts = append(payload.Parts, part.toPayload())
	}
	return payload
}

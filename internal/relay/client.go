// Package relay is the client for the backend relay functions that front
// the GitHub App installation: repository enumeration and task generation.
// The relay is an opaque remote collaborator; this package owns only the
// wire contract and error mapping.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rekanban/rekanban/internal/core/wizard"
)

const (
	endpointConnectStart = "github-connect-start"
	endpointRepos        = "github-repos"
	endpointGenerate     = "create-github-issues"

	defaultTimeout = 45 * time.Second
)

var (
	// ErrNotConfigured is returned when an outbound call is attempted
	// without a backend base URL. There is no sane fallback.
	ErrNotConfigured = errors.New("relay: backend base URL is not configured")

	// ErrNotConnected is returned when the relay rejects the installation,
	// meaning the GitHub App connect flow has not been completed.
	ErrNotConnected = errors.New("relay: not connected to a GitHub installation")
)

// RemoteError is a non-auth failure reported by the relay, carrying a
// message suitable for display.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("relay: %s (status %d)", e.Message, e.Status)
}

// Config configures a Client.
type Config struct {
	BaseURL        string
	InstallationID int64
	Timeout        time.Duration
}

// Client talks to the relay. Construct one explicitly and inject it;
// there is no package-level instance.
type Client struct {
	baseURL        string
	installationID int64
	http           *http.Client
	log            zerolog.Logger
}

// New creates a relay client. An empty base URL is allowed at construction;
// calls will fail with ErrNotConfigured.
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		installationID: cfg.InstallationID,
		http:           &http.Client{Timeout: timeout},
		log:            log,
	}
}

// ConnectStartURL returns the URL that begins the GitHub App installation
// flow. The redirect dance itself happens in the browser.
func (c *Client) ConnectStartURL() (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}
	return c.baseURL + "/" + endpointConnectStart, nil
}

// Repo is one repository visible to the installation.
type Repo struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// Repositories returns the repositories the configured installation can
// reach. A 401 maps to ErrNotConnected; other failures are retryable
// remote errors.
func (c *Client) Repositories(ctx context.Context) ([]Repo, error) {
	body := map[string]any{"installation_id": c.installationID}

	var resp struct {
		Repos []Repo `json:"repos"`
	}
	if err := c.post(ctx, endpointRepos, body, &resp); err != nil {
		return nil, err
	}

	c.log.Debug().Int("count", len(resp.Repos)).Msg("listed installation repositories")
	return resp.Repos, nil
}

// Result is the relay's answer to a successful generation request.
type Result struct {
	IssuesLink        string `json:"issues_link"`
	CreatedIssueCount int    `json:"created_issue_count"`

	// Target repository, echoed from the request for display.
	Owner string `json:"-"`
	Repo  string `json:"-"`
}

// Generate submits the assembled request. Exactly one outbound call is
// made per invocation; single-flight discipline is the caller's concern.
func (c *Client) Generate(ctx context.Context, req wizard.Request) (Result, error) {
	body := map[string]any{
		"installation_id": c.installationID,
		"owner":           req.GitHub.Owner,
		"repo":            req.GitHub.Repo,
		"payload":         req,
	}

	var result Result
	if err := c.post(ctx, endpointGenerate, body, &result); err != nil {
		return Result{}, err
	}

	result.Owner = req.GitHub.Owner
	result.Repo = req.GitHub.Repo

	c.log.Info().
		Str("repo", req.GitHub.Owner+"/"+req.GitHub.Repo).
		Int("issues", result.CreatedIssueCount).
		Msg("generation request accepted")

	return result, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body, dest any) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "rekanban-cli")
	req.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Debug().Err(err).Str("endpoint", endpoint).Msg("close response body")
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrNotConnected
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RemoteError{Status: resp.StatusCode, Message: remoteMessage(raw)}
	}

	if dest != nil {
		if err := json.Unmarshal(raw, dest); err != nil {
			return fmt.Errorf("decode %s response: %w", endpoint, err)
		}
	}

	return nil
}

// remoteMessage extracts the {error} field from a relay failure body,
// falling back to a generic message.
func remoteMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return "request failed"
}

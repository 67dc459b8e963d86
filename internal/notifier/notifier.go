// Package notifier delivers lifecycle events to the worker sink. Delivery is
// best-effort: callers are expected to log a failed dispatch and move on.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/purehouse/post-service/internal/config"
)

const (
	LevelSuccess = "SUCCESS"
	LevelInfo    = "INFO"
	LevelWarn    = "WARN"
)

const (
	EventPostCreated = "post.created"
	EventPostUpdated = "post.updated"
	EventPostDeleted = "post.deleted"
)

type Event struct {
	Level    string                 `json:"level"`
	Message  string                 `json:"message"`
	Metadata map[string]interface{} `json:"metadata"`
}

type Dispatcher interface {
	Dispatch(ctx context.Context, event Event) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg config.NotifierConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultNotifierTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Dispatch posts the event to <base>/logs. With no base URL configured it is
// a silent no-op.
func (c *Client) Dispatch(ctx context.Context, event Event) error {
	if c.baseURL == "" {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/logs", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("worker sink answered %d", resp.StatusCode)
	}

	return nil
}

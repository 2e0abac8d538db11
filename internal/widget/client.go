package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/independencecare/chatdesk/internal/config"
	"github.com/independencecare/chatdesk/internal/model/chat"
)

var ErrEmptyResponse = errors.New("backend returned an empty response")

// Client posts visitor messages to the chat backend.
type Client struct {
	http     *resty.Client
	endpoint string
}

// NewClient builds a Client for cfg.Endpoint. A zero Timeout leaves calls unbounded
// except by the caller's context.
func NewClient(cfg config.WidgetConfig) *Client {
	httpClient := resty.New().
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}
	return &Client{http: httpClient, endpoint: cfg.Endpoint}
}

// Chat sends one request. Any non-2xx status is an error.
func (c *Client) Chat(ctx context.Context, req chat.ChatRequest) (chat.ChatResponse, error) {
	var out chat.ChatResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		ForceContentType("application/json").
		Post(c.endpoint)
	if err != nil {
		return chat.ChatResponse{}, fmt.Errorf("post %s: %w", c.endpoint, err)
	}
	if !res.IsSuccess() {
		return chat.ChatResponse{}, fmt.Errorf("post %s: unexpected status %d", c.endpoint, res.StatusCode())
	}
	if strings.TrimSpace(out.Response) == "" {
		return chat.ChatResponse{}, ErrEmptyResponse
	}
	return out, nil
}

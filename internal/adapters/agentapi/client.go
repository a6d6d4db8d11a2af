package agentapi

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"churnscope/internal/agents"
	"churnscope/pkg/errors"
	"churnscope/pkg/logger"
)

const defaultTimeout = 120 * time.Second

// Ensure Client implements the agent client interface
var _ agents.Client = (*Client)(nil)

// Client talks to the hosted agent platform over HTTP. All calls share a
// rate limiter so a multi-step plan cannot exceed the platform quota.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewClient creates a platform client. requestsPerMinute bounds the total
// call rate across Invoke and Stream.
func NewClient(baseURL, apiKey string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
		log:     logger.Get().With("component", "agent_platform_client"),
	}
}

type invokeRequest struct {
	Query string `json:"query"`
}

type invokeResponse struct {
	Output string `json:"output"`
}

// Invoke runs the agent to completion and returns its full output.
func (c *Client) Invoke(ctx context.Context, agent agents.AgentName, query string) (string, error) {
	resp, err := c.post(ctx, fmt.Sprintf("/agents/%s/invoke", agent), query)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read agent response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(errors.ErrAgentUnavailable, "agent %s returned %d: %s",
			agent, resp.StatusCode, string(body))
	}

	var out invokeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", errors.Wrap(err, "unmarshal agent response")
	}
	return out.Output, nil
}

// Stream runs the agent and yields raw chunks as the platform emits them.
// The channel closes when the stream ends or the context is cancelled.
func (c *Client) Stream(ctx context.Context, agent agents.AgentName, query string) (<-chan string, error) {
	resp, err := c.post(ctx, fmt.Sprintf("/agents/%s/stream", agent), query)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, errors.Wrapf(errors.ErrAgentUnavailable, "agent %s stream returned %d: %s",
			agent, resp.StatusCode, string(body))
	}

	ch := make(chan string)
	go func() {
		defer close(ch)
		defer func() { _ = resp.Body.Close() }()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			line = strings.TrimPrefix(line, "data: ")
			if line == "" || line == "[DONE]" {
				continue
			}
			select {
			case ch <- line:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			c.log.Warnw("Agent stream read error", "agent", agent, "error", err)
		}
	}()

	return ch, nil
}

func (c *Client) post(ctx context.Context, path, query string) (*http.Response, error) {
	if c.baseURL == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "agent platform URL not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter wait")
	}

	body, err := json.Marshal(invokeRequest{Query: query})
	if err != nil {
		return nil, errors.Wrap(err, "marshal agent request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create HTTP request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send agent request")
	}
	return resp, nil
}

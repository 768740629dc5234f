package mentor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is the SDK client for the Mentor Virtual backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		if client.httpClient == nil {
			client.httpClient = &http.Client{}
		}
		client.httpClient.Timeout = d
	}
}

// NewClient creates a new SDK client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the backend address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// buildURL builds a request URL with optional query parameters.
func (c *Client) buildURL(path string, queryParams ...map[string]string) string {
	u, _ := url.Parse(c.baseURL + path)

	if len(queryParams) > 0 {
		q := u.Query()
		for _, params := range queryParams {
			for k, v := range params {
				q.Set(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String()
}

// doRequest performs an HTTP request and decodes the JSON response.
// Every failure is returned as an *APIError carrying its Kind.
func (c *Client) doRequest(ctx context.Context, method, reqURL string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindDecode, Err: fmt.Errorf("marshal request body: %w", err)}
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return &APIError{Kind: KindNetwork, Err: fmt.Errorf("create request: %w", err)}
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetwork, Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Detail:     decodeDetail(resp.Body),
		}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &APIError{Kind: KindDecode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}

	return nil
}

// decodeDetail extracts the backend's {"detail": ...} message from an
// error body, falling back to the raw text when it is not JSON.
func decodeDetail(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))
	if len(raw) == 0 {
		return ""
	}

	var parsed struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Detail != "" {
			return parsed.Detail
		}
		if parsed.Error != "" {
			return parsed.Error
		}
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// Chat sends one user message and returns the tutor's reply.
func (c *Client) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.doRequest(ctx, http.MethodPost, c.buildURL("/api/chat"), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Progress fetches the full progress snapshot for a session/agent pair.
func (c *Client) Progress(ctx context.Context, sessionID, agentID string) (*ProgressSnapshot, error) {
	reqURL := c.buildURL("/api/progress", map[string]string{
		"sessionId": sessionID,
		"agentId":   agentID,
	})

	var snap ProgressSnapshot
	if err := c.doRequest(ctx, http.MethodGet, reqURL, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Agents fetches the configuration of every backend persona.
func (c *Client) Agents(ctx context.Context) (map[string]AgentConfig, error) {
	var resp AgentsResponse
	if err := c.doRequest(ctx, http.MethodGet, c.buildURL("/api/agents"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Agents, nil
}

// SaveAgentConfig writes the configuration of one persona.
func (c *Client) SaveAgentConfig(ctx context.Context, cfg *AgentConfig) error {
	return c.doRequest(ctx, http.MethodPost, c.buildURL("/api/agents/config"), cfg, nil)
}

// SaveAPIKey stores the backend API key, optionally persisting it to
// the backend's .env file.
func (c *Client) SaveAPIKey(ctx context.Context, key string, persist bool) error {
	req := &APIKeyRequest{APIKey: key, Persist: persist}
	return c.doRequest(ctx, http.MethodPost, c.buildURL("/api/config/api-key"), req, nil)
}

// SearchRetriever runs a retriever debug query for the top k chunks.
func (c *Client) SearchRetriever(ctx context.Context, query string, k int) (*RetrieverResponse, error) {
	reqURL := c.buildURL("/api/debug/retriever", map[string]string{
		"q": query,
		"k": strconv.Itoa(k),
	})

	var resp RetrieverResponse
	if err := c.doRequest(ctx, http.MethodGet, reqURL, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health probes the backend. A nil error means the server answered 2xx.
func (c *Client) Health(ctx context.Context) error {
	var resp HealthResponse
	return c.doRequest(ctx, http.MethodGet, c.buildURL("/health"), nil, &resp)
}

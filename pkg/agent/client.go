package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/container-desk/cdesk/pkg/update"
)

// ErrAgentUnavailable means the agent socket did not answer.
var ErrAgentUnavailable = errors.New("cdesk agent is not running")

// HTTPClient abstracts the transport so tests can substitute canned
// responses.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to a running agent.
type Client struct {
	httpClient HTTPClient
	baseURL    string
}

// NewClient builds a client for the agent listening on the given unix socket.
func NewClient(socket string) *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					return net.DialTimeout("unix", socket, 5*time.Second)
				},
			},
			Timeout: 30 * time.Second,
		},
		baseURL: "http://cdesk",
	}
}

// NewClientWithTransport builds a client over an explicit transport and base
// URL. Used by tests and TCP-listening agents.
func NewClientWithTransport(httpClient HTTPClient, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

func (c *Client) get(ctx context.Context, route string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+route, nil)
	if err != nil {
		return nil, fmt.Errorf("agent: building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAgentUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("agent: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent: %s returned status %d: %s", route, resp.StatusCode, body)
	}
	return body, nil
}

// Status fetches the latest status snapshot from the agent.
func (c *Client) Status(ctx context.Context) (StatusResponse, error) {
	body, err := c.get(ctx, StatusRoute)
	if err != nil {
		return StatusResponse{}, err
	}
	var status StatusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return StatusResponse{}, fmt.Errorf("agent: unmarshaling status: %w", err)
	}
	return status, nil
}

// Update asks the agent to run an update check.
func (c *Client) Update(ctx context.Context) (update.Info, error) {
	body, err := c.get(ctx, UpdateRoute)
	if err != nil {
		return update.Info{}, err
	}
	var info update.Info
	if err := json.Unmarshal(body, &info); err != nil {
		return update.Info{}, fmt.Errorf("agent: unmarshaling update info: %w", err)
	}
	return info, nil
}

// Logs fetches the retained daemon log tail.
func (c *Client) Logs(ctx context.Context) (string, error) {
	body, err := c.get(ctx, LogsRoute)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

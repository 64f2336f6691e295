package nautobot

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nerdfunk-net/nautobot-mcp/internal/config"
)

// ClientInterface defines the interface for Nautobot client operations.
// The query engine, resolvers and onboarding handler all consume this
// interface so tests can substitute a mock backend.
type ClientInterface interface {
	// GraphQLQuery executes a GraphQL query with variables against /api/graphql/
	GraphQLQuery(query string, variables map[string]interface{}) (map[string]interface{}, error)

	// RESTGet fetches a REST resource, e.g. "/api/extras/roles/?name=network"
	RESTGet(path string) (map[string]interface{}, error)

	// RESTPost creates a REST resource with a JSON payload
	RESTPost(path string, payload interface{}) (map[string]interface{}, error)

	// TestConnection verifies the Nautobot API is reachable
	TestConnection() error
}

// Client represents the Nautobot API client
type Client struct {
	httpClient *http.Client
	config     *config.NautobotConfig
}

// NewClient creates a new Nautobot client
func NewClient(cfg *config.NautobotConfig) ClientInterface {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		},
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   time.Duration(cfg.Timeout) * time.Second,
			Transport: transport,
		},
		config: cfg,
	}
}

// graphQLRequest is the wire shape of a Nautobot GraphQL call
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// makeRequest performs an HTTP request with token authentication and decodes
// the JSON response body into a generic map
func (c *Client) makeRequest(method, endpoint string, body interface{}) (map[string]interface{}, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	url := strings.TrimRight(c.config.URL, "/") + endpoint
	req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Token "+c.config.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorBody, readErr := io.ReadAll(resp.Body)
		errorMsg := fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		if readErr == nil && len(errorBody) > 0 {
			errorMsg += fmt.Sprintf(", response: %s", string(errorBody))
		}
		return nil, fmt.Errorf("%s", errorMsg)
	}

	if resp.StatusCode == http.StatusNoContent {
		return map[string]interface{}{}, nil
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result, nil
}

// GraphQLQuery executes a GraphQL query against the Nautobot GraphQL endpoint
func (c *Client) GraphQLQuery(query string, variables map[string]interface{}) (map[string]interface{}, error) {
	return c.makeRequest("POST", "/api/graphql/", &graphQLRequest{
		Query:     query,
		Variables: variables,
	})
}

// RESTGet fetches a resource from the Nautobot REST API
func (c *Client) RESTGet(path string) (map[string]interface{}, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.makeRequest("GET", path, nil)
}

// RESTPost creates a resource through the Nautobot REST API
func (c *Client) RESTPost(path string, payload interface{}) (map[string]interface{}, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.makeRequest("POST", path, payload)
}

// TestConnection verifies the Nautobot API answers on its root endpoint
func (c *Client) TestConnection() error {
	if _, err := c.RESTGet("/api/"); err != nil {
		return fmt.Errorf("nautobot connection test failed: %w", err)
	}
	return nil
}

package api

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"go.uber.org/zap"

	apierrors "github.com/diogo/geminichat/internal/errors"
	"github.com/diogo/geminichat/internal/models"
)

const defaultTimeout = 300 * time.Second

// GeminiClient calls the Gemini generateContent endpoint
type GeminiClient struct {
	httpClient tls_client.HttpClient
	apiKey     string
	baseURL    string
	timeout    time.Duration
	logger     *zap.Logger
	mu         sync.RWMutex
	closed     bool
}

// ClientOption is a function that configures the client
type ClientOption func(*GeminiClient)

// WithBaseURL overrides the API host, e.g. for a proxy
func WithBaseURL(baseURL string) ClientOption {
	return func(c *GeminiClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeout sets the transport timeout for a single call
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *GeminiClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the transport
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *GeminiClient) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the client logger
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *GeminiClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new GeminiClient
func NewClient(apiKey string, opts ...ClientOption) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, apierrors.NewConfigurationError("GEMINI_API_KEY", "API key is empty")
	}

	client := &GeminiClient{
		apiKey:  apiKey,
		baseURL: models.EndpointBase,
		timeout: defaultTimeout,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Close releases idle connections. Calls after Close fail.
func (c *GeminiClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	c.httpClient.CloseIdleConnections()
}

// IsClosed returns whether the client is closed
func (c *GeminiClient) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// BaseURL returns the API host in use
func (c *GeminiClient) BaseURL() string {
	return c.baseURL
}

// endpointFor returns the generateContent URL for a model
func (c *GeminiClient) endpointFor(model string) string {
	model = strings.TrimPrefix(model, "models/")
	return fmt.Sprintf("%s/%s/models/%s:%s", c.baseURL, models.EndpointVersion, model, models.GenerateMethod)
}

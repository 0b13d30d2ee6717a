package api

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	apierrors "github.com/diogo/geminichat/internal/errors"
	"github.com/diogo/geminichat/internal/models"
)

// TestNewClient tests the NewClient function
func TestNewClient(t *testing.T) {
	mock := NewMockHttpClient(nil, 200)

	tests := []struct {
		name        string
		apiKey      string
		opts        []ClientOption
		wantErr     bool
		wantBaseURL string
		wantTimeout time.Duration
	}{
		{
			name:        "defaults",
			apiKey:      "key",
			opts:        []ClientOption{WithHTTPClient(mock)},
			wantBaseURL: models.EndpointBase,
			wantTimeout: defaultTimeout,
		},
		{
			name:        "custom base url trims trailing slash",
			apiKey:      "key",
			opts:        []ClientOption{WithHTTPClient(mock), WithBaseURL("http://localhost:8080/")},
			wantBaseURL: "http://localhost:8080",
			wantTimeout: defaultTimeout,
		},
		{
			name:        "empty base url keeps default",
			apiKey:      "key",
			opts:        []ClientOption{WithHTTPClient(mock), WithBaseURL("")},
			wantBaseURL: models.EndpointBase,
			wantTimeout: defaultTimeout,
		},
		{
			name:        "custom timeout",
			apiKey:      "key",
			opts:        []ClientOption{WithHTTPClient(mock), WithTimeout(10 * time.Second)},
			wantBaseURL: models.EndpointBase,
			wantTimeout: 10 * time.Second,
		},
		{
			name:        "zero timeout keeps default",
			apiKey:      "key",
			opts:        []ClientOption{WithHTTPClient(mock), WithTimeout(0)},
			wantBaseURL: models.EndpointBase,
			wantTimeout: defaultTimeout,
		},
		{
			name:    "empty key",
			apiKey:  "",
			wantErr: true,
		},
		{
			name:    "blank key",
			apiKey:  "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey, tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !apierrors.IsConfigurationError(err) {
					t.Errorf("expected ConfigurationError, got %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client.BaseURL() != tt.wantBaseURL {
				t.Errorf("BaseURL() = %q, want %q", client.BaseURL(), tt.wantBaseURL)
			}
			if client.timeout != tt.wantTimeout {
				t.Errorf("timeout = %v, want %v", client.timeout, tt.wantTimeout)
			}
		})
	}
}

func TestNewClient_DefaultTransport(t *testing.T) {
	client, err := NewClient("key", WithLogger(zap.NewNop()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.httpClient == nil {
		t.Fatal("expected a default transport")
	}
	client.Close()
}

func TestGeminiClient_Close(t *testing.T) {
	mock := NewMockHttpClient(nil, 200)
	client, err := NewClient("key", WithHTTPClient(mock))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.IsClosed() {
		t.Error("new client should not be closed")
	}

	client.Close()
	client.Close()

	if !client.IsClosed() {
		t.Error("client should be closed")
	}
	if !mock.IdleClosed {
		t.Error("Close() should release idle connections")
	}
}

func TestEndpointFor(t *testing.T) {
	client, err := NewClient("key", WithHTTPClient(NewMockHttpClient(nil, 200)))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	tests := []struct {
		model string
		want  string
	}{
		{models.Model15ProLatest, models.EndpointBase + "/v1beta/models/gemini-1.5-pro-latest:generateContent"},
		{"models/gemini-2.5-flash", models.EndpointBase + "/v1beta/models/gemini-2.5-flash:generateContent"},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			got := client.endpointFor(tt.model)
			if got != tt.want {
				t.Errorf("endpointFor(%q) = %q, want %q", tt.model, got, tt.want)
			}
			if strings.Contains(got, "key") {
				t.Error("endpoint must not carry the API key")
			}
		})
	}
}

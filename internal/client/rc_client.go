package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mahi-cyberaware/vehicleinfo/internal/config"
	"github.com/mahi-cyberaware/vehicleinfo/internal/model"
)

const lookupPath = "/"

// StatusError is a non-200 answer from the RC provider.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}

// RCClient looks up registration records from the RapidAPI
// vehicle-rc-information provider.
type RCClient struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
}

func New(baseURL, apiKey, apiHost string, timeout time.Duration) *RCClient {
	return &RCClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		apiHost: apiHost,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func NewFromConfig(cfg *config.Config) *RCClient {
	return New("https://"+cfg.API.Host, cfg.API.Key, cfg.API.Host, cfg.API.Timeout)
}

// Lookup posts the registration number to the provider and returns the
// decoded payload. The shape is not validated here; callers run the result
// through record.Normalize. A non-200 answer comes back as *StatusError with
// the raw body attached. One request per call, no retries.
func (c *RCClient) Lookup(ctx context.Context, plateNo string) (any, error) {
	payload, err := json.Marshal(map[string]string{"vehicle_number": plateNo})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+lookupPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	decoded, err := model.DecodeJSON(body)
	if err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return decoded, nil
}

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrRelayUnavailable = errors.New("form relay unavailable or returned an error")

// RelayResponse is the relay's JSON answer: a success flag plus an optional
// human-readable message.
type RelayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FormRelayClient posts form-encoded submissions (contact, newsletter,
// catering, franchise, job applications) to the single relay endpoint.
// Fire-and-forget: no retries, the user resubmits on failure.
type FormRelayClient struct {
	endpoint   string
	accessKey  string
	httpClient *http.Client
}

func NewFormRelayClient(endpoint, accessKey string) *FormRelayClient {
	return &FormRelayClient{
		endpoint:  endpoint,
		accessKey: accessKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Submit relays the given fields, adding the access key. The relay's own
// success flag is returned as-is; callers decide how to surface a false one.
func (c *FormRelayClient) Submit(ctx context.Context, fields map[string]string) (*RelayResponse, error) {
	form := url.Values{}
	form.Set("access_key", c.accessKey)
	for k, v := range fields {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request to form relay: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("FormRelayClient: Error calling %s: %v", c.endpoint, err)
		return nil, fmt.Errorf("%w: %v", ErrRelayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("FormRelayClient: Received non-OK status %d from %s", resp.StatusCode, c.endpoint)
		return nil, fmt.Errorf("%w: status code %d", ErrRelayUnavailable, resp.StatusCode)
	}

	var relayResp RelayResponse
	if err := json.NewDecoder(resp.Body).Decode(&relayResp); err != nil {
		return nil, fmt.Errorf("failed to decode form relay response: %w", err)
	}

	log.Printf("FormRelayClient: Submission relayed, success=%t", relayResp.Success)
	return &relayResp, nil
}

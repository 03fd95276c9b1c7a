package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amcdesk/onboard/internal/client/imports"
	"github.com/amcdesk/onboard/internal/client/models"
)

const onboardingPath = "/portal/onboarding"

// HTTPClient implements Client over the portal's JSON API.
type HTTPClient struct {
	baseURL string
	token   string
	hc      *http.Client
}

// NewHTTPClient builds a client for the given base URL and bearer
// token. A zero timeout falls back to 15 seconds.
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext:     dialer.DialContext,
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		},
	}
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return resp, nil
}

func (c *HTTPClient) GetOnboarding(ctx context.Context) (*models.OnboardingRecord, error) {
	resp, err := c.do(ctx, http.MethodGet, onboardingPath, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var rec models.OnboardingRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decoding onboarding record: %w", err)
	}
	return &rec, nil
}

func (c *HTTPClient) SaveOnboarding(ctx context.Context, currentStep int, steps map[string]models.StepData) error {
	body := make(map[string]any, len(steps)+1)
	body["current_step"] = currentStep
	for key, data := range steps {
		body[key] = data
	}

	resp, err := c.do(ctx, http.MethodPut, onboardingPath, nil, body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) Submit(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, onboardingPath+"/submit", nil, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) UploadDevices(ctx context.Context, rows []imports.RawRow) (int, []models.DeviceEntry, error) {
	resp, err := c.do(ctx, http.MethodPost, onboardingPath+"/upload-devices", nil, map[string]any{"devices": rows})
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var out struct {
		Count   int                  `json:"count"`
		Devices []models.DeviceEntry `json:"devices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, nil, fmt.Errorf("decoding upload response: %w", err)
	}
	return out.Count, out.Devices, nil
}

func (c *HTTPClient) DownloadTemplate(ctx context.Context, categories []string) ([]byte, error) {
	var query url.Values
	if len(categories) > 0 {
		query = url.Values{"categories": {strings.Join(categories, ",")}}
	}

	resp, err := c.do(ctx, http.MethodGet, onboardingPath+"/device-template", query, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading template body: %w", err)
	}
	return data, nil
}

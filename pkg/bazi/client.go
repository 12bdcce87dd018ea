package bazi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bazireport/internal/model"
)

// ServiceError is returned for any failure talking to the chart
// server: transport errors, non-2xx statuses, or a success:false
// payload. Status is zero when no HTTP status was received.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("chart server error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("chart server error: %s", e.Message)
}

// Client calls the external BaZi chart server. Fetch makes exactly
// one attempt per call; retries are deliberately left to the
// narrative layer, chart calculation is expected to be fast.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	healthClient *http.Client
	offsets      *OffsetResolver
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		healthClient: &http.Client{Timeout: 5 * time.Second},
		offsets:      NewOffsetResolver(),
	}
}

type chartRequest struct {
	SolarDatetime string `json:"solarDatetime"`
	Gender        int    `json:"gender"`
}

type chartResponse struct {
	Success bool              `json:"success"`
	Data    model.ChartRecord `json:"data"`
	Error   string            `json:"error"`
}

// Fetch combines the birth date, time and the location's UTC offset
// into a single ISO-8601 timestamp and asks the chart server for the
// corresponding chart record.
func (c *Client) Fetch(ctx context.Context, birthDate, birthTime, location, gender string) (model.ChartRecord, error) {
	solarDatetime := fmt.Sprintf("%sT%s:00%s", birthDate, birthTime, c.offsets.Resolve(location))

	genderFlag := 0
	if gender == "male" {
		genderFlag = 1
	}

	body, err := json.Marshal(chartRequest{
		SolarDatetime: solarDatetime,
		Gender:        genderFlag,
	})
	if err != nil {
		return nil, &ServiceError{Message: fmt.Sprintf("encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bazi", bytes.NewReader(body))
	if err != nil {
		return nil, &ServiceError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ServiceError{Message: fmt.Sprintf("connection error: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServiceError{Status: resp.StatusCode, Message: "non-success status"}
	}

	var raw chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ServiceError{Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}

	if !raw.Success {
		msg := raw.Error
		if msg == "" {
			msg = "unknown error"
		}
		return nil, &ServiceError{Status: resp.StatusCode, Message: msg}
	}

	if raw.Data == nil {
		return nil, &ServiceError{Status: resp.StatusCode, Message: "empty chart payload"}
	}

	return raw.Data, nil
}

// HealthCheck probes the chart server's liveness endpoint. Used for
// startup diagnostics and the health endpoint only; it never gates
// report generation.
func (c *Client) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.healthClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// Package api talks to the finsight backend: the user-profile store and the
// predictor/report service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/finsight-dev/finsight/internal/model"
)

// Client is an HTTP implementation of ProfileStore and ReportStore. The
// bearer token is opaque; issuing and refreshing it is the caller's problem.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *logrus.Logger
}

var (
	_ ProfileStore = (*Client)(nil)
	_ ReportStore  = (*Client)(nil)
)

// NewClient creates a Client for a backend base URL.
func NewClient(baseURL, token string, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// CurrentProfile fetches the authenticated user's raw profile.
func (c *Client) CurrentProfile(ctx context.Context) (model.RawProfile, error) {
	var raw model.RawProfile
	err := c.do(ctx, http.MethodGet, "/user/currentuser", nil, &raw)
	return raw, err
}

// UpdateProfile sends an edited subset of profile fields.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]any) error {
	return c.do(ctx, http.MethodPut, "/user/update-profile", fields, nil)
}

// GenerateReport asks the predictor for a fresh diagnostic report. This is
// the one latency-bearing call in the app; the predictor may take a while.
func (c *Client) GenerateReport(ctx context.Context) (model.Report, error) {
	var r model.Report
	err := c.do(ctx, http.MethodGet, "/predict/generatereport", nil, &r)
	return r, err
}

// SaveReport persists a report and returns its new ID.
func (c *Client) SaveReport(ctx context.Context, r model.Report) (string, error) {
	payload := map[string]any{
		"primary_issue":  r.PrimaryIssue,
		"recommendation": r.Recommendation,
		"accuracy":       r.Accuracy,
		"all_metrics":    r.Metrics,
	}
	var resp struct {
		Status     string `json:"status"`
		InsertedID string `json:"inserted_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/predict/savereport", payload, &resp); err != nil {
		return "", err
	}
	return resp.InsertedID, nil
}

// ListReports returns saved report summaries, newest first.
func (c *Client) ListReports(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	err := c.do(ctx, http.MethodGet, "/predict/getallreports", nil, &reports)
	return reports, err
}

// Report fetches one saved report by ID.
func (c *Client) Report(ctx context.Context, id string) (model.Report, error) {
	var r model.Report
	err := c.do(ctx, http.MethodGet, "/predict/getreportbyid/"+id, nil, &r)
	return r, err
}

// DeleteReport removes one saved report by ID.
func (c *Client) DeleteReport(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/predict/deletereportbyid/"+id, nil, nil)
}

// do issues one request with the bearer token attached and decodes a JSON
// response into out (when non-nil). No retries: transient-failure handling
// is out of scope for the client.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("backend request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: backend returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

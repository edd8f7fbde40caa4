// Package printspool implements the document spooler port against the print
// spooler HTTP service.
package printspool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"mfgorder/internal/core/ports"
)

const requestTimeout = 30 * time.Second

// Client submits order document print jobs to the spooler service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// printJobRequest is the spooler's job submission payload.
type printJobRequest struct {
	Company     int     `json:"company"`
	Facility    string  `json:"facility"`
	ProductCode string  `json:"productCode"`
	OrderNumber string  `json:"orderNumber"`
	Quantity    float64 `json:"quantity"`
	RequestedBy string  `json:"requestedBy"`
}

// NewClient creates a print spooler client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger.With("component", "printspool_client"),
	}
}

// SpoolOrderDocuments implements ports.DocumentSpooler. The spooler accepts a
// job with 202; anything else is a failure and the order stays unprinted.
func (c *Client) SpoolOrderDocuments(ctx context.Context, job ports.PrintJob) error {
	payload := printJobRequest{
		Company:     job.Company,
		Facility:    job.Facility,
		ProductCode: job.ProductCode,
		OrderNumber: job.OrderNumber,
		Quantity:    job.Quantity,
		RequestedBy: job.RequestedBy,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal print job: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/print-jobs", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit print job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("print spooler returned status %d", resp.StatusCode)
	}

	c.logger.DebugContext(ctx, "Print job accepted",
		"orderNumber", job.OrderNumber, "facility", job.Facility)

	return nil
}

// Package warehouseapi implements the facility resolver port against the
// warehouse-master HTTP service.
package warehouseapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"mfgorder/internal/core/ports"

	"github.com/sony/gobreaker"
)

const requestTimeout = 30 * time.Second

// Client resolves warehouse codes to facilities through the warehouse-master
// service. Calls run through a circuit breaker so a struggling upstream is not
// hammered; every failure kind the caller can see is a resolution error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// warehouseResponse is the success payload of the warehouse lookup.
type warehouseResponse struct {
	Warehouse string `json:"warehouse"`
	Facility  string `json:"facility"`
	Name      string `json:"name"`
}

// errorResponse is the upstream error payload. Its message is surfaced to the
// caller verbatim.
type errorResponse struct {
	Message string `json:"message"`
}

// lookupResult separates upstream business outcomes from transport failures:
// only the latter count against the circuit breaker.
type lookupResult struct {
	facility      string
	resolutionErr *ports.FacilityResolutionError
}

// NewClient creates a warehouse-master client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	componentLogger := logger.With("component", "warehouseapi_client")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "warehouse-master",
		OnStateChange: func(name string, from, to gobreaker.State) {
			componentLogger.Warn("Circuit breaker state changed",
				"name", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		breaker:    breaker,
		logger:     componentLogger,
	}
}

// ResolveFacility implements ports.FacilityResolver. An unknown warehouse, an
// upstream error, a blank facility in a 200 response and an open breaker all
// surface as a *ports.FacilityResolutionError; upstream messages are passed
// through unchanged.
func (c *Client) ResolveFacility(ctx context.Context, warehouse string) (string, error) {
	raw, err := c.breaker.Execute(func() (interface{}, error) {
		return c.lookup(ctx, warehouse)
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "Warehouse lookup failed", "warehouse", warehouse, "error", err)
		return "", ports.NewFacilityResolutionError(
			warehouse,
			fmt.Sprintf("warehouse lookup unavailable: %s", err),
		)
	}

	result := raw.(lookupResult)
	if result.resolutionErr != nil {
		return "", result.resolutionErr
	}

	return result.facility, nil
}

func (c *Client) lookup(ctx context.Context, warehouse string) (lookupResult, error) {
	url := fmt.Sprintf("%s/api/v1/warehouses/%s", c.baseURL, warehouse)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return lookupResult{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return lookupResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return lookupResult{}, err
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return lookupResult{}, fmt.Errorf("warehouse service returned status %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		message := fmt.Sprintf("warehouse service returned status %d", resp.StatusCode)
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Message != "" {
			message = errResp.Message
		}

		return lookupResult{resolutionErr: ports.NewFacilityResolutionError(warehouse, message)}, nil
	}

	var payload warehouseResponse
	if err = json.Unmarshal(body, &payload); err != nil {
		return lookupResult{}, fmt.Errorf("failed to decode warehouse response: %w", err)
	}

	if payload.Facility == "" {
		return lookupResult{resolutionErr: ports.NewFacilityResolutionError(
			warehouse,
			fmt.Sprintf("no facility found for warehouse %s", warehouse),
		)}, nil
	}

	return lookupResult{facility: payload.Facility}, nil
}

package fleetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"fleethq/models"
)

// Client is the HTTP implementation of FleetAPI.
type Client struct {
	BaseURL   string
	Token     string
	CompanyID string
	HTTP      *http.Client
	Logger    *zap.Logger
}

// NewClient builds a REST client for the fleet-management backend.
func NewClient(baseURL, token, companyID string, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:   baseURL,
		Token:     token,
		CompanyID: companyID,
		HTTP:      &http.Client{Timeout: 10 * time.Second},
		Logger:    logger,
	}
}

// Ping verifies the backend is reachable.
func (c *Client) Ping(ctx context.Context) error {
	var page apiPaginatedVehicles
	params := url.Values{}
	params.Set("page", "1")
	return c.getJSON(ctx, "/api/fleets/list/", params, &page)
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("fleet API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("fleet API returned %d for %s: %s", resp.StatusCode, req.URL.Path, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode fleet API response: %w", err)
	}
	return nil
}

// ListFleets fetches one page of the company's vehicle catalog.
func (c *Client) ListFleets(ctx context.Context, params ListFleetsParams) (*models.VehiclePage, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Name != "" {
		q.Set("name", params.Name)
	}
	if c.CompanyID != "" {
		q.Set("company", c.CompanyID)
	}

	var page apiPaginatedVehicles
	if err := c.getJSON(ctx, "/api/fleets/list/", q, &page); err != nil {
		return nil, err
	}

	out := &models.VehiclePage{Count: page.Count}
	if page.Next != nil {
		out.Next = *page.Next
	}
	if page.Previous != nil {
		out.Previous = *page.Previous
	}
	out.Results = make([]models.Vehicle, 0, len(page.Results))
	for _, v := range page.Results {
		out.Results = append(out.Results, transformVehicle(v))
	}
	return out, nil
}

// GetFleetByID fetches a single vehicle with its booking price and rules.
func (c *Client) GetFleetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	var v apiVehicle
	if err := c.getJSON(ctx, "/api/fleets/list/"+url.PathEscape(id)+"/", nil, &v); err != nil {
		return nil, err
	}
	vehicle := transformVehicle(v)
	return &vehicle, nil
}

// GetInsuranceOptions fetches the bookable coverage options, always prepending
// the "own insurance" choice. On failure it degrades to that choice alone so
// the booking flow is never blocked.
func (c *Client) GetInsuranceOptions(ctx context.Context) ([]models.InsuranceOption, error) {
	ownInsurance := models.InsuranceOption{
		ID:       models.OwnInsuranceID,
		Title:    "I have my own insurance",
		Price:    0,
		Features: []string{"Use your personal coverage"},
	}

	var raw []apiInsuranceOption
	if err := c.getJSON(ctx, "/api/bookings/insurance_options/", nil, &raw); err != nil {
		c.Logger.Error("Failed to fetch insurance options", zap.Error(err))
		return []models.InsuranceOption{ownInsurance}, nil
	}

	options := []models.InsuranceOption{ownInsurance}
	for _, o := range raw {
		options = append(options, transformInsuranceOption(o))
	}
	return options, nil
}

// GetFleetExtras fetches the optional add-ons configured for a vehicle. When
// the call fails or the vehicle has none configured, the packaged default
// extras are served so the booking form always has add-ons to offer.
func (c *Client) GetFleetExtras(ctx context.Context, fleetID string) ([]models.Extra, error) {
	var raw []apiExtra
	if err := c.getJSON(ctx, "/api/fleets/"+url.PathEscape(fleetID)+"/extras/", nil, &raw); err != nil {
		c.Logger.Error("Failed to fetch fleet extras, serving defaults", zap.String("fleetID", fleetID), zap.Error(err))
		return demoExtras, nil
	}
	if len(raw) == 0 {
		return demoExtras, nil
	}
	extras := make([]models.Extra, 0, len(raw))
	for _, e := range raw {
		extras = append(extras, transformExtra(e))
	}
	return extras, nil
}

// GetCompanySettings fetches the company's display details, falling back to
// the fixed defaults when no company is configured or the call fails.
func (c *Client) GetCompanySettings(ctx context.Context) (models.CompanySettings, error) {
	defaults := models.DefaultCompanySettings()
	if c.CompanyID == "" {
		return defaults, nil
	}

	var raw apiCompany
	if err := c.getJSON(ctx, "/api/companies/"+url.PathEscape(c.CompanyID)+"/", nil, &raw); err != nil {
		return defaults, nil
	}

	settings := defaults
	if raw.Name != "" {
		settings.Name = raw.Name
	}
	if raw.Country != "" {
		settings.Address = raw.Country
	}
	if raw.Email != "" {
		settings.Email = raw.Email
	}
	if raw.PhoneNo != "" {
		settings.Phone = raw.PhoneNo
	}
	if raw.CompanyPicture != nil {
		settings.Logo = *raw.CompanyPicture
	}
	return settings, nil
}

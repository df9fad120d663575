package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"rdc-blueprint/internal/storage"
)

// Client talks to the analytics backend that owns uploads and route simulations.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// request sends the call and decodes a 2xx JSON body into response when it is not nil.
func (c *Client) request(ctx context.Context, method, endpoint string, query url.Values, body io.Reader, contentType string, response interface{}) error {
	u := c.BaseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &StatusError{Code: res.StatusCode, Status: res.Status, Body: string(resBody)}
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}

	return nil
}

// StatusError is returned for any non-2xx answer from the backend.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return "unexpected status code: " + e.Status
}

type cityDemandDTO struct {
	City        string  `json:"city"`
	Demand      float64 `json:"demand"`
	TotalOrders int     `json:"total_orders"`
}

type uploadedDataResponse struct {
	Status string `json:"status"`
	Data   *struct {
		CitySummary []cityDemandDTO `json:"city_summary"`
		TotalOrders int             `json:"total_orders"`
		TotalCities int             `json:"total_cities"`
	} `json:"data"`
	Message string `json:"message"`
}

// UploadedData returns the per-city demand of the last upload, or nil when
// nothing has been uploaded.
func (c *Client) UploadedData(ctx context.Context) (*storage.UploadedData, error) {
	const op = "client.UploadedData"

	var resp uploadedDataResponse
	if err := c.request(ctx, http.MethodGet, "/api/data", nil, nil, "", &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if resp.Data == nil || len(resp.Data.CitySummary) == 0 {
		return nil, nil
	}

	cities := make([]storage.CityDemand, 0, len(resp.Data.CitySummary))
	for _, city := range resp.Data.CitySummary {
		cities = append(cities, storage.CityDemand{
			City:        city.City,
			Demand:      int(math.Round(city.Demand)),
			TotalOrders: city.TotalOrders,
		})
	}

	return &storage.UploadedData{
		CitySummary: cities,
		TotalOrders: resp.Data.TotalOrders,
		TotalCities: resp.Data.TotalCities,
	}, nil
}

type SimulateRequest struct {
	FileName         string
	File             io.Reader
	BreakEvenVolume  string
	TargetTime       string
	DemandMultiplier string
}

// Simulate uploads an order workbook together with the simulation parameters.
// The backend answer is returned as is.
func (c *Client) Simulate(ctx context.Context, in SimulateRequest) (json.RawMessage, error) {
	const op = "client.Simulate"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", in.FileName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := io.Copy(part, in.File); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fields := []struct{ name, value string }{
		{"breakEvenVolume", in.BreakEvenVolume},
		{"targetTime", in.TargetTime},
		{"demandMultiplier", in.DemandMultiplier},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var resp json.RawMessage
	if err := c.request(ctx, http.MethodPost, "/api/simulate", nil, &buf, mw.FormDataContentType(), &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp, nil
}

func (c *Client) Summary(ctx context.Context) (json.RawMessage, error) {
	const op = "client.Summary"

	var resp json.RawMessage
	if err := c.request(ctx, http.MethodGet, "/api/summary", nil, nil, "", &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp, nil
}

type GroupedSummary struct {
	City                  string  `json:"city"`
	OrderType             string  `json:"order_type"`
	TotalOrders           int     `json:"total_orders"`
	AvgVolume             float64 `json:"avg_volume"`
	AvgMWCost             float64 `json:"avg_mw_cost"`
	AvgRDCCost            float64 `json:"avg_rdc_cost"`
	AvgSavingsPercent     float64 `json:"avg_savings_percent"`
	RecommendationPercent float64 `json:"recommendation_percent"`
	RecommendedCount      int     `json:"recommended_count"`
	SummaryVerdict        string  `json:"summary_verdict"`
}

func (c *Client) GroupedSummary(ctx context.Context) ([]GroupedSummary, error) {
	const op = "client.GroupedSummary"

	var resp []GroupedSummary
	if err := c.request(ctx, http.MethodGet, "/api/grouped-summary", nil, nil, "", &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if resp == nil {
		resp = []GroupedSummary{}
	}
	return resp, nil
}

func (c *Client) OrderDetails(ctx context.Context, city, orderType string) (json.RawMessage, error) {
	const op = "client.OrderDetails"

	q := url.Values{}
	q.Set("city", city)
	q.Set("order_type", orderType)

	var resp json.RawMessage
	if err := c.request(ctx, http.MethodGet, "/api/order-details", q, nil, "", &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp, nil
}

// InsightsFilter narrows the analytics dashboard. Empty lists and nil
// thresholds are left out of the query.
type InsightsFilter struct {
	Cities           []string
	OrderTypes       []string
	MinVolume        *float64
	SavingsThreshold *float64
}

func (f InsightsFilter) query() url.Values {
	q := url.Values{}
	if len(f.Cities) > 0 {
		q.Set("city", strings.Join(f.Cities, ","))
	}
	if len(f.OrderTypes) > 0 {
		q.Set("orderType", strings.Join(f.OrderTypes, ","))
	}
	if f.MinVolume != nil {
		q.Set("minVolume", strconv.FormatFloat(*f.MinVolume, 'f', -1, 64))
	}
	if f.SavingsThreshold != nil {
		q.Set("savingsThreshold", strconv.FormatFloat(*f.SavingsThreshold, 'f', -1, 64))
	}
	return q
}

func (c *Client) InsightsData(ctx context.Context, f InsightsFilter) (json.RawMessage, error) {
	const op = "client.InsightsData"

	var resp json.RawMessage
	if err := c.request(ctx, http.MethodGet, "/api/insights-data", f.query(), nil, "", &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp, nil
}

type Overview struct {
	Summary        json.RawMessage  `json:"summary"`
	GroupedSummary []GroupedSummary `json:"groupedSummary"`
}

// Overview fetches the summary and the grouped summary concurrently.
func (c *Client) Overview(ctx context.Context) (Overview, error) {
	const op = "client.Overview"

	var res Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := c.Summary(gctx)
		if err != nil {
			return err
		}
		res.Summary = summary
		return nil
	})

	g.Go(func() error {
		grouped, err := c.GroupedSummary(gctx)
		if err != nil {
			return err
		}
		res.GroupedSummary = grouped
		return nil
	})

	if err := g.Wait(); err != nil {
		return Overview{}, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gradmatch/internal/config"
)

// ErrorKind classifies fetch failures. All failures are returned as
// values; callers must check the error before using the page.
type ErrorKind string

const (
	ErrorKindConfig  ErrorKind = "config"
	ErrorKindHTTP    ErrorKind = "http"
	ErrorKindNetwork ErrorKind = "network"
)

type FetchError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Detail     string
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == ErrorKindHTTP {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

type RawCompany struct {
	DisplayName string `json:"display_name"`
}

type RawLocation struct {
	DisplayName string `json:"display_name"`
}

type RawCategory struct {
	Label string `json:"label"`
}

// RawJob mirrors one entry of the Adzuna search response.
type RawJob struct {
	ID           json.Number `json:"id"`
	Title        string      `json:"title"`
	Company      RawCompany  `json:"company"`
	Location     RawLocation `json:"location"`
	Description  string      `json:"description"`
	Created      string      `json:"created"`
	RedirectURL  string      `json:"redirect_url"`
	SalaryMin    float64     `json:"salary_min"`
	SalaryMax    float64     `json:"salary_max"`
	ContractTime string      `json:"contract_time"`
	ContractType string      `json:"contract_type"`
	Category     RawCategory `json:"category"`
}

type Page struct {
	Results []RawJob `json:"results"`
	Count   int      `json:"count"`
}

type Client interface {
	FetchPage(ctx context.Context, query, location string, perPage, page int) (Page, *FetchError)
}

type httpClient struct {
	cfg    config.AdzunaConfig
	client *http.Client
	logger *log.Logger
}

func NewClient(cfg config.AdzunaConfig, logger *log.Logger) Client {
	return &httpClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 20 * time.Second},
		logger: logger,
	}
}

func (c *httpClient) FetchPage(ctx context.Context, query, location string, perPage, page int) (Page, *FetchError) {
	if strings.TrimSpace(c.cfg.AppID) == "" || strings.TrimSpace(c.cfg.AppKey) == "" {
		return Page{}, &FetchError{
			Kind:    ErrorKindConfig,
			Message: "Adzuna credentials are not configured",
			Detail:  "set ADZUNA_APP_ID and ADZUNA_APP_KEY",
		}
	}

	if perPage <= 0 {
		perPage = 20
	}
	if page <= 0 {
		page = 1
	}

	endpoint := fmt.Sprintf("%s/jobs/%s/search/%d",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Country, page)

	params := url.Values{}
	params.Set("app_id", c.cfg.AppID)
	params.Set("app_key", c.cfg.AppKey)
	params.Set("what", strings.TrimSpace(query))
	params.Set("where", strings.TrimSpace(location))
	params.Set("results_per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Page{}, &FetchError{Kind: ErrorKindNetwork, Message: "failed to build Adzuna request", Detail: err.Error()}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[Adzuna] network error query=%q location=%q err=%v", query, location, err)
		}
		return Page{}, &FetchError{
			Kind:    ErrorKindNetwork,
			Message: "network error occurred while fetching jobs from Adzuna",
			Detail:  err.Error(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if c.logger != nil {
			c.logger.Printf("[Adzuna] HTTP error status=%d query=%q body=%q", resp.StatusCode, query, strings.TrimSpace(string(body)))
		}
		return Page{}, &FetchError{
			Kind:       ErrorKindHTTP,
			Message:    "HTTP error occurred while fetching jobs from Adzuna",
			StatusCode: resp.StatusCode,
			Detail:     strings.TrimSpace(string(body)),
		}
	}

	var out Page
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Page{}, &FetchError{
			Kind:    ErrorKindNetwork,
			Message: "failed to decode Adzuna response",
			Detail:  err.Error(),
		}
	}
	return out, nil
}

var _ Client = (*httpClient)(nil)

package adzuna

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gradmatch/internal/config"
)

func testConfig(baseURL string) config.AdzunaConfig {
	return config.AdzunaConfig{
		AppID:   "test-id",
		AppKey:  "test-key",
		Country: "gb",
		BaseURL: baseURL,
	}
}

func TestFetchPage_MissingCredentials(t *testing.T) {
	c := NewClient(config.AdzunaConfig{Country: "gb", BaseURL: "http://localhost"}, nil)

	_, ferr := c.FetchPage(context.Background(), "graduate", "London", 20, 1)
	if ferr == nil {
		t.Fatalf("expected config error")
	}
	if ferr.Kind != ErrorKindConfig {
		t.Fatalf("expected config error kind, got %s", ferr.Kind)
	}
}

func TestFetchPage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("app_id") != "test-id" || q.Get("app_key") != "test-key" {
			t.Errorf("missing credentials in query: %s", r.URL.RawQuery)
		}
		if q.Get("what") != "graduate" || q.Get("where") != "London" {
			t.Errorf("unexpected search params: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 1,
			"results": [{
				"id": 123456,
				"title": "Graduate Software Engineer",
				"company": {"display_name": "Acme"},
				"location": {"display_name": "London"},
				"description": "desc",
				"created": "2025-06-01T00:00:00Z",
				"redirect_url": "https://example.com/job/123456",
				"contract_time": "full_time"
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)
	page, ferr := c.FetchPage(context.Background(), "graduate", "London", 20, 1)
	if ferr != nil {
		t.Fatalf("unexpected error: %v", ferr)
	}
	if page.Count != 1 || len(page.Results) != 1 {
		t.Fatalf("unexpected page: count=%d results=%d", page.Count, len(page.Results))
	}
	if page.Results[0].ID.String() != "123456" {
		t.Fatalf("unexpected id: %s", page.Results[0].ID.String())
	}
	if page.Results[0].Company.DisplayName != "Acme" {
		t.Fatalf("unexpected company: %s", page.Results[0].Company.DisplayName)
	}
}

func TestFetchPage_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)
	_, ferr := c.FetchPage(context.Background(), "graduate", "London", 20, 1)
	if ferr == nil {
		t.Fatalf("expected HTTP error")
	}
	if ferr.Kind != ErrorKindHTTP {
		t.Fatalf("expected http error kind, got %s", ferr.Kind)
	}
	if ferr.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", ferr.StatusCode)
	}
}

func TestFetchPage_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed server forces a transport failure

	c := NewClient(testConfig(srv.URL), nil)
	_, ferr := c.FetchPage(context.Background(), "graduate", "London", 20, 1)
	if ferr == nil {
		t.Fatalf("expected network error")
	}
	if ferr.Kind != ErrorKindNetwork {
		t.Fatalf("expected network error kind, got %s", ferr.Kind)
	}
}

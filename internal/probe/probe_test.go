package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobtrack-engine/internal/domain"
)

const careersHTML = `<html><head>
<title>
  Careers   at Acme
</title>
<meta name="description" content="  We are hiring engineers. ">
</head><body><h1>Jobs</h1></body></html>`

func newProber() *Prober {
	return New(100, 100, 2*time.Second)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "jobtrack-engine/1.0" {
			t.Errorf("user agent = %q", got)
		}
		_, _ = w.Write([]byte(careersHTML))
	}))
	defer srv.Close()

	info, err := newProber().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if info.Title != "Careers at Acme" {
		t.Errorf("title = %q", info.Title)
	}
	if info.Description != "We are hiring engineers." {
		t.Errorf("description = %q", info.Description)
	}
	if info.URL != srv.URL || info.FetchedAt.IsZero() {
		t.Errorf("info = %+v", info)
	}
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := newProber().Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestFetchEmptyURL(t *testing.T) {
	if _, err := newProber().Fetch(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty URL")
	}
}

func TestProbeURLPrefersCareersPage(t *testing.T) {
	c := domain.Company{Website: "https://acme.example", CareersPage: "https://acme.example/careers"}
	if got := ProbeURL(c); got != "https://acme.example/careers" {
		t.Errorf("got %q", got)
	}
	c.CareersPage = "  "
	if got := ProbeURL(c); got != "https://acme.example" {
		t.Errorf("got %q", got)
	}
}

func TestProbeAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(careersHTML))
	}))
	defer srv.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	companies := []domain.Company{
		{ID: "1", CompanyName: "Acme", Website: srv.URL},
		{ID: "2", CompanyName: "Globex", Website: down.URL},
		{ID: "3", CompanyName: "NoSite"},
	}

	results := newProber().ProbeAll(context.Background(), companies)
	if len(results) != 2 {
		t.Fatalf("len = %d, want 2 (companies without a URL are skipped)", len(results))
	}

	byID := map[string]Result{}
	for _, r := range results {
		byID[r.CompanyID] = r
	}
	if r := byID["1"]; r.Page == nil || r.Page.Title != "Careers at Acme" || r.Error != "" {
		t.Errorf("acme result = %+v", r)
	}
	if r := byID["2"]; r.Page != nil || r.Error == "" {
		t.Errorf("globex result = %+v", r)
	}
}

// Package probe fetches a company's careers page (or website) and pulls
// out the page title and meta description. Best-effort enrichment: a dead
// page marks the result and moves on.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"jobtrack-engine/internal/domain"
)

type PageInfo struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

type Result struct {
	CompanyID   string    `json:"companyId"`
	CompanyName string    `json:"companyName"`
	Page        *PageInfo `json:"page,omitempty"`
	Error       string    `json:"error,omitempty"`
}

type Prober struct {
	Client  *http.Client
	Timeout time.Duration
	limiter *hostLimiter
}

func New(reqPerSec float64, burst int, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Prober{
		Client:  &http.Client{},
		Timeout: timeout,
		limiter: newHostLimiter(reqPerSec, burst),
	}
}

// ProbeURL picks the page to probe for a company: careers page if one is
// on record, else the website.
func ProbeURL(c domain.Company) string {
	if strings.TrimSpace(c.CareersPage) != "" {
		return c.CareersPage
	}
	return strings.TrimSpace(c.Website)
}

func (p *Prober) Fetch(ctx context.Context, rawURL string) (PageInfo, error) {
	if strings.TrimSpace(rawURL) == "" {
		return PageInfo{}, errors.New("no URL to probe")
	}
	if err := p.limiter.waitURL(ctx, rawURL); err != nil {
		return PageInfo{}, err
	}

	fctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return PageInfo{}, err
	}
	req.Header.Set("User-Agent", "jobtrack-engine/1.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return PageInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return PageInfo{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return PageInfo{}, err
	}

	info := PageInfo{
		URL:       rawURL,
		Title:     cleanText(doc.Find("title").First().Text()),
		FetchedAt: time.Now().UTC(),
	}
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		info.Description = cleanText(desc)
	}
	return info, nil
}

// ProbeAll fans out over the companies that have something to probe.
// Failures never cancel siblings; they come back inside their Result.
func (p *Prober) ProbeAll(ctx context.Context, companies []domain.Company) []Result {
	results := make([]Result, 0, len(companies))
	ch := make(chan Result, len(companies))

	var g errgroup.Group
	for _, c := range companies {
		target := ProbeURL(c)
		if target == "" {
			continue
		}
		c := c
		g.Go(func() error {
			info, err := p.Fetch(ctx, target)
			res := Result{CompanyID: c.ID, CompanyName: c.CompanyName}
			if err != nil {
				log.Printf("[probe] company=%q url=%s error: %v", c.CompanyName, target, err)
				res.Error = err.Error()
			} else {
				res.Page = &info
			}
			ch <- res
			return nil
		})
	}
	_ = g.Wait()
	close(ch)

	for res := range ch {
		results = append(results, res)
	}
	return results
}

func cleanText(s string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

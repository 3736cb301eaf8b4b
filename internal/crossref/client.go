// Package crossref resolves DOIs to tag records via the Crossref
// works API.
package crossref

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/selwood/qcref/internal/ris"
)

const (
	// BaseURL is the Crossref REST API base URL.
	BaseURL = "https://api.crossref.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps us well inside Crossref's polite-pool limits.
	RateLimit = 2.0
)

// ErrNotFound is returned when Crossref has no work for the DOI.
var ErrNotFound = errors.New("DOI not found")

// Client is a rate-limited HTTP client for the Crossref API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithMailto sets the courtesy contact sent with each request, which
// routes traffic through Crossref's polite pool.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new Crossref API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Work is the subset of a Crossref work record that maps onto RIS
// tags.
type Work struct {
	DOI            string   `json:"DOI"`
	Type           string   `json:"type"`
	Title          []string `json:"title"`
	ContainerTitle []string `json:"container-title"`
	Volume         string   `json:"volume"`
	Issue          string   `json:"issue"`
	URL            string   `json:"URL"`
	Author         []struct {
		Given  string `json:"given"`
		Family string `json:"family"`
	} `json:"author"`
	Issued struct {
		DateParts [][]int `json:"date-parts"`
	} `json:"issued"`
}

type worksResponse struct {
	Message Work `json:"message"`
}

// Work fetches the Crossref work record for a DOI.
func (c *Client) Work(ctx context.Context, doi string) (*Work, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := c.baseURL + "/works/" + url.PathEscape(doi)
	if c.mailto != "" {
		reqURL += "?mailto=" + url.QueryEscape(c.mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying Crossref: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", doi, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Crossref returned status %d for %s", resp.StatusCode, doi)
	}

	var body worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding Crossref response: %w", err)
	}
	return &body.Message, nil
}

// risTypes maps Crossref work types to RIS reference types.
var risTypes = map[string]string{
	"journal-article":     "JOUR",
	"book":                "BOOK",
	"book-chapter":        "CHAP",
	"proceedings-article": "CONF",
	"dissertation":        "THES",
	"report":              "RPRT",
}

// ToRecord converts a Crossref work into a tag record with the given
// identifier. Absent metadata simply contributes no tag.
func ToRecord(w *Work, risid int) ris.Record {
	rec := ris.NewRecord(risid)

	ty := risTypes[w.Type]
	if ty == "" {
		ty = "GEN"
	}
	rec.Tags["TY"] = ty

	if len(w.Title) > 0 && w.Title[0] != "" {
		rec.Tags["TI"] = w.Title[0]
	}
	if len(w.ContainerTitle) > 0 && w.ContainerTitle[0] != "" {
		rec.Tags["JO"] = w.ContainerTitle[0]
	}
	if authors := formatAuthors(w); authors != "" {
		rec.Tags["AU"] = authors
	}
	if year := issuedYear(w); year != "" {
		rec.Tags["PY"] = year
	}
	if w.Volume != "" {
		rec.Tags["VL"] = w.Volume
	}
	if w.Issue != "" {
		rec.Tags["IS"] = w.Issue
	}
	if w.DOI != "" {
		rec.Tags["DO"] = w.DOI
	}
	if w.URL != "" {
		rec.Tags["UR"] = w.URL
	}
	return rec
}

// formatAuthors renders authors as "Family, Given" joined with "; ",
// matching how repeated AU tags collapse on import.
func formatAuthors(w *Work) string {
	var names []string
	for _, a := range w.Author {
		switch {
		case a.Family != "" && a.Given != "":
			names = append(names, a.Family+", "+a.Given)
		case a.Family != "":
			names = append(names, a.Family)
		case a.Given != "":
			names = append(names, a.Given)
		}
	}
	return strings.Join(names, "; ")
}

func issuedYear(w *Work) string {
	if len(w.Issued.DateParts) == 0 || len(w.Issued.DateParts[0]) == 0 {
		return ""
	}
	y := w.Issued.DateParts[0][0]
	if y <= 0 {
		return ""
	}
	return strconv.Itoa(y)
}

// Package domains talks to the external domain-availability collaborator.
// Availability is a hint, not a registration transaction: per-TLD lookups
// that fail yield an unknown result rather than an error.
package domains

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"startup-namer/engine/internal/lex"
)

// Result reports availability for one fully qualified domain. Available is
// nil when the lookup could not determine an answer.
type Result struct {
	Domain    string `json:"domain"`
	Available *bool  `json:"available"`
}

// Checker is the capability consumed from the availability collaborator.
type Checker interface {
	CheckAvailability(ctx context.Context, name string, tlds []string) []Result
}

// DefaultTLDs lists the TLDs checked when the caller does not specify any.
func DefaultTLDs() []string {
	return []string{"com", "io", "co", "ai", "app"}
}

// Config drives the RDAP client behaviour.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client resolves availability through RDAP lookups with basic caching. An
// HTTP 404 for a domain means no registration was found, so the name is
// likely available; 200 means it is taken.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cacheTTL   time.Duration
	cache      sync.Map // map[string]cacheEntry
}

type cacheEntry struct {
	at        time.Time
	available *bool
}

// NewClient constructs an RDAP-backed checker.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://rdap.org/domain"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		cacheTTL:   ttl,
	}
}

// CheckAvailability looks up name under each requested TLD. Lookups run
// concurrently; results keep the order of the requested TLDs and a failed
// lookup is reported as unknown, never omitted.
func (c *Client) CheckAvailability(ctx context.Context, name string, tlds []string) []Result {
	if len(tlds) == 0 {
		tlds = DefaultTLDs()
	}
	label := lex.SanitizeLabel(name)

	results := make([]Result, len(tlds))
	var wg sync.WaitGroup
	for i, tld := range tlds {
		domain := label + "." + strings.TrimPrefix(strings.ToLower(strings.TrimSpace(tld)), ".")
		results[i] = Result{Domain: domain}
		if c == nil || label == "" {
			continue
		}
		wg.Add(1)
		go func(i int, domain string) {
			defer wg.Done()
			results[i].Available = c.lookup(ctx, domain)
		}(i, domain)
	}
	wg.Wait()
	return results
}

// lookup returns nil when availability cannot be determined.
func (c *Client) lookup(ctx context.Context, domain string) *bool {
	if entry, ok := c.cache.Load(domain); ok {
		cached := entry.(cacheEntry)
		if time.Since(cached.at) < c.cacheTTL {
			return cached.available
		}
		c.cache.Delete(domain)
	}

	available, err := c.performRequest(ctx, domain)
	if err != nil {
		logrus.WithError(err).WithField("domain", domain).Debug("rdap lookup failed")
		return nil
	}

	c.cache.Store(domain, cacheEntry{at: time.Now(), available: available})
	return available
}

func (c *Client) performRequest(ctx context.Context, domain string) (*bool, error) {
	resp, err := c.doGet(ctx, domain)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		// back off briefly and retry once
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
		resp.Body.Close()
		resp, err = c.doGet(ctx, domain)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
	}

	switch resp.StatusCode {
	case http.StatusOK:
		available := false
		return &available, nil
	case http.StatusNotFound:
		available := true
		return &available, nil
	default:
		return nil, fmt.Errorf("rdap status %d", resp.StatusCode)
	}
}

func (c *Client) doGet(ctx context.Context, domain string) (*http.Response, error) {
	if c == nil {
		return nil, errors.New("rdap client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+domain, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/rdap+json")
	return c.httpClient.Do(req)
}

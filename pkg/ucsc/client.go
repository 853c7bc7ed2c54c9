package ucsc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/genomekit/genomekit/pkg/cache"
	"github.com/genomekit/genomekit/pkg/httputil"
)

// DefaultBaseURL is the public UCSC Genome Browser API endpoint.
const DefaultBaseURL = "https://api.genome.ucsc.edu"

// Sequence responses for whole chromosomes run to hundreds of megabytes,
// so the timeout is generous compared to the listing endpoints.
const httpTimeout = 5 * time.Minute

var (
	// ErrNotFound is returned when an assembly or chromosome doesn't exist
	// upstream.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection
	// errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Client provides access to the UCSC Genome Browser REST API.
// It handles response caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	ttl     time.Duration
	baseURL string
}

// Config controls client construction. The zero value is usable: no
// caching, default base URL, default timeout.
type Config struct {
	BaseURL string        // API endpoint, DefaultBaseURL if empty
	Cache   cache.Cache   // response cache backend, NullCache if nil
	TTL     time.Duration // cache TTL for listing responses, 0 = no expiry
	HTTP    *http.Client  // override transport, mostly for tests
}

// NewClient creates a UCSC API client.
func NewClient(cfg Config) *Client {
	c := &Client{
		http:    cfg.HTTP,
		cache:   cfg.Cache,
		ttl:     cfg.TTL,
		baseURL: cfg.BaseURL,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: httpTimeout}
	}
	if c.cache == nil {
		c.cache = cache.NewNullCache()
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	return c
}

// AssemblyInfo holds catalog metadata for one UCSC assembly.
type AssemblyInfo struct {
	Organism       string `json:"organism"`       // Common organism name (e.g., "Human")
	ScientificName string `json:"scientificName"` // Binomial name (e.g., "Homo sapiens")
	Description    string `json:"description"`    // Assembly description with release date
	SourceName     string `json:"sourceName"`     // Sequencing center / source label
	Active         int    `json:"active"`         // 1 while UCSC still serves the assembly
}

// Genomes returns the catalog of available assemblies keyed by assembly ID
// (e.g., "hg38"). If refresh is true the response cache is bypassed.
func (c *Client) Genomes(ctx context.Context, refresh bool) (map[string]AssemblyInfo, error) {
	var resp struct {
		UCSCGenomes map[string]AssemblyInfo `json:"ucscGenomes"`
	}
	err := c.cached(ctx, "list:ucscGenomes", refresh, &resp, func() error {
		return c.get(ctx, c.listURL("ucscGenomes", nil), &resp)
	})
	if err != nil {
		return nil, err
	}
	return resp.UCSCGenomes, nil
}

// Assembly returns catalog metadata for one assembly, or [ErrNotFound] if
// the assembly is not in the catalog.
func (c *Client) Assembly(ctx context.Context, assembly string, refresh bool) (AssemblyInfo, error) {
	genomes, err := c.Genomes(ctx, refresh)
	if err != nil {
		return AssemblyInfo{}, err
	}
	info, ok := genomes[assembly]
	if !ok {
		return AssemblyInfo{}, fmt.Errorf("%w: assembly %s", ErrNotFound, assembly)
	}
	return info, nil
}

// Chromosomes returns the chromosome name to length mapping for an
// assembly. If refresh is true the response cache is bypassed.
func (c *Client) Chromosomes(ctx context.Context, assembly string, refresh bool) (map[string]int, error) {
	var resp struct {
		Chromosomes map[string]int `json:"chromosomes"`
	}
	key := "list:chromosomes:" + assembly
	err := c.cached(ctx, key, refresh, &resp, func() error {
		return c.get(ctx, c.listURL("chromosomes", url.Values{"genome": {assembly}}), &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("chromosomes for %s: %w", assembly, err)
	}
	return resp.Chromosomes, nil
}

// Sequence fetches the nucleotide sequence of [start, end) on a chromosome.
// Sequence payloads are never response-cached; the genome store owns their
// persistence.
func (c *Client) Sequence(ctx context.Context, assembly, chrom string, start, end int) (string, error) {
	var resp struct {
		DNA string `json:"dna"`
	}
	q := url.Values{
		"genome": {assembly},
		"chrom":  {chrom},
		"start":  {fmt.Sprint(start)},
		"end":    {fmt.Sprint(end)},
	}
	u := fmt.Sprintf("%s/getData/sequence?%s", c.baseURL, q.Encode())

	err := httputil.RetryWithBackoff(ctx, func() error {
		return c.get(ctx, u, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("sequence %s:%d-%d of %s: %w", chrom, start, end, assembly, err)
	}
	return resp.DNA, nil
}

func (c *Client) listURL(endpoint string, q url.Values) string {
	u := fmt.Sprintf("%s/list/%s", c.baseURL, endpoint)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// cached retrieves a value from cache or executes fetch and caches the
// result. If refresh is true, the cache is bypassed and fetch always runs.
func (c *Client) cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	if !refresh {
		if data, ok, _ := c.cache.Get(ctx, key); ok {
			if err := json.Unmarshal(data, v); err == nil {
				return nil
			}
			// Corrupt entry: drop it and refetch.
			_ = c.cache.Delete(ctx, key)
		}
	}
	if err := httputil.RetryWithBackoff(ctx, fetch); err != nil {
		return err
	}
	if data, err := json.Marshal(v); err == nil {
		_ = c.cache.Set(ctx, key, data, c.ttl)
	}
	return nil
}

// get performs an HTTP GET and JSON-decodes the response into v.
func (c *Client) get(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return err
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound, code == http.StatusBadRequest:
		// The UCSC API reports unknown assemblies/chromosomes as 400.
		return ErrNotFound
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

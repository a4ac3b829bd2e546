package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single collaborator round trip.
const DefaultTimeout = 30 * time.Second

// ErrUnavailable marks list/search/extensions failures so callers can
// degrade to an empty-result state instead of treating them as fatal.
var ErrUnavailable = errors.New("directory: collaborator unavailable")

// Client talks to the spreadsheet-backed directory collaborator. The
// wire contract is carried as an embedded OpenAPI document; the client
// validates it at construction and takes the default base URL and the
// supported query actions from it.
type Client struct {
	baseURL string
	http    *http.Client
	actions map[string]bool
}

// Option customises the client configuration.
type Option func(*Client)

// WithBaseURL overrides the contract's server entry.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout overrides the default round-trip timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient validates the embedded contract and builds a client bound
// to its base URL unless WithBaseURL overrides it.
func NewClient(ctx context.Context, options ...Option) (*Client, error) {
	doc, err := Contract(ctx)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: contractBaseURL(doc),
		http:    &http.Client{Timeout: DefaultTimeout},
		actions: contractActions(doc),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.baseURL == "" {
		return nil, errors.New("directory: no base URL configured")
	}
	return c, nil
}

// List fetches every employee record.
func (c *Client) List(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := c.query(ctx, "list", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// Search asks the collaborator for a single employee by name parts.
// Either part may be empty, but not both.
func (c *Client) Search(ctx context.Context, firstName, lastName string) (SearchResult, error) {
	if firstName == "" && lastName == "" {
		return SearchResult{}, errors.New("directory: search needs a first or last name")
	}
	params := url.Values{}
	params.Set("firstName", firstName)
	params.Set("lastName", lastName)

	var result SearchResult
	if err := c.query(ctx, "search", params, &result); err != nil {
		return SearchResult{}, err
	}
	return result, nil
}

// Extensions fetches the phone-extension directory.
func (c *Client) Extensions(ctx context.Context) ([]Extension, error) {
	var extensions []Extension
	if err := c.query(ctx, "extensions", nil, &extensions); err != nil {
		return nil, err
	}
	return extensions, nil
}

// Add appends an employee record. A 2xx answer is an acknowledged
// write; a redirect means the collaborator accepted the dispatch
// without confirming it. Error statuses and transport failures are
// returned as errors with the record not assumed stored.
func (c *Client) Add(ctx context.Context, record AddRequest) (AddOutcome, error) {
	record.Action = "add"
	if record.Name == "" {
		return AddOutcome{}, errors.New("directory: add requires a name")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return AddOutcome{}, fmt.Errorf("directory: encode add request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return AddOutcome{}, fmt.Errorf("directory: build add request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return AddOutcome{}, fmt.Errorf("directory: add employee: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return AddOutcome{Acknowledged: true}, nil
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		return AddOutcome{Acknowledged: false}, nil
	default:
		return AddOutcome{}, fmt.Errorf("directory: add employee: collaborator returned status %d", resp.StatusCode)
	}
}

func (c *Client) query(ctx context.Context, action string, params url.Values, out any) error {
	if !c.actions[action] {
		return fmt.Errorf("directory: action %q not in contract", action)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("action", action)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("directory: build %s request: %w", action, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", ErrUnavailable, action, resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("%w: %s: read response: %v", ErrUnavailable, action, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", ErrUnavailable, action, err)
	}
	return nil
}

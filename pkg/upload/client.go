package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"github.com/wellboundhc/go-siggen/pkg/imagepipe"
)

// DefaultTimeout bounds a single relay transfer. The relay contract
// specifies no timeout; an unbounded upload would wedge the session.
const DefaultTimeout = 30 * time.Second

// Result is the relay's answer for a stored artifact.
type Result struct {
	URL        string
	StorageKey string
}

// UploadError covers both transport failures and relay-reported
// failures; callers treat them uniformly as a recoverable condition.
type UploadError struct {
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Message != "" {
		return "upload: " + e.Message
	}
	if e.Err != nil {
		return "upload: " + e.Err.Error()
	}
	return "upload: failed"
}

func (e *UploadError) Unwrap() error { return e.Err }

// ErrSuperseded is returned to a transfer whose artifact was replaced
// while it was in flight; its result no longer corresponds to the
// staged artifact and must be discarded.
var ErrSuperseded = &UploadError{Message: "artifact superseded by a newer selection"}

// ErrFilenameConflict is returned when a caller asks for a literal
// filename while a transfer for the same artifact is already in flight
// under a different name. Joining it would silently store the artifact
// under the first caller's name.
var ErrFilenameConflict = &UploadError{Message: "transfer already in flight under a different filename"}

type relayResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Error    string `json:"error"`
	Details  string `json:"details"`
}

type call struct {
	done chan struct{}
	res  Result
	err  error
}

// Client performs at-most-once-per-artifact transfers to the storage
// relay. A successful upload is memoized; repeated submissions return
// the cached URL without re-transferring bytes, and staging a new
// artifact invalidates the cache.
type Client struct {
	endpoint string
	http     *http.Client

	mu         sync.Mutex
	staged     *imagepipe.Artifact
	cached     *Result
	inflight   *call
	flying     *imagepipe.Artifact
	flyingName string
}

// Option customises the client configuration.
type Option func(*Client)

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout overrides the default transfer timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient constructs a client for the given relay endpoint.
func NewClient(endpoint string, options ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Stage replaces the pending artifact. Any cached result for the prior
// artifact is invalidated; an in-flight transfer for it is not
// cancelled, but its eventual result will be discarded.
func (c *Client) Stage(artifact *imagepipe.Artifact) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.staged = artifact
	c.cached = nil
}

// Staged reports whether an artifact is pending upload.
func (c *Client) Staged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staged != nil
}

// Upload transfers the staged artifact under a relay-generated storage
// key. Nothing staged is a no-op success with an empty result.
func (c *Client) Upload(ctx context.Context) (Result, error) {
	return c.UploadAs(ctx, "")
}

// UploadAs transfers the staged artifact, asking the relay to store it
// under the given literal filename (known-identity uploads). An empty
// filename lets the relay generate a collision-resistant key.
//
// Concurrent calls for the same artifact share a single transfer, and
// that transfer keeps the filename of whichever call started it. A
// caller that requests a different literal filename while one is in
// flight gets ErrFilenameConflict instead of a mislabelled result.
func (c *Client) UploadAs(ctx context.Context, filename string) (Result, error) {
	c.mu.Lock()
	artifact := c.staged
	if artifact == nil {
		c.mu.Unlock()
		return Result{}, nil
	}
	if c.cached != nil {
		res := *c.cached
		c.mu.Unlock()
		return res, nil
	}
	if c.inflight != nil && c.flying == artifact {
		if filename != "" && filename != c.flyingName {
			c.mu.Unlock()
			return Result{}, ErrFilenameConflict
		}
		inflight := c.inflight
		c.mu.Unlock()
		select {
		case <-inflight.done:
			return inflight.res, inflight.err
		case <-ctx.Done():
			return Result{}, &UploadError{Message: "upload cancelled", Err: ctx.Err()}
		}
	}
	transfer := &call{done: make(chan struct{})}
	c.inflight = transfer
	c.flying = artifact
	c.flyingName = filename
	c.mu.Unlock()

	res, err := c.transfer(ctx, artifact, filename)

	c.mu.Lock()
	if c.inflight == transfer {
		c.inflight = nil
		c.flying = nil
		c.flyingName = ""
	}
	if err == nil {
		if c.staged == artifact {
			cached := res
			c.cached = &cached
		} else {
			// A newer selection replaced this artifact mid-flight.
			res, err = Result{}, ErrSuperseded
		}
	}
	transfer.res, transfer.err = res, err
	close(transfer.done)
	c.mu.Unlock()

	return res, err
}

func (c *Client) transfer(ctx context.Context, artifact *imagepipe.Artifact, filename string) (Result, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", artifact.Name)
	if err != nil {
		return Result{}, &UploadError{Message: "build multipart body", Err: err}
	}
	if _, err := part.Write(artifact.Data); err != nil {
		return Result{}, &UploadError{Message: "build multipart body", Err: err}
	}
	if filename != "" {
		if err := writer.WriteField("filename", filename); err != nil {
			return Result{}, &UploadError{Message: "build multipart body", Err: err}
		}
	}
	if err := writer.Close(); err != nil {
		return Result{}, &UploadError{Message: "build multipart body", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return Result{}, &UploadError{Message: "build request", Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, &UploadError{Message: "relay unreachable", Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{}, &UploadError{Message: "read relay response", Err: err}
	}

	var decoded relayResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return Result{}, &UploadError{Message: fmt.Sprintf("relay returned status %d with unparseable body", resp.StatusCode), Err: err}
	}

	if !decoded.Success || decoded.URL == "" {
		message := decoded.Error
		if message == "" {
			message = fmt.Sprintf("relay returned status %d", resp.StatusCode)
		}
		if decoded.Details != "" {
			message += ": " + decoded.Details
		}
		return Result{}, &UploadError{Message: message}
	}

	return Result{URL: decoded.URL, StorageKey: decoded.Filename}, nil
}

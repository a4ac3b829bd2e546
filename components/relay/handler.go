package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed
// Options value. Callers are expected to pass an Options value produced
// by NewOptions (or equivalent) so defaults apply.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			writeError(w, http.StatusBadRequest, "Bad request", "")
			return
		}

		// Preflight answers permissively regardless of storage state.
		if r.Method == http.MethodOptions {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			h.Set("Access-Control-Max-Age", "86400")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				code := http.StatusForbidden
				var httpErr HTTPError
				if errors.As(err, &httpErr) && httpErr.StatusCode() > 0 {
					code = httpErr.StatusCode()
				}
				writeError(w, code, http.StatusText(code), "")
				return
			}
		}

		if opts.Store == nil {
			writeError(w, http.StatusInternalServerError, "Upload failed", "no storage configured")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, opts.MaxUploadBytes)
		if err := r.ParseMultipartForm(opts.MaxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "No image provided", err.Error())
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No image provided", "")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Upload failed", err.Error())
			return
		}

		key, err := storageKey(opts, r.FormValue("filename"), header.Filename)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid filename", err.Error())
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/png"
		}

		if err := opts.Store.Put(r.Context(), key, data, contentType); err != nil {
			writeError(w, http.StatusInternalServerError, "Upload failed", err.Error())
			return
		}

		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(uploadResponse{
			Success:  true,
			URL:      publicURL(opts.PublicBaseURL, key),
			Filename: key,
		})
	})
}

// storageKey applies the naming policy: a caller-supplied filename is
// stored literally under the prefix; otherwise a collision-resistant
// name is generated from a millisecond timestamp and a random suffix.
func storageKey(opts Options, literal, uploadName string) (string, error) {
	if literal != "" {
		if strings.Contains(literal, "..") || strings.HasPrefix(literal, "/") {
			return "", fmt.Errorf("relay: unsafe filename %q", literal)
		}
		return opts.KeyPrefix + literal, nil
	}

	ext := path.Ext(uploadName)
	if ext == "" {
		ext = ".jpg"
	}
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	return fmt.Sprintf("%s%d_%s%s", opts.KeyPrefix, opts.Now().UnixMilli(), random, ext), nil
}

func publicURL(baseURL, key string) string {
	if baseURL == "" {
		return "/" + key
	}
	return strings.TrimRight(baseURL, "/") + "/" + key
}

func writeError(w http.ResponseWriter, code int, message, details string) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Details: details})
}

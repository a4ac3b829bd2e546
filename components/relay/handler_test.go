package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"
)

func multipartBody(t *testing.T, filename string, imageName string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", imageName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write image part: %v", err)
	}
	if filename != "" {
		if err := writer.WriteField("filename", filename); err != nil {
			t.Fatalf("write filename field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func TestHandler_PreflightIsPermissive(t *testing.T) {
	handler := NewHandler(WithStorage(NewMemStore()))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/upload", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin = %q", got)
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Fatalf("allow-methods = %q", rec.Header().Get("Access-Control-Allow-Methods"))
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("preflight body must be empty, got %q", rec.Body.String())
	}
}

func TestHandler_RejectsNonPost(t *testing.T) {
	handler := NewHandler(WithStorage(NewMemStore()))

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(method, "/api/upload", nil))

		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s status = %d, want 405", method, rec.Code)
		}
		var resp errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s body not JSON: %v", method, err)
		}
		if resp.Error != "Method not allowed" {
			t.Fatalf("%s error = %q", method, resp.Error)
		}
	}
}

func TestHandler_GeneratedKeyHasTimestampAndPrefix(t *testing.T) {
	store := NewMemStore()
	fixed := time.UnixMilli(1700000000000)
	handler := NewHandler(
		WithStorage(store),
		WithPublicBaseURL("https://photos.example.com"),
		WithClock(func() time.Time { return fixed }),
	)

	body, contentType := multipartBody(t, "", "photo.png", bytes.Repeat([]byte{0x89}, 10<<10))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("success = false")
	}

	keyPattern := regexp.MustCompile(`^signature-photos/1700000000000_[0-9a-f]{16}\.png$`)
	if !keyPattern.MatchString(resp.Filename) {
		t.Fatalf("filename = %q", resp.Filename)
	}
	if resp.URL != "https://photos.example.com/"+resp.Filename {
		t.Fatalf("url = %q", resp.URL)
	}
	if _, ok := store.Get(resp.Filename); !ok {
		t.Fatalf("object not stored under %q", resp.Filename)
	}
}

func TestHandler_LiteralFilenameIsNotRandomized(t *testing.T) {
	store := NewMemStore()
	handler := NewHandler(WithStorage(store), WithPublicBaseURL("https://photos.example.com"))

	body, contentType := multipartBody(t, "jane-doe.jpg", "photo.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Filename != "signature-photos/jane-doe.jpg" {
		t.Fatalf("filename = %q, want exact prefixed literal", resp.Filename)
	}
}

func TestHandler_MissingImagePart(t *testing.T) {
	handler := NewHandler(WithStorage(NewMemStore()))

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("filename", "x.jpg")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if resp.Error != "No image provided" {
		t.Fatalf("error = %q", resp.Error)
	}
}

func TestHandler_TraversalFilenameRejected(t *testing.T) {
	handler := NewHandler(WithStorage(NewMemStore()))

	body, contentType := multipartBody(t, "../escape.jpg", "photo.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

type failingStore struct{}

func (failingStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	return fmt.Errorf("bucket unavailable")
}

func TestHandler_StorageFailure(t *testing.T) {
	handler := NewHandler(WithStorage(failingStore{}))

	body, contentType := multipartBody(t, "", "photo.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if resp.Error != "Upload failed" || resp.Details == "" {
		t.Fatalf("response = %+v", resp)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("errors must still carry CORS headers, got %q", got)
	}
}

func TestHandler_Guard(t *testing.T) {
	handler := NewHandler(
		WithStorage(NewMemStore()),
		WithGuard(func(r *http.Request) error {
			return StatusError{Code: http.StatusUnauthorized, Err: errors.New("no token")}
		}),
	)

	body, contentType := multipartBody(t, "", "photo.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

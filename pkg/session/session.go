// Package session owns the mutable per-user state: the active format,
// the staged image with its derived preview and upload artifact, the
// memoized upload URL, and cached directory listings. The rendering and
// transform functions stay pure; everything stateful funnels through
// here.
package session

import (
	"context"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/wellboundhc/go-siggen/pkg/directory"
	"github.com/wellboundhc/go-siggen/pkg/format"
	"github.com/wellboundhc/go-siggen/pkg/imagepipe"
	"github.com/wellboundhc/go-siggen/pkg/signature"
	"github.com/wellboundhc/go-siggen/pkg/upload"
)

// Session is a single-user working state. All methods are safe for
// concurrent use.
type Session struct {
	mu      sync.Mutex
	formats *format.Registry
	uploads *upload.Client
	dir     *directory.Client

	formatID string
	fields   signature.Fields

	source      image.Image
	preview     *imagepipe.PreviewBitmap
	uploadedURL string

	employees  []directory.Employee
	extensions []directory.Extension
	haveEmps   bool
	haveExts   bool
}

// New builds a session over the given collaborators. The upload and
// directory clients may each be nil for render-only sessions; methods
// needing the missing collaborator return an error instead.
func New(formats *format.Registry, uploads *upload.Client, dir *directory.Client) *Session {
	return &Session{
		formats: formats,
		uploads: uploads,
		dir:     dir,
	}
}

// SetFields replaces the working employee fields.
func (s *Session) SetFields(fields signature.Fields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = fields
}

// Fields returns the working employee fields.
func (s *Session) Fields() signature.Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields
}

// SelectFormat switches the active format and re-tints the preview of
// any staged image with the new format's border color.
func (s *Session) SelectFormat(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.formatID = id
	if s.source == nil {
		return nil
	}
	return s.retintLocked()
}

// Format returns the active format bundle (the registry default when
// none was selected).
func (s *Session) Format() format.Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formats.Resolve(s.formatID)
}

// SelectImage decodes a newly chosen image, derives the circular
// preview and the upload artifact, and stages the artifact. Any cached
// upload URL from a prior selection is invalidated. A decode failure
// leaves the prior selection untouched.
func (s *Session) SelectImage(ctx context.Context, r io.Reader) error {
	if s.uploads == nil {
		return fmt.Errorf("session: no upload client configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	src, err := imagepipe.Decode(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	artifact, err := imagepipe.UploadArtifact(src)
	if err != nil {
		return err
	}

	s.source = src
	s.uploadedURL = ""
	s.uploads.Stage(artifact)

	// Preview failure is non-fatal: the staged artifact still uploads,
	// the render falls back to the placeholder block.
	if err := s.retintLocked(); err != nil {
		s.preview = nil
	}
	return nil
}

// ClearImage drops the staged image, its preview, and any cached
// upload URL.
func (s *Session) ClearImage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = nil
	s.preview = nil
	s.uploadedURL = ""
	if s.uploads != nil {
		s.uploads.Stage(nil)
	}
}

func (s *Session) retintLocked() error {
	bundle := s.formats.Resolve(s.formatID)
	ring, err := imagepipe.ParseHexColor(bundle.BorderColor)
	if err != nil {
		return fmt.Errorf("session: format %q border color: %w", bundle.ID, err)
	}
	preview, err := imagepipe.CircularPreview(s.source, ring)
	if err != nil {
		return err
	}
	s.preview = preview
	return nil
}

// Signature assembles the current render input. The image source
// carries the committed URL when one exists, otherwise the local
// preview; the renderer applies the precedence order.
func (s *Session) Signature() signature.Signature {
	s.mu.Lock()
	defer s.mu.Unlock()
	return signature.New(s.fields, signature.ImageSource{
		URL:     s.uploadedURL,
		Preview: s.preview.DataURI(),
	}, s.formats.Resolve(s.formatID))
}

// Commit uploads the staged artifact and memoizes the returned public
// URL, which supersedes the local preview for subsequent renders.
// Nothing staged is a no-op.
func (s *Session) Commit(ctx context.Context) (upload.Result, error) {
	if s.uploads == nil {
		return upload.Result{}, fmt.Errorf("session: no upload client configured")
	}
	result, err := s.uploads.Upload(ctx)
	if err != nil {
		return upload.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if result.URL != "" {
		s.uploadedURL = result.URL
	}
	return result, nil
}

// UploadedURL returns the committed photo URL, if any.
func (s *Session) UploadedURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploadedURL
}

// AddToDirectory commits the staged image (best effort) and appends the
// current fields to the directory. An upload failure does not abort the
// write; the record is stored without a photo.
func (s *Session) AddToDirectory(ctx context.Context) (directory.AddOutcome, error) {
	if s.dir == nil {
		return directory.AddOutcome{}, fmt.Errorf("session: no directory client configured")
	}

	imageURL := ""
	if result, err := s.Commit(ctx); err == nil {
		imageURL = result.URL
	}

	s.mu.Lock()
	fields := signature.ResolveFields(s.fields)
	s.mu.Unlock()

	outcome, err := s.dir.Add(ctx, directory.AddRequest{
		Name:      fields.Name,
		Title:     fields.Title,
		Phone:     fields.Phone,
		Extension: fields.Extension,
		Email:     fields.Email,
		ImageURL:  imageURL,
	})
	if err != nil {
		return directory.AddOutcome{}, err
	}

	s.invalidateDirectoryCaches()
	return outcome, nil
}

// Employees returns the cached employee list, fetching it on first use.
func (s *Session) Employees(ctx context.Context) ([]directory.Employee, error) {
	s.mu.Lock()
	if s.haveEmps {
		cached := s.employees
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	if s.dir == nil {
		return nil, fmt.Errorf("session: no directory client configured")
	}
	employees, err := s.dir.List(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.employees = employees
	s.haveEmps = true
	s.mu.Unlock()
	return employees, nil
}

// Extensions returns the cached extension list, fetching it on first
// use.
func (s *Session) Extensions(ctx context.Context) ([]directory.Extension, error) {
	s.mu.Lock()
	if s.haveExts {
		cached := s.extensions
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	if s.dir == nil {
		return nil, fmt.Errorf("session: no directory client configured")
	}
	extensions, err := s.dir.Extensions(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.extensions = extensions
	s.haveExts = true
	s.mu.Unlock()
	return extensions, nil
}

// InvalidateDirectoryCaches drops the cached listings so the next read
// refetches.
func (s *Session) InvalidateDirectoryCaches() {
	s.invalidateDirectoryCaches()
}

func (s *Session) invalidateDirectoryCaches() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = nil
	s.extensions = nil
	s.haveEmps = false
	s.haveExts = false
}

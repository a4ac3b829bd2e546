package signature

// ImageSourceKind identifies which branch of the image precedence chain
// a signature render will take.
type ImageSourceKind int

const (
	// SourcePlaceholder renders the "No Photo" block.
	SourcePlaceholder ImageSourceKind = iota
	// SourceURL renders an <img> pointing at a stored public URL.
	SourceURL
	// SourcePreview renders the locally-held circular preview bitmap.
	SourcePreview
)

// ImageSource resolves the profile image for a signature. Precedence is
// strict: an explicit URL (persisted/external records) beats a local
// preview (the current, uncommitted entry only), which beats the
// placeholder.
type ImageSource struct {
	// URL is the stored public image URL, when the record has one.
	URL string
	// Preview is a data URI for the circular preview bitmap produced by
	// the image pipeline. Never used when URL is set.
	Preview string
}

// Kind returns the branch the renderer must take for this source.
func (s ImageSource) Kind() ImageSourceKind {
	if s.URL != "" {
		return SourceURL
	}
	if s.Preview != "" {
		return SourcePreview
	}
	return SourcePlaceholder
}

// Package template declares the template-renderer seam used by the
// signature renderers. The gotemplate subpackage provides the default
// pongo2-backed implementation.
package template

// Package relay is a drop-in HTTP component that receives multipart
// image uploads, persists them through a pluggable Storage backend, and
// answers with the public URL of the stored object. It mirrors the
// object-storage worker the signature generator uploads photos to.
package relay

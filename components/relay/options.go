package relay

import (
	"net/http"
	"time"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath      string
	PublicBaseURL  string
	KeyPrefix      string
	MaxUploadBytes int64
	Guard          GuardFunc
	Store          Storage

	// Now is the clock for generated storage keys. Overridable in tests.
	Now func() time.Time
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:      "/api/upload",
		KeyPrefix:      "signature-photos/",
		MaxUploadBytes: 10 << 20,
		Now:            time.Now,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/upload"
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "signature-photos/"
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

// WithPublicBaseURL sets the base under which stored objects are
// publicly reachable; the response URL is this base plus the storage
// key.
func WithPublicBaseURL(baseURL string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PublicBaseURL = baseURL
	}
}

// WithKeyPrefix sets the logical prefix every storage key lives under.
func WithKeyPrefix(prefix string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.KeyPrefix = prefix
	}
}

func WithMaxUploadBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxUploadBytes = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithStorage(store Storage) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Store = store
	}
}

func WithClock(now func() time.Time) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Now = now
	}
}

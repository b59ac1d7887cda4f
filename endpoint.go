package textsecure

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Endpoint composes absolute request URLs for one server. It never sends a
// request itself.
type Endpoint struct {
	base      *url.URL
	timeout   time.Duration
	userAgent string
	metrics   MetricsCollector
}

// NewEndpoint validates cfg and builds an Endpoint from it.
func NewEndpoint(cfg *Config) (*Endpoint, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := url.Parse(cfg.Server())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return &Endpoint{
		base:      base,
		timeout:   cfg.Timeout(),
		userAgent: cfg.UserAgent(),
	}, nil
}

// SetMetrics reports formatted routes to m. A nil collector disables reporting.
func (e *Endpoint) SetMetrics(m MetricsCollector) {
	e.metrics = m
}

// Timeout returns the per-request timeout callers should apply.
func (e *Endpoint) Timeout() time.Duration {
	return e.timeout
}

// UserAgent returns the configured User-Agent value.
func (e *Endpoint) UserAgent() string {
	return e.userAgent
}

// BaseURL returns the server base URL.
func (e *Endpoint) BaseURL() string {
	return e.base.String()
}

// URL returns the absolute URL of route. Arguments are path-escaped before
// substitution so an identifier cannot add or remove path segments. The
// dot segments "." and ".." are rejected with ErrInvalidArgument.
func (e *Endpoint) URL(route Route, args ...string) (string, error) {
	escaped := make([]string, len(args))
	for i, a := range args {
		seg, err := escapeSegment(a)
		if err != nil {
			e.countError("route")
			return "", err
		}
		escaped[i] = seg
	}
	path, err := route.Format(escaped...)
	if err != nil {
		e.countError("route")
		return "", err
	}
	if e.metrics != nil {
		e.metrics.IncrementRouteFormatted(route)
	}
	return e.resolve(path), nil
}

// AccountAttributesURL returns the absolute account attributes URL.
func (e *Endpoint) AccountAttributesURL() string {
	return e.resolve(AccountAttributesPath())
}

// AcknowledgeURL returns the absolute URL that acknowledges env.
func (e *Endpoint) AcknowledgeURL(env *Envelope) (string, error) {
	if env == nil {
		return "", fmt.Errorf("%w: nil envelope", ErrInvalidArgument)
	}
	source, err := escapeSegment(env.Source)
	if err != nil {
		e.countError("route")
		return "", err
	}
	return e.resolve(AcknowledgeMessagePath(source, env.Timestamp)), nil
}

func (e *Endpoint) countError(errorType string) {
	if e.metrics != nil {
		e.metrics.IncrementError(errorType)
	}
}

// escapeSegment escapes s for use as exactly one path segment. URL
// resolution removes dot segments, so "." and ".." cannot be escaped into
// something that stays in place.
func escapeSegment(s string) (string, error) {
	if s == "." || s == ".." {
		return "", fmt.Errorf("%w: path segment %q", ErrInvalidArgument, s)
	}
	return url.PathEscape(s), nil
}

// resolve joins an already escaped relative path onto the base URL.
func (e *Endpoint) resolve(path string) string {
	u := *e.base
	u.RawPath = ""
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		// Route templates are constants and arguments are escaped, so this
		// only happens for a broken template.
		Error("cannot resolve path %q: %v", path, err)
		return u.String() + strings.TrimPrefix(path, "/")
	}
	return u.ResolveReference(ref).String()
}

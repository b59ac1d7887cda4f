package textsecure

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
)

// maxTimeoutSeconds is the largest timeout that still fits in a time.Duration.
const maxTimeoutSeconds = math.MaxInt64 / int64(time.Second)

// configDefaults holds the value every property starts with.
var configDefaults = map[string]string{
	PropServer:    "",
	PropTimeout:   strconv.Itoa(HTTPTimeoutSeconds),
	PropUserAgent: DefaultUserAgent,
}

// Config holds client properties. Unknown keys are rejected by SetProperty
// so that typos surface early.
//
// Config is safe for concurrent use.
type Config struct {
	mu         sync.RWMutex
	properties map[string]string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	c := &Config{properties: make(map[string]string, len(configDefaults))}
	for k, v := range configDefaults {
		c.properties[k] = v
	}
	return c
}

// LoadConfigFile returns a Config with defaults overridden by the properties
// in path. A missing file yields the defaults.
func LoadConfigFile(path string) (*Config, error) {
	c := NewConfig()
	var errs error
	err := ParseConfig(path, func(key, value string) {
		if err := c.SetProperty(key, value); err != nil {
			errs = multierror.Append(errs, err)
		}
	})
	if err != nil {
		return nil, err
	}
	if errs != nil {
		return nil, errs
	}
	return c, nil
}

// SetProperty sets a property value.
func (c *Config) SetProperty(key, value string) error {
	if _, ok := configDefaults[key]; !ok {
		return fmt.Errorf("%w: unknown property %q", ErrInvalidConfiguration, key)
	}
	c.mu.Lock()
	c.properties[key] = value
	c.mu.Unlock()
	Debug("config property %s=%s", key, value)
	return nil
}

// GetProperty returns a property value and whether the key is known.
func (c *Config) GetProperty(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.properties[key]
	return v, ok
}

// Keys returns the known property keys in sorted order.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(configDefaults))
	for k := range configDefaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Server returns the server base URL. Validate reports whether it parses.
func (c *Config) Server() string {
	v, _ := c.GetProperty(PropServer)
	return v
}

// Timeout returns the per-request timeout. Values that are not a positive
// number of seconds fall back to DefaultHTTPTimeout.
func (c *Config) Timeout() time.Duration {
	v, _ := c.GetProperty(PropTimeout)
	secs := parseIntWithDefault(v, HTTPTimeoutSeconds)
	if secs <= 0 || int64(secs) > maxTimeoutSeconds {
		return DefaultHTTPTimeout
	}
	return time.Duration(secs) * time.Second
}

// UserAgent returns the User-Agent value for requests.
func (c *Config) UserAgent() string {
	v, _ := c.GetProperty(PropUserAgent)
	if v == "" {
		return DefaultUserAgent
	}
	return v
}

// Validate checks every property and returns all problems at once.
func (c *Config) Validate() error {
	var errs error

	server := c.Server()
	if server == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s is not set", ErrInvalidConfiguration, PropServer))
	} else if u, err := url.Parse(server); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, PropServer, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s must be an http or https URL, got %q", ErrInvalidConfiguration, PropServer, server))
	} else if u.Host == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s has no host", ErrInvalidConfiguration, PropServer))
	}

	timeout, _ := c.GetProperty(PropTimeout)
	if secs := parseIntWithDefault(timeout, -1); secs <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s must be a positive number of seconds, got %q", ErrInvalidConfiguration, PropTimeout, timeout))
	} else if int64(secs) > maxTimeoutSeconds {
		errs = multierror.Append(errs, fmt.Errorf("%w: %s must be at most %d seconds, got %q", ErrInvalidConfiguration, PropTimeout, maxTimeoutSeconds, timeout))
	}

	return errs
}

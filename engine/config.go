package engine

import (
	"fmt"
	"net/url"

	"github.com/kbukum/httpengine/transport"
)

// Config configures an engine. It is immutable for the engine's lifetime
// and shared across concurrent calls without synchronization.
type Config struct {
	// Name identifies the engine in logs and metrics. Defaults to "engine".
	Name string `yaml:"name" mapstructure:"name"`

	// Proxy is the proxy URL applied to every session. Empty uses the
	// transport's environment-based default.
	Proxy string `yaml:"proxy" mapstructure:"proxy"`

	// Headers are default headers applied to all requests. Request headers
	// win on conflict.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// EnableH2C switches sessions to cleartext HTTP/2.
	EnableH2C bool `yaml:"enable_h2c" mapstructure:"enable_h2c"`

	// InsecureSkipTLSVerify disables certificate verification. Development
	// only.
	InsecureSkipTLSVerify bool `yaml:"insecure_skip_tls_verify" mapstructure:"insecure_skip_tls_verify"`

	// Auth configures default authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// ConfigureSession is the engine-wide session hook, applied before the
	// per-call hook.
	ConfigureSession func(*transport.SessionConfig) `yaml:"-" mapstructure:"-"`

	// ConfigureRequest is the engine-wide request hook, applied after the
	// request is fully built, just before submission.
	ConfigureRequest func(*transport.SubmitRequest) `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "engine"
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Proxy != "" {
		u, err := url.Parse(c.Proxy)
		if err != nil {
			return fmt.Errorf("engine: invalid proxy url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("engine: proxy url must be absolute (got: %s)", c.Proxy)
		}
	}
	return nil
}

// proxyURL returns the parsed proxy URL, nil when unset. Call after
// Validate.
func (c *Config) proxyURL() *url.URL {
	if c.Proxy == "" {
		return nil
	}
	u, err := url.Parse(c.Proxy)
	if err != nil {
		return nil
	}
	return u
}

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/muurk/radioctl/internal/urls"
)

// Config represents the entire user configuration file.
// It is read once at startup, validated, and passed down the pipeline by
// reference; nothing mutates it after construction.
type Config struct {
	// TargetNetwork is the Wi-Fi network (SSID) the access point serves.
	// The precondition check compares the active network against it.
	// Empty skips the network-identity check.
	TargetNetwork string `yaml:"target_network,omitempty"`

	// RouterURL is the admin console root.
	RouterURL string `yaml:"router_url"`

	// AdminURL is the advanced-settings page. Empty derives it from
	// RouterURL.
	AdminURL string `yaml:"admin_url,omitempty"`

	// ServiceName is the keychain service the credential store uses.
	ServiceName string `yaml:"service_name"`

	// Headless hides the browser window. Set false to watch the session.
	Headless bool `yaml:"headless"`

	// TimeoutSeconds bounds every page and element wait.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// RetryAttempts is the total attempt count for retried reads,
	// including the first.
	RetryAttempts int `yaml:"retry_attempts"`

	// RetryDelaySeconds is the wait before the second attempt.
	RetryDelaySeconds int `yaml:"retry_delay_seconds"`

	// RetryBackoffSeconds is added to the wait after each failed attempt.
	// Zero keeps the backoff fixed.
	RetryBackoffSeconds int `yaml:"retry_backoff_seconds"`

	// EnableNotifications sends a desktop notification with the outcome.
	EnableNotifications bool `yaml:"enable_notifications"`

	// DebugHoldSeconds keeps a visible browser window open after a
	// failure for manual inspection. Ignored when Headless is true.
	DebugHoldSeconds int `yaml:"debug_hold_seconds,omitempty"`
}

// Default returns the configuration used when no file exists. A first run
// works without any setup: the vendor hostname reaches the console from
// inside its network, and the network-identity check is skipped until a
// target network is configured.
func Default() *Config {
	return &Config{
		TargetNetwork:       "",
		RouterURL:           urls.DefaultConsole,
		AdminURL:            urls.DefaultAdminPage,
		ServiceName:         "radioctl",
		Headless:            true,
		TimeoutSeconds:      10,
		RetryAttempts:       3,
		RetryDelaySeconds:   2,
		RetryBackoffSeconds: 0,
		EnableNotifications: true,
		DebugHoldSeconds:    0,
	}
}

// ApplyDefaults fills unset fields so a sparse config file still yields a
// complete Config.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.RouterURL == "" {
		c.RouterURL = d.RouterURL
	}
	if c.AdminURL == "" {
		c.AdminURL = urls.Admin(c.RouterURL)
	}
	if c.ServiceName == "" {
		c.ServiceName = d.ServiceName
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = d.TimeoutSeconds
	}
	if c.RetryAttempts == 0 {
		c.RetryAttempts = d.RetryAttempts
	}
	if c.RetryDelaySeconds == 0 {
		c.RetryDelaySeconds = d.RetryDelaySeconds
	}
}

// Validate checks field sanity. Called once after load; a config that
// passes is safe for the whole pipeline.
func (c *Config) Validate() error {
	if c.RouterURL == "" {
		return fmt.Errorf("router_url must be set")
	}
	if err := validateConsoleURL("router_url", c.RouterURL); err != nil {
		return err
	}
	if c.AdminURL != "" {
		if err := validateConsoleURL("admin_url", c.AdminURL); err != nil {
			return err
		}
	}
	if c.ServiceName == "" {
		return fmt.Errorf("service_name must be set")
	}
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("timeout_seconds must be at least 1, got %d", c.TimeoutSeconds)
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry_attempts must be at least 1, got %d", c.RetryAttempts)
	}
	if c.RetryDelaySeconds < 0 {
		return fmt.Errorf("retry_delay_seconds must not be negative, got %d", c.RetryDelaySeconds)
	}
	if c.RetryBackoffSeconds < 0 {
		return fmt.Errorf("retry_backoff_seconds must not be negative, got %d", c.RetryBackoffSeconds)
	}
	if c.DebugHoldSeconds < 0 {
		return fmt.Errorf("debug_hold_seconds must not be negative, got %d", c.DebugHoldSeconds)
	}
	return nil
}

func validateConsoleURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", field, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host: %q", field, raw)
	}
	return nil
}

// Timeout returns the page/element wait bound as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryDelay returns the wait before the second attempt as a duration.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

// RetryStep returns the per-attempt backoff increment as a duration.
func (c *Config) RetryStep() time.Duration {
	return time.Duration(c.RetryBackoffSeconds) * time.Second
}

// DebugHold returns the post-failure hold-open window as a duration.
func (c *Config) DebugHold() time.Duration {
	return time.Duration(c.DebugHoldSeconds) * time.Second
}

// EffectiveAdminURL returns AdminURL, deriving it from RouterURL when unset.
func (c *Config) EffectiveAdminURL() string {
	if c.AdminURL != "" {
		return c.AdminURL
	}
	return urls.Admin(c.RouterURL)
}

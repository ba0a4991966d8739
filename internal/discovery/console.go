package discovery

import (
	"fmt"
	"strings"
	"time"
)

// Console represents a router admin console discovered on the local network
type Console struct {
	// Hostname is the mDNS hostname as advertised (e.g., "routerlogin.local.")
	Hostname string

	// Instance is the mDNS service instance name (e.g., "Netgear RBR50")
	Instance string

	// IP is the address the console answers on (IPv4 preferred)
	IP string

	// Port is the web UI port
	Port int

	// Scheme is "http" or "https", depending on the advertised service type
	Scheme string

	// Metadata contains additional mDNS TXT record data
	Metadata map[string]string

	// DiscoveredAt is when the console was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the console
func (c *Console) String() string {
	return fmt.Sprintf("Router console %s at %s", c.DisplayName(), c.URL())
}

// DisplayName returns the friendliest available name for the console:
// the hostname without its trailing dot, then the instance name, then
// the address.
func (c *Console) DisplayName() string {
	if host := strings.TrimSuffix(c.Hostname, "."); host != "" {
		return host
	}
	if c.Instance != "" {
		return c.Instance
	}
	return c.IP
}

// URL returns the admin console address. The default port for the scheme
// is elided so the result matches what a user would type into a browser.
func (c *Console) URL() string {
	host := c.IP
	if host == "" {
		host = strings.TrimSuffix(c.Hostname, ".")
	}
	if c.Port == 0 || c.Port == defaultPort(c.Scheme) {
		return fmt.Sprintf("%s://%s", c.Scheme, host)
	}
	return fmt.Sprintf("%s://%s:%d", c.Scheme, host, c.Port)
}

// GetMetadata retrieves a TXT record value by key, or returns empty string if not found
func (c *Console) GetMetadata(key string) string {
	if c.Metadata == nil {
		return ""
	}
	return c.Metadata[key]
}

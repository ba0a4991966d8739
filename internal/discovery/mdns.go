package discovery

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceHTTP is the mDNS service type for plain-HTTP web consoles
	ServiceHTTP = "_http._tcp"

	// ServiceHTTPS is the mDNS service type for TLS web consoles.
	// Routers that force the admin UI onto HTTPS advertise under this type.
	ServiceHTTPS = "_https._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for console discovery
	DefaultScanTimeout = 10 * time.Second

	defaultHTTPPort  = 80
	defaultHTTPSPort = 443
)

// consolePattern matches mDNS hostnames and instance names that router
// vendors use for their admin consoles (routerlogin.net, orbilogin.com,
// or a plain "router"/"gateway" label)
var consolePattern = regexp.MustCompile(`(?i)(routerlogin|orbilogin|netgear|router|gateway)`)

// Scanner handles mDNS console discovery
type Scanner struct {
	// Timeout is the maximum time to wait for console discovery
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan discovers router admin consoles on the local network
// Returns a list of discovered consoles or an error
func (s *Scanner) Scan() ([]*Console, error) {
	return s.ScanWithContext(context.Background())
}

// ScanWithContext discovers consoles with a custom context. Both the HTTP
// and HTTPS service types are browsed; a console advertised under both is
// listed once, with the HTTPS listing winning.
func (s *Scanner) ScanWithContext(ctx context.Context) ([]*Console, error) {
	// Create a context with timeout
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	// Start the resolver
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		consoles []*Console
	)
	index := make(map[string]*Console)

	// Collect entries for one service type in a goroutine; zeroconf closes
	// the entries channel once the context is done.
	collect := func(scheme string, entries <-chan *zeroconf.ServiceEntry) {
		defer wg.Done()
		for entry := range entries {
			console := s.parseServiceEntry(entry, scheme)
			if console == nil {
				continue
			}
			mu.Lock()
			consoles = addConsole(index, consoles, console)
			mu.Unlock()
		}
	}

	services := []struct {
		typ    string
		scheme string
	}{
		{ServiceHTTP, "http"},
		{ServiceHTTPS, "https"},
	}
	for _, svc := range services {
		entries := make(chan *zeroconf.ServiceEntry)
		wg.Add(1)
		go collect(svc.scheme, entries)

		if err := resolver.Browse(ctx, svc.typ, ServiceDomain, entries); err != nil {
			cancel()
			wg.Wait()
			return nil, fmt.Errorf("failed to browse for %s services: %w", svc.typ, err)
		}
	}

	// Wait for the scan window to elapse, then for the collectors to drain
	<-ctx.Done()
	wg.Wait()

	return consoles, nil
}

// parseServiceEntry converts a zeroconf service entry to a Console
// Returns nil if the entry does not look like a router admin console
func (s *Scanner) parseServiceEntry(entry *zeroconf.ServiceEntry, scheme string) *Console {
	if !consolePattern.MatchString(entry.HostName) && !consolePattern.MatchString(entry.Instance) {
		return nil
	}

	// Get IP address (prefer IPv4)
	var ip string
	for _, addr := range entry.AddrIPv4 {
		ip = addr.String()
		break
	}

	// Fallback to IPv6 if no IPv4
	if ip == "" && len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}

	if ip == "" {
		return nil
	}

	// Get port (default by scheme if not specified)
	port := entry.Port
	if port == 0 {
		port = defaultPort(scheme)
	}

	// Parse TXT records into metadata
	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		// TXT records are in "key=value" format
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			metadata[parts[0]] = parts[1]
		} else {
			// Key without value
			metadata[parts[0]] = ""
		}
	}

	return &Console{
		Hostname:     entry.HostName,
		Instance:     entry.Instance,
		IP:           ip,
		Port:         port,
		Scheme:       scheme,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}

// addConsole merges a parsed console into the result set, deduplicating by
// hostname and address. A TLS listing replaces a plain-HTTP listing for the
// same console; the reverse never downgrades.
func addConsole(index map[string]*Console, consoles []*Console, c *Console) []*Console {
	key := strings.ToLower(strings.TrimSuffix(c.Hostname, ".")) + "|" + c.IP
	if prev, ok := index[key]; ok {
		if prev.Scheme == "http" && c.Scheme == "https" {
			*prev = *c
		}
		return consoles
	}
	index[key] = c
	return append(consoles, c)
}

func defaultPort(scheme string) int {
	if scheme == "https" {
		return defaultHTTPSPort
	}
	return defaultHTTPPort
}

// Scan is a convenience function to scan for consoles with a custom timeout
func Scan(timeout time.Duration) ([]*Console, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.Scan()
}

// QuickScan performs a fast scan with a 3-second timeout
func QuickScan() ([]*Console, error) {
	return Scan(3 * time.Second)
}

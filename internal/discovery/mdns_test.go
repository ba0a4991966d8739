package discovery

import (
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func TestScanner_parseServiceEntry(t *testing.T) {
	scanner := NewScanner()

	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		scheme   string
		wantNil  bool
		wantIP   string
		wantPort int
	}{
		{
			name: "router console with IPv4",
			entry: &zeroconf.ServiceEntry{
				HostName: "routerlogin.local.",
				Port:     443,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.1")},
				Text:     []string{"path=/", "vendor=NETGEAR"},
			},
			scheme:   "https",
			wantNil:  false,
			wantIP:   "192.168.1.1",
			wantPort: 443,
		},
		{
			name: "console without trailing dot",
			entry: &zeroconf.ServiceEntry{
				HostName: "orbilogin.local",
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("10.0.0.1")},
			},
			scheme:   "http",
			wantNil:  false,
			wantIP:   "10.0.0.1",
			wantPort: 80,
		},
		{
			name: "instance name matches when hostname is generic",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Orbi Router RBR50"},
				HostName:      "RBR50.local.",
				Port:          80,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.1")},
			},
			scheme:   "http",
			wantNil:  false,
			wantIP:   "192.168.1.1",
			wantPort: 80,
		},
		{
			name: "no port advertised (should default by scheme)",
			entry: &zeroconf.ServiceEntry{
				HostName: "gateway.local",
				Port:     0,
				AddrIPv4: []net.IP{net.ParseIP("192.168.0.1")},
			},
			scheme:   "https",
			wantNil:  false,
			wantIP:   "192.168.0.1",
			wantPort: 443,
		},
		{
			name: "unrelated device (hostname and instance both generic)",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Office Printer"},
				HostName:      "printer.local.",
				Port:          80,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.20")},
			},
			scheme:  "http",
			wantNil: true,
		},
		{
			name: "no IP address",
			entry: &zeroconf.ServiceEntry{
				HostName: "routerlogin.local",
				Port:     443,
				AddrIPv4: []net.IP{},
				AddrIPv6: []net.IP{},
			},
			scheme:  "https",
			wantNil: true,
		},
		{
			name: "IPv6 only console",
			entry: &zeroconf.ServiceEntry{
				HostName: "router.local",
				Port:     80,
				AddrIPv6: []net.IP{net.ParseIP("fe80::1")},
			},
			scheme:   "http",
			wantNil:  false,
			wantIP:   "fe80::1",
			wantPort: 80,
		},
		{
			name: "console with both IPv4 and IPv6 (should prefer IPv4)",
			entry: &zeroconf.ServiceEntry{
				HostName: "router.local",
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.50")},
				AddrIPv6: []net.IP{net.ParseIP("fe80::2")},
			},
			scheme:   "http",
			wantNil:  false,
			wantIP:   "192.168.1.50",
			wantPort: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := scanner.parseServiceEntry(tt.entry, tt.scheme)

			if tt.wantNil {
				if console != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", console)
				}
				return
			}

			if console == nil {
				t.Fatal("parseServiceEntry() = nil, want non-nil console")
			}

			if console.IP != tt.wantIP {
				t.Errorf("console.IP = %v, want %v", console.IP, tt.wantIP)
			}

			if console.Port != tt.wantPort {
				t.Errorf("console.Port = %v, want %v", console.Port, tt.wantPort)
			}

			if console.Scheme != tt.scheme {
				t.Errorf("console.Scheme = %v, want %v", console.Scheme, tt.scheme)
			}

			if console.Hostname != tt.entry.HostName {
				t.Errorf("console.Hostname = %v, want %v", console.Hostname, tt.entry.HostName)
			}

			// Check that DiscoveredAt is recent (within last second)
			if time.Since(console.DiscoveredAt) > time.Second {
				t.Errorf("console.DiscoveredAt is not recent: %v", console.DiscoveredAt)
			}
		})
	}
}

func TestScanner_parseServiceEntry_Metadata(t *testing.T) {
	scanner := NewScanner()

	entry := &zeroconf.ServiceEntry{
		HostName: "routerlogin.local",
		Port:     443,
		AddrIPv4: []net.IP{net.ParseIP("192.168.1.1")},
		Text:     []string{"path=/", "vendor=NETGEAR", "flag", "version=1.0"},
	}

	console := scanner.parseServiceEntry(entry, "https")
	if console == nil {
		t.Fatal("parseServiceEntry() = nil, want console")
	}

	// Check metadata parsing
	expectedMetadata := map[string]string{
		"path":    "/",
		"vendor":  "NETGEAR",
		"flag":    "", // Key without value
		"version": "1.0",
	}

	if len(console.Metadata) != len(expectedMetadata) {
		t.Errorf("console.Metadata has %d entries, want %d", len(console.Metadata), len(expectedMetadata))
	}

	for key, expectedValue := range expectedMetadata {
		if actualValue, ok := console.Metadata[key]; !ok {
			t.Errorf("console.Metadata missing key %q", key)
		} else if actualValue != expectedValue {
			t.Errorf("console.Metadata[%q] = %q, want %q", key, actualValue, expectedValue)
		}
	}
}

func TestNewScanner(t *testing.T) {
	scanner := NewScanner()

	if scanner == nil {
		t.Fatal("NewScanner() = nil, want scanner")
	}

	if scanner.Timeout != DefaultScanTimeout {
		t.Errorf("scanner.Timeout = %v, want %v", scanner.Timeout, DefaultScanTimeout)
	}
}

func TestConsolePattern(t *testing.T) {
	tests := []struct {
		name        string
		shouldMatch bool
	}{
		{"routerlogin.local", true},
		{"www.routerlogin.net.", true},
		{"RouterLogin.NET", true}, // case-insensitive
		{"orbilogin.com", true},
		{"ORBILOGIN.local", true},
		{"netgear-rbr50.local", true},
		{"gateway.local", true},
		{"mygateway.local", true},
		{"Linksys Router", true},
		{"printer.local", false},
		{"media-server.local", false},
		{"chromecast.local", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := consolePattern.MatchString(tt.name); got != tt.shouldMatch {
				t.Errorf("consolePattern.MatchString(%q) = %v, want %v", tt.name, got, tt.shouldMatch)
			}
		})
	}
}

func TestAddConsole(t *testing.T) {
	index := make(map[string]*Console)
	var consoles []*Console

	plain := &Console{Hostname: "routerlogin.local.", IP: "192.168.1.1", Port: 80, Scheme: "http"}
	consoles = addConsole(index, consoles, plain)
	if len(consoles) != 1 {
		t.Fatalf("addConsole() produced %d consoles, want 1", len(consoles))
	}

	// Same console advertised over TLS replaces the plain listing
	secure := &Console{Hostname: "routerlogin.local.", IP: "192.168.1.1", Port: 443, Scheme: "https"}
	consoles = addConsole(index, consoles, secure)
	if len(consoles) != 1 {
		t.Fatalf("addConsole() produced %d consoles after upgrade, want 1", len(consoles))
	}
	if consoles[0].Scheme != "https" || consoles[0].Port != 443 {
		t.Errorf("console after upgrade = %s port %d, want https port 443", consoles[0].Scheme, consoles[0].Port)
	}

	// A later plain listing does not downgrade the TLS one
	repeat := &Console{Hostname: "routerlogin.local.", IP: "192.168.1.1", Port: 80, Scheme: "http"}
	consoles = addConsole(index, consoles, repeat)
	if consoles[0].Scheme != "https" {
		t.Errorf("console.Scheme = %v after duplicate plain listing, want https", consoles[0].Scheme)
	}

	// A different console is appended
	other := &Console{Hostname: "gateway.local.", IP: "192.168.0.1", Port: 80, Scheme: "http"}
	consoles = addConsole(index, consoles, other)
	if len(consoles) != 2 {
		t.Errorf("addConsole() produced %d consoles, want 2", len(consoles))
	}
}

// Note: Integration tests with live mDNS discovery require network access
// and should be run manually with:
// go test -tags=integration ./internal/discovery/

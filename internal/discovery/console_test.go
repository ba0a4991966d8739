package discovery

import (
	"testing"
)

func TestConsole_String(t *testing.T) {
	console := &Console{
		Hostname: "routerlogin.local.",
		IP:       "192.168.1.1",
		Port:     443,
		Scheme:   "https",
	}

	expected := "Router console routerlogin.local at https://192.168.1.1"
	if console.String() != expected {
		t.Errorf("Console.String() = %v, want %v", console.String(), expected)
	}
}

func TestConsole_URL(t *testing.T) {
	tests := []struct {
		name     string
		console  *Console
		expected string
	}{
		{
			name: "default HTTPS port elided",
			console: &Console{
				IP:     "192.168.1.1",
				Port:   443,
				Scheme: "https",
			},
			expected: "https://192.168.1.1",
		},
		{
			name: "default HTTP port elided",
			console: &Console{
				IP:     "10.0.0.1",
				Port:   80,
				Scheme: "http",
			},
			expected: "http://10.0.0.1",
		},
		{
			name: "custom port kept",
			console: &Console{
				IP:     "192.168.1.1",
				Port:   8443,
				Scheme: "https",
			},
			expected: "https://192.168.1.1:8443",
		},
		{
			name: "hostname used when no address",
			console: &Console{
				Hostname: "routerlogin.local.",
				Port:     443,
				Scheme:   "https",
			},
			expected: "https://routerlogin.local",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.console.URL(); got != tt.expected {
				t.Errorf("Console.URL() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConsole_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		console  *Console
		expected string
	}{
		{
			name: "hostname with trailing dot trimmed",
			console: &Console{
				Hostname: "routerlogin.local.",
				Instance: "Netgear Router",
				IP:       "192.168.1.1",
			},
			expected: "routerlogin.local",
		},
		{
			name: "instance when hostname missing",
			console: &Console{
				Instance: "Netgear Router",
				IP:       "192.168.1.1",
			},
			expected: "Netgear Router",
		},
		{
			name: "address as last resort",
			console: &Console{
				IP: "192.168.1.1",
			},
			expected: "192.168.1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.console.DisplayName(); got != tt.expected {
				t.Errorf("Console.DisplayName() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConsole_GetMetadata(t *testing.T) {
	console := &Console{
		Metadata: map[string]string{
			"path":   "/",
			"vendor": "NETGEAR",
		},
	}

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "existing key",
			key:      "path",
			expected: "/",
		},
		{
			name:     "another existing key",
			key:      "vendor",
			expected: "NETGEAR",
		},
		{
			name:     "non-existent key",
			key:      "missing",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := console.GetMetadata(tt.key); got != tt.expected {
				t.Errorf("Console.GetMetadata(%v) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestConsole_GetMetadata_NilMap(t *testing.T) {
	console := &Console{
		Metadata: nil,
	}

	if got := console.GetMetadata("anything"); got != "" {
		t.Errorf("Console.GetMetadata() with nil map = %v, want empty string", got)
	}
}

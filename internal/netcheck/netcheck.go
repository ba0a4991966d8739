package netcheck

import (
	"runtime"
	"strings"

	gnet "github.com/shirou/gopsutil/v3/net"
	"go.uber.org/zap"

	"github.com/muurk/radioctl/internal/logging"
	"github.com/muurk/radioctl/internal/radio"
)

// InterfaceLister enumerates network interfaces. Swapped for a fake in
// tests.
type InterfaceLister func() ([]gnet.InterfaceStat, error)

// tunnelPrefixes are interface names that indicate an active VPN. Plain
// "utun" is excluded: modern macOS keeps idle utun devices up by default,
// and a false positive here would block legitimate attempts.
var tunnelPrefixes = []string{"tun", "tap", "wg", "ppp", "ipsec"}

// Checker verifies the operating environment before any browser session
// is opened. Both checks are advisory and best-effort: an ambiguous state
// lets the pipeline proceed and fail naturally at the browser step.
type Checker struct {
	// TargetNetwork is the Wi-Fi network the access point serves. Empty
	// skips the network-identity check.
	TargetNetwork string

	runner     CommandRunner
	interfaces InterfaceLister
}

// New creates a Checker backed by the host's commands and interfaces.
func New(targetNetwork string) *Checker {
	return NewWithDeps(targetNetwork, &RealCommandRunner{}, func() ([]gnet.InterfaceStat, error) {
		return gnet.Interfaces()
	})
}

// NewWithDeps creates a Checker with injected dependencies for testing.
func NewWithDeps(targetNetwork string, runner CommandRunner, interfaces InterfaceLister) *Checker {
	return &Checker{
		TargetNetwork: targetNetwork,
		runner:        runner,
		interfaces:    interfaces,
	}
}

// Check inspects the active network identity and tunnel state. It returns
// nil when the pipeline should proceed, or the precondition Status that
// short-circuits it. No browser session exists yet at this point.
func (c *Checker) Check() *radio.Status {
	if c.TargetNetwork != "" {
		ssid, determined := c.currentSSID()
		if determined && ssid != c.TargetNetwork && !c.wiredLink() {
			logging.Info("Not joined to target network",
				zap.String("active", ssid),
				zap.String("target", c.TargetNetwork),
			)
			s := radio.StatusNotConnected
			return &s
		}
	}

	if c.vpnActive() {
		logging.Info("Tunnel interface active, console unreachable")
		s := radio.StatusVPNConnected
		return &s
	}

	return nil
}

// currentSSID returns the active Wi-Fi network name. The second return
// is false when the name could not be determined; callers must treat
// that as "unknown", not "wrong network".
func (c *Checker) currentSSID() (string, bool) {
	switch runtime.GOOS {
	case "darwin":
		for _, dev := range []string{"en0", "en1"} {
			out, err := c.runner.Output("networksetup", "-getairportnetwork", dev)
			if err != nil {
				continue
			}
			if name, ok := parseAirportNetwork(string(out)); ok {
				return name, true
			}
		}
		return "", false

	case "linux":
		if out, err := c.runner.Output("iwgetid", "-r"); err == nil {
			if name := strings.TrimSpace(string(out)); name != "" {
				return name, true
			}
		}
		if out, err := c.runner.Output("nmcli", "-t", "-f", "active,ssid", "dev", "wifi"); err == nil {
			if name, ok := parseNmcliActive(string(out)); ok {
				return name, true
			}
		}
		return "", false

	default:
		return "", false
	}
}

// parseAirportNetwork extracts the network name from networksetup output:
// "Current Wi-Fi Network: <name>". Disassociated devices print a message
// without the colon-space separator.
func parseAirportNetwork(out string) (string, bool) {
	line := strings.TrimSpace(out)
	if strings.Contains(line, "not associated") {
		return "", false
	}
	if idx := strings.Index(line, ": "); idx >= 0 {
		if name := strings.TrimSpace(line[idx+2:]); name != "" {
			return name, true
		}
	}
	return "", false
}

// parseNmcliActive extracts the active SSID from terse nmcli output,
// one "active:ssid" pair per line.
func parseNmcliActive(out string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "yes:"); ok {
			if name := strings.TrimSpace(rest); name != "" {
				return name, true
			}
		}
	}
	return "", false
}

// wiredLink reports whether a non-wireless path to the router plausibly
// exists: an up, non-loopback, non-tunnel interface holding a routable
// IPv4 address.
func (c *Checker) wiredLink() bool {
	ifaces, err := c.interfaces()
	if err != nil {
		return false
	}

	for _, iface := range ifaces {
		if !hasFlag(iface, "up") || hasFlag(iface, "loopback") {
			continue
		}
		if isTunnelName(iface.Name) || hasFlag(iface, "pointtopoint") {
			continue
		}
		// macOS Wi-Fi is en0; skipping it here would need airport state,
		// so a connected Wi-Fi on another network counts as a link too.
		// That errs toward proceeding, which is the advisory contract.
		for _, addr := range iface.Addrs {
			if isRoutableIPv4(addr.Addr) {
				return true
			}
		}
	}
	return false
}

// vpnActive detects an active tunnel. On macOS the system VPN list is
// authoritative; elsewhere interface names and flags are the signal.
func (c *Checker) vpnActive() bool {
	if runtime.GOOS == "darwin" {
		if out, err := c.runner.Output("scutil", "--nc", "list"); err == nil {
			return scutilHasConnected(string(out))
		}
		// scutil unavailable: fall through to the interface heuristic.
	}

	ifaces, err := c.interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if !hasFlag(iface, "up") {
			continue
		}
		if isTunnelName(iface.Name) && len(iface.Addrs) > 0 {
			return true
		}
	}
	return false
}

// scutilHasConnected reports whether any VPN service in `scutil --nc
// list` output shows as connected.
func scutilHasConnected(out string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "(Connected)") {
			return true
		}
	}
	return false
}

func isTunnelName(name string) bool {
	lower := strings.ToLower(name)
	for _, prefix := range tunnelPrefixes {
		if strings.HasPrefix(lower, prefix) && lower != "tunl0" {
			return true
		}
	}
	return false
}

func hasFlag(iface gnet.InterfaceStat, flag string) bool {
	for _, f := range iface.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// isRoutableIPv4 filters out link-local and empty addresses. Addr values
// look like "192.168.1.5/24".
func isRoutableIPv4(addr string) bool {
	ip, _, _ := strings.Cut(addr, "/")
	if ip == "" || strings.Contains(ip, ":") {
		return false
	}
	if strings.HasPrefix(ip, "169.254.") || strings.HasPrefix(ip, "127.") {
		return false
	}
	return true
}

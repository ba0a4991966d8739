// Package discovery provides mDNS-based discovery of router admin consoles.
//
// The toggle pipeline connects to a configured console address, but that
// address is vendor-specific and users rarely know it offhand. This package
// browses the local network for web consoles so the discover command can
// print candidate addresses to put in the configuration.
//
// # Discovery Process
//
// The discovery process works as follows:
//  1. Broadcasts mDNS queries for the "_http._tcp" and "_https._tcp"
//     service types on the local network
//  2. Filters advertisements whose hostname or instance name looks like a
//     router admin console (routerlogin, orbilogin, "router", "gateway")
//  3. Collects hostname, address, port, and TXT metadata for each match
//  4. Deduplicates consoles advertised under both service types, preferring
//     the HTTPS listing
//  5. Returns the list after the scan timeout elapses
//
// # Usage Example
//
//	// Discover consoles with a 10-second timeout
//	consoles, err := discovery.Scan(10 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, console := range consoles {
//	    fmt.Println(console) // Router console routerlogin.local at https://192.168.1.1
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - The router must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
//
// Results are advisory. Not every router advertises its console over mDNS,
// and a console that stays silent here can still be reachable at its vendor
// URL.
package discovery

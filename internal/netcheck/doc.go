// Package netcheck verifies the operating environment before a browser
// session is opened: that this machine is joined to the network the
// access point serves, and that no VPN tunnel would misroute the console
// traffic.
//
// Both checks are advisory. The contract errs toward proceeding: an
// SSID that cannot be determined, a missing tool, or an ambiguous
// interface state lets the pipeline continue and fail naturally at the
// browser step. Only a positively identified wrong network or active
// tunnel short-circuits, and neither ever opens a session.
//
// OS commands run behind the CommandRunner interface and interface
// enumeration behind InterfaceLister, so every decision path is testable
// with canned data.
package netcheck

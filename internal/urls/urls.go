package urls

import "strings"

// Console endpoints for the access point's web admin interface.
// The vendor hostname resolves to the gateway itself while joined to its
// network, so these work without knowing the device's LAN address.

// DefaultConsole is the admin console root, where the login form (and,
// on first contact, the certificate interstitial) appears.
const DefaultConsole = "https://routerlogin.net/"

// AdminPage is the advanced-settings page, relative to the console root.
// The wireless status row and the radio controls live under it.
const AdminPage = "adv_index.htm"

// DefaultAdminPage is the absolute advanced-settings URL on the default
// console.
const DefaultAdminPage = DefaultConsole + AdminPage

// Admin returns the advanced-settings URL for the given console root.
func Admin(console string) string {
	if console == "" {
		return DefaultAdminPage
	}
	if !strings.HasSuffix(console, "/") {
		console += "/"
	}
	return console + AdminPage
}

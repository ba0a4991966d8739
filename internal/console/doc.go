// Package console drives the router's web admin interface through a
// browser session. The router exposes no management API; every read and
// write in this package happens by navigating the same pages a human
// administrator would and inspecting or clicking their elements.
//
// # Pipeline
//
// A Controller runs the stages in a fixed order:
//  1. Preflight: rule out conditions under which the console is
//     unreachable (wrong network, active VPN) before anything opens.
//  2. Session: launch the browser. The session is released on every exit
//     path, success or failure.
//  3. Login: dismiss the certificate warning, authenticate, and displace
//     a concurrent admin session when the console asks.
//  4. Inspect: read the radio state off the status page.
//  5. Toggle (writes only): open the wireless settings form, flip the
//     checkbox, and apply. The apply submit happens at most once.
//  6. Verify (writes only): re-read the status page and reconcile the
//     observation against the intent.
//
// # Usage Example
//
//	ctl := console.NewController(
//	    console.DriverFactory{Options: browser.Options{Headless: true}},
//	    netcheck.New("HomeNet"),
//	    store,
//	    console.Options{},
//	)
//
//	status, err := ctl.Status(ctx)
//	fmt.Println(status) // RADIO_ON, RADIO_OFF, ...
//
//	result, err := ctl.Set(ctx, radio.DesiredOff)
//	fmt.Println(result) // SUCCESS, ALREADY_OFF, ...
//
// Operations always return a concrete verdict; the error return carries
// diagnostic detail only.
//
// # Retry Discipline
//
// Page reads are retried under a configurable policy because they are
// side-effect free. Settings submits are never retried: a duplicate
// apply on a change that actually landed would toggle the radio back.
// When the outcome of a submit cannot be confirmed, the run reports
// UNEXPECTED_FAILURE and leaves the router alone.
//
// # Secrecy
//
// Credentials pass through the login flow and are not retained. Neither
// credentials nor page content appear in errors or logs; selectors and
// URLs are the only page context recorded.
package console

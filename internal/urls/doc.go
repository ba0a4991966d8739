// Package urls provides centralized constants for the admin console
// endpoints used throughout the application.
//
// The console URL layout is an external contract owned by the device
// firmware; defining it in a single location means a firmware change is a
// one-file update. Configuration can override every value here, so these
// are defaults, not policy.
//
// Usage:
//
//	import "github.com/muurk/radioctl/internal/urls"
//
//	page.Goto(urls.Admin(cfg.RouterURL))
package urls

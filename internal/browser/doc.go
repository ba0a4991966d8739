// Package browser provides the scoped browser automation driver the
// pipeline runs the admin console through.
//
// The Driver wraps Playwright (Chromium) behind a small operation set:
// navigation, bounded element waits, form interaction, and explicit
// nested-frame entry. Scoped acquisition is the contract: Launch opens
// the engine, browser, context, and page; Close releases them in reverse
// order and is safe on every exit path, including partial launches.
//
// # Bounded waits
//
// No operation sleeps unconditionally. Waits are bounded by
// Options.Timeout and fail with a typed *Error classified as engine,
// navigation, timeout, or structural, so the caller's retry policy can
// distinguish transient timing faults from terminal ones. Classification
// is by operation semantics, not by inspecting Playwright error strings.
//
// # Frames
//
// The console keeps its controls inside nested documents. Lookups only
// succeed there after EnterFrame (by frame name) or EnterFrameAt (by
// iframe selector); ExitFrames returns to the top-level page, as does any
// navigation.
//
// # Sensitive content
//
// Fill values and page body text pass through this package but are never
// logged or returned beyond what a probe needs (BodyContains reports a
// boolean, not content).
package browser

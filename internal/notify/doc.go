// Package notify sends best-effort desktop notifications about run
// outcomes. The zero-value Notifier sends nothing, and messages never
// carry credentials or page content, only the enumerated verdicts.
package notify

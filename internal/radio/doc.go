// Package radio defines the canonical outcome values for radio state
// inspection and toggle operations, and the pure reconciliation logic
// that maps an observed state transition onto one of them.
//
// Every terminal condition in the pipeline maps to exactly one value in
// a closed set. Status is what a read-only inspection reports; Result is
// what a toggle attempt reports. Reconcile derives a Result purely from
// (desired, pre-state, post-state) with no I/O and no hidden state, so
// the mapping can be tested exhaustively.
package radio

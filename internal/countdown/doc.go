// Package countdown replicates the reveal countdown through the shared store.
//
// The shared CountdownStartTime is the only source of truth. Every
// [Coordinator] recomputes the remaining seconds from it on each tick, joins
// a countdown it observes while the start is fresh, clears one that is older
// than the staleness threshold, and runs the mass reveal once when its local
// view reaches zero. The reveal itself is idempotent, so several processes
// reaching zero together is harmless.
package countdown

// Package reconciler implements the core of fluxdom: the hook state
// machine, the context provider/consumer pub-sub, the keyed/positional
// diff-and-mutate reconciler, and the root scheduler that batches state
// updates and orders layout/post-commit effects. See pkg/vdom for the
// immutable node model this package diffs, and pkg/hostdom for the host
// tree interface it mutates through.
package reconciler

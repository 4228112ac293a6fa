// Package vdom defines the immutable virtual node model consumed by
// fluxdom's reconciler: the VNode record, its props bag, the distinguished
// Fragment and ErrorBoundary type markers, and the small set of diff
// utilities (shallow equality, dependency-array equality, child
// flattening) that are pure data operations independent of reconciliation.
//
// Nothing in this package mutates a host tree. It only describes what a
// caller wants rendered.
package vdom

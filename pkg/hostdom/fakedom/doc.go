// Package fakedom is an in-memory, jsdom-style implementation of
// hostdom.Adapter. It exists so fluxdom's own test suite — and downstream
// consumers who want to unit-test components without a real browser — has
// something to reconcile against. It is not part of the reconciler's
// required surface; a real host binding would target an actual DOM
// instead.
package fakedom

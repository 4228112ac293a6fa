package reconciler

import "fmt"

// Fatal programming-error messages. These surface invariant violations that
// no well-behaved caller should ever trigger; they panic immediately rather
// than being routed through the error-boundary pipeline in errorboundary.go.
const (
	errHookOutsideComponent = "[FLUXDOM E001] Hook called outside of component"
	errHookTypeMismatch     = "[FLUXDOM E002] Hook type mismatch. Hooks must be called in same order on each render."
	errNotValidElement      = "[FLUXDOM E003] Object is not a valid element"
)

func hookOrderPanic(expected, got cellKind, index int) {
	panic(fmt.Sprintf("%s (slot %d: expected %s, got %s)", errHookTypeMismatch, index, expected, got))
}

// devHookOrderPanic reports a dev-mode-only hook-sequence divergence: an
// eager length/identity check on the recorded hook-type sequence, which
// catches hooks skipped behind a conditional before the cell-tag check in
// hookstate.go would notice anything at all.
func devHookOrderPanic(format string, args ...any) {
	panic(fmt.Sprintf("[FLUXDOM E002] "+format, args...))
}

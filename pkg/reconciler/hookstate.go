package reconciler

// cellKind tags the variant stored in each hook slot.
type cellKind uint8

const (
	cellState cellKind = iota
	cellReducer
	cellRef
	cellMemo // also used for callback(); identical shape
	cellEffect
	cellContext
)

func (k cellKind) String() string {
	switch k {
	case cellState:
		return "State"
	case cellReducer:
		return "Reducer"
	case cellRef:
		return "Ref"
	case cellMemo:
		return "Memo"
	case cellEffect:
		return "Effect"
	case cellContext:
		return "Context"
	default:
		return "Unknown"
	}
}

// hookCell is a tagged union of every hook slot shape this package defines.
// Only the fields relevant to kind are populated; the rest sit at their zero
// value. A single concrete struct (rather than an interface per kind) keeps
// nextCell's identity stable across a component's lifetime without needing a
// pointer-to-slice-element trick that append could invalidate.
type hookCell struct {
	kind cellKind

	// state / reducer
	value  any
	setter func(any)

	// ref
	// (value doubles as the *vdom.Ref-shaped holder; see hooks.go)

	// memo / callback
	result any
	deps   []any

	// effect
	phase           EffectPhase
	hasDeps         bool
	pendingCallback func() Cleanup
	cleanup         Cleanup

	// context
	provider    *ContextProvider
	unsubscribe func()
}

// HookState is the ordered hook-slot list and cursor for exactly one
// user-function Component. It is created just before that component's first
// render, whether or not the component calls any hook, and lives as long as
// the component.
type HookState struct {
	owner *Component
	cells []*hookCell
	cursor int

	// Dev-mode-only eager sequence diagnostic: records each hook's kind as
	// it's called so a skipped-or-reordered hook is caught immediately
	// instead of surfacing as a confusing type mismatch several cells later.
	order       []cellKind
	orderIndex  int
	renderCount int
}

// startRender resets the cursor (and, in dev mode, the sequence-validation
// index) before invoking the owning component's function.
func (hs *HookState) startRender() {
	hs.cursor = 0
	if DevMode {
		hs.orderIndex = 0
	}
}

// endRender validates, in dev mode, that every hook recorded on the first
// render was seen again on this one.
func (hs *HookState) endRender() {
	if !DevMode {
		return
	}
	if hs.renderCount == 0 {
		hs.renderCount = 1
		return
	}
	if hs.orderIndex < len(hs.order) {
		devHookOrderPanic("hook order changed: expected %d hooks, got %d", len(hs.order), hs.orderIndex)
	}
}

// trackHook is the dev-mode eager diagnostic: it fires the moment a render
// calls more or differently-typed hooks than the first render did (a render
// that calls fewer is caught by endRender), which gives a far better message than waiting for nextCell's positional
// tag check when hooks are skipped behind a conditional rather than merely
// reordered.
func (hs *HookState) trackHook(kind cellKind) {
	if !DevMode {
		return
	}
	if hs.renderCount == 0 {
		hs.order = append(hs.order, kind)
		return
	}
	if hs.orderIndex >= len(hs.order) {
		devHookOrderPanic("extra %s hook at index %d", kind, hs.orderIndex)
	}
	if expected := hs.order[hs.orderIndex]; expected != kind {
		devHookOrderPanic("at index %d: expected %s, got %s", hs.orderIndex, expected, kind)
	}
	hs.orderIndex++
}

// nextCell advances the cursor and returns the cell at that slot, creating
// it (tagged kind) on first encounter. created reports whether this call
// allocated the cell. A tag mismatch against an existing cell is the
// always-on, production-safe half of hook-order validation.
func (hs *HookState) nextCell(kind cellKind) (cell *hookCell, created bool) {
	hs.trackHook(kind)

	idx := hs.cursor
	hs.cursor++

	if idx < len(hs.cells) {
		cell = hs.cells[idx]
		if cell.kind != kind {
			hookOrderPanic(cell.kind, kind, idx)
		}
		return cell, false
	}

	cell = &hookCell{kind: kind}
	hs.cells = append(hs.cells, cell)
	return cell, true
}

// requireHookState returns the process-global current hook state, panicking
// with the fatal programming-error message if no user-function invocation is
// in progress.
func requireHookState() *HookState {
	if currentHookState == nil {
		panic(errHookOutsideComponent)
	}
	return currentHookState
}

// currentHookState is the process-wide slot through which hook calls find
// the HookState of the component being rendered. The reconciler installs and restores it around every user-function
// invocation in reconcile.go, including on panic.
var currentHookState *HookState

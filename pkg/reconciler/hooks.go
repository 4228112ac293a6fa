package reconciler

import "github.com/fluxframe/fluxdom/pkg/vdom"

// Cleanup is the optional function an effect body returns to undo its work
// before the next run or before unmount.
type Cleanup func()

// EffectPhase distinguishes UseLayoutEffect from UseEffect callbacks, which
// the scheduler flushes through two independent queues.
type EffectPhase uint8

const (
	PhaseLayout EffectPhase = iota
	PhasePostCommit
)

// UseState stores one piece of component-local state. initial is either a T
// or a func() T (lazy initializer, evaluated once); the setter accepts
// either a T or a func(T) T (updater), resolved here with a runtime type
// assertion since a generic instantiation is concrete. A setter call always
// schedules an update, even when the new value equals the old one — unlike
// UseReducer's dispatch, which skips scheduling on an unchanged value.
func UseState[T any](initial any) (T, func(any)) {
	hs := requireHookState()
	cell, created := hs.nextCell(cellState)
	comp := hs.owner

	if created {
		var value T
		if fn, ok := initial.(func() T); ok {
			value = fn()
		} else if v, ok := initial.(T); ok {
			value = v
		}
		cell.value = value
		cell.setter = func(next any) {
			cur, _ := cell.value.(T)
			var nv T
			if fn, ok := next.(func(T) T); ok {
				nv = fn(cur)
			} else if v, ok := next.(T); ok {
				nv = v
			}
			cell.value = nv
			comp.root.Schedule(comp, KindUpdate)
		}
	}

	v, _ := cell.value.(T)
	return v, cell.setter
}

// UseReducer stores state that transitions through a reducer. initFn may be
// nil, in which case initialArg is used directly. A dispatch that produces a
// value equal to the current one (by objectIs) skips scheduling.
func UseReducer[S, A any](reducer func(S, A) S, initialArg S, initFn func(S) S) (S, func(A)) {
	hs := requireHookState()
	cell, created := hs.nextCell(cellReducer)
	comp := hs.owner

	if created {
		value := initialArg
		if initFn != nil {
			value = initFn(initialArg)
		}
		cell.value = value
		cell.setter = func(action any) {
			cur, _ := cell.value.(S)
			act, _ := action.(A)
			next := reducer(cur, act)
			if objectIs(cur, next) {
				return
			}
			cell.value = next
			comp.root.Schedule(comp, KindUpdate)
		}
	}

	dispatch := func(action A) { cell.setter(action) }
	v, _ := cell.value.(S)
	return v, dispatch
}

// UseRef returns a stable mutable box that survives every re-render. It is
// deliberately non-generic and returns the same *vdom.Ref type a host
// element's "ref" prop expects, so a ref obtained here can be attached to a
// host element directly without a type mismatch at the reconciler's
// props["ref"].(*vdom.Ref) assertion.
func UseRef(initial any) *vdom.Ref {
	hs := requireHookState()
	cell, created := hs.nextCell(cellRef)
	if created {
		cell.value = &vdom.Ref{Current: initial}
	}
	ref, _ := cell.value.(*vdom.Ref)
	return ref
}

// UseMemo recomputes compute() only when deps changed since the last render
// (by length and per-element identity; see vdom.DepsEqual), reusing the
// prior result otherwise.
func UseMemo[T any](compute func() T, deps []any) T {
	hs := requireHookState()
	cell, created := hs.nextCell(cellMemo)
	if created || !vdom.DepsEqual(cell.deps, deps) {
		cell.result = compute()
		cell.deps = deps
	}
	v, _ := cell.result.(T)
	return v
}

// UseCallback has an identical shape to UseMemo: it memoizes the function
// value itself rather than a computed result, so identity-keyed children
// (via UseMemo or a host element's referential equality check) don't
// resubscribe every render.
func UseCallback[T any](fn T, deps []any) T {
	hs := requireHookState()
	cell, created := hs.nextCell(cellMemo)
	if created || !vdom.DepsEqual(cell.deps, deps) {
		cell.result = fn
		cell.deps = deps
	}
	v, _ := cell.result.(T)
	return v
}

// UseEffect queues fn to run after the dom has committed and the browser
// has had a chance to paint. deps == nil (as opposed to an explicit empty
// slice) means "omitted" and runs the effect every render; this is why the
// signature takes []any rather than a variadic parameter, which cannot
// distinguish "no deps argument" from "an empty spread".
func UseEffect(fn func() Cleanup, deps []any) {
	useEffectImpl(PhasePostCommit, fn, deps)
}

// UseLayoutEffect is UseEffect's synchronous counterpart, flushed before the
// browser paints.
func UseLayoutEffect(fn func() Cleanup, deps []any) {
	useEffectImpl(PhaseLayout, fn, deps)
}

func useEffectImpl(phase EffectPhase, fn func() Cleanup, deps []any) {
	hs := requireHookState()
	cell, created := hs.nextCell(cellEffect)
	comp := hs.owner
	hasDeps := deps != nil

	if created {
		cell.phase = phase
		cell.hasDeps = hasDeps
		cell.deps = deps
		cell.pendingCallback = fn
		comp.root.enqueueEffect(comp, phase)
		return
	}

	rerun := !hasDeps || !vdom.DepsEqual(cell.deps, deps)
	cell.hasDeps = hasDeps
	cell.deps = deps
	if !rerun {
		return
	}

	if cell.cleanup != nil {
		cleanup := cell.cleanup
		cell.cleanup = nil
		safelyRunCleanup(comp, cleanup)
	}
	cell.pendingCallback = fn
	comp.root.enqueueEffect(comp, phase)
}

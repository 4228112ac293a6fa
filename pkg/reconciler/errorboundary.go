package reconciler

import "strings"

// renderPanicValue wraps a user-code error routed through the
// error-boundary pipeline, as distinct from a programming-error panic
// (always one of the bracketed "[FLUXDOM Exxx]" strings in errors.go), which
// must never be caught by a boundary and always propagates untouched.
type renderPanicValue struct{ err any }

func isProgrammingError(r any) bool {
	s, ok := r.(string)
	return ok && strings.HasPrefix(s, "[FLUXDOM")
}

// invokeUserFunc calls fn, converting any panic that escapes it into a
// renderPanicValue so the nearest enclosing runBoundaryBody — or, failing
// that, the root's guardedRun/guardedBackground — can route it through the
// error-boundary ancestor walk. A programming-error panic passes through
// untouched; it is never catchable by application code.
func invokeUserFunc(fn func() any) any {
	var result any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if isProgrammingError(r) {
					panic(r)
				}
				panic(renderPanicValue{err: r})
			}
		}()
		result = fn()
	}()
	return result
}

// runBoundaryBody renders an ErrorBoundary component's children via fn. If a
// descendant's render panics, the partial children list fn was building is
// abandoned and the error is routed to comp's handler prop instead. Go's own
// call-stack unwinding performs the ancestor walk: the nearest enclosing
// runBoundaryBody's recover is the first to see the panic, exactly matching
// "the nearest ErrorBoundary ancestor".
func runBoundaryBody(comp *Component, fn func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		rp, ok := r.(renderPanicValue)
		if !ok {
			panic(r)
		}
		comp.children = nil
		invokeBoundaryHandler(comp, rp.err)
	}()
	fn()
}

// invokeBoundaryHandler calls comp's handler prop. A missing handler, or one
// that itself panics, re-raises a renderPanicValue so an enclosing
// runBoundaryBody (an ancestor boundary) or the root's top-level recover
// gets the next chance at it: if the handler itself throws, continue
// walking with the new error.
func invokeBoundaryHandler(comp *Component, err any) {
	handler, _ := comp.vnode.Props["handler"].(func(any))
	if handler == nil {
		panic(renderPanicValue{err: err})
	}
	failed, next := safeInvokeHandler(handler, err)
	if failed {
		panic(renderPanicValue{err: next})
	}
}

// safeInvokeHandler calls handler(err) and reports whether the handler
// itself panicked, plus the replacement error to continue the ancestor walk
// with if so.
func safeInvokeHandler(handler func(any), err any) (failed bool, newErr any) {
	defer func() {
		if r := recover(); r != nil {
			if isProgrammingError(r) {
				panic(r)
			}
			failed, newErr = true, r
		}
	}()
	handler(err)
	return false, nil
}

// reportDescendantError is the ancestor walk used when an error surfaces
// outside an active render call stack — an effect body or cleanup running
// during a queue flush, where there is no live chain of runBoundaryBody
// frames to unwind through. It performs the same walk manually and, if
// nothing absorbs the error, panics a renderPanicValue for the active
// guardedRun/guardedBackground to record as unhandled and act on.
func reportDescendantError(from *Component, err any) {
	cur := err
	for p := from; p != nil; p = p.parent {
		if p.kind != contentErrorBoundary {
			continue
		}
		handler, _ := p.vnode.Props["handler"].(func(any))
		if handler == nil {
			continue
		}
		failed, next := safeInvokeHandler(handler, cur)
		if !failed {
			return
		}
		cur = next
	}
	panic(renderPanicValue{err: cur})
}

// Package fluxdom is the public surface of the library: building
// elements, mounting them into a host tree, the hook functions, context,
// memoization, and the act() test-mode helper. Everything here is a thin
// re-export over pkg/vdom (the immutable node model) and pkg/reconciler
// (the diff engine and scheduler) — the facade exists so application code
// imports one package instead of three.
package fluxdom

import (
	"github.com/fluxframe/fluxdom/pkg/hostdom"
	"github.com/fluxframe/fluxdom/pkg/reconciler"
	"github.com/fluxframe/fluxdom/pkg/vdom"
)

// Renderable is any value a component function may return or a child slot
// may hold: nil, a bool (rendered as nothing), a string or number (a text
// node), a *VNode, or an arbitrarily nested []any/[]*VNode of the above.
type Renderable = any

// Props holds an element's attributes and children.
type Props = vdom.Props

// VNode is an immutable description of one element.
type VNode = vdom.VNode

// ComponentFunc is a user-defined component: it takes props and returns
// Renderable content.
type ComponentFunc = vdom.ComponentFunc

// Ref is a single-cell mutable holder a host element's "ref" prop targets.
type Ref = vdom.Ref

// MemoComponent is the wrapper Memo produces.
type MemoComponent = vdom.MemoComponent

// DebugSource carries JsxDev call-site metadata.
type DebugSource = vdom.DebugSource

// Fragment groups children without introducing a host wrapper.
var Fragment = vdom.Fragment

// ErrorBoundaryTag is the type marker for an error boundary element; pass
// it as CreateElement's typ argument together with a "handler" prop.
var ErrorBoundaryTag = vdom.ErrorBoundary

// CreateElement builds an immutable VNode.
func CreateElement(typ any, props Props, children ...Renderable) *VNode {
	return vdom.CreateElement(typ, props, children...)
}

// Jsx is the JSX-runtime entry point used by a classic-or-automatic JSX
// transform's generated calls.
func Jsx(typ any, props Props, key any) *VNode {
	return vdom.Jsx(typ, props, key)
}

// JsxDev is Jsx plus call-site debug metadata.
func JsxDev(typ any, props Props, key any, isStatic bool, source *DebugSource, self any) *VNode {
	return vdom.JsxDev(typ, props, key, isStatic, source, self)
}

// IsValidElement reports whether x is a non-nil *VNode.
func IsValidElement(x any) bool {
	return vdom.IsValidElement(x)
}

// ToChildArray flattens nested renderable content into a single ordered
// list with every empty slot (nil, bool) dropped.
func ToChildArray(x any) []any {
	return vdom.ToChildArray(x)
}

// CreateRef allocates a new, empty Ref.
func CreateRef() *Ref {
	return vdom.CreateRef()
}

// Memo wraps component so the reconciler skips re-invoking it when the next
// render's props are shallow-equal to the props it was last invoked with.
func Memo(component ComponentFunc) *MemoComponent {
	return vdom.Memo(component)
}

// ErrorBoundary builds an error-boundary element: handler is called with
// whatever a descendant's render, effect body, or effect cleanup panicked
// with.
func ErrorBoundary(handler func(any), children ...Renderable) *VNode {
	return CreateElement(ErrorBoundaryTag, Props{"handler": handler}, children...)
}

// Adapter is the host-tree interface a render target implements.
type Adapter = hostdom.Adapter

// Node is an opaque handle to a host node.
type Node = hostdom.Node

// Render mounts v into container using adapter, creating container's
// backing Root on first use and reusing it on every later call.
func Render(adapter Adapter, v *VNode, container Node) *reconciler.Root {
	return reconciler.RenderIntoContainer(adapter, v, container)
}

// UnmountComponentAtNode unmounts container's rendered tree, if any, and
// reports whether it did.
func UnmountComponentAtNode(container Node) bool {
	return reconciler.UnmountContainer(container)
}

// UseState stores one piece of component-local state.
func UseState[T any](initial any) (T, func(any)) {
	return reconciler.UseState[T](initial)
}

// UseReducer stores state that transitions through a reducer.
func UseReducer[S, A any](reducer func(S, A) S, initialArg S, initFn func(S) S) (S, func(A)) {
	return reconciler.UseReducer[S, A](reducer, initialArg, initFn)
}

// UseRef returns a stable mutable box that survives every re-render.
func UseRef(initial any) *Ref {
	return reconciler.UseRef(initial)
}

// UseMemo recomputes compute() only when deps changed since the last
// render.
func UseMemo[T any](compute func() T, deps []any) T {
	return reconciler.UseMemo[T](compute, deps)
}

// UseCallback memoizes a function value the same way UseMemo memoizes a
// computed result.
func UseCallback[T any](fn T, deps []any) T {
	return reconciler.UseCallback[T](fn, deps)
}

// Cleanup is the function an effect body may return to undo its work.
type Cleanup = reconciler.Cleanup

// UseEffect queues fn to run after the host tree has committed and the
// browser has had a chance to paint. deps == nil means "omitted": the
// effect runs after every render.
func UseEffect(fn func() Cleanup, deps []any) {
	reconciler.UseEffect(fn, deps)
}

// UseLayoutEffect is UseEffect's synchronous counterpart, flushed before
// paint.
func UseLayoutEffect(fn func() Cleanup, deps []any) {
	reconciler.UseLayoutEffect(fn, deps)
}

// Context is the handle returned by CreateContext.
type Context[T any] = reconciler.Context[T]

// CreateContext allocates a context with the given default value.
func CreateContext[T any](defaultValue T) *Context[T] {
	return reconciler.CreateContext(defaultValue)
}

// UseContext reads the nearest Provider ancestor's current value, or the
// context's default if there is none.
func UseContext[T any](c *Context[T]) T {
	return reconciler.UseContext(c)
}

// Act is the test-mode flush helper: while fn runs, every root's
// default async scheduling is suppressed, and on the outermost Act call's
// return every root with pending work is drained synchronously.
func Act(fn func()) {
	reconciler.Act(fn)
}

// ActChan adapts Act for a callback that kicks off asynchronous work of its
// own, waiting for done to close before draining.
func ActChan(fn func() <-chan struct{}) {
	reconciler.ActChan(fn)
}

// DevMode enables the eager hook-order sequence diagnostic (see
// pkg/reconciler). Off by default.
var DevMode = &reconciler.DevMode

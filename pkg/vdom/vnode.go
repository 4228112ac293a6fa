package vdom

// Props holds attributes and children. Two names are reserved:
// "children" (renderable content) and "ref" (a *Ref the reconciler writes
// the mounted host node into). All other keys are host- or user-level and
// opaque to this package.
type Props map[string]any

// ComponentFunc is a user-function component: it receives its props and
// returns renderable content: nil, a bool, a string, a number, a *VNode, or
// a nested []any/[]*VNode of these.
type ComponentFunc func(props Props) any

// fragmentMarker is the distinguished VNode.Type value identifying a
// fragment: a node that renders its children transparently, contributing
// no host node of its own.
type fragmentMarker struct{}

// Fragment is the fragment type marker. Use it as the type argument to
// CreateElement to group children without introducing a host wrapper.
var Fragment = fragmentMarker{}

// errorBoundaryMarker is the distinguished VNode.Type value identifying an
// error boundary. An error boundary's "handler" prop is invoked with the
// error when a descendant's render, effect body, or effect cleanup panics.
type errorBoundaryMarker struct{}

// ErrorBoundary is the error-boundary type marker.
var ErrorBoundary = errorBoundaryMarker{}

// DebugSource carries jsxDev call-site information. The reconciler never
// reads it; it exists solely so a debug-mode factory has somewhere to put
// it.
type DebugSource struct {
	FileName   string
	LineNumber int
	ColumnNumber int
}

// VNode is an immutable description of a unit of UI: a host tag string, a
// ComponentFunc, Fragment, or ErrorBoundary, together with its props and an
// optional sibling-matching key. VNodes are created by CreateElement/Jsx
// and are never mutated after construction, including by the reconciler.
type VNode struct {
	// Type is a host tag (string), a ComponentFunc, Fragment, ErrorBoundary,
	// or a *MemoComponent wrapping a ComponentFunc.
	Type any

	// Props is this node's attribute/children bag. Never nil after
	// construction via CreateElement/Jsx/JsxDev.
	Props Props

	// Key discriminates this node among its siblings during list-diffing.
	// nil means "no key" (matched positionally among other unkeyed
	// siblings with an equal key of nil).
	Key any

	// Source is present only when constructed via JsxDev and is never
	// consulted by the reconciler.
	Source *DebugSource
}

// Ref is a single-cell mutable holder. The reconciler writes Current at
// mount time with the host node (or, for a user-function component, is
// never targeted directly — refs attach only to host nodes) and clears it
// at unmount, provided the same ref has not already been reassigned to a
// different element in the meantime.
type Ref struct {
	Current any
}

// CreateRef allocates a new, empty Ref.
func CreateRef() *Ref {
	return &Ref{}
}

// IsValidElement reports whether x is a non-nil *VNode. Go's static typing
// makes this a plain type assertion rather than a runtime tag check.
func IsValidElement(x any) bool {
	v, ok := x.(*VNode)
	return ok && v != nil
}

// MemoComponent wraps a ComponentFunc so the reconciler skips re-invoking
// it when the next render's props are ShallowEqual to the props it was
// last invoked with. See the Memo helper in element.go.
type MemoComponent struct {
	Inner ComponentFunc
}

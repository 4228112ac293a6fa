package reconciler

import (
	"fmt"

	"github.com/fluxframe/fluxdom/pkg/hostdom"
	"github.com/fluxframe/fluxdom/pkg/vdom"
)

// contentKind classifies one slot of renderable content to decide which
// arm of the diff algorithm applies.
type contentKind uint8

const (
	contentEmpty contentKind = iota
	contentText
	contentHost
	contentFragment
	contentErrorBoundary
	contentFunction
	contentMemo
)

// Component is the reconciler-internal backing node for one rendered vnode
// position. Exactly one exists per host node the reconciler owns.
type Component struct {
	id uint64

	root   *Root
	parent *Component
	depth  int

	vnode *vdom.VNode
	kind  contentKind
	key   any

	// Host/text components own a single host node.
	hostNode hostdom.Node
	text     string

	// User-function components own child components and a cached flattened
	// list of the top-level host nodes those children contribute.
	children []*Component
	domRoots []hostdom.Node
	hooks    *HookState

	// Set once, during this component's own body, iff it is a context
	// Provider (see context.go). Visible to every descendant walk until
	// this component unmounts.
	contextKey  any
	contextProv *ContextProvider

	// memoProps records the props a *vdom.MemoComponent wrapper was last
	// invoked with, so the next render can shallow-compare and skip.
	memoProps vdom.Props

	inSVG bool

	// unmounted is set once by forgetComponent and makes every later
	// Schedule call for this component (a setter closure fired after its
	// owner is gone) a silent no-op instead of resurrecting queue entries.
	unmounted bool
}

// emptyComponent is the process-wide singleton standing in for every vnode
// position that renders nothing. It carries no mutable per-position state,
// so one instance serves every such position.
var emptyComponent = &Component{kind: contentEmpty}

// domRootsOf returns this component's ordered top-level host nodes (the
// glossary's "dom-roots"): none for an empty component, the single owned
// node for a host/text component, and the concatenation of child dom-roots
// for a user-function component.
func (c *Component) domRootsOf() []hostdom.Node {
	switch c.kind {
	case contentEmpty:
		return nil
	case contentText, contentHost:
		return []hostdom.Node{c.hostNode}
	default:
		return c.domRoots
	}
}

// recomputeDomRoots rebuilds domRoots by concatenating child dom-roots in
// order, and reports whether the result differs from the previous value —
// callers use this to decide whether to keep propagating the change to an
// ancestor that also contributes no host node of its own.
func (c *Component) recomputeDomRoots() (changed bool) {
	next := make([]hostdom.Node, 0, len(c.children))
	for _, child := range c.children {
		next = append(next, child.domRootsOf()...)
	}
	changed = !sameHostNodes(c.domRoots, next)
	c.domRoots = next
	return changed
}

func sameHostNodes(a, b []hostdom.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// propagateDomRootsUpward re-derives dom-roots for ancestors that have no
// host node of their own (fragments and user-function components), stopping
// as soon as one is unchanged or a host-owning ancestor is reached.
func propagateDomRootsUpward(c *Component) {
	for p := c.parent; p != nil; p = p.parent {
		if p.kind == contentHost || p.kind == contentText {
			return
		}
		if !p.recomputeDomRoots() {
			return
		}
	}
}

// classify inspects one slot of renderable content and reports which
// arm of the diff algorithm applies to it.
func classify(content any) contentKind {
	switch v := content.(type) {
	case nil:
		return contentEmpty
	case bool:
		return contentEmpty
	case string:
		return contentText
	case *vdom.VNode:
		return classifyVNodeType(v)
	default:
		if isNumeric(v) {
			return contentText
		}
		panic(fmt.Sprintf("%s: %T", errNotValidElement, content))
	}
}

// classifyVNodeType distinguishes every *vdom.VNode.Type shape: a plain
// host tag string, a user function, a memo wrapper, or one of the two
// comparable zero-size marker values (Fragment, ErrorBoundary).
func classifyVNodeType(v *vdom.VNode) contentKind {
	switch v.Type.(type) {
	case string:
		return contentHost
	case vdom.ComponentFunc:
		return contentFunction
	case *vdom.MemoComponent:
		return contentMemo
	default:
		if v.Type == vdom.Fragment {
			return contentFragment
		}
		if v.Type == vdom.ErrorBoundary {
			return contentErrorBoundary
		}
		panic(fmt.Sprintf("%s: %T", errNotValidElement, v.Type))
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// textOf renders a piece of text-classified content to its string form
// (a text child and a numeric child with identical string
// representations are interchangeable at diff time without a remount").
func textOf(content any) string {
	if s, ok := content.(string); ok {
		return s
	}
	return fmt.Sprint(content)
}

// keyOf extracts the sibling-matching key for one slot of renderable
// content: a vnode's Key field, or "none" (nil) for anything else.
func keyOf(content any) any {
	if v, ok := content.(*vdom.VNode); ok {
		return v.Key
	}
	return nil
}

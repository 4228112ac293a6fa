package hostdom

import "github.com/fluxframe/fluxdom/pkg/vdom"

// Namespace selects which element-creation rules a host node is created
// under. A host tag that begins an SVG-like subtree toggles descendants
// into NamespaceSVG until a foreignObject-style escape hatch (left to the
// adapter) returns to NamespaceHTML.
type Namespace uint8

const (
	NamespaceHTML Namespace = iota
	NamespaceSVG
)

// Node is an opaque handle to a host node. The reconciler never inspects
// it; it only passes instances back to the Adapter that produced them.
type Node any

// Adapter is the complete set of operations the reconciler needs from a
// host tree. Implementations must make InsertAfter a no-op when the node is
// already in the requested position, so that repeated diffs against
// unchanged output never perform a spurious DOM move (which would cost
// focus or restart a CSS transition).
type Adapter interface {
	// CreateElement creates a host element for the given tag in the given
	// namespace. It does not insert the element anywhere.
	CreateElement(tag string, ns Namespace) Node

	// CreateTextNode creates a host text node with the given data. It does
	// not insert the node anywhere.
	CreateTextNode(data string) Node

	// SetTextData overwrites a text node's character data in place.
	SetTextData(node Node, data string)

	// ApplyProps reconciles a host element's properties from prevProps to
	// nextProps. prevProps is nil for a freshly created element (an empty
	// baseline). Applying an unchanged prop set must be a no-op; applying
	// the same nextProps twice must not leave the element in a different
	// state than applying it once.
	ApplyProps(node Node, prevProps, nextProps vdom.Props)

	// InsertAfter inserts node into parent positioned immediately after
	// after, or at the front of parent's children if after is nil. If node
	// is already in exactly that position, InsertAfter must do nothing.
	InsertAfter(parent, node, after Node)

	// Remove detaches node from parent. Removing a node that is not
	// currently a child of parent is a no-op.
	Remove(parent, node Node)

	// OwnerDocument returns the document (or document-equivalent) node
	// that owns container, used when a host element needs to be created in
	// the right document context.
	OwnerDocument(container Node) Node
}

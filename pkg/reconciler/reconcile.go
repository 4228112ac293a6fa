package reconciler

import (
	"github.com/fluxframe/fluxdom/pkg/hostdom"
	"github.com/fluxframe/fluxdom/pkg/vdom"
)

// listDiff reconciles one ordered list of renderable content against the
// Component list that previously rendered it. Matching
// uses the mandated semantics: for each new item, find the first remaining
// previous sibling with an equal key — nil ("no key") matches nil — splice
// it out, and diff against it; previous siblings nothing matched are
// unmounted. Every returned component's dom-roots are inserted positionally
// via the adapter as they're produced, advancing insertAfter.
func listDiff(parent *Component, prev []*Component, newList []any, hostParent hostdom.Node, insertAfter hostdom.Node, depth int) []*Component {
	root := parent.root
	unmatched := append([]*Component(nil), prev...)
	result := make([]*Component, 0, len(newList))
	cursor := insertAfter

	for _, content := range newList {
		key := keyOf(content)
		var existing *Component
		for i, cand := range unmatched {
			if cand.key == key {
				existing = cand
				unmatched = append(unmatched[:i], unmatched[i+1:]...)
				break
			}
		}

		child := diffOne(root, parent, existing, content, depth, hostParent, cursor)
		result = append(result, child)

		for _, node := range child.domRootsOf() {
			root.adapter.InsertAfter(hostParent, node, cursor)
			cursor = node
		}
	}

	for _, leftover := range unmatched {
		unmountComponent(root, leftover, hostParent, false)
	}

	return result
}

// diffOne is the per-position decision point: bail out on
// unchanged vnode identity, update in place on a type match, or unmount and
// remount fresh on a type mismatch.
func diffOne(root *Root, parent *Component, existing *Component, content any, depth int, hostParent, insertAfter hostdom.Node) *Component {
	kind := classify(content)

	if existing != nil {
		if v, ok := content.(*vdom.VNode); ok && existing.vnode == v && !root.pendingUpdate[existing] {
			return existing
		}
	}

	if existing == nil {
		return mountFresh(root, parent, content, kind, depth, hostParent, insertAfter)
	}

	if sameContentType(existing, kind, content) {
		return updateComponent(root, existing, content, kind, hostParent, insertAfter)
	}

	unmountComponent(root, existing, hostParent, false)
	return mountFresh(root, parent, content, kind, depth, hostParent, insertAfter)
}

// sameContentType reports whether existing can be updated in place to
// render content, i.e. whether the two sit on the same type-match arm.
func sameContentType(existing *Component, kind contentKind, content any) bool {
	if existing.kind != kind {
		return false
	}
	switch kind {
	case contentEmpty, contentText, contentFragment, contentErrorBoundary:
		return true
	case contentHost:
		return existing.vnode.Type.(string) == content.(*vdom.VNode).Type.(string)
	case contentFunction:
		return sameFuncPointer(existing.vnode.Type, content.(*vdom.VNode).Type)
	case contentMemo:
		a := existing.vnode.Type.(*vdom.MemoComponent)
		b := content.(*vdom.VNode).Type.(*vdom.MemoComponent)
		return sameFuncPointer(a.Inner, b.Inner)
	default:
		return false
	}
}

// mountFresh allocates a new Component for content and builds its subtree
// from scratch: create a host element or text node (or nothing, for
// empty/fragment/function), apply initial props and ref, and recurse into
// children.
func mountFresh(root *Root, parent *Component, content any, kind contentKind, depth int, hostParent, insertAfter hostdom.Node) *Component {
	if kind == contentEmpty {
		return emptyComponent
	}

	comp := &Component{id: nextID(), root: root, parent: parent, depth: depth, kind: kind}
	if parent != nil {
		comp.inSVG = parent.inSVG
	}

	switch kind {
	case contentText:
		comp.text = textOf(content)
		comp.hostNode = root.adapter.CreateTextNode(comp.text)
		return comp

	case contentHost:
		v := content.(*vdom.VNode)
		comp.vnode = v
		comp.key = v.Key
		tag := v.Type.(string)
		ns := hostdom.NamespaceHTML
		if comp.inSVG || tag == "svg" {
			ns = hostdom.NamespaceSVG
			comp.inSVG = true
		}
		node := root.adapter.CreateElement(tag, ns)
		comp.hostNode = node
		root.adapter.ApplyProps(node, nil, v.Props)
		applyRef(v.Props, node)
		childList := vdom.FlattenChildren(v.Props["children"])
		comp.children = listDiff(comp, nil, childList, node, nil, depth+1)
		return comp

	case contentFragment:
		v, _ := content.(*vdom.VNode)
		comp.vnode = v
		if v != nil {
			comp.key = v.Key
			childList := vdom.FlattenChildren(v.Props["children"])
			comp.children = listDiff(comp, nil, childList, hostParent, insertAfter, depth+1)
		}
		comp.recomputeDomRoots()
		return comp

	case contentErrorBoundary:
		v := content.(*vdom.VNode)
		comp.vnode = v
		comp.key = v.Key
		runBoundaryBody(comp, func() {
			childList := vdom.FlattenChildren(v.Props["children"])
			comp.children = listDiff(comp, nil, childList, hostParent, insertAfter, depth+1)
		})
		comp.recomputeDomRoots()
		return comp

	case contentFunction:
		v := content.(*vdom.VNode)
		comp.vnode = v
		comp.key = v.Key
		renderFunctionComponent(root, comp, v.Type.(vdom.ComponentFunc), v, depth, hostParent, insertAfter, true)
		return comp

	case contentMemo:
		v := content.(*vdom.VNode)
		comp.vnode = v
		comp.key = v.Key
		mc := v.Type.(*vdom.MemoComponent)
		comp.memoProps = v.Props
		renderFunctionComponent(root, comp, mc.Inner, v, depth, hostParent, insertAfter, true)
		return comp
	}

	return comp
}

// updateComponent re-renders existing in place to reflect content (the
// type-match arm of the diff decision).
func updateComponent(root *Root, existing *Component, content any, kind contentKind, hostParent, insertAfter hostdom.Node) *Component {
	switch kind {
	case contentEmpty:
		return existing

	case contentText:
		s := textOf(content)
		if s != existing.text {
			root.adapter.SetTextData(existing.hostNode, s)
			existing.text = s
		}
		return existing

	case contentHost:
		v := content.(*vdom.VNode)
		prevProps := existing.vnode.Props
		root.adapter.ApplyProps(existing.hostNode, prevProps, v.Props)
		updateRef(prevProps, v.Props, existing.hostNode)
		existing.vnode = v
		existing.key = v.Key
		childList := vdom.FlattenChildren(v.Props["children"])
		existing.children = listDiff(existing, existing.children, childList, existing.hostNode, nil, existing.depth+1)
		return existing

	case contentFragment:
		v, _ := content.(*vdom.VNode)
		existing.vnode = v
		if v != nil {
			existing.key = v.Key
			childList := vdom.FlattenChildren(v.Props["children"])
			existing.children = listDiff(existing, existing.children, childList, hostParent, insertAfter, existing.depth+1)
		}
		if existing.recomputeDomRoots() {
			propagateDomRootsUpward(existing)
		}
		return existing

	case contentErrorBoundary:
		v := content.(*vdom.VNode)
		existing.vnode = v
		existing.key = v.Key
		runBoundaryBody(existing, func() {
			childList := vdom.FlattenChildren(v.Props["children"])
			existing.children = listDiff(existing, existing.children, childList, hostParent, insertAfter, existing.depth+1)
		})
		if existing.recomputeDomRoots() {
			propagateDomRootsUpward(existing)
		}
		return existing

	case contentFunction:
		v := content.(*vdom.VNode)
		existing.vnode = v
		renderFunctionComponent(root, existing, v.Type.(vdom.ComponentFunc), v, existing.depth, hostParent, insertAfter, false)
		return existing

	case contentMemo:
		v := content.(*vdom.VNode)
		mc := v.Type.(*vdom.MemoComponent)
		if existing.memoProps != nil && vdom.ShallowEqual(existing.memoProps, v.Props) {
			existing.vnode = v
			existing.memoProps = v.Props
			return existing
		}
		existing.vnode = v
		existing.memoProps = v.Props
		renderFunctionComponent(root, existing, mc.Inner, v, existing.depth, hostParent, insertAfter, false)
		return existing
	}

	return existing
}

// renderFunctionComponent invokes fn under this component's hook state,
// installing and restoring the process-global currentHookState around the
// call, then diffs its output against the component's previous
// children (none, on a fresh mount).
func renderFunctionComponent(root *Root, comp *Component, fn vdom.ComponentFunc, v *vdom.VNode, depth int, hostParent, insertAfter hostdom.Node, isFreshMount bool) {
	if comp.hooks == nil {
		comp.hooks = &HookState{owner: comp}
	}
	hs := comp.hooks
	hs.startRender()

	// This render satisfies any update already queued for comp, so a later
	// pass of the same flush does not render it a second time.
	root.mu.Lock()
	delete(root.pendingUpdate, comp)
	root.mu.Unlock()

	prevHS := currentHookState
	currentHookState = hs

	var output any
	func() {
		defer func() { currentHookState = prevHS }()
		props := v.Props
		output = invokeUserFunc(func() any { return fn(props) })
	}()

	hs.endRender()

	childList := vdom.FlattenChildren(output)
	prevChildren := comp.children
	if isFreshMount {
		prevChildren = nil
	}
	comp.children = listDiff(comp, prevChildren, childList, hostParent, insertAfter, depth+1)
	comp.recomputeDomRoots()
}

// applyRef writes node into props["ref"] on first mount.
func applyRef(props vdom.Props, node hostdom.Node) {
	if ref, ok := props["ref"].(*vdom.Ref); ok && ref != nil {
		ref.Current = node
	}
}

// updateRef handles a host element's ref across a re-render: if the ref
// object itself changed, clear the old one (provided it still points at
// this node — it may already have been reassigned elsewhere) and set the
// new one; if it's the same object, just keep it current.
func updateRef(prevProps, nextProps vdom.Props, node hostdom.Node) {
	prevRef, _ := prevProps["ref"].(*vdom.Ref)
	nextRef, _ := nextProps["ref"].(*vdom.Ref)
	if prevRef == nextRef {
		if nextRef != nil {
			nextRef.Current = node
		}
		return
	}
	if prevRef != nil && prevRef.Current == node {
		prevRef.Current = nil
	}
	if nextRef != nil {
		nextRef.Current = node
	}
}

// clearRef drops node from its ref at unmount, provided the ref hasn't
// already been reassigned to a different element in the meantime.
func clearRef(props vdom.Props, node hostdom.Node) {
	if ref, ok := props["ref"].(*vdom.Ref); ok && ref != nil && ref.Current == node {
		ref.Current = nil
	}
}

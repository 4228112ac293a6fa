package vdom

// CreateElement builds an immutable VNode. typ is a host tag string, a
// ComponentFunc, Fragment, ErrorBoundary, or a *MemoComponent. props may be
// nil, in which case the returned node's Props is an empty, non-nil map.
//
// Children are collapsed into props["children"]:
//   - fewer than two children: children[0], if present, is stored under
//     props["children"] verbatim (it may itself already be a slice);
//   - two or more children: the ordered slice is stored under
//     props["children"].
//   - a "key" entry in props is lifted out to VNode.Key and removed from
//     the stored props; "ref" is left in props for the reconciler to read.
func CreateElement(typ any, props Props, children ...any) *VNode {
	out := cloneProps(props)

	switch len(children) {
	case 0:
	case 1:
		out["children"] = children[0]
	default:
		out["children"] = children
	}

	var key any
	if k, ok := out["key"]; ok {
		key = k
		delete(out, "key")
	}

	return &VNode{Type: typ, Props: out, Key: key}
}

// Jsx is the modern JSX-runtime entry point: key is supplied out of band
// from props (props never carries "key" under this calling convention).
// An empty key ("" or nil) means "no key".
func Jsx(typ any, props Props, key any) *VNode {
	out := cloneProps(props)
	delete(out, "key")

	if s, ok := key.(string); ok && s == "" {
		key = nil
	}

	return &VNode{Type: typ, Props: out, Key: key}
}

// JsxDev is Jsx plus debug-only call-site metadata. isStatic and self are
// accepted for call-site compatibility with a JSX dev transform but are
// never consulted by the reconciler; only source is retained, for tooling
// that wants to map a rendered node back to its call site.
func JsxDev(typ any, props Props, key any, isStatic bool, source *DebugSource, self any) *VNode {
	node := Jsx(typ, props, key)
	node.Source = source
	return node
}

// Memo wraps a ComponentFunc so that the reconciler skips re-invoking it
// when the next render's props are ShallowEqual to the props it was last
// invoked with, reusing the previously rendered subtree instead.
func Memo(component ComponentFunc) *MemoComponent {
	return &MemoComponent{Inner: component}
}

func cloneProps(props Props) Props {
	out := make(Props, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

package reconciler

import "github.com/fluxframe/fluxdom/pkg/hostdom"

// unmountComponent tears down c and every descendant (children first, in
// reverse order): effect cleanups and context unsubscriptions run in reverse hook-cell
// order, refs this component owns are cleared, and its own dom-roots are
// removed from hostParent — unless ancestorRemoving is set, meaning an
// ancestor's own removal already detaches this subtree along with it, which
// recursing into children always sets regardless of this call's own flag.
func unmountComponent(root *Root, c *Component, hostParent hostdom.Node, ancestorRemoving bool) {
	if c == emptyComponent {
		return
	}

	for i := len(c.children) - 1; i >= 0; i-- {
		unmountComponent(root, c.children[i], nil, true)
	}

	runHookCleanups(c)

	if c.kind == contentHost {
		clearRef(c.vnode.Props, c.hostNode)
	}

	if !ancestorRemoving {
		for _, node := range c.domRootsOf() {
			root.adapter.Remove(hostParent, node)
		}
	}

	root.forgetComponent(c)
}

// runHookCleanups walks a component's hook cells in reverse order, running
// every effect's pending cleanup and every context subscription's
// unsubscribe function.
func runHookCleanups(c *Component) {
	if c.hooks == nil {
		return
	}
	cells := c.hooks.cells
	for i := len(cells) - 1; i >= 0; i-- {
		cell := cells[i]
		switch cell.kind {
		case cellEffect:
			if cell.cleanup != nil {
				cleanup := cell.cleanup
				cell.cleanup = nil
				safelyRunCleanup(c, cleanup)
			}
		case cellContext:
			if cell.unsubscribe != nil {
				cell.unsubscribe()
				cell.unsubscribe = nil
			}
		}
	}
}

// safelyRunCleanup runs cleanup, routing a panic that escapes it through the
// error-boundary ancestor walk rather than letting it abort the remaining
// cleanups in this pass.
func safelyRunCleanup(c *Component, cleanup Cleanup) {
	defer func() {
		if r := recover(); r != nil {
			if isProgrammingError(r) {
				panic(r)
			}
			reportDescendantError(c, r)
		}
	}()
	cleanup()
}

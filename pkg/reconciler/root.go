package reconciler

import (
	"sync"

	"github.com/fluxframe/fluxdom/pkg/hostdom"
	"github.com/fluxframe/fluxdom/pkg/vdom"
)

var (
	containerRootsMu sync.Mutex
	containerRoots   = map[hostdom.Node]*Root{}

	allRootsMu sync.Mutex
	allRoots   = map[*Root]bool{}
)

// RenderIntoContainer renders v into container, creating
// container's Root on first use and reusing it on every later call — each
// container owns at most one Root.
func RenderIntoContainer(adapter hostdom.Adapter, v *vdom.VNode, container hostdom.Node) *Root {
	containerRootsMu.Lock()
	r, ok := containerRoots[container]
	if !ok {
		r = newRoot(adapter, container)
		containerRoots[container] = r
		registerRoot(r)
	}
	containerRootsMu.Unlock()

	r.render(v)
	return r
}

// UnmountContainer unmounts container's Root, if one exists, and reports
// whether it did.
func UnmountContainer(container hostdom.Node) bool {
	containerRootsMu.Lock()
	r, ok := containerRoots[container]
	if ok {
		delete(containerRoots, container)
	}
	containerRootsMu.Unlock()

	if !ok {
		return false
	}
	unregisterRoot(r)
	r.unmountSelf()
	return true
}

func (r *Root) unmountSelf() {
	r.guardedBackground(r.unmountSelfRaw)
}

func (r *Root) unmountSelfRaw() {
	r.mu.Lock()
	children := r.rootComponent.children
	r.rootComponent.children = nil
	r.mu.Unlock()
	for _, c := range children {
		unmountComponent(r, c, r.container, false)
	}
}

func registerRoot(r *Root) {
	allRootsMu.Lock()
	allRoots[r] = true
	allRootsMu.Unlock()
}

func unregisterRoot(r *Root) {
	allRootsMu.Lock()
	delete(allRoots, r)
	allRootsMu.Unlock()
}

func snapshotRoots() []*Root {
	allRootsMu.Lock()
	defer allRootsMu.Unlock()
	out := make([]*Root, 0, len(allRoots))
	for r := range allRoots {
		out = append(out, r)
	}
	return out
}

package reconciler

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/fluxframe/fluxdom/pkg/hostdom"
	"github.com/fluxframe/fluxdom/pkg/vdom"
)

// ScheduleKind distinguishes the three queues a Root drains.
type ScheduleKind uint8

const (
	KindUpdate ScheduleKind = iota
	KindLayoutEffect
	KindPostCommitEffect
)

// Root owns one container's rendered tree and the three pending-work queues
// that drive it. Go has no microtask/animation-frame queue of its own, so a
// 0→1 transition on the update or post-commit queue dispatches a goroutine
// to drain it — guarded by mu rather than left as a bare `go` call, since
// the reconciler's own bookkeeping (the Component tree, the pending sets)
// is not safe for concurrent access and only one drain may run at a time
// per root.
type Root struct {
	mu sync.Mutex

	container hostdom.Node
	adapter   hostdom.Adapter

	rootComponent *Component

	pendingUpdate map[*Component]bool

	pendingLayoutEffect []*Component
	inLayoutEffectQueue map[*Component]bool

	pendingPostCommit []*Component
	inPostCommitQueue map[*Component]bool

	updateScheduled     bool
	postCommitScheduled bool

	unhandledErr any
}

func newRoot(adapter hostdom.Adapter, container hostdom.Node) *Root {
	r := &Root{
		container:           container,
		adapter:             adapter,
		pendingUpdate:       make(map[*Component]bool),
		inLayoutEffectQueue: make(map[*Component]bool),
		inPostCommitQueue:   make(map[*Component]bool),
	}
	r.rootComponent = &Component{root: r, depth: -1, kind: contentFragment}
	return r
}

// actDepth is the process-global re-entrant Act() nesting counter.
// While it is non-zero, Schedule never dispatches a background flush
// goroutine; Act itself drains every root on its outermost exit.
var actDepth int32

func schedulingSuspended() bool {
	return atomic.LoadInt32(&actDepth) > 0
}

// Schedule enqueues comp for the given kind of pending work. A
// component that has already been forgotten (unmounted) is silently
// ignored — a dangling setter closure firing after its owner is gone must
// not resurrect it.
func (r *Root) Schedule(comp *Component, kind ScheduleKind) {
	if comp.unmounted {
		return
	}

	switch kind {
	case KindUpdate:
		r.mu.Lock()
		wasEmpty := len(r.pendingUpdate) == 0
		r.pendingUpdate[comp] = true
		dispatch := wasEmpty && !r.updateScheduled && !schedulingSuspended()
		if dispatch {
			r.updateScheduled = true
		}
		r.mu.Unlock()
		if dispatch {
			go r.deferredFlushUpdate()
		}

	case KindLayoutEffect:
		r.mu.Lock()
		if !r.inLayoutEffectQueue[comp] {
			r.inLayoutEffectQueue[comp] = true
			r.pendingLayoutEffect = append(r.pendingLayoutEffect, comp)
		}
		r.mu.Unlock()
		// Never independently scheduled: flushed synchronously at the end
		// of whichever render enqueued it.

	case KindPostCommitEffect:
		r.mu.Lock()
		wasEmpty := len(r.pendingPostCommit) == 0
		if !r.inPostCommitQueue[comp] {
			r.inPostCommitQueue[comp] = true
			r.pendingPostCommit = append(r.pendingPostCommit, comp)
		}
		dispatch := wasEmpty && len(r.pendingPostCommit) > 0 && !r.postCommitScheduled && !schedulingSuspended()
		if dispatch {
			r.postCommitScheduled = true
		}
		r.mu.Unlock()
		if dispatch {
			go r.deferredFlushPostCommit()
		}
	}
}

func (r *Root) enqueueEffect(comp *Component, phase EffectPhase) {
	if phase == PhaseLayout {
		r.Schedule(comp, KindLayoutEffect)
	} else {
		r.Schedule(comp, KindPostCommitEffect)
	}
}

// deferredFlushUpdate runs the full update drain on its own goroutine. The
// scheduled flag stays true for the drain's entire duration — cleared only
// once it returns, via defer, so it's cleared even if the drain panics — so
// that a setter firing from a layout effect mid-drain (when pendingUpdate
// happens to be momentarily empty between flushUpdateRaw's outer-loop
// iterations) re-enqueues into this same running drain instead of spawning
// a second goroutine racing it over the same Component tree.
func (r *Root) deferredFlushUpdate() {
	defer func() {
		r.mu.Lock()
		r.updateScheduled = false
		r.mu.Unlock()
	}()
	r.guardedBackground(r.flushUpdateRaw)
}

func (r *Root) deferredFlushPostCommit() {
	defer func() {
		r.mu.Lock()
		r.postCommitScheduled = false
		r.mu.Unlock()
	}()
	r.guardedBackground(func() { r.runEffectQueue(PhasePostCommit) })
}

// flushUpdateRaw drains pendingUpdate to empty: each iteration takes
// the whole current set, sorted by depth ascending (shallower components
// first, so a parent re-rendering before a child it might replace doesn't
// waste work rediffing a child about to be discarded), re-diffs each still
// dirty entry in place, then flushes layout effects before looping — a
// component scheduled mid-iteration by one of those re-renders is picked up
// by the next iteration of the same loop.
func (r *Root) flushUpdateRaw() {
	for {
		r.mu.Lock()
		if len(r.pendingUpdate) == 0 {
			r.mu.Unlock()
			return
		}
		batch := make([]*Component, 0, len(r.pendingUpdate))
		for c := range r.pendingUpdate {
			batch = append(batch, c)
		}
		r.mu.Unlock()

		sort.Slice(batch, func(i, j int) bool { return batch[i].depth < batch[j].depth })

		for _, c := range batch {
			r.mu.Lock()
			_, stillPending := r.pendingUpdate[c]
			delete(r.pendingUpdate, c)
			r.mu.Unlock()
			if !stillPending || c.unmounted {
				continue
			}
			rediffInPlace(c)
		}

		r.flushLayoutEffects()
	}
}

// rediffInPlace re-renders a function/memo component that was scheduled for
// an update independently of an ongoing top-down render pass, locating
// where in the host tree its subtree currently sits before re-diffing.
func rediffInPlace(c *Component) {
	hostParent, insertAfter := resolveInsertionPoint(c)
	v := c.vnode
	switch c.kind {
	case contentFunction:
		renderFunctionComponent(c.root, c, v.Type.(vdom.ComponentFunc), v, c.depth, hostParent, insertAfter, false)
	case contentMemo:
		mc := v.Type.(*vdom.MemoComponent)
		renderFunctionComponent(c.root, c, mc.Inner, v, c.depth, hostParent, insertAfter, false)
	default:
		return
	}
	propagateDomRootsUpward(c)
}

// resolveInsertionPoint finds where c's subtree currently sits in the host
// tree, for a re-render not nested inside an ongoing parent diff call: walk
// up for the nearest ancestor with a host node (or the container, if none)
// to use as hostParent, and separately walk for the nearest preceding
// sibling with a non-empty dom contribution to use as insertAfter.
func resolveInsertionPoint(c *Component) (hostParent, insertAfter hostdom.Node) {
	p := c.parent
	for p != nil && p.kind != contentHost {
		p = p.parent
	}
	if p != nil {
		hostParent = p.hostNode
	} else {
		hostParent = c.root.container
	}
	insertAfter = precedingHostNode(c)
	return hostParent, insertAfter
}

func precedingHostNode(c *Component) hostdom.Node {
	parent := c.parent
	if parent == nil {
		return nil
	}
	idx := indexIn(parent.children, c)
	if idx > 0 {
		for i := idx - 1; i >= 0; i-- {
			roots := parent.children[i].domRootsOf()
			if len(roots) > 0 {
				return roots[len(roots)-1]
			}
		}
	}
	if parent.kind == contentHost || parent.kind == contentText {
		return nil
	}
	return precedingHostNode(parent)
}

func indexIn(list []*Component, target *Component) int {
	for i, c := range list {
		if c == target {
			return i
		}
	}
	return -1
}

// flushLayoutEffects and flushPostCommitEffects run their respective queues
// to empty, in insertion order.
func (r *Root) flushLayoutEffects()     { r.runEffectQueue(PhaseLayout) }
func (r *Root) flushPostCommitEffects() { r.runEffectQueue(PhasePostCommit) }

func (r *Root) runEffectQueue(phase EffectPhase) {
	for {
		r.mu.Lock()
		var batch []*Component
		if phase == PhaseLayout {
			batch = r.pendingLayoutEffect
			r.pendingLayoutEffect = nil
			for _, c := range batch {
				delete(r.inLayoutEffectQueue, c)
			}
		} else {
			batch = r.pendingPostCommit
			r.pendingPostCommit = nil
			for _, c := range batch {
				delete(r.inPostCommitQueue, c)
			}
		}
		r.mu.Unlock()

		if len(batch) == 0 {
			return
		}

		for _, c := range batch {
			if c.unmounted || c.hooks == nil {
				continue
			}
			runPendingEffectCells(c, phase)
		}
	}
}

// runPendingEffectCells runs every cell on c with a pending callback for
// phase, in hook-cell (insertion) order.
func runPendingEffectCells(c *Component, phase EffectPhase) {
	for _, cell := range c.hooks.cells {
		if cell.kind != cellEffect || cell.phase != phase || cell.pendingCallback == nil {
			continue
		}
		fn := cell.pendingCallback
		cell.pendingCallback = nil
		cleanup, failed, err := safeRunEffectBody(fn)
		if failed {
			reportDescendantError(c, err)
			continue
		}
		cell.cleanup = cleanup
	}
}

func safeRunEffectBody(fn func() Cleanup) (cleanup Cleanup, failed bool, errVal any) {
	defer func() {
		if r := recover(); r != nil {
			if isProgrammingError(r) {
				panic(r)
			}
			failed, errVal = true, r
		}
	}()
	cleanup = fn()
	return cleanup, false, nil
}

// render is the root render entrypoint: diff the root once, then
// flush layout effects synchronously before returning. Post-commit effects
// are left for the background flush (or an enclosing Act) to run later.
func (r *Root) render(v *vdom.VNode) {
	r.guardedRun(func() {
		r.rootComponent.children = listDiff(r.rootComponent, r.rootComponent.children, []any{v}, r.container, nil, 0)
		r.rootComponent.recomputeDomRoots()
		r.flushLayoutEffects()
	})
}

func (r *Root) recordUnhandledError(err any) {
	r.mu.Lock()
	r.unhandledErr = err
	r.mu.Unlock()
}

func (r *Root) forgetComponent(c *Component) {
	c.unmounted = true
	r.mu.Lock()
	delete(r.pendingUpdate, c)
	delete(r.inLayoutEffectQueue, c)
	delete(r.inPostCommitQueue, c)
	r.mu.Unlock()
}

func (r *Root) hasPendingWork() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pendingUpdate) > 0 || len(r.pendingLayoutEffect) > 0 || len(r.pendingPostCommit) > 0
}

// guardedRun executes fn and, if an unhandled render error escapes every
// error boundary, unmounts the root and re-panics the original error so a
// synchronous caller (render, Act) observes the failure: the root
// unmounts its tree and re-throws.
func (r *Root) guardedRun(fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			if rp, ok := rec.(renderPanicValue); ok {
				r.recordUnhandledError(rp.err)
				r.unmountSelfRaw()
				panic(rp.err)
			}
			panic(rec)
		}
	}()
	fn()
}

// guardedBackground is guardedRun's variant for the root's own deferred
// scheduling goroutines, which have no caller to propagate a failure to: it
// logs and unmounts instead of crashing the process.
func (r *Root) guardedBackground(fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			if rp, ok := rec.(renderPanicValue); ok {
				r.recordUnhandledError(rp.err)
				r.unmountSelfRaw()
				log().Error("fluxdom: unhandled error unmounted root", "error", rp.err)
				return
			}
			panic(rec)
		}
	}()
	fn()
}

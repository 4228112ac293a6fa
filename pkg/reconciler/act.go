package reconciler

import "sync/atomic"

// Act is the test-mode flush helper. While any Act call is active —
// including a nested/re-entrant one — every root's default async
// scheduling is suppressed. On the outermost call's return, every root with
// outstanding work is drained synchronously: updates, then layout effects,
// then post-commit effects, repeating until all three queues are empty
// everywhere (an effect scheduling a further update is picked up by the
// next pass). actDepth is decremented via defer so a panicking or
// early-returning callback still leaves the scheduler correctly re-armed
// for a later Act call.
func Act(fn func()) {
	depth := atomic.AddInt32(&actDepth, 1)
	defer atomic.AddInt32(&actDepth, -1)

	fn()

	if depth != 1 {
		return
	}
	drainAllRoots()
}

// ActChan adapts Act for a callback that kicks off asynchronous work of its
// own (the "act(async () => {...})" case upstream frameworks support): it
// waits for done to close — or returns immediately if done is nil — before
// draining. Go has no promise type; a channel is the idiomatic stand-in for
// "a signal that some work has settled".
func ActChan(fn func() <-chan struct{}) {
	depth := atomic.AddInt32(&actDepth, 1)
	defer atomic.AddInt32(&actDepth, -1)

	if done := fn(); done != nil {
		<-done
	}

	if depth != 1 {
		return
	}
	drainAllRoots()
}

func drainAllRoots() {
	for {
		anyWork := false
		for _, r := range snapshotRoots() {
			if !r.hasPendingWork() {
				continue
			}
			anyWork = true
			r.guardedRun(func() {
				r.flushUpdateRaw()
				r.flushLayoutEffects()
				r.flushPostCommitEffects()
			})
		}
		if !anyWork {
			return
		}
	}
}

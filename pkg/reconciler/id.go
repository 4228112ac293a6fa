package reconciler

import "sync/atomic"

// globalIDCounter is the source of unique component IDs and of the
// subscriber tokens that key ContextProvider.subscribers. Component IDs are
// recorded on each Component but not consulted by the reconciler.
var globalIDCounter uint64

func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}

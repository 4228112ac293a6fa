package reconciler

import "github.com/fluxframe/fluxdom/pkg/vdom"

// ContextProvider is the runtime object backing one createContext call's
// nearest Provider ancestor. Rather than re-walking the whole subtree on
// every value change, each consumer subscribes directly to the provider
// instance it found, so a value change notifies exactly the consumers that
// read it.
type ContextProvider struct {
	value       any
	subscribers map[uint64]func()
}

func newContextProvider() *ContextProvider {
	return &ContextProvider{subscribers: make(map[uint64]func())}
}

// subscribe registers fn to run on every value change and returns a
// function that removes it. Subscriber identity is a counter token rather
// than the func value itself, since two distinct closures built from the
// same function literal are not distinguishable by reflect.Value.Pointer.
func (p *ContextProvider) subscribe(fn func()) (unsubscribe func()) {
	id := nextID()
	p.subscribers[id] = fn
	return func() { delete(p.subscribers, id) }
}

// setValue updates the provider's value and, if it actually changed
// (objectIs), notifies every current subscriber. The subscriber list is
// snapshotted first so a listener unsubscribing itself (or another) mid-
// notification can't corrupt the in-progress iteration.
func (p *ContextProvider) setValue(v any) {
	if objectIs(p.value, v) {
		return
	}
	p.value = v

	snapshot := make([]func(), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		snapshot = append(snapshot, fn)
	}
	for _, fn := range snapshot {
		fn()
	}
}

// Context is the handle returned by CreateContext: a default value plus the
// Provider component function to render above whatever subtree should see
// an overridden value.
type Context[T any] struct {
	DefaultValue T
	Provider     vdom.ComponentFunc
}

// CreateContext allocates a context with the given default value (used by
// UseContext when no Provider ancestor exists).
func CreateContext[T any](defaultValue T) *Context[T] {
	c := &Context[T]{DefaultValue: defaultValue}
	c.Provider = func(props vdom.Props) any {
		return renderContextProvider(c, props)
	}
	return c
}

// renderContextProvider is the Provider's component body. It lazily
// allocates this position's ContextProvider on first render (stashed in a
// ref so later renders reuse it) and registers it onto the owning Component
// so findProvider's ancestor walk can see it, then updates the provider's
// value from the "value" prop — falling back to the context's default if
// that key is entirely absent.
func renderContextProvider[T any](c *Context[T], props vdom.Props) any {
	ref := UseRef(nil)
	if ref.Current == nil {
		cp := newContextProvider()
		ref.Current = cp
		comp := requireHookState().owner
		comp.contextKey = c
		comp.contextProv = cp
	}
	cp := ref.Current.(*ContextProvider)

	value := c.DefaultValue
	if raw, present := props["value"]; present {
		if typed, ok := raw.(T); ok {
			value = typed
		}
	}
	cp.setValue(value)

	return props["children"]
}

// findProvider walks comp's ancestors for the nearest Component whose
// contextKey is key, returning its ContextProvider (or nil if there is no
// Provider ancestor).
func findProvider(comp *Component, key any) *ContextProvider {
	for p := comp.parent; p != nil; p = p.parent {
		if p.contextKey == key {
			return p.contextProv
		}
	}
	return nil
}

// UseContext reads the nearest Provider ancestor's current value, or c's
// default if none exists. The ancestor walk happens once, on the
// render that first calls UseContext at this hook position; the found
// provider (or its absence) is cached in the hook cell and every later call
// reads straight from it, subscribing this component for a re-render
// whenever the provider's value changes.
func UseContext[T any](c *Context[T]) T {
	hs := requireHookState()
	cell, created := hs.nextCell(cellContext)
	comp := hs.owner

	if created {
		cell.provider = findProvider(comp, c)
		if cell.provider != nil {
			cell.unsubscribe = cell.provider.subscribe(func() {
				comp.root.Schedule(comp, KindUpdate)
			})
		}
	}

	if cell.provider == nil {
		return c.DefaultValue
	}
	v, ok := cell.provider.value.(T)
	if !ok {
		return c.DefaultValue
	}
	return v
}

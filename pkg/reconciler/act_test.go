package reconciler

import (
	"testing"

	"github.com/fluxframe/fluxdom/pkg/hostdom/fakedom"
	"github.com/fluxframe/fluxdom/pkg/vdom"
)

func TestNestedActDrainsOnlyOnOutermostExit(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	renderCount := 0
	var setCount func(any)

	comp := vdom.ComponentFunc(func(props vdom.Props) any {
		renderCount++
		n, setter := UseState[int](0)
		setCount = setter
		return &vdom.VNode{Type: "span", Props: vdom.Props{"children": []any{n}}}
	})

	Act(func() {
		RenderIntoContainer(adapter, &vdom.VNode{Type: comp}, container)
	})
	if renderCount != 1 {
		t.Fatalf("expected 1 initial render, got %d", renderCount)
	}

	Act(func() {
		Act(func() { setCount(1) })
		if fakedom.Markup(container) != "<div><span>0</span></div>" {
			t.Fatalf("expected the inner Act not to have flushed yet: %s", fakedom.Markup(container))
		}
		setCount(2)
	})

	if renderCount != 2 {
		t.Fatalf("expected exactly one flush across the nested Act calls, got %d renders", renderCount)
	}
	if fakedom.Markup(container) != "<div><span>2</span></div>" {
		t.Fatalf("unexpected markup: %s", fakedom.Markup(container))
	}
}

func TestActChanWaitsForDoneBeforeDraining(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	var setCount func(any)
	comp := vdom.ComponentFunc(func(props vdom.Props) any {
		n, setter := UseState[int](0)
		setCount = setter
		return &vdom.VNode{Type: "span", Props: vdom.Props{"children": []any{n}}}
	})

	Act(func() { RenderIntoContainer(adapter, &vdom.VNode{Type: comp}, container) })

	done := make(chan struct{})
	ActChan(func() <-chan struct{} {
		go func() {
			setCount(7)
			close(done)
		}()
		return done
	})

	if fakedom.Markup(container) != "<div><span>7</span></div>" {
		t.Fatalf("expected the update to be flushed once done closed: %s", fakedom.Markup(container))
	}
}

func TestActChanWithNilChannelDrainsImmediately(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	var setCount func(any)
	comp := vdom.ComponentFunc(func(props vdom.Props) any {
		n, setter := UseState[int](0)
		setCount = setter
		return &vdom.VNode{Type: "span", Props: vdom.Props{"children": []any{n}}}
	})

	Act(func() { RenderIntoContainer(adapter, &vdom.VNode{Type: comp}, container) })

	ActChan(func() <-chan struct{} {
		setCount(9)
		return nil
	})

	if fakedom.Markup(container) != "<div><span>9</span></div>" {
		t.Fatalf("expected a nil done channel to drain immediately: %s", fakedom.Markup(container))
	}
}

func TestActLeavesSchedulerUsableAfterPanickingCallback(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	var setCount func(any)
	renders := 0
	comp := vdom.ComponentFunc(func(props vdom.Props) any {
		renders++
		n, setter := UseState[int](0)
		setCount = setter
		return &vdom.VNode{Type: "span", Props: vdom.Props{"children": []any{n}}}
	})

	Act(func() { RenderIntoContainer(adapter, &vdom.VNode{Type: comp}, container) })

	func() {
		defer func() { recover() }()
		Act(func() { panic("boom") })
	}()

	// A subsequent Act call must still batch and drain correctly.
	Act(func() { setCount(5) })
	if fakedom.Markup(container) != "<div><span>5</span></div>" {
		t.Fatalf("scheduler left in a bad state after a panicking Act callback: %s", fakedom.Markup(container))
	}
}

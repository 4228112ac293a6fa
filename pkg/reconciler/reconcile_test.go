package reconciler

import (
	"testing"

	"github.com/fluxframe/fluxdom/pkg/hostdom/fakedom"
	"github.com/fluxframe/fluxdom/pkg/vdom"
)

func li(key, text string) *vdom.VNode {
	return &vdom.VNode{Type: "li", Key: key, Props: vdom.Props{"children": []any{text}}}
}

func h(tag string, props vdom.Props, children ...any) *vdom.VNode {
	if props == nil {
		props = vdom.Props{}
	}
	if len(children) > 0 {
		props["children"] = children
	}
	return &vdom.VNode{Type: tag, Props: props}
}

func TestRenderBuildsHostTree(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	v := &vdom.VNode{Type: "ul", Props: vdom.Props{"children": []any{
		li("a", "Item 1"),
		li("b", "Item 2"),
	}}}

	RenderIntoContainer(adapter, v, container)

	got := fakedom.Markup(container)
	want := "<div><ul><li>Item 1</li><li>Item 2</li></ul></div>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUnchangedOutputPerformsNoMutation(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	render := func() *vdom.VNode { return h("div", vdom.Props{"class": "a"}, "hi") }

	RenderIntoContainer(adapter, render(), container)
	before := fakedom.Markup(container)

	RenderIntoContainer(adapter, render(), container)
	after := fakedom.Markup(container)

	if before != after {
		t.Fatalf("markup changed across an unchanged render: %q -> %q", before, after)
	}
}

func TestKeyedReorderPreservesHostIdentity(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	mkList := func(order []string) *vdom.VNode {
		items := make([]any, len(order))
		for i, k := range order {
			items[i] = &vdom.VNode{Type: "li", Key: k, Props: vdom.Props{"children": []any{k}}}
		}
		return &vdom.VNode{Type: "ul", Props: vdom.Props{"children": items}}
	}

	RenderIntoContainer(adapter, mkList([]string{"a", "b", "c"}), container)
	ul := container.Children[0]
	firstA := ul.Children[0]
	firstB := ul.Children[1]
	firstC := ul.Children[2]

	RenderIntoContainer(adapter, mkList([]string{"c", "a", "b"}), container)
	ul = container.Children[0]

	if ul.Children[0] != firstC || ul.Children[1] != firstA || ul.Children[2] != firstB {
		t.Fatalf("keyed reorder did not preserve host node identity")
	}
	if fakedom.Markup(container) != "<div><ul><li>c</li><li>a</li><li>b</li></ul></div>" {
		t.Fatalf("unexpected markup after reorder: %s", fakedom.Markup(container))
	}
}

func TestTypeMismatchRemounts(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	RenderIntoContainer(adapter, &vdom.VNode{Type: "span", Props: vdom.Props{"children": []any{"x"}}}, container)
	oldNode := container.Children[0]

	RenderIntoContainer(adapter, &vdom.VNode{Type: "p", Props: vdom.Props{"children": []any{"x"}}}, container)
	newNode := container.Children[0]

	if oldNode == newNode {
		t.Fatalf("expected a fresh host node across a type mismatch")
	}
	if newNode.Tag != "p" {
		t.Fatalf("expected a <p>, got <%s>", newNode.Tag)
	}
}

func TestStateUpdateBatchesThroughAct(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	var setCount func(any)
	renderCount := 0

	counter := vdom.ComponentFunc(func(props vdom.Props) any {
		renderCount++
		n, setter := UseState[int](0)
		setCount = setter
		return &vdom.VNode{Type: "span", Props: vdom.Props{"children": []any{n}}}
	})

	Act(func() {
		RenderIntoContainer(adapter, &vdom.VNode{Type: counter, Props: vdom.Props{}}, container)
	})
	if renderCount != 1 {
		t.Fatalf("expected 1 initial render, got %d", renderCount)
	}

	Act(func() {
		setCount(1)
		setCount(2)
		setCount(3)
	})

	if renderCount != 2 {
		t.Fatalf("expected exactly one additional render for 3 batched updates, got %d renders total", renderCount)
	}
	if fakedom.Markup(container) != "<div><span>3</span></div>" {
		t.Fatalf("unexpected markup: %s", fakedom.Markup(container))
	}
}

func TestEffectRunsOnceWithEmptyDeps(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	runs := 0
	cleanups := 0
	var rerender func(any)

	comp := vdom.ComponentFunc(func(props vdom.Props) any {
		n, setter := UseState[int](0)
		rerender = setter
		UseEffect(func() Cleanup {
			runs++
			return func() { cleanups++ }
		}, []any{})
		return &vdom.VNode{Type: "span", Props: vdom.Props{"children": []any{n}}}
	})

	Act(func() {
		RenderIntoContainer(adapter, &vdom.VNode{Type: comp, Props: vdom.Props{}}, container)
	})
	if runs != 1 {
		t.Fatalf("expected effect to run once after mount, got %d", runs)
	}

	Act(func() { rerender(1) })
	Act(func() { rerender(2) })

	if runs != 1 {
		t.Fatalf("expected effect with empty deps to run exactly once, got %d", runs)
	}
	if cleanups != 0 {
		t.Fatalf("expected no cleanup while the component stays mounted, got %d", cleanups)
	}

	UnmountContainer(container)
	if cleanups != 1 {
		t.Fatalf("expected cleanup to run once on unmount, got %d", cleanups)
	}
}

func TestErrorBoundaryScopesFailure(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	var caught any
	handler := func(err any) { caught = err }

	broken := vdom.ComponentFunc(func(props vdom.Props) any {
		panic("boom")
	})
	sibling := vdom.ComponentFunc(func(props vdom.Props) any {
		return &vdom.VNode{Type: "span", Props: vdom.Props{"children": []any{"sibling"}}}
	})

	boundary := &vdom.VNode{
		Type: vdom.ErrorBoundary,
		Props: vdom.Props{
			"handler":  handler,
			"children": []any{&vdom.VNode{Type: broken}, &vdom.VNode{Type: sibling}},
		},
	}

	Act(func() { RenderIntoContainer(adapter, boundary, container) })

	if caught != "boom" {
		t.Fatalf("expected handler to be called with the panic value, got %v", caught)
	}
	if len(container.Children) != 0 {
		t.Fatalf("expected no host output while the boundary has no fallback, got %s", fakedom.Markup(container))
	}
}

func TestContextOverride(t *testing.T) {
	adapter := fakedom.NewAdapter()
	container := adapter.NewContainer("div")

	ctx := CreateContext("default")

	consumer := vdom.ComponentFunc(func(props vdom.Props) any {
		v := UseContext(ctx)
		return &vdom.VNode{Type: "span", Props: vdom.Props{"children": []any{v}}}
	})

	tree := &vdom.VNode{
		Type: ctx.Provider,
		Props: vdom.Props{
			"value":    "override",
			"children": []any{&vdom.VNode{Type: consumer}},
		},
	}

	Act(func() { RenderIntoContainer(adapter, tree, container) })

	if got := fakedom.Markup(container); got != "<div><span>override</span></div>" {
		t.Fatalf("unexpected markup: %s", got)
	}
}

package fakedom

import (
	"fmt"
	"strings"

	"github.com/fluxframe/fluxdom/pkg/hostdom"
	"github.com/fluxframe/fluxdom/pkg/vdom"
)

// Adapter implements hostdom.Adapter over an in-memory Node tree.
type Adapter struct {
	doc *Node
}

// NewAdapter creates a fresh fakedom adapter with its own document node.
func NewAdapter() *Adapter {
	return &Adapter{doc: newNode(KindDocument, "")}
}

// NewContainer creates a detached element to use as a render container,
// analogous to a <div> obtained from document.createElement in a real DOM.
func (a *Adapter) NewContainer(tag string) *Node {
	n := newNode(KindElement, tag)
	return n
}

func (a *Adapter) CreateElement(tag string, ns hostdom.Namespace) hostdom.Node {
	return newNode(KindElement, tag)
}

func (a *Adapter) CreateTextNode(data string) hostdom.Node {
	n := newNode(KindText, "")
	n.Text = data
	return n
}

func (a *Adapter) SetTextData(node hostdom.Node, data string) {
	n := node.(*Node)
	n.Text = data
}

func (a *Adapter) ApplyProps(node hostdom.Node, prevProps, nextProps vdom.Props) {
	n := node.(*Node)
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	if n.Handlers == nil {
		n.Handlers = make(map[string]any)
	}

	for key, val := range prevProps {
		if isReserved(key) {
			continue
		}
		if _, stillPresent := nextProps[key]; stillPresent {
			continue
		}
		if isEventProp(key) {
			delete(n.Handlers, key)
		} else {
			delete(n.Attrs, key)
		}
		_ = val
	}

	for key, val := range nextProps {
		if isReserved(key) {
			continue
		}
		if isEventProp(key) {
			n.Handlers[key] = val
			continue
		}
		if prev, ok := prevProps[key]; ok && fmt.Sprint(prev) == fmt.Sprint(val) {
			continue
		}
		n.Attrs[key] = fmt.Sprint(val)
	}
}

func (a *Adapter) InsertAfter(parent, node, after hostdom.Node) {
	p := parent.(*Node)
	n := node.(*Node)

	curIdx := p.IndexOf(n)

	// Compute the target index as if n were not already present.
	without := p.Children
	if curIdx >= 0 {
		without = append(append([]*Node{}, p.Children[:curIdx]...), p.Children[curIdx+1:]...)
	}

	var target int
	if after == nil {
		target = 0
	} else {
		af := after.(*Node)
		idx := -1
		for i, c := range without {
			if c == af {
				idx = i
				break
			}
		}
		if idx < 0 {
			target = len(without)
		} else {
			target = idx + 1
		}
	}

	// No-op if n is already exactly at the target position.
	if curIdx == target {
		return
	}

	n.Parent = p
	out := make([]*Node, 0, len(without)+1)
	out = append(out, without[:target]...)
	out = append(out, n)
	out = append(out, without[target:]...)
	p.Children = out
}

func (a *Adapter) Remove(parent, node hostdom.Node) {
	p := parent.(*Node)
	n := node.(*Node)
	idx := p.IndexOf(n)
	if idx < 0 {
		return
	}
	p.Children = append(p.Children[:idx], p.Children[idx+1:]...)
	n.Parent = nil
}

func (a *Adapter) OwnerDocument(container hostdom.Node) hostdom.Node {
	return a.doc
}

func isReserved(key string) bool {
	return key == "children" || key == "ref" || key == "key"
}

func isEventProp(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}

package vdom

import "reflect"

// IsEmptyChild reports whether a piece of renderable content renders
// nothing: nil, or a bool (React/Preact-style "true"/"false children are
// not rendered" convention). Strings and numbers render as text; *VNode
// and nested sequences render their contents.
func IsEmptyChild(x any) bool {
	if x == nil {
		return true
	}
	_, isBool := x.(bool)
	return isBool
}

// FlattenChildren linearizes arbitrarily nested renderable-content
// sequences ([]any, []*VNode) into a single ordered list in depth-first
// encounter order. Empty children (nil, bool) are preserved in the
// output — callers that want them removed should use ToChildArray.
func FlattenChildren(x any) []any {
	var out []any
	flattenInto(x, &out)
	return out
}

func flattenInto(x any, out *[]any) {
	switch v := x.(type) {
	case nil:
		*out = append(*out, nil)
	case []any:
		for _, child := range v {
			flattenInto(child, out)
		}
	case []*VNode:
		for _, child := range v {
			flattenInto(child, out)
		}
	default:
		*out = append(*out, v)
	}
}

// ToChildArray flattens x and drops every empty slot (nil, bool), leaving
// only *VNode, string, and numeric entries in encounter order. This is the
// convenience surface exposed to user code; the reconciler's own
// child-list handling uses FlattenChildren directly so that empty slots
// still occupy a position matched against the shared empty component.
func ToChildArray(x any) []any {
	flat := FlattenChildren(x)
	out := make([]any, 0, len(flat))
	for _, c := range flat {
		if !IsEmptyChild(c) {
			out = append(out, c)
		}
	}
	return out
}

// ShallowEqual reports whether two prop bags have the same keys, each
// mapping to an identical value. "Identical" follows valuesIdentical
// below: primitive values compare by ==, reference types (pointers,
// funcs, slices, maps, channels) compare by identity, everything else is
// considered unequal unless it is the exact same interface value.
func ShallowEqual(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !valuesIdentical(av, bv) {
			return false
		}
	}
	return true
}

// DepsEqual reports whether two dependency arrays have the same length and
// pairwise-identical elements, using the same identity rule as
// ShallowEqual.
func DepsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !valuesIdentical(a[i], b[i]) {
			return false
		}
	}
	return true
}

// valuesIdentical implements a JavaScript-===-like comparison over `any`
// values: comparable kinds compare by value/identity directly; slices,
// maps, and funcs (which Go cannot compare with ==) compare by identity of
// their underlying data pointer, matching "the same object" the way a
// dynamically typed host would see it.
func valuesIdentical(a, b any) (equal bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}

	switch av.Kind() {
	case reflect.Slice:
		return !av.IsNil() && !bv.IsNil() && av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	case reflect.Map, reflect.Func, reflect.Chan:
		return av.Pointer() == bv.Pointer()
	default:
		defer func() {
			if recover() != nil {
				equal = false
			}
		}()
		return a == b
	}
}

package vdom

import "testing"

func TestFlattenChildrenDepthFirst(t *testing.T) {
	a := CreateElement("a", nil)
	b := CreateElement("b", nil)
	c := CreateElement("c", nil)

	nested := []any{a, []any{nil, b, []any{c}}, true}
	flat := FlattenChildren(nested)

	want := []any{a, nil, b, c, true}
	if len(flat) != len(want) {
		t.Fatalf("len(flat) = %d, want %d: %v", len(flat), len(want), flat)
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("flat[%d] = %v, want %v", i, flat[i], want[i])
		}
	}
}

func TestToChildArrayDropsEmpties(t *testing.T) {
	a := CreateElement("a", nil)
	kids := ToChildArray([]any{nil, a, false, true, "text", 0})
	want := []any{a, "text", 0}
	if len(kids) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(kids), len(want), kids)
	}
	for i := range want {
		if kids[i] != want[i] {
			t.Fatalf("kids[%d] = %v, want %v", i, kids[i], want[i])
		}
	}
}

func TestIsEmptyChild(t *testing.T) {
	cases := []struct {
		v    any
		want bool
	}{
		{nil, true},
		{true, true},
		{false, true},
		{0, false},
		{"", false},
		{CreateElement("div", nil), false},
	}
	for _, c := range cases {
		if got := IsEmptyChild(c.v); got != c.want {
			t.Errorf("IsEmptyChild(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestShallowEqual(t *testing.T) {
	if !ShallowEqual(Props{"a": 1, "b": "x"}, Props{"a": 1, "b": "x"}) {
		t.Fatal("identical prop bags should be shallow-equal")
	}
	if ShallowEqual(Props{"a": 1}, Props{"a": 2}) {
		t.Fatal("differing values should not be shallow-equal")
	}
	if ShallowEqual(Props{"a": 1}, Props{"a": 1, "b": 2}) {
		t.Fatal("differing key sets should not be shallow-equal")
	}

	fn := func() {}
	if !ShallowEqual(Props{"onClick": fn}, Props{"onClick": fn}) {
		t.Fatal("the same function value should be identical")
	}

	s1 := []int{1, 2}
	if ShallowEqual(Props{"list": s1}, Props{"list": []int{1, 2}}) {
		t.Fatal("two distinct slices are never === in the host language sense")
	}
	if !ShallowEqual(Props{"list": s1}, Props{"list": s1}) {
		t.Fatal("the same slice value should be identical")
	}
}

func TestDepsEqual(t *testing.T) {
	if !DepsEqual([]any{1, "a"}, []any{1, "a"}) {
		t.Fatal("equal deps should compare equal")
	}
	if DepsEqual([]any{1}, []any{1, 2}) {
		t.Fatal("different lengths should not be equal")
	}
	if DepsEqual([]any{1}, []any{2}) {
		t.Fatal("different values should not be equal")
	}
}

func TestValuesIdenticalNilHandling(t *testing.T) {
	if !valuesIdentical(nil, nil) {
		t.Fatal("nil should equal nil")
	}
	if valuesIdentical(nil, 0) {
		t.Fatal("nil should not equal zero value")
	}
}

package vdom

import "testing"

func TestCreateElementNilProps(t *testing.T) {
	node := CreateElement("div", nil)
	if node.Props == nil {
		t.Fatal("Props must never be nil")
	}
	if len(node.Props) != 0 {
		t.Fatalf("expected empty props, got %v", node.Props)
	}
}

func TestCreateElementSingleChildVerbatim(t *testing.T) {
	child := CreateElement("span", nil)
	node := CreateElement("div", nil, child)
	if node.Props["children"] != any(child) {
		t.Fatalf("single child should be stored verbatim, got %v", node.Props["children"])
	}
}

func TestCreateElementMultipleChildrenOrderedSlice(t *testing.T) {
	a := CreateElement("span", nil)
	b := CreateElement("span", nil)
	node := CreateElement("div", nil, a, b)
	kids, ok := node.Props["children"].([]any)
	if !ok || len(kids) != 2 || kids[0] != any(a) || kids[1] != any(b) {
		t.Fatalf("expected ordered slice of two children, got %v", node.Props["children"])
	}
}

func TestCreateElementLiftsKey(t *testing.T) {
	node := CreateElement("li", Props{"key": "a", "class": "x"})
	if node.Key != "a" {
		t.Fatalf("expected key lifted to VNode.Key, got %v", node.Key)
	}
	if _, present := node.Props["key"]; present {
		t.Fatal("key must be removed from Props")
	}
	if node.Props["class"] != "x" {
		t.Fatal("other props must survive")
	}
}

func TestCreateElementKeyAbsentIsNil(t *testing.T) {
	node := CreateElement("li", nil)
	if node.Key != nil {
		t.Fatalf("expected nil key, got %v", node.Key)
	}
}

func TestCreateElementRetainsRef(t *testing.T) {
	ref := CreateRef()
	node := CreateElement("input", Props{"ref": ref})
	if node.Props["ref"] != any(ref) {
		t.Fatal("ref must be retained in props for the reconciler to read")
	}
}

func TestCreateElementDoesNotMutateCallerProps(t *testing.T) {
	original := Props{"key": "a"}
	CreateElement("li", original)
	if _, present := original["key"]; !present {
		t.Fatal("CreateElement must clone props, not mutate the caller's map")
	}
}

func TestIsValidElement(t *testing.T) {
	if !IsValidElement(CreateElement("div", nil)) {
		t.Fatal("a *VNode must be a valid element")
	}
	if IsValidElement("div") {
		t.Fatal("a string is not a valid element")
	}
	if IsValidElement(nil) {
		t.Fatal("nil is not a valid element")
	}
	var nilNode *VNode
	if IsValidElement(nilNode) {
		t.Fatal("a nil *VNode is not a valid element")
	}
}

func TestJsxEmptyStringKeyIsNoKey(t *testing.T) {
	node := Jsx("div", Props{}, "")
	if node.Key != nil {
		t.Fatalf("empty string key should normalize to nil, got %v", node.Key)
	}
}

func TestJsxDevCarriesSource(t *testing.T) {
	src := &DebugSource{FileName: "app.go", LineNumber: 10}
	node := JsxDev("div", Props{}, nil, true, src, nil)
	if node.Source != src {
		t.Fatal("JsxDev must attach the debug source")
	}
}

func TestMemoWrapsComponent(t *testing.T) {
	called := false
	fn := ComponentFunc(func(Props) any { called = true; return nil })
	m := Memo(fn)
	m.Inner(nil)
	if !called {
		t.Fatal("Memo must wrap the original function reachably")
	}
}

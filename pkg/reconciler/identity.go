package reconciler

import "reflect"

// objectIs implements a JavaScript-Object.is-like comparison: UseReducer's
// dispatch uses it to decide whether a new value actually differs from the
// old one before scheduling an update, and ContextProvider.setValue uses it
// to decide whether to notify subscribers. Grounded on the same approach as
// vdom.valuesIdentical; kept as a small local copy rather than exporting
// that helper, since the two packages' equality needs (prop-bag members vs.
// a single hook value) are conceptually separate.
func objectIs(a, b any) (equal bool) {
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

func sameFuncPointer(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// Package assert provides a minimal set of test assertions used across
// the extension tests. It is intentionally tiny, for anything more
// expressive use a full assertion library.
package assert

import (
	"reflect"
	"testing"
)

// Nil fails the test if the value is not nil.
func Nil(t testing.TB, value interface{}) {
	t.Helper()
	if !isNil(value) {
		t.Fatalf("want a nil value, got %#v", value)
	}
}

// NotNil fails the test if the value is nil.
func NotNil(t testing.TB, value interface{}) {
	t.Helper()
	if isNil(value) {
		t.Fatal("want a not nil value")
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// Equal fails the test if the two values are not deeply equal.
func Equal(t testing.TB, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Logf("want %#v", want)
		t.Logf(" got %#v", got)
		t.Fatal("values not equal")
	}
}

// Panics runs the function and fails the test if it does not panic.
func Panics(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	fn()
}

// IsErr fails the test if got is not classified as the want error.
// A nil want matches only a nil got.
func IsErr(t testing.TB, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	type iser interface {
		Is(error) bool
	}
	if w, ok := want.(iser); ok && w.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}

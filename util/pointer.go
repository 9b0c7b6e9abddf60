package util

import (
	"reflect"

	"github.com/napalu/jsonhelp/errs"
)

// UnwrapValue recursively unwraps pointer and returns the underlying value
func UnwrapValue(v reflect.Value) (reflect.Value, error) {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, errs.ErrNilPointer
		}
		v = v.Elem()
	}
	return v, nil
}

// UnwrapType recursively unwraps pointer types and returns the underlying type
func UnwrapType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

package option

import "reflect"

// IsNil reports whether i is the nil sentinel: a nil interface value or
// a nil pointer, map, slice, func or channel.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

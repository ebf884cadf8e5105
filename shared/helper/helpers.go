package helper

import (
	"fmt"
)

// GetTypedValueOf safely asserts the result of an invocation to the
// expected type T. It composes directly with the dynamic call convention:
//
//	n, err := helper.GetTypedValueOf[int](func() (any, error) {
//		return subFive.Invoke(partial.Args{10}, nil)
//	})
//
// Returns an error if the invocation fails or the type assertion does not hold.
func GetTypedValueOf[T any](invokeFn func() (any, error)) (T, error) {
	var zero T

	res, err := invokeFn()
	if err != nil {
		return zero, fmt.Errorf("failed to invoke: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected result type: %T", res)
	}

	return val, nil
}

// GetTypedValueOf2 safely asserts the result of a getter function to the
// expected type T, for getters reporting presence instead of an error.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
// Use when failure should be fatal (e.g., a deterministic target invoked
// with known-good arguments).
func MustGetTypedValue[T any](invokeFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](invokeFn)
	if err != nil {
		panic(err)
	}
	return res
}

package partialfn

import (
	"fmt"

	"github.com/on-the-ground/partial_ive_go/partial"
)

var (
	// ErrArity reports a call whose merged argument count does not match
	// the lifted function's arity.
	ErrArity = fmt.Errorf("argument count mismatch")

	// ErrKeywordArgs reports keyword arguments passed to a lifted plain
	// function, which accepts none.
	ErrKeywordArgs = fmt.Errorf("unexpected keyword arguments")

	// ErrArgType reports a merged argument whose dynamic type does not
	// match the lifted function's parameter type.
	ErrArgType = fmt.Errorf("argument type mismatch")
)

// LiftI1O1 adapts a typed one-argument function into a partial.Invocable target.
func LiftI1O1[I1, O1 any](fn func(I1) O1) partial.Func {
	return func(args partial.Args, kwargs partial.KwArgs) (any, error) {
		if err := checkShape(1, args, kwargs); err != nil {
			return nil, err
		}
		i1, err := argAt[I1](args, 0)
		if err != nil {
			return nil, err
		}
		return fn(i1), nil
	}
}

// LiftI2O1 adapts a typed two-argument function into a partial.Invocable target.
func LiftI2O1[I1, I2, O1 any](fn func(I1, I2) O1) partial.Func {
	return func(args partial.Args, kwargs partial.KwArgs) (any, error) {
		if err := checkShape(2, args, kwargs); err != nil {
			return nil, err
		}
		i1, err := argAt[I1](args, 0)
		if err != nil {
			return nil, err
		}
		i2, err := argAt[I2](args, 1)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2), nil
	}
}

// LiftI3O1 adapts a typed three-argument function into a partial.Invocable target.
func LiftI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1) partial.Func {
	return func(args partial.Args, kwargs partial.KwArgs) (any, error) {
		if err := checkShape(3, args, kwargs); err != nil {
			return nil, err
		}
		i1, err := argAt[I1](args, 0)
		if err != nil {
			return nil, err
		}
		i2, err := argAt[I2](args, 1)
		if err != nil {
			return nil, err
		}
		i3, err := argAt[I3](args, 2)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2, i3), nil
	}
}

// LiftI4O1 adapts a typed four-argument function into a partial.Invocable target.
func LiftI4O1[I1, I2, I3, I4, O1 any](fn func(I1, I2, I3, I4) O1) partial.Func {
	return func(args partial.Args, kwargs partial.KwArgs) (any, error) {
		if err := checkShape(4, args, kwargs); err != nil {
			return nil, err
		}
		i1, err := argAt[I1](args, 0)
		if err != nil {
			return nil, err
		}
		i2, err := argAt[I2](args, 1)
		if err != nil {
			return nil, err
		}
		i3, err := argAt[I3](args, 2)
		if err != nil {
			return nil, err
		}
		i4, err := argAt[I4](args, 3)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2, i3, i4), nil
	}
}

// LiftI1O1E adapts a typed one-argument fallible function. The function's
// own error propagates unchanged.
func LiftI1O1E[I1, O1 any](fn func(I1) (O1, error)) partial.Func {
	return func(args partial.Args, kwargs partial.KwArgs) (any, error) {
		if err := checkShape(1, args, kwargs); err != nil {
			return nil, err
		}
		i1, err := argAt[I1](args, 0)
		if err != nil {
			return nil, err
		}
		return fn(i1)
	}
}

// LiftI2O1E adapts a typed two-argument fallible function.
func LiftI2O1E[I1, I2, O1 any](fn func(I1, I2) (O1, error)) partial.Func {
	return func(args partial.Args, kwargs partial.KwArgs) (any, error) {
		if err := checkShape(2, args, kwargs); err != nil {
			return nil, err
		}
		i1, err := argAt[I1](args, 0)
		if err != nil {
			return nil, err
		}
		i2, err := argAt[I2](args, 1)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2)
	}
}

// LiftI3O1E adapts a typed three-argument fallible function.
func LiftI3O1E[I1, I2, I3, O1 any](fn func(I1, I2, I3) (O1, error)) partial.Func {
	return func(args partial.Args, kwargs partial.KwArgs) (any, error) {
		if err := checkShape(3, args, kwargs); err != nil {
			return nil, err
		}
		i1, err := argAt[I1](args, 0)
		if err != nil {
			return nil, err
		}
		i2, err := argAt[I2](args, 1)
		if err != nil {
			return nil, err
		}
		i3, err := argAt[I3](args, 2)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2, i3)
	}
}

// LiftI4O1E adapts a typed four-argument fallible function.
func LiftI4O1E[I1, I2, I3, I4, O1 any](fn func(I1, I2, I3, I4) (O1, error)) partial.Func {
	return func(args partial.Args, kwargs partial.KwArgs) (any, error) {
		if err := checkShape(4, args, kwargs); err != nil {
			return nil, err
		}
		i1, err := argAt[I1](args, 0)
		if err != nil {
			return nil, err
		}
		i2, err := argAt[I2](args, 1)
		if err != nil {
			return nil, err
		}
		i3, err := argAt[I3](args, 2)
		if err != nil {
			return nil, err
		}
		i4, err := argAt[I4](args, 3)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2, i3, i4)
	}
}

func checkShape(arity int, args partial.Args, kwargs partial.KwArgs) error {
	if len(args) != arity {
		return fmt.Errorf("%w: want %d, got %d", ErrArity, arity, len(args))
	}
	if len(kwargs) > 0 {
		return fmt.Errorf("%w: %d given", ErrKeywordArgs, len(kwargs))
	}
	return nil
}

func argAt[I any](args partial.Args, idx int) (I, error) {
	v, ok := args[idx].(I)
	if !ok {
		return v, fmt.Errorf("%w: arg %d is %T", ErrArgType, idx, args[idx])
	}
	return v, nil
}

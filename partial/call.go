package partial

import (
	"maps"
	"slices"
)

// Args is an ordered positional argument sequence. Elements may be ordinary
// values or placeholder markers.
type Args []any

// KwArgs maps keyword argument names to values.
type KwArgs map[string]any

// Invocable is any entity callable with positional and keyword arguments:
// ordinary functions (via Func or the partialfn lifts), closures,
// constructor-like entities, and delayed calls themselves.
//
// The result and error are whatever the entity produces; implementations
// are invoked, never introspected.
type Invocable interface {
	Invoke(args Args, kwargs KwArgs) (any, error)
}

// Func adapts a plain function to the Invocable interface.
type Func func(args Args, kwargs KwArgs) (any, error)

// Invoke implements Invocable.
func (f Func) Invoke(args Args, kwargs KwArgs) (any, error) { return f(args, kwargs) }

// Call is a delayed invocation: a target plus fixed positional and keyword
// arguments captured at construction time. It is immutable after Make and
// may be invoked repeatedly and concurrently; each invocation performs a
// fresh merge against the captured arguments.
type Call struct {
	target        Invocable
	fixedArgs     Args
	fixedKwArgs   KwArgs
	isPlaceholder PlaceholderFunc
}

var _ Invocable = (*Call)(nil)

// Make builds a delayed call over target using the package placeholder
// marker. fixed and kwargs are snapshotted; mutating them afterwards does
// not affect the returned Call. Either may be nil. Construction never fails
// and performs no validation of the target's arity or argument types.
func Make(target Invocable, fixed Args, kwargs KwArgs) *Call {
	return MakeFunc(target, fixed, kwargs, IsPlaceholder)
}

// MakeFunc is Make with an explicit placeholder predicate. The predicate is
// consulted only for elements of the fixed sequence, at invocation time.
func MakeFunc(target Invocable, fixed Args, kwargs KwArgs, isPlaceholder PlaceholderFunc) *Call {
	return &Call{
		target:        target,
		fixedArgs:     slices.Clone(fixed),
		fixedKwArgs:   maps.Clone(kwargs),
		isPlaceholder: isPlaceholder,
	}
}

// Invoke merges args into the fixed positional arguments (placeholders
// filled left to right, surplus appended), overlays kwargs over the fixed
// keyword arguments (call-time values win), and invokes the target with the
// merged set. The target's result or failure propagates unchanged: no
// wrapping, no retry, no arity checking.
func (c *Call) Invoke(args Args, kwargs KwArgs) (any, error) {
	merged := MergeFunc(c.fixedArgs, args, c.isPlaceholder)

	var mergedKw KwArgs
	if len(c.fixedKwArgs)+len(kwargs) > 0 {
		mergedKw = make(KwArgs, len(c.fixedKwArgs)+len(kwargs))
		maps.Copy(mergedKw, c.fixedKwArgs)
		maps.Copy(mergedKw, kwargs)
	}

	return c.target.Invoke(merged, mergedKw)
}

// Bind returns a new delayed call whose target is c, fixing further
// arguments. This is currying by re-wrapping: the outer call's placeholders
// are filled from its call-time arguments, and the merged sequence becomes
// the inner call's call-time arguments. The inner predicate choice carries
// over to the new layer.
func (c *Call) Bind(fixed Args, kwargs KwArgs) *Call {
	return MakeFunc(c, fixed, kwargs, c.isPlaceholder)
}

// Target returns the wrapped invocable.
func (c *Call) Target() Invocable { return c.target }

// FixedArgs returns a copy of the fixed positional arguments.
func (c *Call) FixedArgs() Args { return slices.Clone(c.fixedArgs) }

// FixedKwArgs returns a copy of the fixed keyword arguments.
func (c *Call) FixedKwArgs() KwArgs { return maps.Clone(c.fixedKwArgs) }

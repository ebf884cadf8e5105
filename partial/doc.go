// Package partial provides delayed invocation with placeholder arguments.
//
// Partial-ive Go captures a callable together with some of its arguments
// now, and supplies the rest later. Fixed positional arguments may contain
// placeholder markers; at invocation time, call-time arguments fill the
// placeholders left to right and any surplus is appended at the end.
//
// # What is a delayed call?
//
// A delayed call is a value of three parts:
//   - a target, anything implementing [Invocable],
//   - a fixed positional argument sequence, possibly holding [Placeholder] markers,
//   - a fixed keyword argument mapping.
//
// Invoking it merges the call-time arguments into the fixed ones and calls
// the target. The delayed call itself stays untouched: it is a pure value,
// invocable any number of times, safe to share across goroutines as long as
// the target is.
//
// # Why placeholders?
//
// Plain currying only fixes a prefix. A placeholder lets you fix the second
// argument of a two-argument function and leave the first open:
//
//	sub := partialfn.LiftI2O1(func(a, b int) int { return a - b })
//	subFive := partial.Make(sub, partial.Args{partial.Placeholder, 5}, nil)
//	res, _ := subFive.Invoke(partial.Args{10}, nil) // sub(10, 5) == 5
//
// # Design Philosophy
//
// The package keeps the core free of policy:
//   - Construction never fails; it is pure data capture.
//   - [Merge] is total: no input shape errors, an unfillable placeholder
//     passes through as a literal value.
//   - Invocation failures belong to the target; nothing is caught, wrapped,
//     or retried here.
//   - No global state: the placeholder predicate is an explicit parameter
//     ([MakeFunc], [MergeFunc]) with [IsPlaceholder] as the well-known default.
//
// Keyword arguments follow override semantics: a call-time keyword wins over
// a fixed one of the same name.
//
// Currying is re-wrapping: because *[Call] implements [Invocable], binding
// further arguments to an existing delayed call is just [Call.Bind], and
// placeholder filling composes across the layers with no special cases.
package partial

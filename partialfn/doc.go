// Package partialfn bridges ordinary typed Go functions into the dynamic
// call convention of the partial package.
//
// The Lift family adapts a function of a fixed arity into a
// [partial.Invocable] target:
//   - LiftI1O1 to LiftI4O1: functions returning one value.
//   - LiftI1O1E to LiftI4O1E: functions returning (value, error).
//
// A lifted target is where the dynamic world meets the typed one, so it is
// the lifted target — never the partial core — that rejects a bad call
// shape: wrong argument count ([ErrArity]), an argument of the wrong type
// ([ErrArgType]), or keyword arguments, which plain Go functions do not
// have ([ErrKeywordArgs]). To a delayed call these rejections are ordinary
// target failures and propagate unchanged.
//
// The family is typed and reflection-free: each lift bridges the variadic
// convention to concrete parameter types with plain type assertions.
package partialfn

package dataapi

// Result is the uniform outcome of every encode/decode call: either
// Success(value, lifecycle) or Failure(errors, lifecycle). Both branches
// carry a lifecycle so composites can fold stability information even across
// failed children.
type Result[T any] struct {
	value     T
	errs      Errors
	lifecycle Lifecycle
}

// Success returns a successful Result.
func Success[T any](value T, lifecycle Lifecycle) Result[T] {
	return Result[T]{value: value, lifecycle: lifecycle}
}

// Failure returns a failed Result. errs must be non-empty; a failure without
// at least one error is a programming error in the caller.
func Failure[T any](errs Errors, lifecycle Lifecycle) Result[T] {
	if len(errs) == 0 {
		panic("dataapi: Failure requires at least one error")
	}
	return Result[T]{errs: errs, lifecycle: lifecycle}
}

// IsSuccess reports whether r is the success branch.
func (r Result[T]) IsSuccess() bool { return r.errs == nil }

// Value returns the carried value (the zero value on failure).
func (r Result[T]) Value() T { return r.value }

// Errors returns the carried errors (nil on success).
func (r Result[T]) Errors() Errors { return r.errs }

// Lifecycle returns the attached lifecycle.
func (r Result[T]) Lifecycle() Lifecycle { return r.lifecycle }

// WithLifecycle returns a copy of r with the lifecycle replaced.
func (r Result[T]) WithLifecycle(l Lifecycle) Result[T] {
	r.lifecycle = l
	return r
}

// CombineLifecycle returns a copy of r with l folded into its lifecycle.
func (r Result[T]) CombineLifecycle(l Lifecycle) Result[T] {
	r.lifecycle = r.lifecycle.Combine(l)
	return r
}

// MapErrors returns a copy of r with fn applied to every error. Success
// results pass through unchanged.
func (r Result[T]) MapErrors(fn func(Error) Error) Result[T] {
	if r.errs == nil {
		return r
	}
	out := make(Errors, len(r.errs))
	for i, e := range r.errs {
		out[i] = fn(e)
	}
	r.errs = out
	return r
}

// PrependPath returns a copy of r with node prepended to every error's path.
// This is how composites add exactly one level of context per level.
func (r Result[T]) PrependPath(node PathNode) Result[T] {
	if r.errs == nil {
		return r
	}
	r.errs = r.errs.At(node)
	return r
}

// Unpack bridges to idiomatic Go call sites: it returns the value and the
// Errors as an error (nil on success). The lifecycle is dropped; callers
// that need it read it before unpacking.
func (r Result[T]) Unpack() (T, error) {
	if r.errs != nil {
		return r.value, r.errs
	}
	return r.value, nil
}

// MapResult transforms the success value, preserving errors and lifecycle.
func MapResult[A, B any](r Result[A], fn func(A) B) Result[B] {
	if !r.IsSuccess() {
		return Failure[B](r.errs, r.lifecycle)
	}
	return Success(fn(r.value), r.lifecycle)
}

// FlatMapResult chains a further fallible step. It short-circuits on
// failure; on success the two lifecycles are combined.
func FlatMapResult[A, B any](r Result[A], fn func(A) Result[B]) Result[B] {
	if !r.IsSuccess() {
		return Failure[B](r.errs, r.lifecycle)
	}
	next := fn(r.value)
	return next.CombineLifecycle(r.lifecycle)
}

// ZipResults combines two independent Results without short-circuiting: when
// either side failed, the errors of both sides are accumulated in order.
// Lifecycles are always combined.
func ZipResults[A, B, C any](ra Result[A], rb Result[B], fn func(A, B) C) Result[C] {
	lc := ra.lifecycle.Combine(rb.lifecycle)
	if !ra.IsSuccess() || !rb.IsSuccess() {
		var errs Errors
		errs = AppendErrors(errs, ra.errs...)
		errs = AppendErrors(errs, rb.errs...)
		return Failure[C](errs, lc)
	}
	return Success(fn(ra.value, rb.value), lc)
}

package dataapi

// Codec performs bidirectional transformation between a value type T and the
// Element tree. Implementations are immutable and pure: a Codec is safe to
// share across any number of concurrent encode/decode calls, and composition
// always wraps, never mutates.
type Codec[T any] interface {
	// EncodeElement converts a value to an Element.
	EncodeElement(value T) Result[Element]
	// DecodeElement converts an Element to a value, accumulating
	// path-qualified errors rather than stopping at the first problem.
	DecodeElement(el Element) Result[T]
	// Lifecycle is the codec's fixed stability marker, independent of any
	// particular call.
	Lifecycle() Lifecycle
}

// funcCodec backs the structural combinators below.
type funcCodec[T any] struct {
	encode    func(T) Result[Element]
	decode    func(Element) Result[T]
	lifecycle Lifecycle
}

func (c funcCodec[T]) EncodeElement(value T) Result[Element] { return c.encode(value) }
func (c funcCodec[T]) DecodeElement(el Element) Result[T]    { return c.decode(el) }
func (c funcCodec[T]) Lifecycle() Lifecycle                  { return c.lifecycle }

// CodecOf assembles a Codec from its three parts. It is the escape hatch for
// hand-written codecs; the combinators and the dsl package cover the common
// shapes.
func CodecOf[T any](encode func(T) Result[Element], decode func(Element) Result[T], lifecycle Lifecycle) Codec[T] {
	return funcCodec[T]{encode: encode, decode: decode, lifecycle: lifecycle}
}

// Xmap projects Codec[A] to Codec[B] through a total isomorphism. Failures
// pass through unchanged and the lifecycle is preserved.
func Xmap[A, B any](c Codec[A], to func(A) B, from func(B) A) Codec[B] {
	return funcCodec[B]{
		encode:    func(v B) Result[Element] { return c.EncodeElement(from(v)) },
		decode:    func(el Element) Result[B] { return MapResult(c.DecodeElement(el), to) },
		lifecycle: c.Lifecycle(),
	}
}

// FlatXmap is Xmap whose forward direction may fail: to receives both the
// decoded value and the original Element, enabling post-decode validation.
func FlatXmap[A, B any](c Codec[A], to func(A, Element) Result[B], from func(B) A) Codec[B] {
	return funcCodec[B]{
		encode: func(v B) Result[Element] { return c.EncodeElement(from(v)) },
		decode: func(el Element) Result[B] {
			return FlatMapResult(c.DecodeElement(el), func(a A) Result[B] { return to(a, el) })
		},
		lifecycle: c.Lifecycle(),
	}
}

// OrElse recovers from any decode failure with a fixed default. The recovery
// is purely local: errors never propagate past this point. Encoding is
// unaffected.
func OrElse[T any](c Codec[T], def T) Codec[T] {
	return OrElseGet(c, func() T { return def })
}

// OrElseGet is OrElse with a lazily supplied default.
func OrElseGet[T any](c Codec[T], supply func() T) Codec[T] {
	return funcCodec[T]{
		encode: c.EncodeElement,
		decode: func(el Element) Result[T] {
			r := c.DecodeElement(el)
			if r.IsSuccess() {
				return r
			}
			return Success(supply(), c.Lifecycle())
		},
		lifecycle: c.Lifecycle(),
	}
}

// WithLifecycle returns a codec identical in behavior but carrying the given
// fixed lifecycle. Decode/encode results report the replaced lifecycle, so a
// whole schema branch can be marked independently of its children.
func WithLifecycle[T any](c Codec[T], l Lifecycle) Codec[T] {
	return funcCodec[T]{
		encode:    func(v T) Result[Element] { return c.EncodeElement(v).WithLifecycle(l) },
		decode:    func(el Element) Result[T] { return c.DecodeElement(el).WithLifecycle(l) },
		lifecycle: l,
	}
}

// MarkStable marks c as stable schema.
func MarkStable[T any](c Codec[T]) Codec[T] { return WithLifecycle(c, Stable()) }

// MarkExperimental marks c as experimental schema.
func MarkExperimental[T any](c Codec[T]) Codec[T] { return WithLifecycle(c, Experimental()) }

// MarkDeprecated marks c as deprecated since the given version.
func MarkDeprecated[T any](c Codec[T], since int) Codec[T] {
	return WithLifecycle(c, Deprecated(since))
}

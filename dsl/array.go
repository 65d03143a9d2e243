package dsl

import (
	dataapi "github.com/mschae23/data-api"
)

// List wraps a codec into a Codec for ordered sequences. Both directions
// attempt every element and accumulate all errors, each prefixed with its
// zero-based index, before deciding success or failure. Lifecycles of all
// element results are folded into the outcome.
func List[T any](elem dataapi.Codec[T]) dataapi.Codec[[]T] {
	return listCodec[T]{elem: elem}
}

type listCodec[T any] struct {
	elem dataapi.Codec[T]
}

func (c listCodec[T]) EncodeElement(values []T) dataapi.Result[dataapi.Element] {
	items := make([]dataapi.Element, 0, len(values))
	var errs dataapi.Errors
	lc := c.elem.Lifecycle()
	for i, v := range values {
		r := c.elem.EncodeElement(v).PrependPath(dataapi.Index(i))
		lc = lc.Combine(r.Lifecycle())
		if !r.IsSuccess() {
			errs = dataapi.AppendErrors(errs, r.Errors()...)
			continue
		}
		items = append(items, r.Value())
	}
	if errs != nil {
		return dataapi.Failure[dataapi.Element](errs, lc)
	}
	return dataapi.Success(dataapi.Array(items...), lc)
}

func (c listCodec[T]) DecodeElement(el dataapi.Element) dataapi.Result[[]T] {
	items, ok := el.Items()
	if !ok {
		return dataapi.Failure[[]T](dataapi.Errors{dataapi.NewError(dataapi.CodeNotAnArray, el)}, c.Lifecycle())
	}
	out := make([]T, 0, len(items))
	var errs dataapi.Errors
	lc := c.elem.Lifecycle()
	for i, item := range items {
		r := c.elem.DecodeElement(item).PrependPath(dataapi.Index(i))
		lc = lc.Combine(r.Lifecycle())
		if !r.IsSuccess() {
			errs = dataapi.AppendErrors(errs, r.Errors()...)
			continue
		}
		out = append(out, r.Value())
	}
	if errs != nil {
		return dataapi.Failure[[]T](errs, lc)
	}
	return dataapi.Success(out, lc)
}

func (c listCodec[T]) Lifecycle() dataapi.Lifecycle { return c.elem.Lifecycle() }

// Optional wraps a codec into a Codec over *T where nil means "no value".
// Decode succeeds with nil only when the wrapped decode failed because the
// Element was absent; any other child outcome, success or failure, passes
// through unchanged. Encode maps nil to the absent marker, so record
// composition drops the key entirely.
func Optional[T any](inner dataapi.Codec[T]) dataapi.Codec[*T] {
	return optionalCodec[T]{inner: inner}
}

type optionalCodec[T any] struct {
	inner dataapi.Codec[T]
}

func (c optionalCodec[T]) EncodeElement(value *T) dataapi.Result[dataapi.Element] {
	if value == nil {
		return dataapi.Success(dataapi.Absent(), c.inner.Lifecycle())
	}
	return c.inner.EncodeElement(*value)
}

func (c optionalCodec[T]) DecodeElement(el dataapi.Element) dataapi.Result[*T] {
	r := c.inner.DecodeElement(el)
	if !r.IsSuccess() && el.IsAbsent() {
		return dataapi.Success[*T](nil, c.inner.Lifecycle())
	}
	return dataapi.MapResult(r, func(v T) *T { return &v })
}

func (c optionalCodec[T]) Lifecycle() dataapi.Lifecycle { return c.inner.Lifecycle() }

package dsl

import (
	dataapi "github.com/mschae23/data-api"
)

// Either holds exactly one of two alternatives.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left wraps a left value.
func Left[L, R any](v L) Either[L, R] { return Either[L, R]{left: v} }

// Right wraps a right value.
func Right[L, R any](v R) Either[L, R] { return Either[L, R]{right: v, isRight: true} }

// IsRight reports which variant is held.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// Left returns the left value when held.
func (e Either[L, R]) Left() (L, bool) { return e.left, !e.isRight }

// Right returns the right value when held.
func (e Either[L, R]) Right() (R, bool) { return e.right, e.isRight }

// EitherOf composes a structural try-both codec. Decode tries left first,
// then right; when both fail, the two branches' error lists are collapsed
// into a single neither_variant summary whose description comes from msg
// applied to the rendered path. The discarded branch errors are retained on
// the summary's Causes for diagnostics only. Encode dispatches on the held
// variant. The codec's lifecycle is the combine of both children.
func EitherOf[L, R any](left dataapi.Codec[L], right dataapi.Codec[R], msg func(path string) string) dataapi.Codec[Either[L, R]] {
	return eitherCodec[L, R]{left: left, right: right, msg: msg}
}

type eitherCodec[L, R any] struct {
	left  dataapi.Codec[L]
	right dataapi.Codec[R]
	msg   func(path string) string
}

func (c eitherCodec[L, R]) EncodeElement(value Either[L, R]) dataapi.Result[dataapi.Element] {
	if v, ok := value.Left(); ok {
		return c.left.EncodeElement(v)
	}
	v, _ := value.Right()
	return c.right.EncodeElement(v)
}

func (c eitherCodec[L, R]) DecodeElement(el dataapi.Element) dataapi.Result[Either[L, R]] {
	lr := c.left.DecodeElement(el)
	if lr.IsSuccess() {
		return dataapi.MapResult(lr, Left[L, R])
	}
	rr := c.right.DecodeElement(el)
	if rr.IsSuccess() {
		return dataapi.MapResult(rr, Right[L, R])
	}
	err := dataapi.Error{
		Code:    dataapi.CodeNeitherVariant,
		Element: el,
		Message: c.msg,
		Causes:  append(append([]dataapi.Error(nil), lr.Errors()...), rr.Errors()...),
	}
	return dataapi.Failure[Either[L, R]](dataapi.Errors{err}, c.Lifecycle())
}

func (c eitherCodec[L, R]) Lifecycle() dataapi.Lifecycle {
	return c.left.Lifecycle().Combine(c.right.Lifecycle())
}

// FlatOrElse composes a full fallback between two complete codecs of the
// same type: decode tries primary and, on failure, returns secondary's
// Result verbatim — primary's errors are discarded once the fallback is
// attempted. Encode always uses primary. This supports "new schema, falling
// back to legacy schema" migrations.
func FlatOrElse[T any](primary, secondary dataapi.Codec[T]) dataapi.Codec[T] {
	return alternativeCodec[T]{primary: primary, secondary: secondary}
}

type alternativeCodec[T any] struct {
	primary   dataapi.Codec[T]
	secondary dataapi.Codec[T]
}

func (c alternativeCodec[T]) EncodeElement(value T) dataapi.Result[dataapi.Element] {
	return c.primary.EncodeElement(value)
}

func (c alternativeCodec[T]) DecodeElement(el dataapi.Element) dataapi.Result[T] {
	r := c.primary.DecodeElement(el)
	if r.IsSuccess() {
		return r
	}
	return c.secondary.DecodeElement(el)
}

func (c alternativeCodec[T]) Lifecycle() dataapi.Lifecycle {
	return c.primary.Lifecycle().Combine(c.secondary.Lifecycle())
}

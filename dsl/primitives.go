package dsl

import (
	dataapi "github.com/mschae23/data-api"
)

// leafCodec is the shared shape of the scalar codecs: a direct Element
// mapping with strict kind matching and an empty error path (the enclosing
// composite adds context).
type leafCodec[T any] struct {
	encode func(T) dataapi.Element
	decode func(dataapi.Element) (T, bool)
	code   string
}

func (c leafCodec[T]) EncodeElement(value T) dataapi.Result[dataapi.Element] {
	return dataapi.Success(c.encode(value), dataapi.Stable())
}

func (c leafCodec[T]) DecodeElement(el dataapi.Element) dataapi.Result[T] {
	if v, ok := c.decode(el); ok {
		return dataapi.Success(v, dataapi.Stable())
	}
	return dataapi.Failure[T](dataapi.Errors{dataapi.NewError(c.code, el)}, dataapi.Stable())
}

func (c leafCodec[T]) Lifecycle() dataapi.Lifecycle { return dataapi.Stable() }

// Bool returns the boolean codec.
func Bool() dataapi.Codec[bool] {
	return leafCodec[bool]{
		encode: dataapi.Boolean,
		decode: func(el dataapi.Element) (bool, bool) { return el.BoolValue() },
		code:   dataapi.CodeNotABoolean,
	}
}

// String returns the string codec.
func String() dataapi.Codec[string] {
	return leafCodec[string]{
		encode: dataapi.String,
		decode: func(el dataapi.Element) (string, bool) { return el.StringValue() },
		code:   dataapi.CodeNotAString,
	}
}

// Int returns the 32-bit integer codec. Decode accepts only Int Elements;
// narrowing a Long is never attempted.
func Int() dataapi.Codec[int32] {
	return leafCodec[int32]{
		encode: dataapi.Int,
		decode: func(el dataapi.Element) (int32, bool) { return el.IntValue() },
		code:   dataapi.CodeNotAnInt,
	}
}

// Long returns the 64-bit integer codec. Decode accepts a Long or, widening,
// an Int Element.
func Long() dataapi.Codec[int64] {
	return leafCodec[int64]{
		encode: dataapi.Long,
		decode: func(el dataapi.Element) (int64, bool) {
			if v, ok := el.LongValue(); ok {
				return v, true
			}
			if v, ok := el.IntValue(); ok {
				return int64(v), true
			}
			return 0, false
		},
		code: dataapi.CodeNotALong,
	}
}

// Float returns the 32-bit float codec. Decode accepts only Float Elements.
func Float() dataapi.Codec[float32] {
	return leafCodec[float32]{
		encode: dataapi.Float,
		decode: func(el dataapi.Element) (float32, bool) { return el.FloatValue() },
		code:   dataapi.CodeNotAFloat,
	}
}

// Double returns the 64-bit float codec. Decode accepts a Double or,
// widening, a Float Element.
func Double() dataapi.Codec[float64] {
	return leafCodec[float64]{
		encode: dataapi.Double,
		decode: func(el dataapi.Element) (float64, bool) {
			if v, ok := el.DoubleValue(); ok {
				return v, true
			}
			if v, ok := el.FloatValue(); ok {
				return float64(v), true
			}
			return 0, false
		},
		code: dataapi.CodeNotADouble,
	}
}

// Unit returns a codec that encodes every value to an empty object and
// decodes any Element to supply(). It never fails and ignores the input
// entirely.
func Unit[T any](supply func() T) dataapi.Codec[T] {
	return dataapi.CodecOf(
		func(T) dataapi.Result[dataapi.Element] {
			return dataapi.Success(dataapi.ObjectOf(dataapi.NewObject()), dataapi.Stable())
		},
		func(dataapi.Element) dataapi.Result[T] {
			return dataapi.Success(supply(), dataapi.Stable())
		},
		dataapi.Stable(),
	)
}

// UnitOf is Unit with a constant.
func UnitOf[T any](value T) dataapi.Codec[T] {
	return Unit(func() T { return value })
}

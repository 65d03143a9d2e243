package dsl

import (
	dataapi "github.com/mschae23/data-api"
)

// AnyAdapter is the type-erased form of a Codec[T], used where codecs of
// different value types must live in one collection (record fields, the
// derivation registry). The typed codec is captured in closures; values
// cross the boundary as any.
type AnyAdapter struct {
	encode    func(v any) dataapi.Result[dataapi.Element]
	decode    func(el dataapi.Element) dataapi.Result[any]
	lifecycle dataapi.Lifecycle
}

// Adapt erases the value type of c.
func Adapt[T any](c dataapi.Codec[T]) AnyAdapter {
	return AnyAdapter{
		encode: func(v any) dataapi.Result[dataapi.Element] {
			return c.EncodeElement(v.(T))
		},
		decode: func(el dataapi.Element) dataapi.Result[any] {
			return dataapi.MapResult(c.DecodeElement(el), func(v T) any { return v })
		},
		lifecycle: c.Lifecycle(),
	}
}

// Lifecycle returns the adapted codec's fixed lifecycle.
func (a AnyAdapter) Lifecycle() dataapi.Lifecycle { return a.lifecycle }

package dsl

import (
	dataapi "github.com/mschae23/data-api"
)

// Default field names for tagged dispatch.
const (
	DefaultTypeKey  = "type"
	DefaultValueKey = "value"
)

// Dispatch composes an open tagged union: a discriminant field, decoded with
// keyCodec, selects via lookup which sub-codec handles the payload. keyOf
// extracts the discriminant from a value on encode. The discriminant field
// is named "type" and the payload field "value"; use DispatchKeys to choose
// other names. The codec's fixed lifecycle is the discriminant codec's own.
func Dispatch[K comparable, B any](keyCodec dataapi.Codec[K], keyOf func(B) K, lookup func(K) (dataapi.Codec[B], bool)) dataapi.Codec[B] {
	return DispatchKeys(keyCodec, DefaultTypeKey, DefaultValueKey, keyOf, lookup)
}

// DispatchStable is Dispatch with the codec's fixed lifecycle forced to
// Stable.
func DispatchStable[K comparable, B any](keyCodec dataapi.Codec[K], keyOf func(B) K, lookup func(K) (dataapi.Codec[B], bool)) dataapi.Codec[B] {
	return dataapi.MarkStable(Dispatch(keyCodec, keyOf, lookup))
}

// DispatchKeys is Dispatch with explicit discriminant and payload field
// names.
func DispatchKeys[K comparable, B any](keyCodec dataapi.Codec[K], typeKey, valueKey string, keyOf func(B) K, lookup func(K) (dataapi.Codec[B], bool)) dataapi.Codec[B] {
	return dispatchCodec[K, B]{
		keyCodec: keyCodec,
		typeKey:  typeKey,
		valueKey: valueKey,
		keyOf:    keyOf,
		lookup:   lookup,
	}
}

// DispatchMap adapts a plain map to the lookup function Dispatch expects.
func DispatchMap[K comparable, B any](m map[K]dataapi.Codec[B]) func(K) (dataapi.Codec[B], bool) {
	return func(k K) (dataapi.Codec[B], bool) {
		c, ok := m[k]
		return c, ok
	}
}

type dispatchCodec[K comparable, B any] struct {
	keyCodec dataapi.Codec[K]
	typeKey  string
	valueKey string
	keyOf    func(B) K
	lookup   func(K) (dataapi.Codec[B], bool)
}

func (c dispatchCodec[K, B]) EncodeElement(value B) dataapi.Result[dataapi.Element] {
	key := c.keyOf(value)
	keyRes := c.keyCodec.EncodeElement(key).PrependPath(dataapi.Name(c.typeKey))
	payloadCodec, ok := c.lookup(key)
	if !ok {
		errs := dataapi.AppendErrors(keyRes.Errors(),
			dataapi.NewError(dataapi.CodeUnknownDiscriminant, dataapi.Absent()).At(dataapi.Name(c.typeKey)))
		return dataapi.Failure[dataapi.Element](errs, keyRes.Lifecycle().Combine(c.Lifecycle()))
	}
	payloadRes := c.payloadEncode(payloadCodec, value)
	return dataapi.ZipResults(keyRes, payloadRes, func(keyEl, payloadEl dataapi.Element) dataapi.Element {
		out := dataapi.NewObject()
		out.Set(c.typeKey, keyEl)
		if payload, isObj := payloadEl.Object(); isObj {
			// Record-shaped payloads merge as siblings of the discriminant,
			// avoiding double nesting.
			payload.Range(func(k string, v dataapi.Element) bool {
				out.Set(k, v)
				return true
			})
		} else if !payloadEl.IsAbsent() {
			out.Set(c.valueKey, payloadEl)
		}
		return dataapi.ObjectOf(out)
	})
}

func (c dispatchCodec[K, B]) payloadEncode(payloadCodec dataapi.Codec[B], value B) dataapi.Result[dataapi.Element] {
	r := payloadCodec.EncodeElement(value)
	if r.IsSuccess() {
		return r
	}
	// Only non-flattened failures gain the payload key prefix; a failing
	// record payload reports its own field names at this level.
	return r.PrependPath(dataapi.Name(c.valueKey))
}

func (c dispatchCodec[K, B]) DecodeElement(el dataapi.Element) dataapi.Result[B] {
	obj, isObj := el.Object()
	if !isObj {
		return dataapi.Failure[B](dataapi.Errors{dataapi.NewError(dataapi.CodeNotAnObject, el)}, c.Lifecycle())
	}
	keyEl, present := obj.Get(c.typeKey)
	if !present {
		keyEl = dataapi.Absent()
	}
	keyRes := c.keyCodec.DecodeElement(keyEl)
	if !keyRes.IsSuccess() {
		var errs dataapi.Errors
		if keyEl.IsAbsent() {
			errs = dataapi.Errors{dataapi.NewError(dataapi.CodeMissingKey, keyEl).At(dataapi.Name(c.typeKey))}
		} else {
			errs = keyRes.Errors().At(dataapi.Name(c.typeKey))
		}
		return dataapi.Failure[B](errs, keyRes.Lifecycle())
	}
	payloadCodec, ok := c.lookup(keyRes.Value())
	if !ok {
		err := dataapi.NewError(dataapi.CodeUnknownDiscriminant, keyEl).At(dataapi.Name(c.typeKey))
		return dataapi.Failure[B](dataapi.Errors{err}, keyRes.Lifecycle())
	}
	var payloadRes dataapi.Result[B]
	if payloadEl, hasValue := obj.Get(c.valueKey); hasValue {
		payloadRes = payloadCodec.DecodeElement(payloadEl).PrependPath(dataapi.Name(c.valueKey))
	} else {
		// Flattened encoding: the payload's fields sit next to the
		// discriminant in the same object.
		payloadRes = payloadCodec.DecodeElement(el)
	}
	return payloadRes.CombineLifecycle(keyRes.Lifecycle())
}

func (c dispatchCodec[K, B]) Lifecycle() dataapi.Lifecycle { return c.keyCodec.Lifecycle() }

package dataapi

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of an Element.
type Kind uint8

const (
	// KindAbsent marks "key not present". It is the zero value so that an
	// uninitialized Element reads as absent. Record decoding substitutes an
	// absent Element for missing keys; constructed trees handed back to
	// callers never contain one.
	KindAbsent Kind = iota
	KindNull
	KindBoolean
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Element is the canonical tree-shaped value representation. It is a value
// type; copying an Element shares the underlying array/object storage, which
// is safe because codecs never mutate Elements after construction.
type Element struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Element
	obj  *Object
}

// Absent returns the "key not present" sentinel.
func Absent() Element { return Element{kind: KindAbsent} }

// Null returns the explicit null Element, distinct from Absent.
func Null() Element { return Element{kind: KindNull} }

// Boolean wraps a bool.
func Boolean(v bool) Element { return Element{kind: KindBoolean, b: v} }

// Int wraps a 32-bit integer.
func Int(v int32) Element { return Element{kind: KindInt, i: int64(v)} }

// Long wraps a 64-bit integer.
func Long(v int64) Element { return Element{kind: KindLong, i: v} }

// Float wraps a 32-bit float.
func Float(v float32) Element { return Element{kind: KindFloat, f: float64(v)} }

// Double wraps a 64-bit float.
func Double(v float64) Element { return Element{kind: KindDouble, f: v} }

// String wraps a string.
func String(v string) Element { return Element{kind: KindString, s: v} }

// Array wraps an ordered sequence of Elements.
func Array(items ...Element) Element {
	if items == nil {
		items = []Element{}
	}
	return Element{kind: KindArray, arr: items}
}

// ObjectOf wraps an Object. A nil Object is treated as empty.
func ObjectOf(o *Object) Element {
	if o == nil {
		o = NewObject()
	}
	return Element{kind: KindObject, obj: o}
}

// Kind reports the variant of e.
func (e Element) Kind() Kind { return e.kind }

// IsAbsent reports whether e is the "key not present" sentinel.
func (e Element) IsAbsent() bool { return e.kind == KindAbsent }

// IsNull reports whether e is the explicit null.
func (e Element) IsNull() bool { return e.kind == KindNull }

// BoolValue returns the wrapped bool when e is a Boolean.
func (e Element) BoolValue() (bool, bool) { return e.b, e.kind == KindBoolean }

// IntValue returns the wrapped 32-bit integer when e is an Int.
func (e Element) IntValue() (int32, bool) { return int32(e.i), e.kind == KindInt }

// LongValue returns the wrapped 64-bit integer when e is a Long. It does not
// widen; widening Int input is the long codec's policy, not the accessor's.
func (e Element) LongValue() (int64, bool) { return e.i, e.kind == KindLong }

// FloatValue returns the wrapped 32-bit float when e is a Float.
func (e Element) FloatValue() (float32, bool) { return float32(e.f), e.kind == KindFloat }

// DoubleValue returns the wrapped 64-bit float when e is a Double.
func (e Element) DoubleValue() (float64, bool) { return e.f, e.kind == KindDouble }

// StringValue returns the wrapped string when e is a String.
func (e Element) StringValue() (string, bool) { return e.s, e.kind == KindString }

// Items returns the wrapped sequence when e is an Array.
func (e Element) Items() ([]Element, bool) { return e.arr, e.kind == KindArray }

// Object returns the wrapped Object when e is an Object.
func (e Element) Object() (*Object, bool) { return e.obj, e.kind == KindObject }

// Equal reports structural equality. Objects compare by key order as well as
// content so that re-encoding stability is observable.
func (e Element) Equal(other Element) bool {
	if e.kind != other.kind {
		return false
	}
	switch e.kind {
	case KindAbsent, KindNull:
		return true
	case KindBoolean:
		return e.b == other.b
	case KindInt, KindLong:
		return e.i == other.i
	case KindFloat, KindDouble:
		return e.f == other.f
	case KindString:
		return e.s == other.s
	case KindArray:
		if len(e.arr) != len(other.arr) {
			return false
		}
		for i := range e.arr {
			if !e.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return e.obj.equal(other.obj)
	default:
		return false
	}
}

// String renders e for debugging in a JSON-like shape.
func (e Element) String() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e Element) render(b *strings.Builder) {
	switch e.kind {
	case KindAbsent:
		b.WriteString("<absent>")
	case KindNull:
		b.WriteString("null")
	case KindBoolean:
		b.WriteString(strconv.FormatBool(e.b))
	case KindInt, KindLong:
		b.WriteString(strconv.FormatInt(e.i, 10))
	case KindFloat, KindDouble:
		b.WriteString(strconv.FormatFloat(e.f, 'g', -1, 64))
	case KindString:
		fmt.Fprintf(b, "%q", e.s)
	case KindArray:
		b.WriteByte('[')
		for i, it := range e.arr {
			if i > 0 {
				b.WriteString(", ")
			}
			it.render(b)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, k := range e.obj.keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%q: ", k)
			v := e.obj.vals[k]
			v.render(b)
		}
		b.WriteByte('}')
	}
}

// Object is an insertion-ordered mapping from string keys to Elements with
// unique keys. Setting an existing key replaces the value in place without
// moving the key.
type Object struct {
	keys []string
	vals map[string]Element
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{vals: map[string]Element{}}
}

// Set inserts or replaces key and returns the receiver for chaining.
func (o *Object) Set(key string, v Element) *Object {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
	return o
}

// Get looks up key.
func (o *Object) Get(key string) (Element, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Len returns the number of entries.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Range visits entries in insertion order until fn returns false.
func (o *Object) Range(fn func(key string, v Element) bool) {
	for _, k := range o.keys {
		if !fn(k, o.vals[k]) {
			return
		}
	}
}

func (o *Object) equal(other *Object) bool {
	if o == nil || other == nil {
		return (o == nil || o.Len() == 0) && (other == nil || other.Len() == 0)
	}
	if len(o.keys) != len(other.keys) {
		return false
	}
	for i, k := range o.keys {
		if other.keys[i] != k {
			return false
		}
		ov := o.vals[k]
		tv := other.vals[k]
		if !ov.Equal(tv) {
			return false
		}
	}
	return true
}

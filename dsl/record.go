package dsl

import (
	dataapi "github.com/mschae23/data-api"
)

// Field is an incomplete field descriptor: a codec bound to a key name. It
// becomes usable once attached to a record builder together with a getter
// via Bind.
type Field[T any] struct {
	name  string
	codec dataapi.Codec[T]
}

// FieldOf binds c to the given key name.
func FieldOf[T any](c dataapi.Codec[T], name string) Field[T] {
	return Field[T]{name: name, codec: c}
}

// Name returns the field's key name.
func (f Field[T]) Name() string { return f.name }

// RecordValues holds the decoded field values of one record decode pass,
// addressed by the integer index assigned to each field at build time.
type RecordValues struct {
	vals []any
}

func (v RecordValues) at(i int) any { return v.vals[i] }

// FieldRef gives the construction function typed access to one field's
// decoded value.
type FieldRef[T any] struct {
	index int
}

// Get reads the field's decoded value from one decode pass.
func (r FieldRef[T]) Get(vals RecordValues) T { return vals.at(r.index).(T) }

type boundField[O any] struct {
	name      string
	lifecycle dataapi.Lifecycle
	encode    func(O) dataapi.Result[dataapi.Element]
	decode    func(dataapi.Element) dataapi.Result[any]
}

// RecordBuilder accumulates field descriptors for one record codec. It is
// single-threaded, scoped to the construction site, and becomes inert once
// Build finalizes the codec.
type RecordBuilder[O any] struct {
	fields []boundField[O]
	built  bool
}

// Record starts a new builder for records of type O.
func Record[O any]() *RecordBuilder[O] {
	return &RecordBuilder[O]{}
}

// Bind attaches a getter to f, registers the completed descriptor with b in
// declaration order, and returns the reference the construction function
// uses to read the decoded value. Binding to a finalized builder panics.
func Bind[O, T any](b *RecordBuilder[O], f Field[T], get func(O) T) FieldRef[T] {
	if b.built {
		panic("dsl: Bind after Build")
	}
	if f.codec == nil {
		panic("dsl: Bind requires a field created by FieldOf")
	}
	idx := len(b.fields)
	b.fields = append(b.fields, boundField[O]{
		name:      f.name,
		lifecycle: f.codec.Lifecycle(),
		encode: func(o O) dataapi.Result[dataapi.Element] {
			return f.codec.EncodeElement(get(o))
		},
		decode: func(el dataapi.Element) dataapi.Result[any] {
			return dataapi.MapResult(f.codec.DecodeElement(el), func(v T) any { return v })
		},
	})
	return FieldRef[T]{index: idx}
}

// Build finalizes the builder into an immutable record codec. construct
// receives the decoded field values and assembles the record; it is called
// only when every field decoded successfully.
func (b *RecordBuilder[O]) Build(construct func(RecordValues) O) dataapi.Codec[O] {
	b.built = true
	fields := append([]boundField[O](nil), b.fields...)
	lc := dataapi.Stable()
	for _, f := range fields {
		lc = lc.Combine(f.lifecycle)
	}
	return recordCodec[O]{fields: fields, construct: construct, lifecycle: lc}
}

type recordCodec[O any] struct {
	fields    []boundField[O]
	construct func(RecordValues) O
	lifecycle dataapi.Lifecycle
}

func (c recordCodec[O]) EncodeElement(value O) dataapi.Result[dataapi.Element] {
	obj := dataapi.NewObject()
	var errs dataapi.Errors
	lc := c.lifecycle
	for _, f := range c.fields {
		r := f.encode(value).PrependPath(dataapi.Name(f.name))
		lc = lc.Combine(r.Lifecycle())
		if !r.IsSuccess() {
			errs = dataapi.AppendErrors(errs, r.Errors()...)
			continue
		}
		// Absent field values (e.g. empty optionals) drop the key entirely.
		if el := r.Value(); !el.IsAbsent() {
			obj.Set(f.name, el)
		}
	}
	if errs != nil {
		return dataapi.Failure[dataapi.Element](errs, lc)
	}
	return dataapi.Success(dataapi.ObjectOf(obj), lc)
}

func (c recordCodec[O]) DecodeElement(el dataapi.Element) dataapi.Result[O] {
	obj, ok := el.Object()
	if !ok {
		return dataapi.Failure[O](dataapi.Errors{dataapi.NewError(dataapi.CodeNotAnObject, el)}, c.lifecycle)
	}
	vals := make([]any, len(c.fields))
	var errs dataapi.Errors
	lc := dataapi.Stable()
	for i, f := range c.fields {
		fieldEl, present := obj.Get(f.name)
		if !present {
			fieldEl = dataapi.Absent()
		}
		r := f.decode(fieldEl)
		lc = lc.Combine(r.Lifecycle())
		if !r.IsSuccess() {
			if fieldEl.IsAbsent() {
				// Absence is reported as absence, not as the field codec's
				// own type mismatch.
				errs = dataapi.AppendErrors(errs, dataapi.NewError(dataapi.CodeMissingKey, fieldEl).At(dataapi.Name(f.name)))
			} else {
				errs = dataapi.AppendErrors(errs, r.Errors().At(dataapi.Name(f.name))...)
			}
			continue
		}
		vals[i] = r.Value()
	}
	if errs != nil {
		return dataapi.Failure[O](errs, lc)
	}
	return dataapi.Success(c.construct(RecordValues{vals: vals}), lc)
}

func (c recordCodec[O]) Lifecycle() dataapi.Lifecycle { return c.lifecycle }

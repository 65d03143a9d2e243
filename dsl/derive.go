package dsl

import (
	"fmt"
	"reflect"

	dataapi "github.com/mschae23/data-api"
)

// Derive synthesizes a record codec for struct type T from its exported
// fields, in declaration order, looking up each field's codec in reg by its
// Go type. Key resolution follows dataapi.ResolveStructKey (data tag, then
// json tag, then field name; "-" disables a field). The resulting codec
// behaves exactly like a hand-built record codec over the same field list.
func Derive[T any](reg *Registry) (dataapi.Codec[T], error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dsl: Derive requires a struct type, got %s", rt)
	}
	var fields []deriveField
	lc := dataapi.Stable()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := dataapi.ResolveStructKey(sf)
		if name == "" || name == "-" {
			continue
		}
		ad, ok := reg.Lookup(sf.Type)
		if !ok {
			return nil, fmt.Errorf("dsl: Derive: no codec registered for field %s.%s (%s)", rt.Name(), sf.Name, sf.Type)
		}
		fields = append(fields, deriveField{name: name, index: i, adapter: ad})
		lc = lc.Combine(ad.Lifecycle())
	}
	return deriveCodec[T]{typ: rt, fields: fields, lifecycle: lc}, nil
}

// MustDerive is Derive panicking on error.
func MustDerive[T any](reg *Registry) dataapi.Codec[T] {
	c, err := Derive[T](reg)
	if err != nil {
		panic(err)
	}
	return c
}

type deriveField struct {
	name    string
	index   int
	adapter AnyAdapter
}

type deriveCodec[T any] struct {
	typ       reflect.Type
	fields    []deriveField
	lifecycle dataapi.Lifecycle
}

func (c deriveCodec[T]) EncodeElement(value T) dataapi.Result[dataapi.Element] {
	rv := reflect.ValueOf(value)
	obj := dataapi.NewObject()
	var errs dataapi.Errors
	lc := c.lifecycle
	for _, f := range c.fields {
		r := f.adapter.encode(rv.Field(f.index).Interface()).PrependPath(dataapi.Name(f.name))
		lc = lc.Combine(r.Lifecycle())
		if !r.IsSuccess() {
			errs = dataapi.AppendErrors(errs, r.Errors()...)
			continue
		}
		if el := r.Value(); !el.IsAbsent() {
			obj.Set(f.name, el)
		}
	}
	if errs != nil {
		return dataapi.Failure[dataapi.Element](errs, lc)
	}
	return dataapi.Success(dataapi.ObjectOf(obj), lc)
}

func (c deriveCodec[T]) DecodeElement(el dataapi.Element) dataapi.Result[T] {
	obj, ok := el.Object()
	if !ok {
		return dataapi.Failure[T](dataapi.Errors{dataapi.NewError(dataapi.CodeNotAnObject, el)}, c.lifecycle)
	}
	rv := reflect.New(c.typ).Elem()
	var errs dataapi.Errors
	lc := dataapi.Stable()
	for _, f := range c.fields {
		fieldEl, present := obj.Get(f.name)
		if !present {
			fieldEl = dataapi.Absent()
		}
		r := f.adapter.decode(fieldEl)
		lc = lc.Combine(r.Lifecycle())
		if !r.IsSuccess() {
			if fieldEl.IsAbsent() {
				errs = dataapi.AppendErrors(errs, dataapi.NewError(dataapi.CodeMissingKey, fieldEl).At(dataapi.Name(f.name)))
			} else {
				errs = dataapi.AppendErrors(errs, r.Errors().At(dataapi.Name(f.name))...)
			}
			continue
		}
		if v := r.Value(); v != nil {
			rv.Field(f.index).Set(reflect.ValueOf(v))
		}
	}
	if errs != nil {
		return dataapi.Failure[T](errs, lc)
	}
	return dataapi.Success(rv.Interface().(T), lc)
}

func (c deriveCodec[T]) Lifecycle() dataapi.Lifecycle { return c.lifecycle }

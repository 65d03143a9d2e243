package dsl_test

import (
	"testing"

	dataapi "github.com/mschae23/data-api"
	"github.com/mschae23/data-api/dsl"
)

type user struct {
	ID    int32
	Name  string
	Admin bool
}

func userCodec() dataapi.Codec[user] {
	b := dsl.Record[user]()
	id := dsl.Bind(b, dsl.FieldOf(dsl.Int(), "id"), func(u user) int32 { return u.ID })
	name := dsl.Bind(b, dsl.FieldOf(dsl.String(), "name"), func(u user) string { return u.Name })
	admin := dsl.Bind(b, dsl.FieldOf(dsl.Bool(), "admin"), func(u user) bool { return u.Admin })
	return b.Build(func(vals dsl.RecordValues) user {
		return user{ID: id.Get(vals), Name: name.Get(vals), Admin: admin.Get(vals)}
	})
}

func TestRecord_RoundTrip(t *testing.T) {
	c := userCodec()
	in := user{ID: 7, Name: "amy", Admin: true}

	el, err := c.EncodeElement(in).Unpack()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	obj, ok := el.Object()
	if !ok {
		t.Fatalf("expected object, got %v", el)
	}
	keys := obj.Keys()
	if len(keys) != 3 || keys[0] != "id" || keys[1] != "name" || keys[2] != "admin" {
		t.Fatalf("field declaration order must be insertion order, got %v", keys)
	}

	out, err := c.DecodeElement(el).Unpack()
	if err != nil || out != in {
		t.Fatalf("roundtrip: v=%+v err=%v", out, err)
	}
}

func TestRecord_AccumulatesAllFieldErrors(t *testing.T) {
	c := userCodec()
	el := dataapi.ObjectOf(dataapi.NewObject().
		Set("id", dataapi.String("oops")).
		Set("name", dataapi.Int(3)).
		Set("admin", dataapi.Boolean(true)))

	r := c.DecodeElement(el)
	if r.IsSuccess() {
		t.Fatalf("expected failure")
	}
	errs := r.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected exactly one error per invalid field, got %v", errs)
	}
	// field-declaration order
	if errs[0].Path.String() != "/id" || errs[0].Code != dataapi.CodeNotAnInt {
		t.Fatalf("first error should be not_an_int at /id, got %v", errs[0])
	}
	if errs[1].Path.String() != "/name" || errs[1].Code != dataapi.CodeNotAString {
		t.Fatalf("second error should be not_a_string at /name, got %v", errs[1])
	}
}

func TestRecord_MissingVsMalformed(t *testing.T) {
	c := userCodec()

	// key missing entirely: missing_key, not the field codec's mismatch
	missing := dataapi.ObjectOf(dataapi.NewObject().
		Set("name", dataapi.String("amy")).
		Set("admin", dataapi.Boolean(false)))
	r := c.DecodeElement(missing)
	if r.IsSuccess() || len(r.Errors()) != 1 {
		t.Fatalf("expected single failure, got %v", r)
	}
	if e := r.Errors()[0]; e.Code != dataapi.CodeMissingKey || e.Path.String() != "/id" {
		t.Fatalf("expected missing_key at /id, got %v", e)
	}

	// key present but wrong-typed: the scalar mismatch, not missing_key
	malformed := dataapi.ObjectOf(dataapi.NewObject().
		Set("id", dataapi.Boolean(true)).
		Set("name", dataapi.String("amy")).
		Set("admin", dataapi.Boolean(false)))
	r = c.DecodeElement(malformed)
	if r.IsSuccess() || len(r.Errors()) != 1 {
		t.Fatalf("expected single failure, got %v", r)
	}
	if e := r.Errors()[0]; e.Code != dataapi.CodeNotAnInt || e.Path.String() != "/id" {
		t.Fatalf("expected not_an_int at /id, got %v", e)
	}
}

func TestRecord_NotAnObject(t *testing.T) {
	r := userCodec().DecodeElement(dataapi.Int(1))
	if r.IsSuccess() || len(r.Errors()) != 1 || r.Errors()[0].Code != dataapi.CodeNotAnObject {
		t.Fatalf("expected not_an_object without any field attempted, got %v", r)
	}
}

type versioned struct {
	Old string
	New string
}

func TestRecord_LifecycleFold(t *testing.T) {
	build := func(a, b dataapi.Codec[string]) dataapi.Codec[versioned] {
		bld := dsl.Record[versioned]()
		o := dsl.Bind(bld, dsl.FieldOf(a, "old"), func(v versioned) string { return v.Old })
		n := dsl.Bind(bld, dsl.FieldOf(b, "new"), func(v versioned) string { return v.New })
		return bld.Build(func(vals dsl.RecordValues) versioned {
			return versioned{Old: o.Get(vals), New: n.Get(vals)}
		})
	}

	// {Stable, Experimental} -> Experimental
	c := build(dsl.String(), dataapi.MarkExperimental(dsl.String()))
	if !c.Lifecycle().IsExperimental() {
		t.Fatalf("expected experimental, got %v", c.Lifecycle())
	}

	// {Experimental, Deprecated(5)} -> Deprecated(5)
	c = build(dataapi.MarkExperimental(dsl.String()), dataapi.MarkDeprecated(dsl.String(), 5))
	if since, ok := c.Lifecycle().DeprecatedSince(); !ok || since != 5 {
		t.Fatalf("expected deprecated(5), got %v", c.Lifecycle())
	}

	// {Deprecated(5), Deprecated(2)} -> Deprecated(2)
	c = build(dataapi.MarkDeprecated(dsl.String(), 5), dataapi.MarkDeprecated(dsl.String(), 2))
	if since, ok := c.Lifecycle().DeprecatedSince(); !ok || since != 2 {
		t.Fatalf("expected deprecated(2), got %v", c.Lifecycle())
	}

	// decode results fold field lifecycles too
	el := dataapi.ObjectOf(dataapi.NewObject().
		Set("old", dataapi.String("a")).
		Set("new", dataapi.String("b")))
	r := c.DecodeElement(el)
	if since, ok := r.Lifecycle().DeprecatedSince(); !ok || since != 2 {
		t.Fatalf("decode lifecycle should fold fields, got %v", r.Lifecycle())
	}
}

type settings struct {
	Host string
	Port *int32
}

func TestRecord_OptionalField(t *testing.T) {
	b := dsl.Record[settings]()
	host := dsl.Bind(b, dsl.FieldOf(dsl.String(), "host"), func(s settings) string { return s.Host })
	port := dsl.Bind(b, dsl.FieldOf(dsl.Optional(dsl.Int()), "port"), func(s settings) *int32 { return s.Port })
	c := b.Build(func(vals dsl.RecordValues) settings {
		return settings{Host: host.Get(vals), Port: port.Get(vals)}
	})

	// missing optional key decodes to nil
	el := dataapi.ObjectOf(dataapi.NewObject().Set("host", dataapi.String("h")))
	got, err := c.DecodeElement(el).Unpack()
	if err != nil || got.Port != nil || got.Host != "h" {
		t.Fatalf("optional field should tolerate absence: %+v err=%v", got, err)
	}

	// nil optional drops the key on encode
	enc, err := c.EncodeElement(settings{Host: "h"}).Unpack()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	obj, _ := enc.Object()
	if obj.Has("port") {
		t.Fatalf("absent optional must not appear in the encoded object: %v", enc)
	}
}

func TestRecord_BindAfterBuildPanics(t *testing.T) {
	b := dsl.Record[user]()
	dsl.Bind(b, dsl.FieldOf(dsl.Int(), "id"), func(u user) int32 { return u.ID })
	_ = b.Build(func(vals dsl.RecordValues) user { return user{} })
	defer func() {
		if recover() == nil {
			t.Fatalf("Bind after Build must panic")
		}
	}()
	dsl.Bind(b, dsl.FieldOf(dsl.String(), "name"), func(u user) string { return u.Name })
}

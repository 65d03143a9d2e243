package codec_test

import (
	"testing"

	dataapi "github.com/mschae23/data-api"
	"github.com/mschae23/data-api/codec"
)

func TestMsgpack_RoundTripPreservesKinds(t *testing.T) {
	inner := dataapi.NewObject()
	inner.Set("z", dataapi.Int(7))
	inner.Set("a", dataapi.Long(7))
	root := dataapi.NewObject()
	root.Set("f", dataapi.Float(1.5))
	root.Set("d", dataapi.Double(1.5))
	root.Set("items", dataapi.Array(dataapi.Null(), dataapi.Boolean(true), dataapi.String("s")))
	root.Set("nums", dataapi.ObjectOf(inner))
	in := dataapi.ObjectOf(root)

	data, err := codec.ToMsgpack(in)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out, err := codec.FromMsgpack(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !out.Equal(in) {
		t.Fatalf("round trip mismatch: %v", out)
	}

	// the 32/64-bit wire codes keep Int and Long apart even for equal values
	obj, _ := out.Object()
	nums, _ := obj.Get("nums")
	numsObj, _ := nums.Object()
	z, _ := numsObj.Get("z")
	a, _ := numsObj.Get("a")
	if z.Kind() != dataapi.KindInt || a.Kind() != dataapi.KindLong {
		t.Fatalf("numeric kinds lost: z=%s a=%s", z.Kind(), a.Kind())
	}
	f, _ := obj.Get("f")
	d, _ := obj.Get("d")
	if f.Kind() != dataapi.KindFloat || d.Kind() != dataapi.KindDouble {
		t.Fatalf("float kinds lost: f=%s d=%s", f.Kind(), d.Kind())
	}
}

func TestMsgpack_KeyOrderPreserved(t *testing.T) {
	root := dataapi.NewObject()
	root.Set("z", dataapi.Int(1))
	root.Set("a", dataapi.Int(2))
	root.Set("m", dataapi.Int(3))
	data, err := codec.ToMsgpack(dataapi.ObjectOf(root))
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	out, err := codec.FromMsgpack(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	obj, _ := out.Object()
	keys := obj.Keys()
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Fatalf("key order lost: %v", keys)
	}
}

func TestFromMsgpack_TruncatedInput(t *testing.T) {
	data, err := codec.ToMsgpack(dataapi.Array(dataapi.String("abcdef")))
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	_, err = codec.FromMsgpack(data[:len(data)-2])
	if err == nil {
		t.Fatalf("expected error")
	}
	errs, ok := dataapi.AsErrors(err)
	if !ok || len(errs) != 1 || errs[0].Code != dataapi.CodeValidation {
		t.Fatalf("expected one validation error, got %v", err)
	}
}

func TestToMsgpack_AbsentRejected(t *testing.T) {
	if _, err := codec.ToMsgpack(dataapi.Absent()); err == nil {
		t.Fatalf("absent must not serialize")
	}
}

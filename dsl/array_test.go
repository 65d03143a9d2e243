package dsl_test

import (
	"testing"

	dataapi "github.com/mschae23/data-api"
	"github.com/mschae23/data-api/dsl"
)

func TestList_RoundTrip(t *testing.T) {
	c := dsl.List(dsl.Int())
	el, err := c.EncodeElement([]int32{1, 2, 3}).Unpack()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := c.DecodeElement(el).Unpack()
	if err != nil || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("roundtrip: v=%v err=%v", got, err)
	}
}

func TestList_AccumulatesIndexedErrors(t *testing.T) {
	c := dsl.List(dsl.Int())
	// invalid at positions 0 and 2
	r := c.DecodeElement(dataapi.Array(
		dataapi.String("bad"),
		dataapi.Int(1),
		dataapi.Boolean(false),
	))
	if r.IsSuccess() {
		t.Fatalf("expected failure")
	}
	errs := r.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected exactly two errors, got %v", errs)
	}
	if errs[0].Path.String() != "/0" || errs[1].Path.String() != "/2" {
		t.Fatalf("expected paths /0 and /2, got %q and %q", errs[0].Path.String(), errs[1].Path.String())
	}
}

func TestList_NotAnArray(t *testing.T) {
	r := dsl.List(dsl.Int()).DecodeElement(dataapi.Int(1))
	if r.IsSuccess() || r.Errors()[0].Code != dataapi.CodeNotAnArray {
		t.Fatalf("expected not_an_array, got %v", r.Errors())
	}
}

func TestList_EncodeAccumulates(t *testing.T) {
	boom := dataapi.FlatXmap(dsl.Int(),
		func(v int32, el dataapi.Element) dataapi.Result[int32] { return dataapi.Success(v, dataapi.Stable()) },
		func(v int32) int32 { return v },
	)
	// a codec whose encode fails for negatives
	neg := dataapi.CodecOf(
		func(v int32) dataapi.Result[dataapi.Element] {
			if v < 0 {
				return dataapi.Failure[dataapi.Element](dataapi.Errors{
					dataapi.NewValidationError(func(path string) string { return "negative at " + path }, dataapi.Absent()),
				}, dataapi.Stable())
			}
			return boom.EncodeElement(v)
		},
		boom.DecodeElement,
		dataapi.Stable(),
	)
	r := dsl.List(neg).EncodeElement([]int32{-1, 2, -3})
	if r.IsSuccess() || len(r.Errors()) != 2 {
		t.Fatalf("expected two encode errors, got %v", r)
	}
	if r.Errors()[0].Path.String() != "/0" || r.Errors()[1].Path.String() != "/2" {
		t.Fatalf("encode errors must be index-prefixed, got %v", r.Errors())
	}
}

func TestOptional_AbsentVsFailure(t *testing.T) {
	c := dsl.Optional(dsl.Int())

	// absent decodes to nil
	v, err := c.DecodeElement(dataapi.Absent()).Unpack()
	if err != nil || v != nil {
		t.Fatalf("absent should decode to nil: v=%v err=%v", v, err)
	}

	// a present but malformed value still fails
	r := c.DecodeElement(dataapi.String("bad"))
	if r.IsSuccess() || r.Errors()[0].Code != dataapi.CodeNotAnInt {
		t.Fatalf("optional must propagate non-absence failures, got %v", r)
	}

	// a present value decodes to non-nil
	v, err = c.DecodeElement(dataapi.Int(6)).Unpack()
	if err != nil || v == nil || *v != 6 {
		t.Fatalf("present value decode: v=%v err=%v", v, err)
	}
}

func TestOptional_EncodesNilAsAbsent(t *testing.T) {
	c := dsl.Optional(dsl.Int())
	el, err := c.EncodeElement(nil).Unpack()
	if err != nil || !el.IsAbsent() {
		t.Fatalf("nil should encode to absent: %v %v", el, err)
	}
	six := int32(6)
	el, err = c.EncodeElement(&six).Unpack()
	if err != nil || el.Kind() != dataapi.KindInt {
		t.Fatalf("present should delegate to child: %v %v", el, err)
	}
}

func TestList_FoldsLifecycles(t *testing.T) {
	c := dsl.List(dataapi.MarkDeprecated(dsl.Int(), 4))
	r := c.DecodeElement(dataapi.Array(dataapi.Int(1)))
	if since, ok := r.Lifecycle().DeprecatedSince(); !ok || since != 4 {
		t.Fatalf("list should fold element lifecycles, got %v", r.Lifecycle())
	}
}

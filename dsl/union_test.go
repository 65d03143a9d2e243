package dsl_test

import (
	"fmt"
	"strings"
	"testing"

	dataapi "github.com/mschae23/data-api"
	"github.com/mschae23/data-api/dsl"
)

func boolOrString() dataapi.Codec[dsl.Either[bool, string]] {
	return dsl.EitherOf(dsl.Bool(), dsl.String(), func(path string) string {
		return fmt.Sprintf("expected a boolean or a string at %s", path)
	})
}

func TestEither_FallbackOrder(t *testing.T) {
	c := boolOrString()

	// Boolean Element decodes as the left variant
	v, err := c.DecodeElement(dataapi.Boolean(true)).Unpack()
	if err != nil {
		t.Fatalf("decode bool: %v", err)
	}
	if l, ok := v.Left(); !ok || l != true {
		t.Fatalf("expected left variant, got %+v", v)
	}

	// String Element decodes as the right variant
	v, err = c.DecodeElement(dataapi.String("s")).Unpack()
	if err != nil {
		t.Fatalf("decode string: %v", err)
	}
	if r, ok := v.Right(); !ok || r != "s" {
		t.Fatalf("expected right variant, got %+v", v)
	}
}

func TestEither_NeitherVariant(t *testing.T) {
	c := boolOrString()
	r := c.DecodeElement(dataapi.Int(3))
	if r.IsSuccess() {
		t.Fatalf("expected failure")
	}
	errs := r.Errors()
	if len(errs) != 1 || errs[0].Code != dataapi.CodeNeitherVariant {
		t.Fatalf("expected single neither_variant, got %v", errs)
	}
	// description is produced from the rendered path, including outer context
	// added later
	e := errs[0].At(dataapi.Name("flag"))
	if got := e.Description(); !strings.Contains(got, "/flag") {
		t.Fatalf("message should see the final path, got %q", got)
	}
	// discarded branch errors are kept as diagnostics only
	if len(errs[0].Causes) != 2 {
		t.Fatalf("expected both branch errors retained as causes, got %v", errs[0].Causes)
	}
}

func TestEither_EncodeDispatchesOnVariant(t *testing.T) {
	c := boolOrString()
	el, err := c.EncodeElement(dsl.Left[bool, string](true)).Unpack()
	if err != nil || el.Kind() != dataapi.KindBoolean {
		t.Fatalf("left encode: %v %v", el, err)
	}
	el, err = c.EncodeElement(dsl.Right[bool, string]("x")).Unpack()
	if err != nil || el.Kind() != dataapi.KindString {
		t.Fatalf("right encode: %v %v", el, err)
	}
}

func TestEither_LifecycleCombinesBranches(t *testing.T) {
	c := dsl.EitherOf(
		dataapi.MarkExperimental(dsl.Bool()),
		dataapi.MarkDeprecated(dsl.String(), 9),
		func(path string) string { return "neither at " + path },
	)
	if since, ok := c.Lifecycle().DeprecatedSince(); !ok || since != 9 {
		t.Fatalf("union lifecycle should be the combine of both branches, got %v", c.Lifecycle())
	}
}

func TestFlatOrElse_FallbackVerbatim(t *testing.T) {
	// legacy schema: string digits; new schema: int
	legacy := dataapi.Xmap(dsl.String(),
		func(s string) int32 {
			var n int32
			for _, r := range s {
				n = n*10 + int32(r-'0')
			}
			return n
		},
		func(v int32) string { return fmt.Sprintf("%d", v) },
	)
	c := dsl.FlatOrElse(dsl.Int(), legacy)

	// primary succeeds
	v, err := c.DecodeElement(dataapi.Int(12)).Unpack()
	if err != nil || v != 12 {
		t.Fatalf("primary decode: v=%v err=%v", v, err)
	}

	// fallback result returned verbatim on primary failure
	v, err = c.DecodeElement(dataapi.String("34")).Unpack()
	if err != nil || v != 34 {
		t.Fatalf("secondary decode: v=%v err=%v", v, err)
	}

	// both fail: the secondary's errors come back, not the primary's
	r := c.DecodeElement(dataapi.Boolean(true))
	if r.IsSuccess() || len(r.Errors()) != 1 || r.Errors()[0].Code != dataapi.CodeNotAString {
		t.Fatalf("expected secondary's not_a_string, got %v", r.Errors())
	}

	// encode always goes through the primary
	el, err := c.EncodeElement(5).Unpack()
	if err != nil || el.Kind() != dataapi.KindInt {
		t.Fatalf("encode must use primary: %v %v", el, err)
	}
}

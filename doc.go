package dataapi

// Package dataapi provides:
//
// - A canonical, JSON-shaped value tree (Element) with an explicit absent marker
// - A stable error model via Errors (structured path, code, message)
// - A Lifecycle marker (stable/experimental/deprecated) with an associative combine law
// - The bidirectional Codec contract plus structural combinators (Xmap, OrElse, WithLifecycle)
//
// Design policy:
// - Keep only public model APIs in the root package.
// - Place codec constructors and composition under dsl/, wire transcoders under codec/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	c := dsl.Record[Point]()
//	x := dsl.Bind(c, dsl.FieldOf(dsl.Int(), "x"), func(p Point) int32 { return p.X })
//	y := dsl.Bind(c, dsl.FieldOf(dsl.Int(), "y"), func(p Point) int32 { return p.Y })
//	codec := c.Build(func(vals dsl.RecordValues) Point { return Point{X: x.Get(vals), Y: y.Get(vals)} })
//
//	el, err := codec.EncodeElement(Point{X: 1, Y: 2}).Unpack()
//	p, err := codec.DecodeElement(el).Unpack()

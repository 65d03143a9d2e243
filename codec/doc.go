// Package codec converts between the Element tree and concrete wire formats
// (JSON, YAML, MessagePack). These are the "final encoder/decoder"
// collaborators of the core: they produce and consume Elements, preserve
// object key order, and report their own syntax errors through the core's
// error taxonomy so downstream consumers see a uniform error shape.
package codec

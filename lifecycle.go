package dataapi

import "fmt"

type lifecycleKind uint8

const (
	lifecycleStable lifecycleKind = iota
	lifecycleExperimental
	lifecycleDeprecated
)

// Lifecycle is a schema-stability marker carried by every Codec and Result.
// Composites fold their children's lifecycles with Combine, so a consumer
// can tell after decoding whether any part of the value touched experimental
// or deprecated schema.
type Lifecycle struct {
	kind  lifecycleKind
	since int
}

// Stable returns the identity lifecycle.
func Stable() Lifecycle { return Lifecycle{} }

// Experimental marks schema that may still change incompatibly.
func Experimental() Lifecycle { return Lifecycle{kind: lifecycleExperimental} }

// Deprecated marks schema deprecated since the given version.
func Deprecated(since int) Lifecycle {
	return Lifecycle{kind: lifecycleDeprecated, since: since}
}

// IsStable reports whether l is Stable.
func (l Lifecycle) IsStable() bool { return l.kind == lifecycleStable }

// IsExperimental reports whether l is Experimental.
func (l Lifecycle) IsExperimental() bool { return l.kind == lifecycleExperimental }

// DeprecatedSince returns the deprecation version when l is Deprecated.
func (l Lifecycle) DeprecatedSince() (int, bool) {
	return l.since, l.kind == lifecycleDeprecated
}

// Combine folds two lifecycles. The law is associative and commutative with
// Stable as identity: deprecation dominates experimentalness, and among
// deprecated contributors the earliest deprecation version wins.
func (l Lifecycle) Combine(other Lifecycle) Lifecycle {
	switch {
	case l.kind == lifecycleStable:
		return other
	case other.kind == lifecycleStable:
		return l
	case l.kind == lifecycleDeprecated && other.kind == lifecycleDeprecated:
		if other.since < l.since {
			return other
		}
		return l
	case l.kind == lifecycleDeprecated:
		return l
	case other.kind == lifecycleDeprecated:
		return other
	default:
		return Experimental()
	}
}

func (l Lifecycle) String() string {
	switch l.kind {
	case lifecycleExperimental:
		return "experimental"
	case lifecycleDeprecated:
		return fmt.Sprintf("deprecated(since %d)", l.since)
	default:
		return "stable"
	}
}

/*
Package list implements an immutable, structurally shared singly-linked
list. Prepending to a list produces a new list whose head node points at the
original list's chain; the original stays valid and unchanged, so many lists
may branch off a common tail without copying a single node.

Node lifetime is tracked with explicit per-node reference counts rather than
left to the garbage collector alone: Release walks a list's chain
iteratively and reclaims nodes up to the first one still owned by a sibling
list, which makes sharing observable and teardown cost auditable. The
counts are plain integers, adequate for the single-threaded use this module
is designed for; cross-thread sharing would need an atomic counting scheme.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cons.list'.
func tracer() tracing.Trace {
	return tracing.Select("cons.list")
}

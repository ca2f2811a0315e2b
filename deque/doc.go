/*
Package deque implements a doubly-linked deque with push, pop and peek at
both ends, and runtime-checked access to node payloads.

A doubly-linked list built from shared, mutable nodes is a reference cycle:
every interior node is held by its predecessor's next link and its
successor's prev link, and plain reference counting never reclaims it. Nodes
here live in an arena instead and are addressed by stable handles; next and
prev carry no ownership, so teardown needs no cycle breaking.

What is kept from the shared-node design is its aliasing discipline: peeks
return scoped views backed by a per-node borrow ledger. Any number of shared
views of a node's payload may be live at once, but a mutable view excludes
every other view. Violations are detected at runtime and fail fast; the
Try variants report them as errors instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deque

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cons.deque'.
func tracer() tracing.Trace {
	return tracing.Select("cons.deque")
}

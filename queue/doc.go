/*
Package queue implements a singly-linked FIFO queue with O(1) append and O(1)
removal from the front.

A naive singly-linked queue needs a back-reference to its last node to append
in O(1), and a plain pointer held next to the owning chain is exactly the
kind of reference that goes stale the moment the node it points to is
removed. This implementation sidesteps the hazard: nodes live in an arena and
are addressed by stable handles, so the cached tail is a handle into storage
the queue itself owns. It is revalidated trivially (the empty queue nulls it)
and can never dangle.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cons.queue'.
func tracer() tracing.Trace {
	return tracing.Select("cons.queue")
}

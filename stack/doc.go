/*
Package stack implements a singly-linked LIFO stack with an exclusively
owned chain of nodes: the stack owns its head node, and every node owns its
successor. This is the simplest ownership story a linked structure can have,
and the baseline the other variants in this module depart from.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cons.stack'.
func tracer() tracing.Trace {
	return tracing.Select("cons.stack")
}

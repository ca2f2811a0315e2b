/*
Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them.

*Persistent* immutable data-structures offer structural sharing: if two instances
are mostly copies of each other, most of the memory they take up will be shared
between them, transparently to clients. Deriving a new instance from an existing
one is therefore cheap in terms of space- and time-complexity, and since shared
nodes are never mutated after creation, sharing is always safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent

/*
Package arr provides a move-only owning array with combinator access.

An Array[T] owns a contiguous backing store of fixed length. The length is
set at construction and only ever changes through Join, which consumes both
operand arrays into a freshly allocated concatenation, or through a move,
which transfers the whole structure and leaves the source empty.

Array deliberately does not derive from or embed box.Box. The two types have
incompatible invalidation semantics (a single slot versus a store plus
length) and share only a combinator vocabulary: indexed access, Foreach,
Map, Reduce, Reverse, Join. The one point of contact is Get, which hands out
a copy of a slot wrapped in a box so that out-of-range access is modeled as
absence instead of a panic.

Bounds discipline comes in two flavors. The checked operations (Get, Swap,
Set) report failure through an empty box or a false result. At is the
unchecked index for performance-critical loops; an out-of-range index is a
caller error, not a recoverable condition.
*/
package arr

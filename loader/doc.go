/*
Package loader ingests word keys from text sources into optree search trees.

Input text is segmented with UAX#14 line-break rules, the same segmentation
the uax package provides for text formatting. Every non-blank segment
becomes a key; duplicates are rejected by the tree and counted. Punctuation
stays attached to its word, so "fox" and "fox." are distinct keys.

A load runs entirely on the calling goroutine, which is the sole owner of
the tree being built, keeping the single-owner rule of the core intact.
Observers may still watch a long-running load: the loader broadcasts
Progress counts through a caster, and subscribers on other goroutines
receive those counts, never the tree itself. Broadcasting is best effort; a
slow subscriber misses updates instead of stalling the load.
*/
package loader

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

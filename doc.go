/*
Package pumpkins is an incremental square-merge engine for square grids.

Unit cells are planted one at a time. Whenever a newly planted cell,
together with previously planted cells, exactly fills an axis-aligned
square region, that region is merged into a single pumpkin identified by
its top-left-most cell. Each insertion finds the largest such square
that became fully occupied and does not improperly fuse with an existing
merged region, then records that square's identity across all its cells.

The engine splits into a precomputed, immutable lookup table (built once
per grid size, shared read-only by any number of patches) and the
mutable Patch holding the occupancy bitmap and per-cell identities:

	table, err := pumpkins.Build(20)
	...
	patch, err := pumpkins.NewPatch(20, table)
	...
	sq, err := patch.Insert(3, 7)

Lookups are dense flat arrays indexed by a perfect square hash; the
merge search is a DFS over the implicit graph of squares with a bitset
for visited-tracking. Patches are single-owner; a Table may be shared by
concurrent readers.
*/
package pumpkins

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pumpkins'
func tracer() tracing.Trace {
	return tracing.Select("pumpkins")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// Package meshopt implements the core mesh-geometry transforms used by a
// real-time rendering pipeline to prepare indexed triangle meshes for GPU
// consumption: vertex deduplication, vertex-cache and vertex-fetch
// reordering, overdraw optimization, quadric-error simplification, meshlet
// and cluster construction, stripification, and the analyzers that report
// on all of the above.
//
// Every exported function operates on plain slices, is single-threaded and
// synchronous, and allocates its own scratch memory; nothing is shared
// across calls except the process-wide allocator (SetAllocator) and the
// encoder version byte (SetEncoderVersion). Indices are always widened to
// uint32 at the API boundary — see ExpandIndices16 and NarrowIndices32 —
// so that every algorithm body only ever deals with one index width.
package meshopt

package meshopt

// invalidVertex marks a remap slot for a vertex that was never referenced.
const invalidVertex = ^uint32(0)

// GenerateVertexRemap walks indices (or, if indices is nil, a virtual
// identity-indexed stream of vertexCount vertices) and returns a
// length-vertexCount remap where remap[old] is the compacted new id, or
// invalidVertex if the vertex was never referenced. New ids are assigned
// in order of first reference. It returns the number of unique vertices.
//
// Contract (spec §4.C): for any i < j where remap[i] and remap[j] are
// both valid and vertex_bytes(i) == vertex_bytes(j), remap[i] == remap[j].
func GenerateVertexRemap(indices []uint32, vertices VertexBuffer) (remap []uint32, uniqueCount int) {
	vertices.checkStride("GenerateVertexRemap")
	vertexCount := vertices.Count()
	if indices != nil {
		checkIndices("GenerateVertexRemap", indices, vertexCount)
	}

	remap = make([]uint32, vertexCount)
	for i := range remap {
		remap[i] = invalidVertex
	}

	table := newBlobHashTable(vertices.Stride, vertexCount, vertices.Data)

	assign := func(old uint32) {
		if remap[old] != invalidVertex {
			return
		}
		rec := vertices.bytesOf(old)
		if existing := table.find(rec); existing >= 0 {
			remap[old] = remap[uint32(existing)]
			return
		}
		table.insert(int32(old))
		remap[old] = uint32(uniqueCount)
		uniqueCount++
	}

	if indices == nil {
		for old := 0; old < vertexCount; old++ {
			assign(uint32(old))
		}
	} else {
		for _, old := range indices {
			assign(old)
		}
	}
	return remap, uniqueCount
}

// RemapVertexBuffer compacts src into a buffer of uniqueCount vertices
// using remap (as produced by GenerateVertexRemap): the vertex at old
// index i is written to the slot remap[i], provided remap[i] is valid.
// Aliasing (dst overlapping src) is not assumed; callers wanting in-place
// semantics get it for free because this always writes through a fresh
// buffer.
func RemapVertexBuffer(src VertexBuffer, remap []uint32, uniqueCount int) VertexBuffer {
	src.checkStride("RemapVertexBuffer")
	mustf(len(remap) == src.Count(), "RemapVertexBuffer", "remap length %d does not match vertex count %d", len(remap), src.Count())

	dst := make([]byte, uniqueCount*src.Stride)
	for old, n := range remap {
		if n == invalidVertex {
			continue
		}
		copy(dst[int(n)*src.Stride:int(n+1)*src.Stride], src.bytesOf(uint32(old)))
	}
	return VertexBuffer{Data: dst, Stride: src.Stride, PosOffset: src.PosOffset}
}

// RemapIndexBuffer rewrites indices through remap, producing a new index
// buffer of the same length pointing at the compacted vertex ids.
func RemapIndexBuffer(indices []uint32, remap []uint32) []uint32 {
	out := make([]uint32, len(indices))
	for i, old := range indices {
		n := remap[old]
		mustf(n != invalidVertex, "RemapIndexBuffer", "index %d maps to an unreferenced vertex", old)
		out[i] = n
	}
	return out
}

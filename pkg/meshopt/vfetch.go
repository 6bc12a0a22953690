package meshopt

// OptimizeVertexFetch reorders vertices to match the order their ids first
// appear in indices, rewriting indices in place to point at the new
// positions (spec §4.E). It returns the reordered vertex buffer (holding
// only the vertices that are actually referenced) and the new vertex
// count. Supports in-place operation: vertices is copied to a temporary
// buffer first, so passing the same backing array back out is safe.
func OptimizeVertexFetch(indices []uint32, vertices VertexBuffer) (VertexBuffer, int) {
	vertices.checkStride("OptimizeVertexFetch")
	vertexCount := vertices.Count()
	checkIndices("OptimizeVertexFetch", indices, vertexCount)

	src := append([]byte(nil), vertices.Data...)
	dst := make([]byte, len(src))

	newID := make([]uint32, vertexCount)
	for i := range newID {
		newID[i] = invalidVertex
	}

	next := uint32(0)
	for i, old := range indices {
		n := newID[old]
		if n == invalidVertex {
			n = next
			next++
			newID[old] = n
			copy(dst[int(n)*vertices.Stride:int(n+1)*vertices.Stride], src[int(old)*vertices.Stride:int(old+1)*vertices.Stride])
		}
		indices[i] = n
	}

	out := VertexBuffer{Data: dst[:int(next)*vertices.Stride], Stride: vertices.Stride, PosOffset: vertices.PosOffset}
	return out, int(next)
}

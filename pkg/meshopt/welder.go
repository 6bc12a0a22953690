package meshopt

import "bytes"

// welderLeafSize is the threshold below which a k-d split stops and
// resolves duplicates by exact byte comparison (spec §4.L).
const welderLeafSize = 16

// WeldVertices merges numerically identical vertices via a k-d tree over
// positions that splits each group at the midpoint of its widest axis,
// resolving exact float equality inside leaves
// (spec §4.L). It returns a remap (as GenerateVertexRemap does) and the
// number of unique vertices; RemapVertexBuffer/RemapIndexBuffer compact
// the buffers using that remap.
func WeldVertices(vertices VertexBuffer) (remap []uint32, uniqueCount int) {
	vertices.checkStride("WeldVertices")
	n := vertices.Count()
	remap = make([]uint32, n)
	for i := range remap {
		remap[i] = invalidVertex
	}

	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = uint32(i)
	}

	next := uint32(0)
	assignLeaf := func(group []uint32) {
		var kept [][]byte
		var keptIDs []uint32
		for _, id := range group {
			rec := vertices.bytesOf(id)
			match := -1
			for i, k := range kept {
				if bytes.Equal(k, rec) {
					match = i
					break
				}
			}
			if match >= 0 {
				remap[id] = remap[keptIDs[match]]
				continue
			}
			kept = append(kept, rec)
			keptIDs = append(keptIDs, id)
			remap[id] = next
			next++
		}
	}

	var split func(group []uint32)
	split = func(group []uint32) {
		if len(group) <= welderLeafSize {
			assignLeaf(group)
			return
		}

		var minP, maxP [3]float32
		for i := 0; i < 3; i++ {
			minP[i], maxP[i] = 1e30, -1e30
		}
		for _, id := range group {
			p := vertices.Position(id)
			for i := 0; i < 3; i++ {
				if p[i] < minP[i] {
					minP[i] = p[i]
				}
				if p[i] > maxP[i] {
					maxP[i] = p[i]
				}
			}
		}

		axis := 0
		spread := maxP[0] - minP[0]
		for i := 1; i < 3; i++ {
			if s := maxP[i] - minP[i]; s > spread {
				axis, spread = i, s
			}
		}

		if spread <= 0 {
			assignLeaf(group)
			return
		}

		mid := (minP[axis] + maxP[axis]) / 2
		var left, right []uint32
		for _, id := range group {
			if vertices.Position(id)[axis] <= mid {
				left = append(left, id)
			} else {
				right = append(right, id)
			}
		}
		if len(left) == 0 || len(right) == 0 {
			// The mean coincides with min/max: resolve here instead of
			// looping forever on a degenerate split (spec §4.L).
			assignLeaf(group)
			return
		}

		split(left)
		split(right)
	}

	split(ids)
	return remap, int(next)
}

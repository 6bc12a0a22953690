package meshopt

// deadEndStack is a simple LIFO of vertex ids, matching the Tipsify
// algorithm's "stack of recently emitted vertices" (spec §4.D).
type deadEndStack struct {
	data []uint32
}

func (s *deadEndStack) push(v uint32) { s.data = append(s.data, v) }
func (s *deadEndStack) pop() (uint32, bool) {
	if len(s.data) == 0 {
		return 0, false
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, true
}

// OptimizeVertexCache reorders the triangles of indices to minimize
// simulated FIFO cache misses under a cache of cacheSize (>= 3), using the
// Tipsify dead-end-stack heuristic (spec §4.D). It returns a new index
// buffer of the same length: triangles are neither added nor removed,
// only reordered, and index values are unchanged.
//
// If clusters is non-nil, *clusters is appended with the start offset (in
// the output index buffer) of every hard-boundary cluster: a cluster
// begins wherever the algorithm had to abandon the dead-end stack and
// jump to a fresh, unused vertex.
func OptimizeVertexCache(indices []uint32, vertexCount int, cacheSize int, clusters *[]uint32) []uint32 {
	mustf(cacheSize >= 3, "OptimizeVertexCache", "cache size %d must be >= 3", cacheSize)
	checkIndices("OptimizeVertexCache", indices, vertexCount)

	triCount := TriangleCount(indices)
	if triCount == 0 {
		return append([]uint32(nil), indices...)
	}

	adj := BuildAdjacency(indices, vertexCount)

	liveTriangles := make([]uint32, vertexCount)
	copy(liveTriangles, adj.Counts)

	// timestamp[v] < 0 means "not yet touched"; otherwise it is the
	// timestamp at which v last entered the simulated cache.
	timestamp := make([]int32, vertexCount)
	for i := range timestamp {
		timestamp[i] = -1
	}

	emitted := make([]bool, triCount)
	out := make([]uint32, 0, len(indices))
	stack := &deadEndStack{}

	var now int32
	inCache := func(v uint32) bool {
		ts := timestamp[v]
		return ts >= 0 && now-ts <= int32(cacheSize)
	}

	emitTriangle := func(t uint32) {
		for c := 0; c < 3; c++ {
			v := indices[t*3+uint32(c)]
			out = append(out, v)
		}
		emitted[t] = true
		for c := 0; c < 3; c++ {
			v := indices[t*3+uint32(c)]
			liveTriangles[v]--
			stack.push(v)
			if !inCache(v) {
				timestamp[v] = now
				now++
			}
		}
	}

	// emitFan emits every unemitted triangle touching v; the caller reads
	// the vertices it pushed off the top of the dead-end stack.
	emitFan := func(v uint32) {
		for _, t := range adj.Triangles(v) {
			if !emitted[t] {
				emitTriangle(t)
			}
		}
	}

	nextUnusedCursor := 0
	findUnused := func() (uint32, bool) {
		for nextUnusedCursor < vertexCount {
			v := uint32(nextUnusedCursor)
			nextUnusedCursor++
			if liveTriangles[v] > 0 {
				return v, true
			}
		}
		return 0, false
	}

	current := uint32(0)
	if liveTriangles[current] == 0 {
		if v, ok := findUnused(); ok {
			current = v
		} else {
			return out
		}
	}

	for {
		before := len(stack.data)
		emitFan(current)
		pushed := stack.data[before:]

		// Score candidates among vertices just pushed (spec §4.D step 3):
		// prefer one that will still be in cache after its full fan is
		// emitted, breaking ties by oldest useful cache position.
		best := uint32(0)
		bestAge := int32(-1)
		found := false
		for _, v := range pushed {
			if liveTriangles[v] == 0 {
				continue
			}
			if 2*int32(liveTriangles[v])+now-maxInt32(timestamp[v], 0) > int32(cacheSize) {
				continue
			}
			age := now - timestamp[v]
			if !found || age > bestAge {
				best, bestAge, found = v, age, true
			}
		}

		if found {
			current = best
			continue
		}

		// Pop the dead-end stack until a live vertex turns up (step 4).
		popped := false
		for {
			v, ok := stack.pop()
			if !ok {
				break
			}
			if liveTriangles[v] > 0 {
				current = v
				popped = true
				break
			}
		}
		if popped {
			continue
		}

		// Stack exhausted: advance the input cursor to a fresh vertex and
		// record a hard boundary (step 5).
		v, ok := findUnused()
		if !ok {
			break
		}
		if clusters != nil {
			*clusters = append(*clusters, uint32(len(out)))
		}
		current = v
	}

	return out
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

package meshopt

// Adjacency is the per-vertex triangle list built from an index buffer: for
// each vertex v, Data[Offsets[v]:Offsets[v]+Counts[v]] holds the ids of the
// triangles touching v. Offsets is the prefix sum of Counts, so it is
// monotonically non-decreasing and Offsets[vertexCount] == len(Data).
//
// This is the one shared adjacency builder in the package (spec §9: "a
// single shared adjacency module... avoids code duplication"); the
// vertex-cache optimizer builds its working state from it instead of
// re-deriving triangle lists.
type Adjacency struct {
	Counts  []uint32
	Offsets []uint32
	Data    []uint32
}

// BuildAdjacency builds the per-vertex triangle lists for indices over
// vertexCount vertices in O(len(indices)). Two passes: count occurrences,
// then scatter triangle ids into a flat array using a temporary fill
// cursor so the final layout matches the prefix-sum offsets.
func BuildAdjacency(indices []uint32, vertexCount int) Adjacency {
	checkIndices("BuildAdjacency", indices, vertexCount)

	counts := make([]uint32, vertexCount)
	for _, idx := range indices {
		counts[idx]++
	}

	offsets := make([]uint32, vertexCount+1)
	var sum uint32
	for v, c := range counts {
		offsets[v] = sum
		sum += c
	}
	offsets[vertexCount] = sum

	data := make([]uint32, sum)
	cursor := make([]uint32, vertexCount)
	copy(cursor, offsets[:vertexCount])

	triCount := uint32(len(indices) / 3)
	for t := uint32(0); t < triCount; t++ {
		for c := 0; c < 3; c++ {
			v := indices[t*3+uint32(c)]
			data[cursor[v]] = t
			cursor[v]++
		}
	}

	return Adjacency{Counts: counts, Offsets: offsets, Data: data}
}

// Triangles returns the triangle ids touching vertex v.
func (a Adjacency) Triangles(v uint32) []uint32 {
	o := a.Offsets[v]
	return a.Data[o : o+a.Counts[v]]
}

// edgeAdjacency answers "is (a,b) a boundary edge" queries by recording,
// for every directed edge seen across all triangles, how many triangles
// own it in each direction. An edge is interior iff both directions
// appear at least once (spec §4.G). Built once and reused by the
// simplifier; kept unexported since nothing else in this package needs a
// second copy of the same traversal (spec §9).
type edgeAdjacency struct {
	forward map[[2]uint32]int
}

func buildEdgeAdjacency(indices []uint32) edgeAdjacency {
	ea := edgeAdjacency{forward: make(map[[2]uint32]int, len(indices))}
	for t := 0; t < len(indices); t += 3 {
		tri := indices[t : t+3]
		for c := 0; c < 3; c++ {
			a, b := tri[c], tri[(c+1)%3]
			ea.forward[[2]uint32{a, b}]++
		}
	}
	return ea
}

// isBoundary reports whether the edge (a,b) is owned by exactly one
// triangle across the whole mesh (neither (a,b) nor (b,a) appearing more
// than once, and not both appearing).
func (ea edgeAdjacency) isBoundary(a, b uint32) bool {
	fwd := ea.forward[[2]uint32{a, b}]
	rev := ea.forward[[2]uint32{b, a}]
	return fwd+rev == 1
}

package meshopt

import "testing"

func TestWeldVerticesDedupesExactDuplicates(t *testing.T) {
	positions := [][3]float32{
		{0, 0, 0},
		{1, 0, 0},
		{0, 0, 0}, // duplicate of 0
		{1, 0, 0}, // duplicate of 1
		{2, 0, 0},
	}
	vb := makeVertexBuffer(positions)
	remap, unique := WeldVertices(vb)

	if unique != 3 {
		t.Fatalf("unique = %d, want 3", unique)
	}
	if remap[0] != remap[2] {
		t.Fatalf("remap[0]=%d should equal remap[2]=%d", remap[0], remap[2])
	}
	if remap[1] != remap[3] {
		t.Fatalf("remap[1]=%d should equal remap[3]=%d", remap[1], remap[3])
	}
	if remap[4] == remap[0] || remap[4] == remap[1] {
		t.Fatalf("vertex 4 should not merge with any duplicate")
	}
}

func TestWeldVerticesNoDuplicates(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	vb := makeVertexBuffer(positions)
	_, unique := WeldVertices(vb)
	if unique != 4 {
		t.Fatalf("unique = %d, want 4", unique)
	}
}

func TestWeldVerticesLargeGroupSplitsCorrectly(t *testing.T) {
	// More than welderLeafSize vertices, forcing at least one k-d split,
	// with every third vertex duplicating its predecessor.
	var positions [][3]float32
	for i := 0; i < 40; i++ {
		k := i - i%3/2 // i%3 == 2 reuses the coordinates of i-1
		positions = append(positions, [3]float32{float32(k / 3), float32(k % 5), 0})
	}
	vb := makeVertexBuffer(positions)
	remap, unique := WeldVertices(vb)

	if unique <= 0 || unique > len(positions) {
		t.Fatalf("unique = %d out of range", unique)
	}
	// Vertices with identical source coordinates must remap to the same id.
	seen := make(map[[3]float32]uint32)
	for i, p := range positions {
		if id, ok := seen[p]; ok {
			if remap[i] != id {
				t.Fatalf("vertex %d did not merge with identical-position vertex", i)
			}
		} else {
			seen[p] = remap[i]
		}
	}
}

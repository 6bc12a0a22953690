package meshopt

import "testing"

func TestBuildAdjacencyQuad(t *testing.T) {
	indices := []uint32{0, 1, 2, 0, 2, 3}
	adj := BuildAdjacency(indices, 4)

	var total uint32
	for _, c := range adj.Counts {
		total += c
	}
	if total != uint32(len(indices)) {
		t.Fatalf("sum of counts = %d, want %d", total, len(indices))
	}

	for v := 1; v < len(adj.Offsets); v++ {
		if adj.Offsets[v] < adj.Offsets[v-1] {
			t.Fatalf("offsets not monotonic at %d", v)
		}
	}

	if adj.Counts[0] != 2 {
		t.Fatalf("vertex 0 touches %d triangles, want 2", adj.Counts[0])
	}
	if adj.Counts[1] != 1 || adj.Counts[3] != 1 {
		t.Fatalf("vertex 1/3 triangle counts wrong: %v", adj.Counts)
	}
}

func TestEdgeAdjacencyBoundary(t *testing.T) {
	// Two triangles sharing edge (0,2): interior. All other edges boundary.
	indices := []uint32{0, 1, 2, 0, 2, 3}
	ea := buildEdgeAdjacency(indices)

	if ea.isBoundary(0, 1) != true {
		t.Fatalf("(0,1) should be a boundary edge")
	}
	if ea.isBoundary(2, 0) == true {
		t.Fatalf("(2,0) is the shared edge, should be interior")
	}
}

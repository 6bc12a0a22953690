package meshopt

import "testing"

// buildQuadClusters returns four clusters covering a 3x3 vertex grid, each
// describing one of the four unit quads, with target shared edges between
// neighbors.
func buildQuadClusters() (indices, offsets []uint32) {
	clusters := [][]uint32{
		{0, 1, 3, 4},
		{1, 2, 4, 5},
		{3, 4, 6, 7},
		{4, 5, 7, 8},
	}
	offsets = append(offsets, 0)
	for _, c := range clusters {
		indices = append(indices, c...)
		offsets = append(offsets, uint32(len(indices)))
	}
	return indices, offsets
}

func TestPartitionProducesDenseIDs(t *testing.T) {
	indices, offsets := buildQuadClusters()
	count, ids := Partition(indices, offsets, 9, 8, PartitionOptions{})

	if len(ids) != 4 {
		t.Fatalf("len(ids) = %d, want 4", len(ids))
	}
	if count <= 0 || count > 4 {
		t.Fatalf("partitionCount = %d, out of range", count)
	}
	seen := make(map[uint32]bool)
	for _, id := range ids {
		if id >= uint32(count) {
			t.Fatalf("partition id %d out of range [0,%d)", id, count)
		}
		seen[id] = true
	}
	if len(seen) != count {
		t.Fatalf("ids are not dense: saw %d distinct of %d", len(seen), count)
	}
}

func TestPartitionLargeTargetKeepsSingleGroup(t *testing.T) {
	indices, offsets := buildQuadClusters()
	count, ids := Partition(indices, offsets, 9, 1000, PartitionOptions{})
	if count != 1 {
		t.Fatalf("partitionCount = %d, want 1 when target far exceeds mesh size", count)
	}
	for i, id := range ids {
		if id != 0 {
			t.Fatalf("cluster %d landed in partition %d, want 0", i, id)
		}
	}
}

func TestPartitionTinyTargetKeepsClustersSeparate(t *testing.T) {
	indices, offsets := buildQuadClusters()
	count, _ := Partition(indices, offsets, 9, 1, PartitionOptions{})
	if count != 4 {
		t.Fatalf("partitionCount = %d, want 4 when every group already meets target", count)
	}
}

func TestPartitionScoreExternalOption(t *testing.T) {
	indices, offsets := buildQuadClusters()
	count, ids := Partition(indices, offsets, 9, 8, PartitionOptions{ScoreExternal: true, ScoreSmallest: true})
	if len(ids) != 4 || count < 1 {
		t.Fatalf("unexpected result with ScoreExternal: count=%d ids=%v", count, ids)
	}
}

// TestPartitionSortExternalOption exercises groupHeap's external-boundary
// priority branch (PartitionOptions.SortExternal) against a mesh where an
// isolated cluster (zero external boundary) should be favored for merging
// before the two mutually-adjacent clusters that share a boundary vertex.
func TestPartitionSortExternalOption(t *testing.T) {
	clusters := [][]uint32{
		{0},       // isolated cluster: no vertex shared with any other
		{1, 2},    // shares vertex 2 with cluster 2
		{2, 3},    // shares vertex 2 with cluster 1
	}
	var indices, offsets []uint32
	offsets = append(offsets, 0)
	for _, c := range clusters {
		indices = append(indices, c...)
		offsets = append(offsets, uint32(len(indices)))
	}

	count, ids := Partition(indices, offsets, 4, 10, PartitionOptions{SortExternal: true})
	if len(ids) != 3 {
		t.Fatalf("len(ids) = %d, want 3", len(ids))
	}
	if count <= 0 || count > 3 {
		t.Fatalf("partitionCount = %d, out of range", count)
	}

	countDefault, idsDefault := Partition(indices, offsets, 4, 10, PartitionOptions{SortExternal: false})
	if len(idsDefault) != 3 || countDefault <= 0 {
		t.Fatalf("unexpected baseline result: count=%d ids=%v", countDefault, idsDefault)
	}
}

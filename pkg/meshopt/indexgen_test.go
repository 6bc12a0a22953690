package meshopt

import "testing"

// TestGenerateVertexRemapDegenerate mirrors spec scenario 2: five vertices
// where (1) and (3) share identical bytes; indices [0,1,2, 0,3,4].
func TestGenerateVertexRemapDegenerate(t *testing.T) {
	positions := [][3]float32{
		{0, 0, 0}, // 0
		{1, 0, 0}, // 1
		{1, 1, 0}, // 2
		{1, 0, 0}, // 3 == vertex 1
		{0, 1, 0}, // 4
	}
	vb := makeVertexBuffer(positions)
	indices := []uint32{0, 1, 2, 0, 3, 4}

	remap, unique := GenerateVertexRemap(indices, vb)
	if unique != 4 {
		t.Fatalf("unique count = %d, want 4", unique)
	}
	if remap[3] != remap[1] {
		t.Fatalf("remap[3]=%d should equal remap[1]=%d", remap[3], remap[1])
	}
}

func TestIndexGeneratorIdempotent(t *testing.T) {
	positions := [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 0, 0}, {0, 1, 0},
	}
	vb := makeVertexBuffer(positions)
	indices := []uint32{0, 1, 2, 0, 3, 4}

	remap, unique := GenerateVertexRemap(indices, vb)
	newVB := RemapVertexBuffer(vb, remap, unique)
	newIndices := RemapIndexBuffer(indices, remap)

	remap2, unique2 := GenerateVertexRemap(newIndices, newVB)
	if unique2 != unique {
		t.Fatalf("second pass unique = %d, want %d", unique2, unique)
	}
	for i, v := range remap2 {
		if v != uint32(i) {
			t.Fatalf("remap not idempotent at %d: %d", i, v)
		}
	}
}

func TestGenerateVertexRemapWithoutIndices(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}}
	vb := makeVertexBuffer(positions)

	remap, unique := GenerateVertexRemap(nil, vb)
	if unique != 2 {
		t.Fatalf("unique = %d, want 2", unique)
	}
	if remap[0] != remap[2] {
		t.Fatalf("remap[0] and remap[2] should match (identical bytes)")
	}
}

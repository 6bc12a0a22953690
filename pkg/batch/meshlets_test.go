package batch

import "testing"

func TestBuildMeshletsBatchPreservesOrder(t *testing.T) {
	meshes := []MeshInput{
		{Indices: []uint32{0, 1, 2}, VertexCount: 3},
		{Indices: []uint32{0, 1, 2, 1, 2, 3}, VertexCount: 4},
		{Indices: []uint32{0, 1, 2, 2, 1, 3, 3, 1, 4}, VertexCount: 5},
	}

	out := BuildMeshletsBatch(meshes, 64, 126, 3)
	if len(out) != len(meshes) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(meshes))
	}
	for i, m := range meshes {
		wantTris := len(m.Indices) / 3
		var gotTris int
		for _, ml := range out[i] {
			gotTris += ml.TriangleCount
		}
		if gotTris != wantTris {
			t.Fatalf("mesh %d: meshlets cover %d triangles, want %d", i, gotTris, wantTris)
		}
	}
}

package batch

import "github.com/leterax/meshopt/pkg/meshopt"

// MeshInput is one mesh to build meshlets for.
type MeshInput struct {
	Indices     []uint32
	VertexCount int
}

// BuildMeshletsBatch runs meshopt.BuildMeshlets over every mesh in meshes
// concurrently across workers, returning one meshlet slice per input mesh
// in the same order as meshes. This is the concrete use case the package
// doc describes: generating meshlets for every node of a LOD hierarchy.
func BuildMeshletsBatch(meshes []MeshInput, maxVertices, maxTriangles, workers int) [][]meshopt.Meshlet {
	jobs := make([]Job[[]meshopt.Meshlet], len(meshes))
	for i, m := range meshes {
		m := m
		jobs[i] = Job[[]meshopt.Meshlet]{
			ID: i,
			Run: func() ([]meshopt.Meshlet, error) {
				return meshopt.BuildMeshlets(m.Indices, maxVertices, maxTriangles), nil
			},
		}
	}

	results := Pipeline(jobs, workers)
	out := make([][]meshopt.Meshlet, len(meshes))
	for _, r := range results {
		out[r.ID] = r.Value
	}
	return out
}

package meshopt

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// OptimizeOverdraw takes a post-cache index buffer and its hard-boundary
// cluster starts (as produced by OptimizeVertexCache) and returns a
// reordered index buffer of the same length, sorting clusters so that
// likely occluders are drawn first (spec §4.F).
//
// threshold <= 0 disables soft-boundary splitting: hard clusters are
// sorted and concatenated as-is. Otherwise each hard cluster is first
// expanded into smaller soft-boundary clusters whenever its running
// simulated cache miss rate exceeds threshold*baselineACMR.
func OptimizeOverdraw(indices []uint32, vertices VertexBuffer, hardClusters []uint32, threshold float32, cacheSize int) []uint32 {
	vertices.checkStride("OptimizeOverdraw")
	vertexCount := vertices.Count()
	checkIndices("OptimizeOverdraw", indices, vertexCount)
	if len(indices) == 0 {
		return nil
	}

	bounds := normalizeClusterBounds(hardClusters, len(indices))

	if threshold > 0 {
		baseline := AnalyzeVertexCache(indices, vertexCount, cacheSize).ACMR
		bounds = expandSoftBoundaries(indices, vertexCount, bounds, baseline*threshold, cacheSize)
	}

	positions := make([]mgl32.Vec3, vertexCount)
	for v := 0; v < vertexCount; v++ {
		positions[v] = vertices.Position(uint32(v))
	}

	var meshCentroid mgl32.Vec3
	var totalArea float32
	for t := 0; t < len(indices); t += 3 {
		p0 := positions[indices[t]]
		p1 := positions[indices[t+1]]
		p2 := positions[indices[t+2]]
		c, n := triCentroidAndNormalArea(p0, p1, p2)
		area := n.Len()
		meshCentroid = meshCentroid.Add(c.Mul(area))
		totalArea += area
	}
	if totalArea > 1e-12 {
		meshCentroid = meshCentroid.Mul(1 / totalArea)
	}

	type scored struct {
		start, end int
		score      float32
	}
	clusters := make([]scored, len(bounds))
	for i, b := range bounds {
		var centroid, normalSum mgl32.Vec3
		var area float32
		for t := b.start; t < b.end; t += 3 {
			p0 := positions[indices[t]]
			p1 := positions[indices[t+1]]
			p2 := positions[indices[t+2]]
			c, n := triCentroidAndNormalArea(p0, p1, p2)
			a := n.Len()
			centroid = centroid.Add(c.Mul(a))
			normalSum = normalSum.Add(n)
			area += a
		}
		if area > 1e-12 {
			centroid = centroid.Mul(1 / area)
		}
		dir := normalSum
		if dir.Len() > 1e-12 {
			dir = dir.Normalize()
		}
		score := dir.Dot(centroid.Sub(meshCentroid))
		clusters[i] = scored{start: b.start, end: b.end, score: score}
	}

	sort.Slice(clusters, func(i, j int) bool { return clusters[i].score > clusters[j].score })

	out := make([]uint32, 0, len(indices))
	for _, c := range clusters {
		out = append(out, indices[c.start:c.end]...)
	}
	return out
}

type clusterBound struct{ start, end int }

func normalizeClusterBounds(starts []uint32, total int) []clusterBound {
	if len(starts) == 0 {
		return []clusterBound{{0, total}}
	}
	bounds := make([]clusterBound, 0, len(starts)+1)
	// OptimizeVertexCache does not record offset 0, so the run before the
	// first start forms its own cluster.
	if starts[0] != 0 {
		bounds = append(bounds, clusterBound{start: 0, end: int(starts[0])})
	}
	for i, s := range starts {
		end := total
		if i+1 < len(starts) {
			end = int(starts[i+1])
		}
		bounds = append(bounds, clusterBound{start: int(s), end: end})
	}
	return bounds
}

// expandSoftBoundaries walks every hard cluster in order, simulating the
// vertex cache, and cuts a new soft boundary whenever the running ACMR of
// the current sub-cluster exceeds target (spec §4.F). The FIFO cache
// state (timestamp, now) is a single pair shared across the whole index
// buffer: it is seeded once and never reset at a cluster or cut boundary,
// matching generateSoftBoundaries in the original implementation, which
// threads one cache_time_stamps/time_stamp pair through every cluster and
// every cut so that locality already established by a previous cluster
// still counts toward the next one's ACMR.
func expandSoftBoundaries(indices []uint32, vertexCount int, bounds []clusterBound, target float32, cacheSize int) []clusterBound {
	var out []clusterBound

	timestamp := make([]int32, vertexCount)
	for i := range timestamp {
		timestamp[i] = -1
	}
	var now int32

	for _, b := range bounds {
		subStart := b.start
		var transforms, tris int

		for t := b.start; t < b.end; t += 3 {
			for c := 0; c < 3; c++ {
				v := indices[t+c]
				ts := timestamp[v]
				if ts < 0 || now-ts > int32(cacheSize) {
					transforms++
					timestamp[v] = now
					now++
				}
			}
			tris++

			if tris > 0 && float32(transforms)/float32(tris) > target && t+3 < b.end {
				out = append(out, clusterBound{start: subStart, end: t + 3})
				subStart = t + 3
				transforms, tris = 0, 0
			}
		}
		out = append(out, clusterBound{start: subStart, end: b.end})
	}
	return out
}

func triCentroidAndNormalArea(p0, p1, p2 mgl32.Vec3) (centroid, normalArea mgl32.Vec3) {
	centroid = p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
	normalArea = p1.Sub(p0).Cross(p2.Sub(p0)).Mul(0.5)
	return centroid, normalArea
}

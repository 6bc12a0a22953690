package meshopt

import "github.com/go-gl/mathgl/mgl32"

// VertexCacheStats summarizes the simulated FIFO cache behavior of an
// index buffer (spec §4.M).
type VertexCacheStats struct {
	VerticesTransformed int
	ACMR                float32 // transforms per triangle
	ATVR                float32 // transforms per vertex
}

// AnalyzeVertexCache simulates a FIFO cache of cacheSize and reports how
// many vertex transforms it causes over indices.
func AnalyzeVertexCache(indices []uint32, vertexCount, cacheSize int) VertexCacheStats {
	mustf(cacheSize >= 1, "AnalyzeVertexCache", "cache size %d must be >= 1", cacheSize)
	checkIndices("AnalyzeVertexCache", indices, vertexCount)

	timestamp := make([]int32, vertexCount)
	for i := range timestamp {
		timestamp[i] = -1
	}

	var now int32
	var transformed int
	for _, v := range indices {
		ts := timestamp[v]
		if ts < 0 || now-ts > int32(cacheSize) {
			transformed++
			timestamp[v] = now
			now++
		}
	}

	triCount := TriangleCount(indices)
	stats := VertexCacheStats{VerticesTransformed: transformed}
	if triCount > 0 {
		stats.ACMR = float32(transformed) / float32(triCount)
	}
	if vertexCount > 0 {
		stats.ATVR = float32(transformed) / float32(vertexCount)
	}
	return stats
}

// VertexFetchStats summarizes the simulated direct-mapped fetch cache
// behavior of an index buffer against a vertex buffer (spec §4.M).
type VertexFetchStats struct {
	BytesFetched int
	Overfetch    float32 // fetched_bytes / (vertex_count * stride)
}

const (
	fetchCacheBytes = 128 * 1024
	fetchLineBytes  = 64
	fetchLineCount  = fetchCacheBytes / fetchLineBytes
)

// AnalyzeVertexFetch simulates a direct-mapped 128KiB cache with 64-byte
// lines: for each index, it touches every line covered by
// [id*stride, (id+1)*stride).
func AnalyzeVertexFetch(indices []uint32, vertices VertexBuffer) VertexFetchStats {
	vertices.checkStride("AnalyzeVertexFetch")
	vertexCount := vertices.Count()
	checkIndices("AnalyzeVertexFetch", indices, vertexCount)

	var lineTag [fetchLineCount]int32
	for i := range lineTag {
		lineTag[i] = -1
	}

	var bytesFetched int
	for _, id := range indices {
		start := int(id) * vertices.Stride
		end := start + vertices.Stride
		for l := start / fetchLineBytes; l <= (end-1)/fetchLineBytes; l++ {
			line := l % fetchLineCount
			tag := int32(l)
			if lineTag[line] != tag {
				lineTag[line] = tag
				bytesFetched += fetchLineBytes
			}
		}
	}

	stats := VertexFetchStats{BytesFetched: bytesFetched}
	total := vertexCount * vertices.Stride
	if total > 0 {
		stats.Overfetch = float32(bytesFetched) / float32(total)
	}
	return stats
}

// OverdrawStats summarizes the simulated overdraw of a mesh (spec §4.M).
type OverdrawStats struct {
	PixelsShaded  int64
	PixelsCovered int64
	Overdraw      float32 // shaded / covered
}

// AnalyzeOverdraw rasterizes indices into three orthographic 256x256
// grids, one per coordinate axis, using a half-space edge-function
// rasterizer with top-left fill convention, and returns the ratio of
// shaded to covered pixels across all three views. No depth test is
// performed: every pixel a triangle covers counts as shaded. In each view
// only triangles wound counter-clockwise in the projected plane are
// rasterized; triangles facing the other way add nothing to that view.
func AnalyzeOverdraw(indices []uint32, vertices VertexBuffer) OverdrawStats {
	vertices.checkStride("AnalyzeOverdraw")
	vertexCount := vertices.Count()
	checkIndices("AnalyzeOverdraw", indices, vertexCount)

	positions := make([]mgl32.Vec3, vertexCount)
	for v := 0; v < vertexCount; v++ {
		positions[v] = vertices.Position(uint32(v))
	}

	var shaded, covered int64
	for axis := 0; axis < 3; axis++ {
		s, c := rasterizeAxis(indices, positions, axis)
		shaded += s
		covered += c
	}

	stats := OverdrawStats{PixelsShaded: shaded, PixelsCovered: covered}
	if covered > 0 {
		stats.Overdraw = float32(shaded) / float32(covered)
	}
	return stats
}

package meshopt

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slog"
)

// collapse is a candidate edge collapse: moving v0 onto v1 costs error
// (spec §3, "Collapse record"). Ordering relies on the fact that
// math.Float32bits is monotone on [0, +Inf] for non-negative floats, so a
// plain numeric sort over Error reproduces float ordering without any
// type-punning union (spec §9).
type collapse struct {
	v0, v1 uint32
	error  float32
}

// Simplify iteratively collapses edges driven by accumulated quadric
// error (Garland-Heckbert) until the index count reaches targetIndexCount
// or no further collapse is possible within the error budget (spec §4.G).
// It returns the simplified index buffer and the worst per-pass error
// observed across all accepted collapses, for callers that want to retry
// with a larger budget when the result is still above target.
//
// Triangles are only ever removed via post-collapse degeneracy; no new
// triangle is introduced; vertex positions are never mutated.
func Simplify(indices []uint32, vertices VertexBuffer, targetIndexCount int, logger *slog.Logger) ([]uint32, float32) {
	log := logOrDiscard(logger)
	vertices.checkStride("Simplify")
	vertexCount := vertices.Count()
	checkIndices("Simplify", indices, vertexCount)
	mustf(targetIndexCount <= len(indices), "Simplify", "target %d exceeds input %d", targetIndexCount, len(indices))
	mustf(targetIndexCount%3 == 0, "Simplify", "target %d not a multiple of 3", targetIndexCount)

	positions := make([]mgl32.Vec3, vertexCount)
	for v := 0; v < vertexCount; v++ {
		positions[v] = vertices.Position(uint32(v))
	}

	quadrics := make([]quadric, vertexCount)
	for t := 0; t < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		q := triangleQuadric(positions[a], positions[b], positions[c])
		quadrics[a].add(q)
		quadrics[b].add(q)
		quadrics[c].add(q)
	}

	ea := buildEdgeAdjacency(indices)
	for t := 0; t < len(indices); t += 3 {
		tri := [3]uint32{indices[t], indices[t+1], indices[t+2]}
		normal := triNormal(positions[tri[0]], positions[tri[1]], positions[tri[2]])
		for c := 0; c < 3; c++ {
			a, b := tri[c], tri[(c+1)%3]
			if ea.isBoundary(a, b) {
				q := edgeQuadric(positions[a], positions[b], normal)
				quadrics[a].add(q)
				quadrics[b].add(q)
			}
		}
	}

	remap := make([]uint32, vertexCount)
	for i := range remap {
		remap[i] = uint32(i)
	}
	resolve := func(v uint32) uint32 {
		for remap[v] != v {
			v = remap[v]
		}
		return v
	}

	cur := append([]uint32(nil), indices...)
	var worstError float32

	for len(cur) > targetIndexCount {
		// One collapse candidate per triangle corner (3 per triangle), not
		// deduplicated by undirected edge: a shared interior edge is
		// scored once from each adjacent triangle's winding, matching
		// edge_collapse_count == index_count in the original simplifier so
		// that goal/errorLimit below index into the same distribution.
		collapses := make([]collapse, 0, len(cur))
		for t := 0; t < len(cur); t += 3 {
			tri := [3]uint32{cur[t], cur[t+1], cur[t+2]}
			for c := 0; c < 3; c++ {
				a, b := tri[c], tri[(c+1)%3]
				qab := quadrics[a]
				qab.add(quadrics[b])
				errAB := qab.eval(positions[b])
				errBA := qab.eval(positions[a])
				if errAB <= errBA {
					collapses = append(collapses, collapse{v0: a, v1: b, error: errAB})
				} else {
					collapses = append(collapses, collapse{v0: b, v1: a, error: errBA})
				}
			}
		}

		if len(collapses) == 0 {
			break
		}
		radixSortCollapses(collapses)

		goal := (len(cur)-targetIndexCount)/6 + 1
		limitIdx := goal - 1
		if limitIdx >= len(collapses) {
			limitIdx = len(collapses) - 1
		}
		errorLimit := collapses[limitIdx].error * 1.5

		locked := make(map[uint32]bool, len(collapses))
		accepted := 0
		for i := 0; i < len(collapses) && accepted < goal; i++ {
			c := collapses[i]
			if c.error > errorLimit {
				break
			}
			if locked[c.v0] || locked[c.v1] {
				continue
			}
			quadrics[c.v1].add(quadrics[c.v0])
			remap[c.v0] = c.v1
			locked[c.v0] = true
			locked[c.v1] = true
			accepted++
			if c.error > worstError {
				worstError = c.error
			}
		}

		if accepted == 0 {
			break
		}

		next := make([]uint32, 0, len(cur))
		for t := 0; t < len(cur); t += 3 {
			a := resolve(cur[t])
			b := resolve(cur[t+1])
			c := resolve(cur[t+2])
			if a == b || b == c || a == c {
				continue
			}
			next = append(next, a, b, c)
		}
		cur = next
		log.Debug("simplify pass", "accepted", accepted, "indices", len(cur))
	}

	return cur, worstError
}

// radixSortCollapses sorts collapses ascending by error using the
// monotone uint32 bit pattern of each non-negative float32, in 11-bit
// passes (spec §4.G: "radix-sort collapses by error (11-bit key)").
func radixSortCollapses(c []collapse) {
	if len(c) == 0 {
		return
	}
	const bits = 11
	const buckets = 1 << bits
	const mask = buckets - 1

	n := len(c)
	src := c
	dst := make([]collapse, n)
	for pass := 0; pass*bits < 32; pass++ {
		shift := uint(pass * bits)
		var count [buckets + 1]int
		for _, e := range src {
			k := (math.Float32bits(e.error) >> shift) & mask
			count[k+1]++
		}
		for i := 0; i < buckets; i++ {
			count[i+1] += count[i]
		}
		for _, e := range src {
			k := (math.Float32bits(e.error) >> shift) & mask
			dst[count[k]] = e
			count[k]++
		}
		src, dst = dst, src
	}
	if &src[0] != &c[0] {
		copy(c, src)
	}
}

// fallbackSort is retained as a reference cross-check used only in tests;
// production code always takes the radix path above.
func fallbackSort(c []collapse) {
	sort.Slice(c, func(i, j int) bool { return c[i].error < c[j].error })
}

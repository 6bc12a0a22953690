package meshopt

import "github.com/go-gl/mathgl/mgl32"

const (
	rasterSize   = 256
	fixedShift   = 4 // 28.4 fixed point
	fixedOne     = 1 << fixedShift
)

// rasterizeAxis projects triangles onto the plane perpendicular to axis
// (0=X,1=Y,2=Z) into a rasterSize x rasterSize grid and counts, per
// pixel, how many triangles cover it (shaded) versus whether it is
// covered at all (covered); a triangle wound clockwise in the projected
// plane covers no pixel. Coverage uses a half-space edge-function test in
// 28.4 fixed point with a top-left fill convention: an edge exactly on a
// pixel center is owned by the triangle if it is a "top" edge (horizontal,
// going right) or a "left" edge (going down).
func rasterizeAxis(indices []uint32, positions []mgl32.Vec3, axis int) (shaded, covered int64) {
	u, v := (axis+1)%3, (axis+2)%3

	minU, maxU := float32(1e30), float32(-1e30)
	minV, maxV := float32(1e30), float32(-1e30)
	for _, p := range positions {
		if p[u] < minU {
			minU = p[u]
		}
		if p[u] > maxU {
			maxU = p[u]
		}
		if p[v] < minV {
			minV = p[v]
		}
		if p[v] > maxV {
			maxV = p[v]
		}
	}
	spanU := maxU - minU
	spanV := maxV - minV
	if spanU < 1e-12 {
		spanU = 1
	}
	if spanV < 1e-12 {
		spanV = 1
	}

	toGrid := func(p mgl32.Vec3) (int32, int32) {
		gu := (p[u] - minU) / spanU * (rasterSize - 1)
		gv := (p[v] - minV) / spanV * (rasterSize - 1)
		return int32(gu*fixedOne + 0.5), int32(gv*fixedOne + 0.5)
	}

	var coveredMask [rasterSize * rasterSize]bool
	var shadeCount [rasterSize * rasterSize]int32

	for t := 0; t < len(indices); t += 3 {
		p0 := positions[indices[t]]
		p1 := positions[indices[t+1]]
		p2 := positions[indices[t+2]]

		x0, y0 := toGrid(p0)
		x1, y1 := toGrid(p1)
		x2, y2 := toGrid(p2)

		rasterizeTriangle(x0, y0, x1, y1, x2, y2, func(px, py int) {
			idx := py*rasterSize + px
			coveredMask[idx] = true
			shadeCount[idx]++
		})
	}

	for i := range coveredMask {
		if coveredMask[i] {
			covered++
			shaded += int64(shadeCount[i])
		}
	}
	return shaded, covered
}

// rasterizeTriangle walks the bounding box of the triangle in 28.4 fixed
// point and calls fn for every pixel whose center lies inside the
// half-space intersection of its three edges, applying a top-left fill
// convention on edges exactly through a pixel center.
func rasterizeTriangle(x0, y0, x1, y1, x2, y2 int32, fn func(px, py int)) {
	minX := min3(x0, x1, x2) >> fixedShift
	maxX := (max3(x0, x1, x2) >> fixedShift) + 1
	minY := min3(y0, y1, y2) >> fixedShift
	maxY := (max3(y0, y1, y2) >> fixedShift) + 1

	minX = clampInt32(minX, 0, rasterSize-1)
	maxX = clampInt32(maxX, 0, rasterSize-1)
	minY = clampInt32(minY, 0, rasterSize-1)
	maxY = clampInt32(maxY, 0, rasterSize-1)

	a01, b01 := y0-y1, x1-x0
	a12, b12 := y1-y2, x2-x1
	a20, b20 := y2-y0, x0-x2

	bias0 := topLeftBias(a12, b12)
	bias1 := topLeftBias(a20, b20)
	bias2 := topLeftBias(a01, b01)

	for py := minY; py <= maxY; py++ {
		sy := int32(py)<<fixedShift + fixedOne/2
		for px := minX; px <= maxX; px++ {
			sx := int32(px)<<fixedShift + fixedOne/2

			w0 := edgeFn(x1, y1, x2, y2, sx, sy) + bias0
			w1 := edgeFn(x2, y2, x0, y0, sx, sy) + bias1
			w2 := edgeFn(x0, y0, x1, y1, sx, sy) + bias2

			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				fn(px, py)
			}
		}
	}
}

func edgeFn(ax, ay, bx, by, px, py int32) int64 {
	return int64(bx-ax)*int64(py-ay) - int64(by-ay)*int64(px-ax)
}

// topLeftBias returns 0 for a "top" (horizontal, pointing right: dy==0,
// dx>0) or "left" (pointing down: dy>0) edge so that points exactly on
// the edge are included, matching the top-left fill convention. Other
// edges return -1 so points exactly on them are excluded.
func topLeftBias(a, b int32) int64 {
	// Edge direction is (dx,dy) = (b, -a). "Top": horizontal, dy==0,
	// dx>0. "Left": dy>0 (edge runs downward).
	isTop := a == 0 && b > 0
	isLeft := a < 0
	if isTop || isLeft {
		return 0
	}
	return -1
}

func min3(a, b, c int32) int32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c int32) int32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

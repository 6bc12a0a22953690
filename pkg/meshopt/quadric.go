package meshopt

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// quadric is the symmetric 4x4 matrix used by the Garland-Heckbert
// simplifier, stored as ten scalars (spec §3). Addition is componentwise;
// scaling multiplies all ten fields; evaluating at a point v yields
// |v^T Q v| with an implicit homogeneous 1 in the fourth coordinate.
type quadric struct {
	a00, a10, a11, a20, a21, a22 float32
	b0, b1, b2, c                float32
}

func (q *quadric) add(o quadric) {
	q.a00 += o.a00
	q.a10 += o.a10
	q.a11 += o.a11
	q.a20 += o.a20
	q.a21 += o.a21
	q.a22 += o.a22
	q.b0 += o.b0
	q.b1 += o.b1
	q.b2 += o.b2
	q.c += o.c
}

func (q quadric) scaled(s float32) quadric {
	return quadric{
		a00: q.a00 * s, a10: q.a10 * s, a11: q.a11 * s,
		a20: q.a20 * s, a21: q.a21 * s, a22: q.a22 * s,
		b0: q.b0 * s, b1: q.b1 * s, b2: q.b2 * s, c: q.c * s,
	}
}

// eval returns |v^T Q v| for the homogeneous point (v, 1).
func (q quadric) eval(v mgl32.Vec3) float32 {
	x, y, z := v[0], v[1], v[2]
	r := q.a00*x*x + 2*q.a10*x*y + 2*q.a20*x*z + q.a11*y*y + 2*q.a21*y*z + q.a22*z*z +
		2*q.b0*x + 2*q.b1*y + 2*q.b2*z + q.c
	return math32.Abs(r)
}

// planeQuadricFromPlane builds the quadric for the plane with unit normal
// n and offset w (n.p + w = 0), scaled by weight: Q = weight * [n n^T, n*w; ...].
func planeQuadricFromPlane(n mgl32.Vec3, w, weight float32) quadric {
	q := quadric{
		a00: n[0] * n[0], a10: n[0] * n[1], a11: n[1] * n[1],
		a20: n[0] * n[2], a21: n[1] * n[2], a22: n[2] * n[2],
		b0: n[0] * w, b1: n[1] * w, b2: n[2] * w,
		c: w * w,
	}
	return q.scaled(weight)
}

// triNormal returns the (non-unit-length-safe) unit normal of a triangle,
// or the zero vector if the triangle is degenerate.
func triNormal(p0, p1, p2 mgl32.Vec3) mgl32.Vec3 {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Len() < 1e-18 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// triangleQuadric builds the area-weighted plane quadric for a triangle
// (spec §4.G step 2): the plane through p0,p1,p2 weighted by its area.
func triangleQuadric(p0, p1, p2 mgl32.Vec3) quadric {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	normal := e1.Cross(e2)
	area := normal.Len() * 0.5
	if area < 1e-18 {
		return quadric{}
	}
	n := normal.Normalize()
	w := -n.Dot(p0)
	return planeQuadricFromPlane(n, w, area)
}

// edgeQuadric builds the "virtual edge-plane" quadric for a boundary edge
// (a,b) lying on the triangle with the given normal, weighted heavily to
// discourage boundary movement (spec §4.G step 3: roughly 1000x the edge
// length).
func edgeQuadric(a, b mgl32.Vec3, triNormal mgl32.Vec3) quadric {
	edge := b.Sub(a)
	length := edge.Len()
	if length < 1e-18 {
		return quadric{}
	}
	edgeDir := edge.Normalize()
	// Plane perpendicular to the triangle, containing the edge.
	planeNormal := edgeDir.Cross(triNormal)
	if planeNormal.Len() < 1e-18 {
		return quadric{}
	}
	planeNormal = planeNormal.Normalize()
	w := -planeNormal.Dot(a)
	const boundaryWeightFactor = 1000
	return planeQuadricFromPlane(planeNormal, w, length*boundaryWeightFactor)
}

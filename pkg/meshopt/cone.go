package meshopt

import "github.com/go-gl/mathgl/mgl32"

// Cone is the apex/direction/cutoff used for backface-cull tests over a
// triangle group (spec §3). Cutoff is sin(theta) of the maximum angular
// deviation of any triangle normal from Direction; a cutoff >= 1 means
// the cone is degenerate and the cluster cannot be culled.
//
// Apex is always the zero vector: callers relocate it to a bounding-sphere
// center before use (spec §4.I / §9). This is intentional, not an
// omission — ComputeCone never guesses a center from the triangle data.
type Cone struct {
	Apex      mgl32.Vec3
	Direction mgl32.Vec3
	Cutoff    float32
}

// ComputeCone computes the backface-culling cone for up to 256 triangles
// given as a flat position list (three mgl32.Vec3 per triangle). Zero-area
// triangles are skipped when accumulating the average normal.
func ComputeCone(triangles []mgl32.Vec3) Cone {
	mustf(len(triangles)%3 == 0, "ComputeCone", "triangle vertex count %d not a multiple of 3", len(triangles))
	triCount := len(triangles) / 3
	mustf(triCount <= 256, "ComputeCone", "triangle count %d exceeds 256", triCount)

	normals := make([]mgl32.Vec3, 0, triCount)
	var sum mgl32.Vec3
	for t := 0; t < len(triangles); t += 3 {
		n := triNormal(triangles[t], triangles[t+1], triangles[t+2])
		if n.Len() < 1e-12 {
			continue
		}
		normals = append(normals, n)
		sum = sum.Add(n)
	}

	if sum.Len() < 1e-12 {
		return Cone{Cutoff: 1}
	}
	axis := sum.Normalize()

	minDot := float32(1)
	for _, n := range normals {
		d := axis.Dot(n)
		if d < minDot {
			minDot = d
		}
	}

	if minDot <= 0 {
		return Cone{Direction: axis, Cutoff: 1}
	}
	cutoff := sqrt1MinusSq(minDot)
	return Cone{Direction: axis, Cutoff: cutoff}
}

func sqrt1MinusSq(x float32) float32 {
	v := 1 - x*x
	if v < 0 {
		v = 0
	}
	return sqrtFloat32(v)
}

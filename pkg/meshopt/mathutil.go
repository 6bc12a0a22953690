package meshopt

import (
	"math"

	"github.com/chewxy/math32"
)

// sqrtFloat32 and friends stay on float32 throughout the core instead of
// round-tripping through math.Sqrt's float64, matching the source
// library's all-float arithmetic more closely (grounded on
// soypat-glgl's use of github.com/chewxy/math32 for the same reason).
func sqrtFloat32(x float32) float32 { return math32.Sqrt(x) }
func absFloat32(x float32) float32  { return math32.Abs(x) }

// float32bits/float32frombits give the quantization helpers direct
// access to the IEEE-754 bit pattern without pulling math32 into every
// call site that only needs bit manipulation.
func float32bits(f float32) uint32    { return math.Float32bits(f) }
func float32frombits(b uint32) float32 { return math.Float32frombits(b) }

package meshopt

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexBuffer is a flat byte buffer of vertex_count*Stride bytes. Stride
// must be a multiple of 4, between 4 and 256 inclusive. Position data is
// three consecutive 32-bit floats starting at PosOffset bytes into each
// vertex record.
type VertexBuffer struct {
	Data      []byte
	Stride    int
	PosOffset int
}

// Count returns the number of vertices described by the buffer.
func (v VertexBuffer) Count() int {
	if v.Stride == 0 {
		return 0
	}
	return len(v.Data) / v.Stride
}

// checkStride validates the invariants spec §3 places on stride/offset.
func (v VertexBuffer) checkStride(fn string) {
	mustf(v.Stride >= 4 && v.Stride <= 256, fn, "stride %d out of [4,256]", v.Stride)
	mustf(v.Stride%4 == 0, fn, "stride %d not a multiple of 4", v.Stride)
	mustf(len(v.Data)%v.Stride == 0, fn, "vertex buffer length %d not a multiple of stride %d", len(v.Data), v.Stride)
	mustf(v.PosOffset >= 0 && v.PosOffset+12 <= v.Stride, fn, "position offset %d does not fit stride %d", v.PosOffset, v.Stride)
}

// bytesOf returns the raw record for vertex id.
func (v VertexBuffer) bytesOf(id uint32) []byte {
	o := int(id) * v.Stride
	return v.Data[o : o+v.Stride]
}

// Position returns the position of vertex id as a Vec3.
func (v VertexBuffer) Position(id uint32) mgl32.Vec3 {
	b := v.bytesOf(id)[v.PosOffset:]
	return mgl32.Vec3{
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:4])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])),
	}
}

// checkIndices validates the shared preconditions spec §3 places on index
// buffers: length divisible by three and every value strictly less than
// vertexCount.
func checkIndices(fn string, indices []uint32, vertexCount int) {
	mustf(len(indices)%3 == 0, fn, "index count %d not a multiple of 3", len(indices))
	for _, idx := range indices {
		mustf(int(idx) < vertexCount, fn, "index %d out of range for vertex count %d", idx, vertexCount)
	}
}

// TriangleCount returns len(indices)/3.
func TriangleCount(indices []uint32) int { return len(indices) / 3 }

// ExpandIndices16 widens a 16-bit index buffer to uint32 at the API
// boundary, so every algorithm in this package only ever handles one
// index width.
func ExpandIndices16(indices []uint16) []uint32 {
	out := make([]uint32, len(indices))
	for i, v := range indices {
		out[i] = uint32(v)
	}
	return out
}

// NarrowIndices32 narrows a uint32 index buffer back to 16 bits. It panics
// if any index does not fit in 16 bits.
func NarrowIndices32(indices []uint32) []uint16 {
	out := make([]uint16, len(indices))
	for i, v := range indices {
		mustf(v <= math.MaxUint16, "NarrowIndices32", "index %d does not fit in 16 bits", v)
		out[i] = uint16(v)
	}
	return out
}

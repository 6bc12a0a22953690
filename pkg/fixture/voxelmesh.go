// Package fixture generates synthetic triangle meshes for exercising the
// meshopt pipeline on data shapes a hand-written unit test won't produce:
// thousands of coplanar quads sharing edges, the kind of input a greedy
// voxel surface mesher emits before any cache or overdraw optimization
// runs over it.
package fixture

import (
	"encoding/binary"
	"math"

	"github.com/leterax/meshopt/pkg/meshopt"
)

// Grid is a dense occupancy volume: Cells[(x*SizeY+y)*SizeZ+z] is the
// material of cell (x,y,z), zero meaning empty. GreedyMesh walks the six face directions and
// merges coplanar same-material quads the way a voxel engine's chunk
// mesher does, so the resulting index buffer has exactly the long runs of
// shared vertices and large coplanar clusters meshopt is meant to clean up.
type Grid struct {
	SizeX, SizeY, SizeZ int
	Cells               []uint8
}

// NewGrid allocates an empty grid of the given dimensions.
func NewGrid(sizeX, sizeY, sizeZ int) *Grid {
	return &Grid{SizeX: sizeX, SizeY: sizeY, SizeZ: sizeZ, Cells: make([]uint8, sizeX*sizeY*sizeZ)}
}

func (g *Grid) index(x, y, z int) int { return (x*g.SizeY+y)*g.SizeZ + z }

// At returns the material at (x,y,z), or 0 for out-of-bounds coordinates.
func (g *Grid) At(x, y, z int) uint8 {
	if x < 0 || y < 0 || z < 0 || x >= g.SizeX || y >= g.SizeY || z >= g.SizeZ {
		return 0
	}
	return g.Cells[g.index(x, y, z)]
}

// Set writes the material at (x,y,z); out-of-bounds writes are ignored.
func (g *Grid) Set(x, y, z int, material uint8) {
	if x < 0 || y < 0 || z < 0 || x >= g.SizeX || y >= g.SizeY || z >= g.SizeZ {
		return
	}
	g.Cells[g.index(x, y, z)] = material
}

// Fill sets every cell to material.
func (g *Grid) Fill(material uint8) {
	for i := range g.Cells {
		g.Cells[i] = material
	}
}

// face direction: one of the 6 axis-aligned normals, axis in [0,2] and
// sign +1/-1.
type face struct {
	axis int
	sign int
}

var faces = [6]face{
	{axis: 0, sign: -1}, {axis: 0, sign: 1},
	{axis: 1, sign: -1}, {axis: 1, sign: 1},
	{axis: 2, sign: -1}, {axis: 2, sign: 1},
}

// GreedyMesh runs a binary greedy surface mesher over g and returns a
// position-only vertex buffer (stride 12, float32 xyz) and a matching
// triangle index buffer. Two coplanar cells of the same material that
// share an edge are merged into a single quad before triangulation, so
// the output already contains the kind of long coherent index runs a
// real mesh has prior to optimization.
func GreedyMesh(g *Grid) (meshopt.VertexBuffer, []uint32) {
	var positions [][3]float32
	var indices []uint32

	emitQuad := func(corners [4][3]float32, flip bool) {
		base := uint32(len(positions))
		positions = append(positions, corners[0], corners[1], corners[2], corners[3])
		if flip {
			indices = append(indices, base, base+2, base+1, base, base+3, base+2)
		} else {
			indices = append(indices, base, base+1, base+2, base, base+2, base+3)
		}
	}

	dims := [3]int{g.SizeX, g.SizeY, g.SizeZ}

	for _, f := range faces {
		d := f.axis
		u, v := (d+1)%3, (d+2)%3

		visited := make([][]bool, dims[u])
		for i := range visited {
			visited[i] = make([]bool, dims[v])
		}

		for w := 0; w < dims[d]; w++ {
			for i := range visited {
				for j := range visited[i] {
					visited[i][j] = false
				}
			}

			cellAt := func(uu, vv int) uint8 {
				coord := [3]int{}
				coord[d], coord[u], coord[v] = w, uu, vv
				return g.At(coord[0], coord[1], coord[2])
			}
			neighborAt := func(uu, vv int) uint8 {
				coord := [3]int{}
				coord[d], coord[u], coord[v] = w+f.sign, uu, vv
				return g.At(coord[0], coord[1], coord[2])
			}

			for v0 := 0; v0 < dims[v]; v0++ {
				for u0 := 0; u0 < dims[u]; u0++ {
					if visited[u0][v0] {
						continue
					}
					material := cellAt(u0, v0)
					if material == 0 || neighborAt(u0, v0) != 0 {
						continue
					}

					width := 1
					for u0+width < dims[u] &&
						!visited[u0+width][v0] &&
						cellAt(u0+width, v0) == material &&
						neighborAt(u0+width, v0) == 0 {
						width++
					}

					height := 1
				heightLoop:
					for v0+height < dims[v] {
						for u1 := u0; u1 < u0+width; u1++ {
							if visited[u1][v0+height] ||
								cellAt(u1, v0+height) != material ||
								neighborAt(u1, v0+height) != 0 {
								break heightLoop
							}
						}
						height++
					}

					for v1 := v0; v1 < v0+height; v1++ {
						for u1 := u0; u1 < u0+width; u1++ {
							visited[u1][v1] = true
						}
					}

					plane := w
					if f.sign > 0 {
						plane = w + 1
					}
					corner := func(uu, vv int) [3]float32 {
						c := [3]float32{}
						c[d] = float32(plane)
						c[u] = float32(uu)
						c[v] = float32(vv)
						return c
					}
					corners := [4][3]float32{
						corner(u0, v0),
						corner(u0+width, v0),
						corner(u0+width, v0+height),
						corner(u0, v0+height),
					}
					emitQuad(corners, f.sign < 0)
				}
			}
		}
	}

	const stride = 12
	data := make([]byte, len(positions)*stride)
	for i, p := range positions {
		o := i * stride
		binary.LittleEndian.PutUint32(data[o:], math.Float32bits(p[0]))
		binary.LittleEndian.PutUint32(data[o+4:], math.Float32bits(p[1]))
		binary.LittleEndian.PutUint32(data[o+8:], math.Float32bits(p[2]))
	}
	vb := meshopt.VertexBuffer{Data: data, Stride: stride, PosOffset: 0}
	return vb, indices
}

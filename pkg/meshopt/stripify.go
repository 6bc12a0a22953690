package meshopt

// RestartIndex is the sentinel value written between disconnected strips
// (spec §4.J / §6: "stripifier uses ~0u as restart sentinel").
const RestartIndex = ^uint32(0)

const stripBufferSize = 16

type bufferedTri struct {
	v        [3]uint32
	consumed bool
}

// Stripify converts a triangle list into a triangle strip with restart
// indices, using a sliding window of stripBufferSize triangles to look
// for the next triangle sharing the current strip's tail edge (spec
// §4.J). The winding of every emitted triangle is preserved.
func Stripify(indices []uint32, vertexCount int) []uint32 {
	checkIndices("Stripify", indices, vertexCount)
	triCount := TriangleCount(indices)
	if triCount == 0 {
		return nil
	}

	valence := make([]int, vertexCount)
	for _, v := range indices {
		valence[v]++
	}

	buf := make([]bufferedTri, triCount)
	for t := 0; t < triCount; t++ {
		buf[t] = bufferedTri{v: [3]uint32{indices[t*3], indices[t*3+1], indices[t*3+2]}}
	}

	consumedCount := 0
	out := make([]uint32, 0, len(indices)*2)

	var tailA, tailB uint32
	haveTail := false
	parity := 0

	nextWindow := func(from int) []int {
		w := make([]int, 0, stripBufferSize)
		for t := from; t < triCount && len(w) < stripBufferSize; t++ {
			if !buf[t].consumed {
				w = append(w, t)
			}
		}
		return w
	}

	cursor := 0
	findSeedFrom := func() int {
		for cursor < triCount && buf[cursor].consumed {
			cursor++
		}
		if cursor >= triCount {
			return -1
		}
		return cursor
	}

	consume := func(t int) {
		buf[t].consumed = true
		consumedCount++
		for _, v := range buf[t].v {
			valence[v]--
		}
	}

	// matchTail finds a buffered triangle sharing edge (a,b) (in any
	// rotation) and returns its index and the third vertex, with the
	// orientation needed so that emitting it preserves winding.
	matchTail := func(a, b uint32, window []int) (idx int, third uint32, ok bool) {
		for _, t := range window {
			v := buf[t].v
			for r := 0; r < 3; r++ {
				x, y, z := v[r], v[(r+1)%3], v[(r+2)%3]
				if x == a && y == b {
					return t, z, true
				}
			}
		}
		return -1, 0, false
	}

	for consumedCount < triCount {
		if haveTail {
			window := nextWindow(0)
			// Unstripify reads the next triangle as (tailB, tailA, third)
			// at odd strip positions and (tailA, tailB, third) at even ones.
			var a, b uint32
			if parity == 0 {
				a, b = tailB, tailA
			} else {
				a, b = tailA, tailB
			}
			if t, third, ok := matchTail(a, b, window); ok {
				out = append(out, third)
				consume(t)
				tailA, tailB = tailB, third
				parity ^= 1
				continue
			}
			out = append(out, RestartIndex)
			haveTail = false
		}

		seed := findSeedFrom()
		if seed < 0 {
			break
		}

		// Choose, among the buffered window, the triangle minimizing the
		// valence of its three vertices as the new seed (spec §4.J).
		window := nextWindow(seed)
		bestT := window[0]
		bestVal := valenceSum(valence, buf[bestT].v)
		for _, t := range window[1:] {
			if v := valenceSum(valence, buf[t].v); v < bestVal {
				bestT, bestVal = t, v
			}
		}

		v := buf[bestT].v
		out = append(out, v[0], v[1], v[2])
		consume(bestT)
		tailA, tailB = v[1], v[2]
		haveTail = true
		parity = 0
	}

	return out
}

func valenceSum(valence []int, tri [3]uint32) int {
	return valence[tri[0]] + valence[tri[1]] + valence[tri[2]]
}

// Unstripify converts a triangle strip with RestartIndex sentinels back
// into a plain triangle list, flipping winding on odd positions within
// each strip run and dropping degenerate triangles (spec §4.J).
func Unstripify(strip []uint32) []uint32 {
	out := make([]uint32, 0, len(strip))
	pos := 0
	var a, b uint32
	have := 0

	for _, idx := range strip {
		if idx == RestartIndex {
			pos, have = 0, 0
			continue
		}
		switch have {
		case 0:
			a = idx
			have = 1
		case 1:
			b = idx
			have = 2
		default:
			c := idx
			var t0, t1, t2 uint32
			if pos%2 == 0 {
				t0, t1, t2 = a, b, c
			} else {
				t0, t1, t2 = b, a, c
			}
			if t0 != t1 && t1 != t2 && t0 != t2 {
				out = append(out, t0, t1, t2)
			}
			a, b = b, c
		}
		pos++
	}
	return out
}

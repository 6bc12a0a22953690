package meshopt

import "bytes"

// blobHashTable is an open-addressed table keyed by raw N-byte records,
// used to fold duplicate vertices in the index generator and the welder
// (spec §4.B). Capacity is always a power of two at least 1.25x the
// expected entry count; probing is quadratic with step i+1.
//
// Equality is a byte-wise comparison, not a Go struct comparison, because
// callers feed arbitrary vertex layouts (spec §9: "do not rely on any
// built-in hash a struct facility").
type blobHashTable struct {
	stride int
	keys   []int32 // -1 == empty slot, else index of first vertex with this key's bytes
	buf    []byte   // the vertex buffer the keys index into
	mask   uint32
}

func newBlobHashTable(stride, expectedEntries int, buf []byte) *blobHashTable {
	cap := nextPow2(expectedEntries*5/4 + 1)
	keys := make([]int32, cap)
	for i := range keys {
		keys[i] = -1
	}
	return &blobHashTable{stride: stride, keys: keys, buf: buf, mask: uint32(cap - 1)}
}

func nextPow2(n int) int {
	if n < 1 {
		n = 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// murmurMix is a MurmurHash-style 32-bit mixer over raw bytes (spec §4.B).
func murmurMix(data []byte) uint32 {
	var h uint32 = 0x811c9dc5
	for _, b := range data {
		h ^= uint32(b)
		h *= 0x01000193
	}
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func (t *blobHashTable) recordOf(idx int32) []byte {
	o := int(idx) * t.stride
	return t.buf[o : o+t.stride]
}

// find returns the index of an existing vertex with bytes equal to rec,
// or -1 if none is present. Quadratic probing with step i+1; a table that
// is probed through every slot without success indicates the table was
// undersized, which cannot happen under the stated sizing rule (spec
// §4.B) and is asserted rather than reported.
func (t *blobHashTable) find(rec []byte) int32 {
	h := murmurMix(rec)
	slot := h & t.mask
	for i := uint32(1); ; i++ {
		k := t.keys[slot]
		if k == -1 {
			return -1
		}
		if bytes.Equal(t.recordOf(k), rec) {
			return k
		}
		slot = (slot + i) & t.mask
		mustf(i <= t.mask+1, "blobHashTable.find", "table full (size %d)", len(t.keys))
	}
}

// insert records that vertex idx occupies the slot for its own bytes.
// Caller must have already verified via find that no equal record exists.
func (t *blobHashTable) insert(idx int32) {
	rec := t.recordOf(idx)
	h := murmurMix(rec)
	slot := h & t.mask
	for i := uint32(1); ; i++ {
		if t.keys[slot] == -1 {
			t.keys[slot] = idx
			return
		}
		slot = (slot + i) & t.mask
		mustf(i <= t.mask+1, "blobHashTable.insert", "table full (size %d)", len(t.keys))
	}
}

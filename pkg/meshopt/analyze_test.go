package meshopt

import "testing"

func TestAnalyzeVertexFetchSingleTriangle(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	vb := makeVertexBuffer(positions)
	indices := []uint32{0, 1, 2}

	stats := AnalyzeVertexFetch(indices, vb)
	if stats.BytesFetched <= 0 {
		t.Fatalf("expected positive bytes fetched, got %d", stats.BytesFetched)
	}
	// Three 12-byte vertices packed contiguously span at most two 64-byte
	// lines, so overfetch should be close to 1 but never below it.
	if stats.Overfetch < 1.0 {
		t.Fatalf("overfetch = %v, want >= 1.0 (touched bytes can't be less than unique data)", stats.Overfetch)
	}
}

func TestAnalyzeVertexFetchRepeatedIndexNoExtraCost(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	vb := makeVertexBuffer(positions)

	once := AnalyzeVertexFetch([]uint32{0, 1, 2}, vb)
	repeated := AnalyzeVertexFetch([]uint32{0, 1, 2, 0, 1, 2}, vb)
	if repeated.BytesFetched != once.BytesFetched {
		t.Fatalf("repeating the same indices should not cost extra fetches: once=%d repeated=%d",
			once.BytesFetched, repeated.BytesFetched)
	}
}

func TestAnalyzeOverdrawSingleTriangle(t *testing.T) {
	positions := [][3]float32{
		{-1, -1, 0},
		{1, -1, 0},
		{0, 1, 0},
	}
	vb := makeVertexBuffer(positions)
	indices := []uint32{0, 1, 2}

	stats := AnalyzeOverdraw(indices, vb)
	if stats.PixelsCovered <= 0 {
		t.Fatalf("expected positive coverage for a non-degenerate triangle")
	}
	if stats.Overdraw < 1.0 {
		t.Fatalf("overdraw = %v, want >= 1.0 (shaded can't be less than covered)", stats.Overdraw)
	}
}

func TestAnalyzeOverdrawDegenerateTriangleNoCoverage(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	vb := makeVertexBuffer(positions)
	stats := AnalyzeOverdraw([]uint32{0, 1, 2}, vb)
	if stats.PixelsCovered != 0 || stats.PixelsShaded != 0 {
		t.Fatalf("degenerate triangle should cover nothing, got %+v", stats)
	}
}

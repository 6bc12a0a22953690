package meshopt

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

// TestQuantizeHalfKnownValues mirrors spec invariant 8: bit-precise
// conversion for zero, one, subnormal flush, and NaN canonicalization.
func TestQuantizeHalfKnownValues(t *testing.T) {
	cases := []struct {
		name string
		in   float32
		want uint16
	}{
		{"zero", 0, 0x0000},
		{"negative zero", math32.Copysign(0, -1), 0x8000},
		{"one", 1.0, 0x3C00},
		{"negative one", -1.0, 0xBC00},
		{"subnormal flushes to zero", 1e-8, 0x0000},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := QuantizeHalf(c.in)
			if got != c.want {
				t.Fatalf("QuantizeHalf(%v) = 0x%04X, want 0x%04X", c.in, got, c.want)
			}
		})
	}
}

// TestQuantizeHalfRoundsMantissa exercises a value whose low 13 mantissa
// bits sit exactly on the round-to-nearest bias threshold (0x1000): a
// truncating conversion would drop them, but the original
// meshopt_quantizeHalf rounds the combined exponent+mantissa field before
// shifting, which carries into the stored mantissa here.
func TestQuantizeHalfRoundsMantissa(t *testing.T) {
	v := math.Float32frombits(0x3F801000) // 1.0 with mantissa bit 12 set
	got := QuantizeHalf(v)
	if got != 0x3C01 {
		t.Fatalf("QuantizeHalf(%v) = 0x%04X, want 0x3C01 (rounded up from 0x3C00)", v, got)
	}
}

func TestQuantizeHalfInfSurvives(t *testing.T) {
	got := QuantizeHalf(float32(math.Inf(1)))
	if got != 0x7C00 {
		t.Fatalf("QuantizeHalf(+Inf) = 0x%04X, want 0x7C00", got)
	}
	got = QuantizeHalf(float32(math.Inf(-1)))
	if got != 0xFC00 {
		t.Fatalf("QuantizeHalf(-Inf) = 0x%04X, want 0xFC00", got)
	}
}

func TestQuantizeHalfNaNCanonicalizes(t *testing.T) {
	got := QuantizeHalf(float32(math.NaN()))
	if got&0x7C00 != 0x7C00 || got&0x03FF == 0 {
		t.Fatalf("QuantizeHalf(NaN) = 0x%04X, want a NaN pattern", got)
	}
}

func TestQuantizeTruncatePreservesSpecialValues(t *testing.T) {
	inf := float32(math.Inf(1))
	if QuantizeTruncate(inf, 10) != inf {
		t.Fatalf("QuantizeTruncate should pass Inf through unchanged")
	}
	nan := float32(math.NaN())
	if !math32.IsNaN(QuantizeTruncate(nan, 10)) {
		t.Fatalf("QuantizeTruncate should pass NaN through unchanged")
	}
}

func TestQuantizeTruncateZeroMantissaUnchanged(t *testing.T) {
	if v := QuantizeTruncate(1.0, 10); v != 1.0 {
		t.Fatalf("QuantizeTruncate(1.0, 10) = %v, want 1.0", v)
	}
}

func TestFitUnormConvergesWithinRange(t *testing.T) {
	values := []float32{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1.0}
	fit := FitUnorm(values, 8, 8, 1e-6)
	if fit.Scale <= 0 {
		t.Fatalf("fit.Scale = %v, want > 0", fit.Scale)
	}
	levels := float32((1 << 8) - 1)
	for _, v := range values {
		q := quantizeLevel(v, fit, levels)
		recon := q*fit.Scale + fit.Offset
		if math32.Abs(recon-v) > 2*fit.Scale {
			t.Fatalf("reconstruction error too large for %v: recon=%v scale=%v", v, recon, fit.Scale)
		}
	}
}

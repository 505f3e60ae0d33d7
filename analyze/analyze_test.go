package analyze

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/x448/float16"
)

func sine(freq float64, sr, n int) []float64 {
	buf := make([]float64, n)
	step := 2 * math.Pi * freq / float64(sr)
	for i := range buf {
		buf[i] = 0.8 * math.Sin(step*float64(i))
	}
	return buf
}

func TestSpectrogramShape(t *testing.T) {
	a := NewAnalyzer()
	spec := a.Spectrogram(sine(1000, a.SampleRate, 4*a.Resolut))
	if len(spec) == 0 {
		t.Fatal("empty spectrogram")
	}
	for i, frame := range spec {
		if len(frame) != a.Resolut/2 {
			t.Fatalf("frame %d has %d bins, want %d", i, len(frame), a.Resolut/2)
		}
	}
}

func TestPeak(t *testing.T) {
	a := NewAnalyzer()
	spec := a.Spectrogram(sine(1000, a.SampleRate, 4*a.Resolut))
	binWidth := float64(a.SampleRate) / float64(a.Resolut)

	peak := a.Peak(spec[len(spec)/2])
	if math.Abs(peak-1000) > binWidth {
		t.Fatalf("peak = %f Hz, want 1000 within %f", peak, binWidth)
	}
}

func TestImagePacksFloat16(t *testing.T) {
	a := NewAnalyzer()
	spec := [][]float64{{0.5, 2}, {0.25, 1}}
	bits := a.Image(spec)
	if len(bits) != 4 {
		t.Fatalf("packed %d values, want 4", len(bits))
	}
	if got := float64(float16.Frombits(bits[0]).Float32()); got != 0.5 {
		t.Fatalf("unpacked %f, want 0.5", got)
	}
}

func TestSavePng(t *testing.T) {
	a := NewAnalyzer()
	a.YReverse = true
	spec := a.Spectrogram(sine(1000, a.SampleRate, 4*a.Resolut))

	name := filepath.Join(t.TempDir(), "spec.png")
	if err := a.SavePng(name, spec); err != nil {
		t.Fatalf("SavePng error = %v", err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open error = %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png decode error = %v", err)
	}
	if img.Bounds().Dx() != len(spec) || img.Bounds().Dy() != a.Resolut/2 {
		t.Fatalf("image %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), len(spec), a.Resolut/2)
	}
}

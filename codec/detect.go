package codec

import "math"
import "math/cmplx"

import "github.com/mjibson/go-dsp/fft"
import "github.com/mjibson/go-dsp/window"

// Detect recovers the dominant frequency of one segment. The segment is Hann
// windowed, zero padded to ZeroPad times its length and transformed; the
// magnitude peak among the bins inside the carrier band is then refined by
// parabolic interpolation through its two neighbours.
func (c *Codec) Detect(segment []float64) float64 {
	f, _ := c.detect(segment)
	return f
}

// detect additionally reports whether the strongest bin of the whole positive
// spectrum (DC excluded) already lay inside the carrier band, which Strict
// decoding uses as a confidence check.
func (c *Codec) detect(segment []float64) (float64, bool) {
	pad := c.ZeroPad
	if pad < 1 {
		pad = 1
	}
	buf := make([]float64, len(segment)*pad)
	copy(buf, segment)
	window.Apply(buf[:len(segment)], window.Hann)

	spectrum := fft.FFTReal(buf)
	half := len(buf)/2 + 1
	mag := make([]float64, half)
	for i := range mag {
		mag[i] = cmplx.Abs(spectrum[i])
	}

	binWidth := float64(c.SampleRate) / float64(len(buf))
	lo := int(math.Ceil(c.freqMin() / binWidth))
	hi := int(math.Floor(c.freqMax() / binWidth))
	if lo < 1 {
		lo = 1
	}
	if hi > half-1 {
		hi = half - 1
	}
	if hi < lo {
		lo, hi = 1, half-1
	}

	global := 1
	for k := 2; k < half; k++ {
		if mag[k] > mag[global] {
			global = k
		}
	}
	peak := lo
	for k := lo + 1; k <= hi; k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	freq := float64(peak) * binWidth
	if peak > 0 && peak < half-1 {
		a := mag[peak-1]
		b := mag[peak]
		g := mag[peak+1]
		denom := a - 2*b + g
		// near-zero denominator means a flat neighbourhood, keep the bin center
		if math.Abs(denom) > 1e-10 {
			freq = (float64(peak) + 0.5*(a-g)/denom) * binWidth
		}
	}

	return freq, global >= lo && global <= hi
}

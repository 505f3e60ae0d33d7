package codec

import (
	"errors"
	"math"
	"testing"
)

func TestDetectAllValues(t *testing.T) {
	c := NewCodec()
	for v := 0; v < 256; v++ {
		seg := c.Synthesize(c.ValueToFreq(byte(v)))
		got := c.FreqToValue(c.Detect(seg))
		if got != byte(v) {
			t.Fatalf("value %d decoded as %d", v, got)
		}
	}
}

func TestDetectResolution(t *testing.T) {
	// adjacent values are 400/255 Hz apart; the detector must stay within
	// half of that so no value can alias into its neighbour
	c := NewCodec()
	limit := 400.0 / 255.0 / 2.0
	for _, v := range []byte{0, 1, 64, 127, 128, 200, 254, 255} {
		want := c.ValueToFreq(v)
		got := c.Detect(c.Synthesize(want))
		if math.Abs(got-want) >= limit {
			t.Errorf("value %d: detected %f Hz, want %f Hz (limit %f)", v, got, want, limit)
		}
	}
}

func TestDetectDegradedDuration(t *testing.T) {
	// 10ms segments trade exactness for speed; errors stay small but nonzero
	c := NewCodec()
	c.PixelDuration = 0.01

	maxErr := 0
	for v := 0; v < 256; v++ {
		seg := c.Synthesize(c.ValueToFreq(byte(v)))
		got := c.FreqToValue(c.Detect(seg))
		d := int(got) - v
		if d < 0 {
			d = -d
		}
		if d > maxErr {
			maxErr = d
		}
	}
	if maxErr > 5 {
		t.Fatalf("max decode error at 10ms = %d, want <= 5", maxErr)
	}
}

func TestDetectSilenceDoesNotPanic(t *testing.T) {
	// flat spectrum hits the near-zero interpolation denominator
	c := NewCodec()
	f := c.Detect(make([]float64, c.SamplesPerSegment()))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		t.Fatalf("Detect on silence = %f", f)
	}
}

func TestDetectOutOfBandConfidence(t *testing.T) {
	c := NewCodec()

	inBand := c.Synthesize(1000)
	if _, ok := c.detect(inBand); !ok {
		t.Fatal("1000 Hz tone reported as out of band")
	}

	outOfBand := c.Synthesize(3000)
	if _, ok := c.detect(outOfBand); ok {
		t.Fatal("3000 Hz tone reported as in band")
	}
}

func TestStrictDecodeRejectsOutOfBand(t *testing.T) {
	c := NewCodec()

	// header for a 1x1 image followed by a tone well outside the band
	buf := c.appendHeader(nil, 1, 1)
	buf = append(buf, c.Synthesize(3000)...)

	if _, err := c.Decode(buf); err != nil {
		t.Fatalf("lenient Decode error = %v, want clamped success", err)
	}

	c.Strict = true
	if _, err := c.Decode(buf); !errors.Is(err, ErrLowConfidence) {
		t.Fatalf("strict Decode error = %v, want ErrLowConfidence", err)
	}
}

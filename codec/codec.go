package codec

import "errors"
import "fmt"
import "image"
import "math"

// Codec represents the configuration for encoding images to audio and back.
// The same configuration must be used for a waveform's encode and decode
// calls; it is not stored in the waveform itself.
type Codec struct {
	SampleRate    int
	CarrierFreq   float64
	PixelDuration float64

	// ZeroPad is the zero-padding factor applied before the detection FFT.
	ZeroPad int

	// Amplitude of synthesized tones, kept below full scale so that
	// quantization to 16-bit PCM cannot clip.
	Amplitude float64

	// Strict makes decoding fail when the dominant spectral peak of a
	// segment falls outside the carrier band instead of clamping it.
	Strict bool
}

// NewCodec creates a new Codec instance with default values.
func NewCodec() *Codec {
	return &Codec{
		SampleRate:    44100,
		CarrierFreq:   1000.0,
		PixelDuration: 0.05,
		ZeroPad:       4,
		Amplitude:     0.8,
	}
}

var ErrFileNotLoaded = errors.New("wavNotLoaded")
var ErrBadConfig = errors.New("configNotPositive")
var ErrDimensionOverflow = errors.New("dimensionOverflow")
var ErrTruncatedWave = errors.New("waveTruncated")
var ErrBadHeader = errors.New("headerInvalid")
var ErrLowConfidence = errors.New("detectionOutOfBand")
var ErrSizeMismatch = errors.New("imageSizeMismatch")

// Validate checks that the configuration yields at least one sample per segment.
func (c *Codec) Validate() error {
	if c.SampleRate <= 0 || c.CarrierFreq <= 0 || c.PixelDuration <= 0 {
		return ErrBadConfig
	}
	if c.SamplesPerSegment() < 1 {
		return ErrBadConfig
	}
	return nil
}

// SamplesPerSegment returns the number of samples carrying one encoded value.
func (c *Codec) SamplesPerSegment() int {
	return int(math.Round(float64(c.SampleRate) * c.PixelDuration))
}

func (c *Codec) freqMin() float64 { return c.CarrierFreq * 0.8 }
func (c *Codec) freqMax() float64 { return c.CarrierFreq * 1.2 }

// ValueToFreq maps a byte value to its tone frequency inside the carrier band.
func (c *Codec) ValueToFreq(v byte) float64 {
	return c.freqMin() + float64(v)/255.0*(c.freqMax()-c.freqMin())
}

// FreqToValue maps a frequency back to a byte value. Out-of-band frequencies
// clamp to the nearest band edge rather than failing.
func (c *Codec) FreqToValue(f float64) byte {
	v := math.Round((f - c.freqMin()) / (c.freqMax() - c.freqMin()) * 255.0)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}

// Synthesize renders one segment of a sine tone at the given frequency. Every
// segment starts at zero phase; decoding only looks at magnitude spectra, so
// no phase continuity is kept across segment boundaries.
func (c *Codec) Synthesize(freq float64) []float64 {
	seg := make([]float64, c.SamplesPerSegment())
	step := 2 * math.Pi * freq / float64(c.SampleRate)
	for i := range seg {
		seg[i] = c.Amplitude * math.Sin(step*float64(i))
	}
	return seg
}

func (c *Codec) appendValue(buf []float64, v byte) []float64 {
	return append(buf, c.Synthesize(c.ValueToFreq(v))...)
}

func (c *Codec) appendHeader(buf []float64, width, height int) []float64 {
	buf = c.appendValue(buf, byte(width>>8))
	buf = c.appendValue(buf, byte(width&0xFF))
	buf = c.appendValue(buf, byte(height>>8))
	buf = c.appendValue(buf, byte(height&0xFF))
	return buf
}

func (c *Codec) decodeHeader(buf []float64) (width, height int, err error) {
	n := c.SamplesPerSegment()
	var b [4]byte
	for i := range b {
		f, ok := c.detect(buf[i*n : (i+1)*n])
		if c.Strict && !ok {
			return 0, 0, ErrLowConfidence
		}
		b[i] = c.FreqToValue(f)
	}
	width = int(b[0])<<8 | int(b[1])
	height = int(b[2])<<8 | int(b[3])
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrBadHeader, width, height)
	}
	return width, height, nil
}

// Encode converts a grayscale image into a waveform: four header segments
// carrying the dimensions followed by one tone segment per pixel, row-major.
func (c *Codec) Encode(img *image.Gray) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	if w < 1 || h < 1 || w > 0xFFFF || h > 0xFFFF {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensionOverflow, w, h)
	}
	n := c.SamplesPerSegment()
	buf := make([]float64, 0, (4+w*h)*n)
	buf = c.appendHeader(buf, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf = c.appendValue(buf, img.GrayAt(img.Rect.Min.X+x, img.Rect.Min.Y+y).Y)
		}
	}
	return buf, nil
}

// Decode converts a waveform back into the grayscale image it encodes. A
// waveform shorter than its header or than the pixel count the header
// declares fails with ErrTruncatedWave; no partial image is returned.
func (c *Codec) Decode(buf []float64) (*image.Gray, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	n := c.SamplesPerSegment()
	if len(buf) < 4*n {
		return nil, fmt.Errorf("%w: %d samples, header needs %d", ErrTruncatedWave, len(buf), 4*n)
	}
	width, height, err := c.decodeHeader(buf[:4*n])
	if err != nil {
		return nil, err
	}
	pix := buf[4*n:]
	if width*height*n > len(pix) {
		return nil, fmt.Errorf("%w: header declares %dx%d, %d pixel samples left", ErrTruncatedWave, width, height, len(pix))
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		f, ok := c.detect(pix[i*n : (i+1)*n])
		if c.Strict && !ok {
			return nil, ErrLowConfidence
		}
		img.Pix[(i/width)*img.Stride+i%width] = c.FreqToValue(f)
	}
	return img, nil
}

// ToWav encodes an image file (PNG or JPEG) into a mono 16-bit WAV file.
func (c *Codec) ToWav(inputFile, outputFile string) error {
	img, err := loadimage(inputFile)
	if err != nil {
		return err
	}
	buf, err := c.Encode(img)
	if err != nil {
		return err
	}
	return dumpwav(outputFile, buf, c.SampleRate)
}

// ToPng decodes a WAV file back into a PNG image. A differing sample rate in
// the file takes precedence over the configured one.
func (c *Codec) ToPng(inputFile, outputFile string) error {
	buf, sr := loadwav(inputFile)
	if len(buf) == 0 || sr == 0 {
		return ErrFileNotLoaded
	}
	if int(sr) != c.SampleRate {
		c.SampleRate = int(sr)
	}
	img, err := c.Decode(buf)
	if err != nil {
		return err
	}
	return dumpimage(outputFile, img)
}

// ToPngFlac decodes a FLAC file back into a PNG image.
func (c *Codec) ToPngFlac(inputFile, outputFile string) error {
	buf, sr := loadflac(inputFile)
	if len(buf) == 0 || sr == 0 {
		return ErrFileNotLoaded
	}
	if int(sr) != c.SampleRate {
		c.SampleRate = int(sr)
	}
	img, err := c.Decode(buf)
	if err != nil {
		return err
	}
	return dumpimage(outputFile, img)
}

// LoadWav loads a mono wav file to a sample vector and its sample rate, or it
// returns an error like ErrFileNotLoaded
func LoadWav(inputFile string) ([]float64, uint32, error) {
	mono, sr := loadwav(inputFile)
	if len(mono) == 0 || sr == 0 {
		return nil, 0, ErrFileNotLoaded
	}
	return mono, sr, nil
}

// LoadFlac loads a mono flac file to a sample vector and its sample rate, or
// it returns an error like ErrFileNotLoaded
func LoadFlac(inputFile string) ([]float64, uint32, error) {
	mono, sr := loadflac(inputFile)
	if len(mono) == 0 || sr == 0 {
		return nil, 0, ErrFileNotLoaded
	}
	return mono, sr, nil
}

// SaveWav saves a mono wav file from a sample vector
func SaveWav(outputFile string, vec []float64, sr int) error {
	return dumpwav(outputFile, vec, sr)
}

// LoadImage loads an image file and converts it to grayscale.
func LoadImage(inputFile string) (*image.Gray, error) {
	return loadimage(inputFile)
}

// SaveImage saves a grayscale image as a PNG file.
func SaveImage(outputFile string, img *image.Gray) error {
	return dumpimage(outputFile, img)
}

// Diff compares two grayscale images of equal size and returns the maximum
// absolute pixel error and the number of differing pixels.
func Diff(a, b *image.Gray) (maxErr, changed int, err error) {
	w := a.Rect.Dx()
	h := a.Rect.Dy()
	if w != b.Rect.Dx() || h != b.Rect.Dy() {
		return 0, 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, w, h, b.Rect.Dx(), b.Rect.Dy())
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := int(a.GrayAt(a.Rect.Min.X+x, a.Rect.Min.Y+y).Y) - int(b.GrayAt(b.Rect.Min.X+x, b.Rect.Min.Y+y).Y)
			if d < 0 {
				d = -d
			}
			if d > 0 {
				changed++
			}
			if d > maxErr {
				maxErr = d
			}
		}
	}
	return maxErr, changed, nil
}

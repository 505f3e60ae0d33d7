package analyze

import "math/cmplx"

import "github.com/r9y9/gossp/stft"

// Analyzer represents the configuration for inspecting encoded waveforms.
type Analyzer struct {
	SampleRate int
	Window     int
	Resolut    int
	YReverse   bool
}

// NewAnalyzer creates a new Analyzer instance with default values.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		SampleRate: 44100,
		Window:     256,
		Resolut:    2048,
	}
}

// Spectrogram computes the magnitude spectrogram of a wave buffer, one frame
// of Resolut/2 positive-frequency bins per window shift.
func (a *Analyzer) Spectrogram(buf []float64) [][]float64 {
	s := stft.New(a.Window, a.Resolut)

	spectrum := s.STFT(buf)

	out := make([][]float64, len(spectrum))
	for i := range spectrum {
		row := make([]float64, a.Resolut/2)
		for j := range row {
			row[j] = cmplx.Abs(spectrum[i][j])
		}
		out[i] = row
	}
	return out
}

// BinFreq returns the center frequency of a spectrogram bin.
func (a *Analyzer) BinFreq(bin int) float64 {
	return float64(bin) * float64(a.SampleRate) / float64(a.Resolut)
}

// Peak returns the frequency of the strongest bin of one spectrogram frame,
// the DC bin excluded.
func (a *Analyzer) Peak(frame []float64) float64 {
	peak := 1
	for j := 2; j < len(frame); j++ {
		if frame[j] > frame[peak] {
			peak = j
		}
	}
	return a.BinFreq(peak)
}

// Image packs a spectrogram into float16 bits for compact storage.
func (a *Analyzer) Image(spec [][]float64) []uint16 {
	return dumpbuffer(spec)
}

// SavePng saves a spectrogram as a normalized 16-bit grayscale PNG image,
// one column per frame, low frequencies at the top unless YReverse is set.
func (a *Analyzer) SavePng(name string, spec [][]float64) error {
	return dumpimage(name, spec, a.YReverse)
}

// Package codec encodes grayscale images into frequency-modulated audio
// waveforms and decodes them back, in the style of the Voyager Golden Record.
//
// Every pixel becomes one fixed-duration sine tone whose frequency encodes the
// 8-bit luminance inside a band around the carrier frequency. Four leading
// tone segments carry the image width and height as big-endian byte pairs.
// Decoding recovers each tone with a Hann-windowed, zero-padded FFT refined by
// parabolic peak interpolation, which is accurate enough for exact 8-bit
// recovery at the default 50 ms segment duration. It supports:
//   - Encoding PNG/JPEG images to WAV audio files
//   - Decoding WAV/FLAC audio files back to PNG images
//   - Configurable sample rate, carrier frequency and segment duration
//   - An optional strict mode that rejects out-of-band detections
package codec

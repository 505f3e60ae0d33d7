// Command toimage decodes an encoded audio file (WAV/FLAC) back into a PNG image.
//
// The tool reads the four header segments to recover the image dimensions,
// then detects the dominant frequency of every pixel segment and maps it back
// to an 8-bit luminance value.
//
// Usage:
//
//	toimage <audio_file> [png_file]
//
// Without an explicit output name the PNG is written next to the input as
// <audio_file>.png
//
// Supported input formats: .wav, .flac
package main

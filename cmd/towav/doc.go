// Command towav encodes a grayscale image file (PNG/JPEG) into a WAV file.
//
// Every pixel of the image becomes one sine tone segment whose frequency
// encodes the pixel's luminance, preceded by four header segments carrying
// the image dimensions, similar to the Voyager Golden Record encoding.
//
// Usage:
//
//	towav <image_file> <wav_file>
//
// The output is a mono 16-bit PCM WAV file at 44100 Hz.
package main

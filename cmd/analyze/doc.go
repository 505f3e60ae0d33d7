// Command analyze inspects an encoded WAV file.
//
// It prints the detected frequency and byte value of the four header
// segments, the image dimensions they encode, and the number of pixel
// segments, then saves an STFT magnitude spectrogram of the whole waveform
// as a 16-bit grayscale PNG image.
//
// Usage:
//
//	analyze <wav_file>
//
// The spectrogram PNG file will be named <wav_file>.png
package main

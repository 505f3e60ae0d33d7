// Package analyze provides spectrogram inspection of encoded waveforms.
//
// It computes STFT magnitude spectrograms of the audio produced by the codec
// package, which makes the header and per-pixel tone segments visible as
// horizontal frequency steps. Spectrograms can be packed into float16 bits
// for compact storage or saved as 16-bit grayscale PNG images.
package analyze

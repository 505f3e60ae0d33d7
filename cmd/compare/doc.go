// Command compare reports the pixel difference between two grayscale images,
// typically an original and its audio round-trip decode.
//
// Usage:
//
//	compare <original_image> <decoded_image>
//
// It prints the maximum absolute pixel error and the share of differing
// pixels, and exits non-zero when the images cannot be compared.
package main

package main

import (
	"fmt"
	"os"

	"github.com/SamarthK1239/ImageAudioEncoder/analyze"
	"github.com/SamarthK1239/ImageAudioEncoder/codec"
)

func main() {
	// Check if the filename argument is provided
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go <wav_filename>")
		os.Exit(1)
	}

	// Get the filename from the command-line arguments
	var filename = os.Args[1]

	buf, sr, err := codec.LoadWav(filename)
	if err != nil {
		fmt.Printf("Error loading wav file: %v\n", err)
		os.Exit(1)
	}

	// Create a new instance of Codec
	var c = codec.NewCodec()
	c.SampleRate = int(sr)

	n := c.SamplesPerSegment()
	segments := len(buf) / n

	fmt.Printf("Sample rate: %d Hz\n", c.SampleRate)
	fmt.Printf("Samples: %d\n", len(buf))
	fmt.Printf("Samples per segment: %d\n", n)
	fmt.Printf("Segments: %d\n", segments)

	if segments < 4 {
		fmt.Println("Audio shorter than the four header segments")
		os.Exit(1)
	}

	fmt.Println("\nHeader segments:")
	var hdr [4]byte
	for i := 0; i < 4; i++ {
		freq := c.Detect(buf[i*n : (i+1)*n])
		hdr[i] = c.FreqToValue(freq)
		fmt.Printf("Segment %d: %7.2f Hz -> %3d\n", i, freq, hdr[i])
	}
	width := int(hdr[0])<<8 | int(hdr[1])
	height := int(hdr[2])<<8 | int(hdr[3])
	fmt.Printf("Dimensions: %dx%d\n", width, height)
	fmt.Printf("Pixel segments: %d\n", segments-4)

	// Create a new instance of Analyzer
	var a = analyze.NewAnalyzer()
	a.SampleRate = c.SampleRate
	a.YReverse = true

	outputFile := filename + ".png"
	spec := a.Spectrogram(buf)
	if err := a.SavePng(outputFile, spec); err != nil {
		fmt.Printf("Error saving spectrogram: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Spectrogram saved: %s\n", outputFile)
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/SamarthK1239/ImageAudioEncoder/codec"
)

func main() {
	// Check if the filename argument is provided
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go <audio_filename> [png_filename]")
		os.Exit(1)
	}

	// Get the filename from the command-line arguments
	var filename = os.Args[1]
	var outputFile = filename + ".png"
	if len(os.Args) > 2 {
		outputFile = os.Args[2]
	}

	// Create a new instance of Codec
	var c = codec.NewCodec()

	var err error
	if strings.HasSuffix(filename, ".flac") {
		err = c.ToPngFlac(filename, outputFile)
	} else {
		err = c.ToPng(filename, outputFile)
	}
	if err != nil {
		fmt.Printf("Error decoding audio to image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Image decoded: %s\n", outputFile)
}

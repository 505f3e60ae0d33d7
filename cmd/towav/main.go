package main

import (
	"fmt"
	"os"

	"github.com/SamarthK1239/ImageAudioEncoder/codec"
)

func main() {
	// Check if the filename arguments are provided
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run main.go <image_filename> <wav_filename>")
		os.Exit(1)
	}

	// Create a new instance of Codec
	var c = codec.NewCodec()

	img, err := codec.LoadImage(os.Args[1])
	if err != nil {
		fmt.Printf("Error loading image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Encoding image: %dx%d pixels\n", img.Rect.Dx(), img.Rect.Dy())

	buf, err := c.Encode(img)
	if err != nil {
		fmt.Printf("Error encoding image to audio: %v\n", err)
		os.Exit(1)
	}

	if err := codec.SaveWav(os.Args[2], buf, c.SampleRate); err != nil {
		fmt.Printf("Error writing wav file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Audio file created: %s\n", os.Args[2])
	fmt.Printf("Duration: %.2f seconds\n", float64(len(buf))/float64(c.SampleRate))
}

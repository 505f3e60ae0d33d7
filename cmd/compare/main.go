package main

import (
	"fmt"
	"os"

	"github.com/SamarthK1239/ImageAudioEncoder/codec"
)

func main() {
	// Check if the filename arguments are provided
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run main.go <original_image> <decoded_image>")
		os.Exit(1)
	}

	a, err := codec.LoadImage(os.Args[1])
	if err != nil {
		fmt.Printf("Error loading image: %v\n", err)
		os.Exit(1)
	}
	b, err := codec.LoadImage(os.Args[2])
	if err != nil {
		fmt.Printf("Error loading image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Original: %dx%d\n", a.Rect.Dx(), a.Rect.Dy())
	fmt.Printf("Decoded:  %dx%d\n", b.Rect.Dx(), b.Rect.Dy())

	maxErr, changed, err := codec.Diff(a, b)
	if err != nil {
		fmt.Printf("Error comparing images: %v\n", err)
		os.Exit(1)
	}

	total := a.Rect.Dx() * a.Rect.Dy()
	fmt.Printf("Max error: %d\n", maxErr)
	fmt.Printf("Pixels with error > 0: %d / %d (%.2f%%)\n", changed, total, 100*float64(changed)/float64(total))

	switch {
	case maxErr == 0:
		fmt.Println("Perfect match! Images are identical.")
	case maxErr <= 1:
		fmt.Println("Excellent! Maximum error is only 1 pixel value.")
	case maxErr <= 5:
		fmt.Println("Good! Maximum error is within acceptable range (<=5).")
	default:
		fmt.Println("Significant differences detected.")
	}
}

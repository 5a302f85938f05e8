package misc

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// WriteImage
// Saves pixels, a row-major 8-bit grayscale raster of width x height, to fileName as a PNG.
func WriteImage(fileName string, pixels []byte, width int, height int) error {
	if len(pixels) != width*height {
		return fmt.Errorf("image %s has %d pixels but %dx%d needs %d", fileName, len(pixels), width, height, width*height)
	}

	gray := &image.Gray{
		Pix:    pixels,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
	return WriteFile(fileName, func(w io.Writer) error {
		return png.Encode(w, gray)
	})
}

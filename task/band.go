package task

import (
	"fmt"

	"ParallelMandelbrot/mandelbrot"
)

// Band is a run of whole image rows owned by exactly one worker while rendering
type Band struct {
	ID         int
	Top        int
	Bounds     mandelbrot.Bounds
	UpperLeft  complex128
	LowerRight complex128
	Pixels     []byte
}

func (b *Band) String() string {
	output := "{Band "
	output += fmt.Sprintf("ID: %d ", b.ID)
	output += fmt.Sprintf("Top: %d ", b.Top)
	output += fmt.Sprintf("Bounds: %s ", b.Bounds)
	output += fmt.Sprintf("Upper Left: %v ", b.UpperLeft)
	output += fmt.Sprintf("Lower Right: %v}", b.LowerRight)
	return output
}

// Rows returns the half open range of image rows covered by the band
func (b *Band) Rows() (int, int) {
	return b.Top, b.Top + b.Bounds.Height
}

// RowsPerBand
// Height / workers rounded down plus one. The stride always covers the image in at most workers bands, the last one
// taking whatever rows are left.
func RowsPerBand(height int, workers int) int {
	return height/workers + 1
}

// Split
// Cuts pixels, the row-major raster for bounds, into consecutive bands of RowsPerBand rows. Every band aliases its
// own disjoint part of pixels and carries the part of the plane between upperLeft and lowerRight it covers.
func Split(pixels []byte, bounds mandelbrot.Bounds, workers int, upperLeft complex128, lowerRight complex128) ([]Band, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("workers must be positive - got %d", workers)
	}
	if len(pixels) != bounds.Area() {
		return nil, fmt.Errorf("buffer holds %d pixels but bounds %s need %d", len(pixels), bounds, bounds.Area())
	}
	if bounds.Width <= 0 {
		return nil, nil
	}

	rowsPerBand := RowsPerBand(bounds.Height, workers)
	chunk := rowsPerBand * bounds.Width

	bands := make([]Band, 0, workers)
	for start := 0; start < len(pixels); start += chunk {
		end := min(start+chunk, len(pixels))

		id := len(bands)
		top := rowsPerBand * id
		height := (end - start) / bounds.Width
		bands = append(bands, Band{
			ID:         id,
			Top:        top,
			Bounds:     mandelbrot.Bounds{Width: bounds.Width, Height: height},
			UpperLeft:  mandelbrot.PixelToPoint(bounds, 0, top, upperLeft, lowerRight),
			LowerRight: mandelbrot.PixelToPoint(bounds, bounds.Width, top+height, upperLeft, lowerRight),
			Pixels:     pixels[start:end:end],
		})
	}
	return bands, nil
}

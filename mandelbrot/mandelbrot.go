package mandelbrot

import (
	"fmt"
)

const (
	// Escape radius of 2, compared squared
	boundary = 4.0

	Bounded byte = 0
	Escaped byte = 255
)

type Bounds struct {
	Width  int
	Height int
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Area is the number of pixels covered by the bounds
func (b Bounds) Area() int {
	return b.Width * b.Height
}

// PixelToPoint
// Maps the (column, row) pixel of an image with the given bounds onto the complex plane spanned by upperLeft and
// lowerRight. Pixel (0, 0) lands on upperLeft and pixel (Width, Height) lands on lowerRight.
func PixelToPoint(bounds Bounds, column int, row int, upperLeft complex128, lowerRight complex128) complex128 {
	planeWidth := real(lowerRight) - real(upperLeft)
	planeHeight := imag(upperLeft) - imag(lowerRight)
	return complex(
		real(upperLeft)+float64(column)/float64(bounds.Width)*planeWidth,
		imag(upperLeft)-float64(row)/float64(bounds.Height)*planeHeight,
	)
}

// EscapeTime
// Iterates z = z*z + c up to limit times. When |z| grows past 2 the 0-based iteration it happened on is returned along
// with true. If the orbit stays bounded for every iteration c is probably in the set and (limit, false) is returned.
func EscapeTime(c complex128, limit uint) (uint, bool) {
	var z complex128
	for i := uint(0); i < limit; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > boundary {
			return i, true
		}
	}
	return limit, false
}

// RenderBand
// Fills pixels, a row-major raster with the given bounds, with Bounded for points in the set and Escaped for the
// rest. Nothing is written when the length of pixels does not match the bounds.
func RenderBand(limit uint, pixels []byte, bounds Bounds, upperLeft complex128, lowerRight complex128) error {
	if len(pixels) != bounds.Area() {
		return fmt.Errorf("band holds %d pixels but bounds %s need %d", len(pixels), bounds, bounds.Area())
	}

	for row := 0; row < bounds.Height; row++ {
		for column := 0; column < bounds.Width; column++ {
			point := PixelToPoint(bounds, column, row, upperLeft, lowerRight)
			if _, escaped := EscapeTime(point, limit); escaped {
				pixels[row*bounds.Width+column] = Escaped
			} else {
				pixels[row*bounds.Width+column] = Bounded
			}
		}
	}
	return nil
}

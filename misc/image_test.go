package misc

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteImage(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "pic.png")
	pixels := []byte{0, 255, 255, 0, 255, 0}

	if err := WriteImage(fileName, pixels, 3, 2); err != nil {
		t.Fatalf("WriteImage failed: %v", err)
	}

	file, err := os.Open(fileName)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer file.Close()

	decoded, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	gray, ok := decoded.(*image.Gray)
	if !ok {
		t.Fatalf("Expected a grayscale image, got %T", decoded)
	}
	if gray.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Expected 3x2 image, got %v", gray.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := gray.GrayAt(x, y).Y; got != pixels[y*3+x] {
				t.Errorf("Pixel (%d, %d): expected %d, got %d", x, y, pixels[y*3+x], got)
			}
		}
	}
}

func TestWriteImageMismatch(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "pic.png")

	if err := WriteImage(fileName, []byte{1, 2, 3}, 2, 2); err == nil {
		t.Fatal("Expected WriteImage to fail")
	}
	if _, err := os.Stat(fileName); !os.IsNotExist(err) {
		t.Error("No file should be created for a mismatched buffer")
	}
}

func TestWriteImageBadPath(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "missing", "pic.png")

	if err := WriteImage(fileName, []byte{0}, 1, 1); err == nil {
		t.Error("Expected WriteImage to fail for a missing directory")
	}
}

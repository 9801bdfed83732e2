package debug

import (
	"image/png"
	"os"
	"testing"
)

func TestCaptureFromPixels(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "dice")

	w, h := 4, 3
	pixels := make([]byte, w*h*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i] = 200
		pixels[i+3] = 255
	}

	path, err := sc.CaptureFromPixels(pixels, w, h)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Errorf("screenshot is %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), w, h)
	}
	r, _, _, a := img.At(0, 0).RGBA()
	if r>>8 != 200 || a>>8 != 255 {
		t.Errorf("pixel (0,0) = r %d a %d, want r 200 a 255", r>>8, a>>8)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "dice")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 4, 3); err == nil {
		t.Error("expected error on mismatched buffer size")
	}
}

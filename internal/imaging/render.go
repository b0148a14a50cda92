package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/VinithaChowdary/Shape-Detector/internal/detect"
)

// AnnotateResult contains an annotated copy of the source image encoded as
// base64 PNG, along with the shape count that was drawn.
type AnnotateResult struct {
	// Width of the output image in pixels.
	Width int `json:"width"`

	// Height of the output image in pixels.
	Height int `json:"height"`

	// ImageBase64 is the annotated image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// ShapeCount is the number of shapes drawn onto the image.
	ShapeCount int `json:"shape_count"`
}

// shapeHues assigns a distinct hue (degrees) per shape type for the
// annotation overlay.
var shapeHues = map[detect.ShapeType]float64{
	detect.Circle:    210,
	detect.Triangle:  120,
	detect.Rectangle: 0,
	detect.Pentagon:  280,
	detect.Star:      40,
}

// shapeColor returns the overlay color for a shape type.
func shapeColor(t detect.ShapeType) color.NRGBA {
	hue, ok := shapeHues[t]
	if !ok {
		hue = 180
	}
	r, g, b := colorful.Hsv(hue, 0.85, 0.9).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Annotate draws detection results onto a copy of the source image.
//
// Each shape gets a colored bounding box, a cross at its center, and a text
// label with the shape type, confidence percentage, and pixel area. The
// scale factor resizes the annotated output (1.0 keeps the original size).
//
// Returns the annotated image as base64 PNG, or an error if encoding fails.
func Annotate(img image.Image, result *detect.DetectionResult, scale float64) (*AnnotateResult, error) {
	canvas := renderShapes(img, result)

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(canvas.Bounds().Dx()) * scale)
		newHeight := int(float64(canvas.Bounds().Dy()) * scale)
		canvas = imaging.Resize(canvas, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode annotated image: %w", err)
	}

	return &AnnotateResult{
		Width:       canvas.Bounds().Dx(),
		Height:      canvas.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		ShapeCount:  result.Count,
	}, nil
}

// SaveAnnotated renders detection results and writes the image to disk.
// The output format is inferred from the file extension.
func SaveAnnotated(img image.Image, result *detect.DetectionResult, path string) error {
	canvas := renderShapes(img, result)
	if err := imaging.Save(canvas, path); err != nil {
		return fmt.Errorf("failed to save annotated image: %w", err)
	}
	return nil
}

// renderShapes draws boxes, centers, and labels onto a fresh copy of img.
func renderShapes(img image.Image, result *detect.DetectionResult) *image.NRGBA {
	canvas := imaging.Clone(img)

	for _, s := range result.Shapes {
		col := shapeColor(s.Type)
		drawBox(canvas, s.Bounds, col)
		drawCross(canvas, s.Center, col)

		label := fmt.Sprintf("%s %.0f%% (%d,%d) a=%d",
			s.Type, s.Confidence*100, s.Center.X, s.Center.Y, s.Area)
		drawLabel(canvas, s.Bounds.X1, s.Bounds.Y1-4, label, col)
	}

	return canvas
}

// drawBox draws a 1-pixel bounding box outline, corners inclusive.
func drawBox(canvas *image.NRGBA, b detect.Bounds, col color.NRGBA) {
	for x := b.X1; x <= b.X2; x++ {
		setPixel(canvas, x, b.Y1, col)
		setPixel(canvas, x, b.Y2, col)
	}
	for y := b.Y1; y <= b.Y2; y++ {
		setPixel(canvas, b.X1, y, col)
		setPixel(canvas, b.X2, y, col)
	}
}

// drawCross marks a center point with a small plus sign.
func drawCross(canvas *image.NRGBA, p detect.Point, col color.NRGBA) {
	for d := -3; d <= 3; d++ {
		setPixel(canvas, p.X+d, p.Y, col)
		setPixel(canvas, p.X, p.Y+d, col)
	}
}

// drawLabel renders a text label with the fixed 7x13 basic font. Labels
// that would start above the image are pushed inside.
func drawLabel(canvas *image.NRGBA, x, y int, text string, col color.NRGBA) {
	if y < basicfont.Face7x13.Ascent {
		y = basicfont.Face7x13.Ascent
	}
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// setPixel writes a pixel if it falls inside the canvas.
func setPixel(canvas *image.NRGBA, x, y int, col color.NRGBA) {
	b := canvas.Bounds()
	if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
		canvas.SetNRGBA(x, y, col)
	}
}

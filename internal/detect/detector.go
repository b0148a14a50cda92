package detect

import (
	"image"
	"math"
	"time"
)

// Options configures a Detector. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// LuminanceThreshold separates foreground ink from background. A pixel
	// is foreground iff its BT.709 luminance is strictly below this value.
	LuminanceThreshold float64

	// MinArea is the minimum pixel count for a component to be reported.
	// Smaller components are discarded entirely.
	MinArea int
}

// DefaultOptions returns the tuned detection parameters: luminance
// threshold 250 (near-white is background) and minimum area 20 pixels.
func DefaultOptions() Options {
	return Options{
		LuminanceThreshold: 250,
		MinArea:            20,
	}
}

// Detector runs the shape detection pipeline. It holds only configuration
// and is safe for concurrent use by multiple goroutines.
type Detector struct {
	opts Options
}

// New creates a Detector with the default options.
func New() *Detector {
	return &Detector{opts: DefaultOptions()}
}

// NewWithOptions creates a Detector with custom options.
func NewWithOptions(opts Options) *Detector {
	return &Detector{opts: opts}
}

// Detect analyzes a row-major 8-bit RGBA pixel buffer (4 bytes per pixel,
// top-to-bottom) and returns the shapes it contains.
//
// Shapes are reported in discovery order (row-major scan of component
// seeds). The call is deterministic: identical buffers yield identical
// results apart from the timing field. A zero-sized image or a buffer
// shorter than width*height*4 bytes yields an empty result rather than an
// error.
func (d *Detector) Detect(pix []uint8, width, height int) *DetectionResult {
	start := time.Now()

	result := &DetectionResult{
		Shapes:      make([]DetectedShape, 0),
		ImageWidth:  width,
		ImageHeight: height,
	}

	if width <= 0 || height <= 0 || len(pix) < width*height*4 {
		result.ProcessingMs = elapsedMs(start)
		return result
	}

	mask := binarize(pix, width, height, d.opts.LuminanceThreshold)
	components := findComponents(mask, width, height, d.opts.MinArea)

	for i := range components {
		c := &components[i]
		boundary := boundaryPoints(c, mask, width, height)
		hull := convexHull(boundary)
		m := computeMetrics(c, boundary, hull)
		shape, confidence := classify(m)

		result.Shapes = append(result.Shapes, DetectedShape{
			Type:       shape,
			Confidence: confidence,
			Bounds:     c.bounds(),
			Center:     centroid(c),
			Area:       m.Area,
		})
	}

	result.Count = len(result.Shapes)
	result.ProcessingMs = elapsedMs(start)
	return result
}

// DetectImage converts an image to a raw RGBA buffer and runs Detect on it.
// 16-bit color channels are reduced to 8 bits.
func (d *Detector) DetectImage(img image.Image) *DetectionResult {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return d.Detect(nil, width, height)
	}

	pix := make([]uint8, width*height*4)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pix[i] = uint8(r >> 8)
			pix[i+1] = uint8(g >> 8)
			pix[i+2] = uint8(b >> 8)
			pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}

	return d.Detect(pix, width, height)
}

// centroid returns the mean member coordinate rounded to the nearest pixel.
func centroid(c *component) Point {
	n := float64(c.area())
	return Point{
		X: int(math.Round(float64(c.sumX) / n)),
		Y: int(math.Round(float64(c.sumY) / n)),
	}
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}

package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/VinithaChowdary/Shape-Detector/internal/detect"
)

// GalleryImage is one synthetic test image: a white canvas with a single
// filled black shape of a known type.
type GalleryImage struct {
	Name  string
	Kind  detect.ShapeType
	Image *image.RGBA
}

// galleryKinds fixes the generation order of the gallery.
var galleryKinds = []detect.ShapeType{
	detect.Circle,
	detect.Triangle,
	detect.Rectangle,
	detect.Pentagon,
	detect.Star,
}

// Gallery generates one synthetic image per shape type on a square canvas
// of the given side length. The shapes are centered and sized relative to
// the canvas, large enough to clear the detector's minimum area by a wide
// margin.
func Gallery(size int) []GalleryImage {
	images := make([]GalleryImage, 0, len(galleryKinds))
	for _, kind := range galleryKinds {
		images = append(images, GalleryImage{
			Name:  kind.String(),
			Kind:  kind,
			Image: GenerateShape(kind, size),
		})
	}
	return images
}

// GenerateShape draws a single filled shape of the requested type on a
// white size x size canvas.
func GenerateShape(kind detect.ShapeType, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.White)
		}
	}

	c := size / 2
	switch kind {
	case detect.Circle:
		r := size * 3 / 8
		for y := c - r; y <= c+r; y++ {
			for x := c - r; x <= c+r; x++ {
				dx, dy := x-c, y-c
				if dx*dx+dy*dy <= r*r {
					img.Set(x, y, color.Black)
				}
			}
		}
	case detect.Triangle:
		// Isoceles with slope +-1 edges so the hull has exactly 3 vertices.
		top := size / 4
		height := size / 2
		for d := 0; d < height; d++ {
			for x := c - d; x <= c+d; x++ {
				img.Set(x, top+d, color.Black)
			}
		}
	case detect.Rectangle:
		margin := size / 5
		for y := margin; y < size-margin; y++ {
			for x := margin; x < size-margin; x++ {
				img.Set(x, y, color.Black)
			}
		}
	case detect.Pentagon:
		fillPolygon(img, regularPolygon(c, c, float64(size)*0.38, 5))
	case detect.Star:
		fillPolygon(img, starPolygon(c, c, float64(size)*0.38, float64(size)*0.15))
	}

	return img
}

// WriteGallery generates the gallery and saves each image as
// <dir>/<name>.png, creating the directory if needed. Returns the written
// file paths in generation order.
func WriteGallery(dir string, size int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create gallery directory: %w", err)
	}

	paths := make([]string, 0, len(galleryKinds))
	for _, g := range Gallery(size) {
		path := filepath.Join(dir, g.Name+".png")
		if err := imgio.Save(path, g.Image, imgio.PNGEncoder()); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// regularPolygon returns the vertices of a regular n-gon with the first
// vertex pointing up.
func regularPolygon(cx, cy int, radius float64, n int) [][2]float64 {
	verts := make([][2]float64, n)
	for k := 0; k < n; k++ {
		a := -math.Pi/2 + 2*math.Pi*float64(k)/float64(n)
		verts[k] = [2]float64{float64(cx) + radius*math.Cos(a), float64(cy) + radius*math.Sin(a)}
	}
	return verts
}

// starPolygon returns the 10 vertices of a five-pointed star, alternating
// between the outer and inner radius.
func starPolygon(cx, cy int, outer, inner float64) [][2]float64 {
	verts := make([][2]float64, 10)
	for k := 0; k < 10; k++ {
		r := outer
		if k%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(k)/5
		verts[k] = [2]float64{float64(cx) + r*math.Cos(a), float64(cy) + r*math.Sin(a)}
	}
	return verts
}

// fillPolygon rasterizes a polygon with an even-odd point-in-polygon test
// over its bounding box.
func fillPolygon(img *image.RGBA, verts [][2]float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range verts {
		minX = math.Min(minX, v[0])
		maxX = math.Max(maxX, v[0])
		minY = math.Min(minY, v[1])
		maxY = math.Max(maxY, v[1])
	}

	for y := int(minY); y <= int(maxY)+1; y++ {
		for x := int(minX); x <= int(maxX)+1; x++ {
			if pointInPolygon(float64(x), float64(y), verts) {
				img.Set(x, y, color.Black)
			}
		}
	}
}

// pointInPolygon implements the even-odd ray casting rule.
func pointInPolygon(px, py float64, verts [][2]float64) bool {
	inside := false
	n := len(verts)
	for i := 0; i < n; i++ {
		x1, y1 := verts[i][0], verts[i][1]
		x2, y2 := verts[(i+1)%n][0], verts[(i+1)%n][1]
		if (y1 > py) != (y2 > py) {
			xInt := x1 + (py-y1)*(x2-x1)/(y2-y1)
			if px < xInt {
				inside = !inside
			}
		}
	}
	return inside
}

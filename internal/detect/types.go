package detect

import "fmt"

// ShapeType identifies the geometric class assigned to a detected component.
type ShapeType int

const (
	// Circle indicates a round, highly convex component.
	Circle ShapeType = iota

	// Triangle indicates a component whose convex hull has exactly 3 vertices.
	Triangle

	// Rectangle indicates a component whose convex hull has exactly 4 vertices.
	Rectangle

	// Pentagon indicates a component whose convex hull has exactly 5 vertices.
	Pentagon

	// Star indicates a many-vertex hull with low solidity (concave spikes).
	Star
)

var shapeNames = [...]string{"circle", "triangle", "rectangle", "pentagon", "star"}

// String returns the lowercase name of the shape type, or "unknown" for
// values outside the enumeration.
func (s ShapeType) String() string {
	if s < Circle || s > Star {
		return "unknown"
	}
	return shapeNames[s]
}

// MarshalText implements encoding.TextMarshaler so shape types serialize as
// their lowercase names in JSON output.
func (s ShapeType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ShapeType) UnmarshalText(text []byte) error {
	parsed, err := ParseShapeType(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseShapeType converts a lowercase shape name to its ShapeType value.
func ParseShapeType(name string) (ShapeType, error) {
	for i, n := range shapeNames {
		if n == name {
			return ShapeType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape type: %q", name)
}

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Bounds represents a rectangular bounding box in pixel coordinates.
//
// (X1, Y1) is the top-left corner and (X2, Y2) the bottom-right corner,
// both inclusive: every member pixel of the source component satisfies
// X1 <= x <= X2 and Y1 <= y <= Y2.
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (inclusive)
	Y2 int `json:"y2"` // Bottom edge (inclusive)
}

// Width returns the horizontal extent X2 - X1.
func (b Bounds) Width() int { return b.X2 - b.X1 }

// Height returns the vertical extent Y2 - Y1.
func (b Bounds) Height() int { return b.Y2 - b.Y1 }

// DetectedShape is one classified component. Immutable once constructed.
type DetectedShape struct {
	// Type is the geometric class assigned by the classifier.
	Type ShapeType `json:"type"`

	// Confidence indicates classification quality, always in (0, 0.99].
	Confidence float64 `json:"confidence"`

	// Bounds is the tight axis-aligned bounding box of the component.
	Bounds Bounds `json:"bounds"`

	// Center is the component centroid (mean of member coordinates, rounded).
	Center Point `json:"center"`

	// Area is the exact pixel count of the component.
	Area int `json:"area"`
}

// DetectionResult contains all shapes detected in one image.
type DetectionResult struct {
	// Shapes lists the detected shapes in discovery order (row-major scan).
	Shapes []DetectedShape `json:"shapes"`

	// Count is the number of shapes detected.
	Count int `json:"count"`

	// ProcessingMs is the wall-clock pipeline time in milliseconds.
	ProcessingMs float64 `json:"processing_ms"`

	// ImageWidth is the analyzed image width in pixels.
	ImageWidth int `json:"image_width"`

	// ImageHeight is the analyzed image height in pixels.
	ImageHeight int `json:"image_height"`
}

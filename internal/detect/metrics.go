package detect

import "math"

// Metrics is the scalar bundle computed for one component and its hull.
// It is a pure function of the component, its boundary, and its hull.
type Metrics struct {
	// Area is the component's pixel count.
	Area int

	// Perimeter is the boundary point count. When the boundary is empty it
	// falls back to sqrt(area) * 4.
	Perimeter float64

	// Circularity is the isoperimetric ratio 4*pi*area / perimeter^2.
	// A perfect disk approaches 1; 0 when the perimeter is zero.
	Circularity float64

	// HullArea is the shoelace area of the convex hull, or the component
	// area when the hull is degenerate (fewer than 3 vertices).
	HullArea float64

	// Solidity is area / hullArea, or 0 when hullArea is zero. Star shapes
	// have low solidity; convex shapes approach 1.
	Solidity float64

	// HullVertices is the number of hull vertices.
	HullVertices int

	// AspectRatio is bounding box width / height. Only the rectangle
	// classification branch consumes it.
	AspectRatio float64
}

// computeMetrics derives the metric bundle for a component.
func computeMetrics(c *component, boundary, hull []Point) Metrics {
	area := c.area()

	perimeter := float64(len(boundary))
	if perimeter == 0 {
		perimeter = math.Sqrt(float64(area)) * 4
	}

	hullArea := float64(area)
	if len(hull) >= 3 {
		hullArea = polygonArea(hull)
	}

	circularity := 0.0
	if perimeter > 0 {
		circularity = 4 * math.Pi * float64(area) / (perimeter * perimeter)
	}

	solidity := 0.0
	if hullArea > 0 {
		solidity = float64(area) / hullArea
	}

	b := c.bounds()
	aspectRatio := float64(b.Width()) / float64(b.Height())

	return Metrics{
		Area:         area,
		Perimeter:    perimeter,
		Circularity:  circularity,
		HullArea:     hullArea,
		Solidity:     solidity,
		HullVertices: len(hull),
		AspectRatio:  aspectRatio,
	}
}

// polygonArea computes the absolute shoelace area of a polygon:
// |sum(x_i*y_{i+1} - x_{i+1}*y_i)| / 2 with indices mod len.
// The absolute value makes the result independent of winding order.
func polygonArea(poly []Point) float64 {
	sum := 0
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(float64(sum)) / 2
}

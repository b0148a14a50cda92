package detect

import "math"

// rule is one row of the classification decision table.
type rule struct {
	match      func(m Metrics) bool
	shape      ShapeType
	confidence func(m Metrics) float64
}

// rules is the ordered decision table over (hull vertex count, circularity,
// solidity, aspect ratio). Evaluation is strictly top-to-bottom; the first
// matching row wins. The thresholds and score constants are empirical tuning
// knobs and are kept exactly as tuned.
var rules = []rule{
	{
		// Round, highly convex, many hull vertices.
		match: func(m Metrics) bool {
			return m.Circularity > 0.7 && m.Solidity > 0.8 && m.HullVertices > 8
		},
		shape: Circle,
		confidence: func(m Metrics) float64 {
			return 0.7 + math.Min(0.29, m.Circularity-0.7)
		},
	},
	{
		match: func(m Metrics) bool { return m.HullVertices == 3 },
		shape: Triangle,
		confidence: func(m Metrics) float64 {
			return 0.7 + math.Min(0.29, m.Solidity)
		},
	},
	{
		match: func(m Metrics) bool { return m.HullVertices == 4 },
		shape: Rectangle,
		confidence: func(m Metrics) float64 {
			arScore := 1 - math.Abs(1-m.AspectRatio)
			return 0.6 + math.Min(0.39, arScore*0.6+m.Solidity*0.4)
		},
	},
	{
		match: func(m Metrics) bool { return m.HullVertices == 5 },
		shape: Pentagon,
		confidence: func(m Metrics) float64 {
			return 0.65 + math.Min(0.34, m.Solidity)
		},
	},
	{
		// Many vertices but concave: spiked outline.
		match: func(m Metrics) bool { return m.HullVertices >= 8 && m.Solidity < 0.8 },
		shape: Star,
		confidence: func(m Metrics) float64 {
			return 0.6 + math.Min(0.39, 0.8-m.Solidity)
		},
	},
	{
		match: func(m Metrics) bool { return m.HullVertices >= 6 && m.Solidity > 0.9 },
		shape: Circle,
		confidence: func(m Metrics) float64 {
			return 0.6 + math.Min(0.39, m.Circularity)
		},
	},
	{
		match: func(m Metrics) bool { return m.HullVertices >= 6 && m.Solidity < 0.75 },
		shape: Star,
		confidence: func(m Metrics) float64 {
			return 0.55 + math.Min(0.44, m.Solidity)
		},
	},
	{
		match: func(m Metrics) bool { return m.HullVertices >= 6 },
		shape: Pentagon,
		confidence: func(m Metrics) float64 {
			return 0.55 + math.Min(0.44, m.Solidity)
		},
	},
	{
		// Degenerate hulls (0-2 vertices) land here.
		match: func(m Metrics) bool { return true },
		shape: Rectangle,
		confidence: func(m Metrics) float64 {
			return 0.5 + math.Min(0.49, m.Solidity)
		},
	},
}

// classify maps a metric bundle to a shape type and confidence score by
// walking the decision table top-to-bottom.
//
// A non-finite or non-positive confidence is reset to 0.5, and the final
// score is clamped to at most 0.99, so the returned confidence is always
// in (0, 0.99].
func classify(m Metrics) (ShapeType, float64) {
	for _, r := range rules {
		if !r.match(m) {
			continue
		}
		conf := r.confidence(m)
		if math.IsNaN(conf) || math.IsInf(conf, 0) || conf <= 0 {
			conf = 0.5
		}
		if conf > 0.99 {
			conf = 0.99
		}
		return r.shape, conf
	}

	// Unreachable: the last rule always matches.
	return Rectangle, 0.5
}

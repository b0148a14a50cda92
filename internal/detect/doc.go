// Package detect implements the geometric shape detection pipeline.
//
// The package analyzes a raster image and reports the geometric shapes it
// contains (circle, triangle, rectangle, pentagon, star), each with a
// classification confidence, bounding box, center, and pixel area.
//
// # Pipeline
//
// Detection runs once per input image, fully synchronously:
//
//  1. Binarization: Each pixel is mapped to foreground/background using a
//     BT.709 luminance threshold (near-white is background)
//  2. Component labeling: Foreground pixels are grouped into 8-connected
//     components via iterative flood fill; components below the minimum
//     pixel area are discarded
//  3. Boundary extraction: Component pixels adjacent to at least one
//     in-bounds background pixel form the outline
//  4. Convex hull: The outline's hull is built with the monotone chain
//     algorithm
//  5. Metrics: Area, perimeter, circularity, hull area, solidity, hull
//     vertex count, and aspect ratio are computed per component
//  6. Classification: An ordered decision table maps the metric tuple to a
//     shape type and confidence score
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// # Confidence Scores
//
// Every detected shape carries a confidence in (0, 0.99]. The score formulas
// are empirical; a perfect axis-aligned square or a clean filled disk both
// reach the 0.99 ceiling. Non-finite or non-positive scores are reset to 0.5
// rather than reported.
//
// # Concurrency
//
// A Detector holds only configuration and is safe for concurrent use; the
// binary mask and visited arrays are allocated per call and never shared.
// One call processes one image to completion before returning. There is no
// cancellation; memory and time are linear in the pixel count.
//
// # Limitations
//
// The classifier is a heuristic decision table, not a calibrated model. It
// works best on clean, high-contrast images with solid fills:
//   - Rotated rectangles still classify (the hull has 4 vertices) but the
//     axis-aligned bounding box inflates
//   - Noisy or anti-aliased edges raise the boundary count and depress
//     circularity
//   - Shapes touching the image border lose part of their outline
package detect

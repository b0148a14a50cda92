// Package imaging provides the image plumbing around the detection pipeline.
//
// This package implements the peripheral collaborators the detector relies
// on: loading images from disk into pixel buffers, rendering detection
// results as annotated images, and generating the synthetic test-image
// gallery used by the evaluation harness and the test suite.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left corner,
// X increasing rightward and Y increasing downward, matching the detect
// package.
//
// # Supported Formats
//
// The loader decodes PNG, JPEG, and GIF through the standard library
// decoders, and WebP through github.com/chai2010/webp. Annotated output is
// always encoded as PNG.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Rendering and gallery generation
// are stateless and can run concurrently on different images.
package imaging

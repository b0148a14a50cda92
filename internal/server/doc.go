// Package server implements the MCP (Model Context Protocol) server for shape detection.
//
// This package provides a JSON-RPC 2.0 server that exposes the shape detection
// pipeline through the MCP protocol. It's designed to work with Claude and other
// MCP-compatible clients, enabling AI systems to locate and classify geometric
// shapes in raster images.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The server provides 5 tools:
//   - image_info: Load an image and get metadata
//   - shape_detect: Run the full detection pipeline on an image
//   - render_annotated: Return an annotated image with detected shapes overlaid
//   - gallery_generate: Write a synthetic test gallery to disk
//   - eval_run: Score the detector against a YAML ground truth file
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(config.Default())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server

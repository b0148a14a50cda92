package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, format, and size. The image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "shape_detect",
			Description: "Detect geometric shapes (circles, triangles, rectangles, pentagons, stars) in an image. Dark shapes on a light background are located, measured, and classified with confidence scores.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"luminance_threshold": map[string]interface{}{
						"type":        "number",
						"description": "Pixels with luminance below this value are treated as shape pixels (default 250)",
						"default":     250,
					},
					"min_area": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum component area in pixels to report (default 20)",
						"default":     20,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "render_annotated",
			Description: "Detect shapes in an image and return an annotated version with bounding boxes, centers, and labels as base64-encoded PNG. Optionally writes the annotated image to disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the returned image (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also save the annotated image as PNG",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "gallery_generate",
			Description: "Generate a test gallery of synthetic shape images (one PNG per shape type) in a directory. Useful for smoke-testing the detector.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to write the gallery images into (created if missing)",
					},
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Width and height of each generated image in pixels (default 120)",
						"default":     120,
					},
				},
				"required": []string{"dir"},
			},
		},
		{
			Name:        "eval_run",
			Description: "Run the detector over a directory of images and score the results against a YAML ground truth file. Returns per-image scores and overall accuracy.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory containing the images named in the ground truth file",
					},
					"ground_truth": map[string]interface{}{
						"type":        "string",
						"description": "Path to the YAML ground truth file mapping image names to expected shapes",
					},
					"workers": map[string]interface{}{
						"type":        "integer",
						"description": "Number of images to process concurrently (default from config)",
						"default":     4,
					},
				},
				"required": []string{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

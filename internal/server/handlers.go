package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/VinithaChowdary/Shape-Detector/internal/detect"
	"github.com/VinithaChowdary/Shape-Detector/internal/eval"
	"github.com/VinithaChowdary/Shape-Detector/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "shape_detect", "image_info").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate detect/imaging/eval function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_info":
		return s.handleImageInfo(args)
	case "shape_detect":
		return s.handleShapeDetect(args)
	case "render_annotated":
		return s.handleRenderAnnotated(args)
	case "gallery_generate":
		return s.handleGalleryGenerate(args)
	case "eval_run":
		return s.handleEvalRun(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// detectorFor returns the server's detector, or a new one when the call
// overrides threshold or minimum area.
func (s *Server) detectorFor(threshold float64, minArea int) *detect.Detector {
	if threshold == 0 && minArea == 0 {
		return s.detector
	}
	opts := s.cfg.DetectorOptions()
	if threshold != 0 {
		opts.LuminanceThreshold = threshold
	}
	if minArea != 0 {
		opts.MinArea = minArea
	}
	return detect.NewWithOptions(opts)
}

// === Image Information ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Shape Detection ===

type shapeDetectArgs struct {
	Path               string  `json:"path"`
	LuminanceThreshold float64 `json:"luminance_threshold"`
	MinArea            int     `json:"min_area"`
}

func (s *Server) handleShapeDetect(args json.RawMessage) (interface{}, error) {
	var a shapeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return s.detectorFor(a.LuminanceThreshold, a.MinArea).DetectImage(img), nil
}

// === Rendering ===

type renderAnnotatedArgs struct {
	Path       string  `json:"path"`
	Scale      float64 `json:"scale"`
	OutputPath string  `json:"output_path"`
}

func (s *Server) handleRenderAnnotated(args json.RawMessage) (interface{}, error) {
	var a renderAnnotatedArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = s.cfg.Render.Scale
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	result := s.detector.DetectImage(img)
	if a.OutputPath != "" {
		if err := imaging.SaveAnnotated(img, result, a.OutputPath); err != nil {
			return nil, err
		}
	}
	return imaging.Annotate(img, result, a.Scale)
}

// === Gallery ===

type galleryGenerateArgs struct {
	Dir  string `json:"dir"`
	Size int    `json:"size"`
}

func (s *Server) handleGalleryGenerate(args json.RawMessage) (interface{}, error) {
	var a galleryGenerateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = 120
	}
	if a.Dir == "" {
		return nil, fmt.Errorf("dir is required")
	}
	files, err := imaging.WriteGallery(a.Dir, a.Size)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"dir":   a.Dir,
		"files": files,
		"count": len(files),
	}, nil
}

// === Evaluation ===

type evalRunArgs struct {
	ImageDir    string `json:"image_dir"`
	GroundTruth string `json:"ground_truth"`
	Workers     int    `json:"workers"`
}

func (s *Server) handleEvalRun(args json.RawMessage) (interface{}, error) {
	var a evalRunArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.ImageDir == "" {
		a.ImageDir = s.cfg.Eval.ImageDir
	}
	if a.GroundTruth == "" {
		a.GroundTruth = s.cfg.Eval.GroundTruth
	}
	if a.Workers == 0 {
		a.Workers = s.cfg.Eval.Workers
	}
	gt, err := eval.LoadGroundTruth(a.GroundTruth)
	if err != nil {
		return nil, err
	}
	return eval.New(s.detector).Run(context.Background(), a.ImageDir, gt, a.Workers)
}

package server

import (
	"encoding/json"
	"fmt"

	"github.com/scanstudio/textstyle-mcp/internal/colorextract"
	"github.com/scanstudio/textstyle-mcp/internal/fontmetrics"
	"github.com/scanstudio/textstyle-mcp/internal/imaging"
	"github.com/scanstudio/textstyle-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "region_colors").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool. The result is wrapped in MCP's content format; execution errors
// become JSON-RPC errors with code -32000.
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

// executeTool dispatches tool execution to the appropriate handler.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "region_colors":
		return s.handleRegionColors(args)
	case "page_background":
		return s.handlePageBackground(args)
	case "text_line_style":
		return s.handleTextLineStyle(args)
	case "ocr_text_lines":
		return s.handleOCRTextLines(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return imaging.LoadInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return imaging.LoadDimensions(s.cache, a.Path)
}

type regionColorsArgs struct {
	Path string         `json:"path"`
	BBox imaging.Bounds `json:"bbox"`
}

func (s *Server) handleRegionColors(args json.RawMessage) (interface{}, error) {
	var a regionColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return colorextract.ClassifyRegion(img, a.BBox), nil
}

type pageBackgroundArgs struct {
	Path    string           `json:"path"`
	Exclude []imaging.Bounds `json:"exclude"`
}

// pageBackgroundResult mirrors the editor-facing shape: one hex color.
type pageBackgroundResult struct {
	BgColor string `json:"bg_color"`
}

func (s *Server) handlePageBackground(args json.RawMessage) (interface{}, error) {
	var a pageBackgroundArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return pageBackgroundResult{BgColor: colorextract.PageBackground(img, a.Exclude)}, nil
}

type textLineStyleArgs struct {
	Path       string             `json:"path"`
	ID         string             `json:"id"`
	Text       string             `json:"text"`
	BBox       imaging.Bounds     `json:"bbox"`
	Confidence float64            `json:"confidence"`
	Words      []fontmetrics.Hint `json:"words"`
}

func (s *Server) handleTextLineStyle(args json.RawMessage) (interface{}, error) {
	var a textLineStyleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	id := a.ID
	if id == "" {
		id = "line-1"
	}

	words := make([]ocr.Word, len(a.Words))
	for i, h := range a.Words {
		words[i] = ocr.Word{Hint: h}
	}
	line := ocr.Line{
		Text:       a.Text,
		Bounds:     a.BBox,
		Confidence: a.Confidence,
		Words:      words,
	}

	return s.extractor.ExtractLine(img, id, line), nil
}

type ocrTextLinesArgs struct {
	Path     string `json:"path"`
	Language string `json:"language"`
}

func (s *Server) handleOCRTextLines(args json.RawMessage) (interface{}, error) {
	var a ocrTextLinesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Language == "" {
		a.Language = "eng"
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	lines, err := ocr.ExtractLines(img, a.Language)
	if err != nil {
		return nil, err
	}

	return s.extractor.ExtractPage(img, lines), nil
}

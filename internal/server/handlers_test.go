package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"
)

// createTestImageFile writes a paper-colored page with one dark text block
// and returns its path.
func createTestImageFile(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, color.RGBA{235, 235, 230, 255})
		}
	}
	for y := 30; y < 50; y++ {
		for x := 30; x < 130; x++ {
			img.Set(x, y, color.RGBA{25, 25, 30, 255})
		}
	}

	tmpFile, err := os.CreateTemp(t.TempDir(), "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

// callTool runs one tools/call request and returns the response.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	return s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
}

// resultText extracts the text payload from an MCP content response.
func resultText(t *testing.T, resp *MCPResponse) string {
	t.Helper()

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatal("Result should contain content")
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatal("content[0].text should be a string")
	}
	return text
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t)

	resp := callTool(t, s, "image_load", map[string]interface{}{"path": imgPath})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	text := resultText(t, resp)
	if !strings.Contains(text, `"width": 200`) || !strings.Contains(text, `"height": 100`) {
		t.Errorf("image_load result missing dimensions: %s", text)
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t)

	resp := callTool(t, s, "image_dimensions", map[string]interface{}{"path": imgPath})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
}

func TestHandleToolsCall_RegionColors(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t)

	resp := callTool(t, s, "region_colors", map[string]interface{}{
		"path": imgPath,
		"bbox": map[string]interface{}{"x0": 20, "y0": 25, "x1": 140, "y1": 55},
	})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	text := resultText(t, resp)
	var colors struct {
		TextColor string `json:"text_color"`
		BgColor   string `json:"bg_color"`
	}
	if err := json.Unmarshal([]byte(text), &colors); err != nil {
		t.Fatalf("failed to parse region_colors result: %v", err)
	}
	if len(colors.TextColor) != 7 || colors.TextColor[0] != '#' {
		t.Errorf("text_color not hex: %q", colors.TextColor)
	}
	if colors.TextColor == colors.BgColor {
		t.Error("text and background colors should differ over the ink block")
	}
}

func TestHandleToolsCall_PageBackground(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t)

	resp := callTool(t, s, "page_background", map[string]interface{}{
		"path": imgPath,
		"exclude": []map[string]interface{}{
			{"x0": 20, "y0": 25, "x1": 140, "y1": 55},
		},
	})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	text := resultText(t, resp)
	var result struct {
		BgColor string `json:"bg_color"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatalf("failed to parse page_background result: %v", err)
	}
	if result.BgColor != "#ebebe6" {
		t.Errorf("bg_color: got %s, want #ebebe6 (paper color with ink excluded)", result.BgColor)
	}
}

func TestHandleToolsCall_TextLineStyle(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t)

	resp := callTool(t, s, "text_line_style", map[string]interface{}{
		"path":       imgPath,
		"id":         "line-7",
		"text":       "Amount due",
		"bbox":       map[string]interface{}{"x0": 20, "y0": 25, "x1": 140, "y1": 55},
		"confidence": 87,
		"words": []map[string]interface{}{
			{"is_bold": true},
			{"is_bold": true},
		},
	})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	text := resultText(t, resp)
	var line struct {
		ID         string  `json:"id"`
		FontSize   float64 `json:"font_size"`
		FontFamily string  `json:"font_family"`
		FontWeight string  `json:"font_weight"`
		TextColor  string  `json:"text_color"`
	}
	if err := json.Unmarshal([]byte(text), &line); err != nil {
		t.Fatalf("failed to parse text_line_style result: %v", err)
	}
	if line.ID != "line-7" {
		t.Errorf("id: got %s, want line-7", line.ID)
	}
	if line.FontWeight != "bold" {
		t.Errorf("font_weight: got %s, want bold (both words flagged)", line.FontWeight)
	}
	if line.FontFamily != "sans-serif" {
		t.Errorf("font_family: got %s, want sans-serif", line.FontFamily)
	}
	// Box height 30: the size stays inside the [0.4h, 1.5h] band.
	if line.FontSize < 12 || line.FontSize > 45 {
		t.Errorf("font_size %.2f outside the clamp band for h=30", line.FontSize)
	}
}

func TestHandleToolsCall_TextLineStyle_DefaultID(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t)

	resp := callTool(t, s, "text_line_style", map[string]interface{}{
		"path": imgPath,
		"text": "Ok",
		"bbox": map[string]interface{}{"x0": 0, "y0": 0, "x1": 50, "y1": 20},
	})

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if !strings.Contains(resultText(t, resp), `"id": "line-1"`) {
		t.Error("missing id should default to line-1")
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	s := newTestServer(t)

	resp := callTool(t, s, "image_load", map[string]interface{}{
		"path": "/nonexistent/image.png",
	})

	if resp.Error == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidTool(t *testing.T) {
	s := newTestServer(t)

	resp := callTool(t, s, "nonexistent_tool", map[string]interface{}{})

	if resp.Error == nil {
		t.Fatal("Expected error for unknown tool")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`invalid json`),
	})

	if resp.Error == nil {
		t.Fatal("Expected error for invalid JSON params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestExecuteTool_Dispatch(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t)

	bbox := map[string]interface{}{"x0": 20, "y0": 25, "x1": 140, "y1": 55}

	// ocr_text_lines is exercised separately: it needs a tesseract install.
	toolTests := []struct {
		name string
		args map[string]interface{}
	}{
		{"image_load", map[string]interface{}{"path": imgPath}},
		{"image_dimensions", map[string]interface{}{"path": imgPath}},
		{"region_colors", map[string]interface{}{"path": imgPath, "bbox": bbox}},
		{"page_background", map[string]interface{}{"path": imgPath}},
		{"text_line_style", map[string]interface{}{"path": imgPath, "text": "Hello", "bbox": bbox}},
	}

	for _, tt := range toolTests {
		t.Run(tt.name, func(t *testing.T) {
			argsJSON, _ := json.Marshal(tt.args)
			result, err := s.executeTool(tt.name, argsJSON)
			if err != nil {
				t.Fatalf("executeTool(%s) failed: %v", tt.name, err)
			}
			if result == nil {
				t.Errorf("executeTool(%s) returned nil result", tt.name)
			}
		})
	}
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	s := newTestServer(t)

	_, err := s.executeTool("unknown_tool", json.RawMessage(`{}`))
	if err == nil {
		t.Error("executeTool should fail for unknown tool")
	}
}

func TestExecuteTool_InvalidJSON(t *testing.T) {
	s := newTestServer(t)

	_, err := s.executeTool("image_load", json.RawMessage(`{invalid`))
	if err == nil {
		t.Error("executeTool should fail for invalid JSON")
	}
}

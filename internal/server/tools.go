package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the argument every image-backed tool shares.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// bboxSchema describes a bounding box argument {x0,y0,x1,y1} in image-pixel
// coordinates. Coordinates may be fractional and may overhang the image.
func bboxSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x0": map[string]interface{}{"type": "number", "description": "Left edge"},
			"y0": map[string]interface{}{"type": "number", "description": "Top edge"},
			"x1": map[string]interface{}{"type": "number", "description": "Right edge"},
			"y1": map[string]interface{}{"type": "number", "description": "Bottom edge"},
		},
		"required": []string{"x0", "y0", "x1", "y1"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The image stays cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Color Extraction
		{
			Name:        "region_colors",
			Description: "Estimate the text color and background color of a rectangular text region using perceptual (CIELAB) classification. Returns both as #rrggbb hex strings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"bbox": bboxSchema("Bounding box of the text region"),
				},
				"required": []string{"path", "bbox"},
			},
		},
		{
			Name:        "page_background",
			Description: "Estimate the page-level background color of a scanned image, skipping the given text regions. Returns a #rrggbb hex string for the editor to use as fill fallback.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"exclude": map[string]interface{}{
						"type":        "array",
						"description": "Bounding boxes of known text regions to skip while sampling",
						"items":       bboxSchema("Text region to exclude"),
					},
				},
				"required": []string{"path"},
			},
		},

		// Style Extraction
		{
			Name:        "text_line_style",
			Description: "Derive full rendering parameters for one detected text line: text/background colors, fitted font size, and majority-vote font family and weight.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"id": map[string]interface{}{
						"type":        "string",
						"description": "Caller-assigned line identifier echoed back in the result",
					},
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Recognized text of the line",
					},
					"bbox": bboxSchema("Bounding box of the line"),
					"confidence": map[string]interface{}{
						"type":        "number",
						"description": "OCR confidence in [0,100]",
					},
					"words": map[string]interface{}{
						"type":        "array",
						"description": "Per-word style hints from the OCR engine",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"is_bold":      map[string]interface{}{"type": "boolean"},
								"is_serif":     map[string]interface{}{"type": "boolean"},
								"is_monospace": map[string]interface{}{"type": "boolean"},
							},
						},
					},
				},
				"required": []string{"path", "text", "bbox"},
			},
		},
		{
			Name:        "ocr_text_lines",
			Description: "Run OCR on an image and return every detected text line with full rendering parameters (colors, font size/family/weight) plus the page background color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code (default: eng)",
						"default":     "eng",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

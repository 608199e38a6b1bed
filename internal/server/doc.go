// Package server implements the MCP (Model Context Protocol) server for text
// style extraction.
//
// This package provides a JSON-RPC 2.0 server that turns OCR-detected text
// regions in scanned images into rendering parameters: text and background
// colors, font size, family, and weight. It's designed to work with MCP
// clients driving a document editor that re-renders recognized text.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Color Extraction:
//   - region_colors: Text/background colors of one region (CIELAB classification)
//   - page_background: Page-level background color, text regions excluded
//
// Style Extraction:
//   - text_line_style: Full rendering parameters for one supplied text line
//   - ocr_text_lines: OCR the whole image, style every detected line
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
// Degenerate analysis inputs (empty regions, boxes outside the image, blank
// text) are not errors: the extraction packages resolve them to documented
// fallback values so every tool result is fully populated.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv, err := server.New("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server

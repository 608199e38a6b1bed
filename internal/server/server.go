package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/scanstudio/textstyle-mcp/internal/fontmetrics"
	"github.com/scanstudio/textstyle-mcp/internal/imaging"
	"github.com/scanstudio/textstyle-mcp/internal/style"
)

// Server handles MCP protocol communication and owns the shared resources:
// the image cache and the style extractor with its measurement backend.
type Server struct {
	cache     *imaging.ImageCache
	extractor *style.Extractor
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server instance. It fails when the text measurement backend
// cannot be built (unparsable fonts, bad font directory): that is host
// misconfiguration, reported up rather than degraded into defaults.
//
// fontDir optionally points at a directory of TTF files overriding the
// embedded Go fonts; empty means embedded fonts only.
func New(fontDir string) (*Server, error) {
	fonts, err := fontmetrics.NewDefaultProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize fonts: %w", err)
	}
	if fontDir != "" {
		if err := fonts.LoadDirectory(fontDir); err != nil {
			return nil, fmt.Errorf("failed to load font directory: %w", err)
		}
	}

	measurer, err := fontmetrics.NewFaceMeasurer(fonts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize text measurer: %w", err)
	}
	extractor, err := style.NewExtractor(measurer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize style extractor: %w", err)
	}

	return &Server{
		cache:     imaging.NewImageCache(),
		extractor: extractor,
	}, nil
}

// Run starts the MCP server, reading requests from stdin and writing
// responses to stdout until EOF.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(os.Stdin)
	// Large requests carry inline word lists; give the scanner room.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(os.Stdout)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "textstyle-mcp",
				"version": "0.1.0",
			},
		},
	}
}

// handleToolsList returns the tool catalog.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
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

func mustMarshalJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("marshal error: %v", err)
	}
	return string(b)
}

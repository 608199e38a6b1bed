package main

import (
	"fmt"
	"log"
	"os"

	"github.com/scanstudio/textstyle-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("textstyle-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("textstyle-mcp - MCP server for text style extraction")
			fmt.Println()
			fmt.Println("Usage: textstyle-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  TEXTSTYLE_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  TEXTSTYLE_MCP_FONT_DIR=<dir>     Override the embedded measurement")
			fmt.Println("                                   fonts with TTF files from <dir>")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("TEXTSTYLE_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Text Style MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv, err := server.New(os.Getenv("TEXTSTYLE_MCP_FONT_DIR"))
	if err != nil {
		log.Fatalf("Startup error: %v", err)
	}
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

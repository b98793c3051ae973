package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/pyoutline/internal/outline"
)

// OutlineToolName is the name the outline tool is registered under.
const OutlineToolName = "python_outline"

// AddOutlineTool registers the python_outline tool with an MCP server.
// Relative paths are resolved against rootDir. Calls are recorded in metrics
// when it is non-nil.
func AddOutlineTool(s *server.MCPServer, outliner outline.Outliner, rootDir string, metrics *CallMetrics) {
	tool := mcp.NewTool(
		OutlineToolName,
		mcp.WithDescription(`Outline a Python module: class and function signatures, docstrings and top-level comments, with every function body replaced by "(implementation not shown)".

Pass exactly one of:
- path: a Python file, absolute or relative to the project root
- source: Python source text`),
		mcp.WithString("path",
			mcp.Description("Python file to outline")),
		mcp.WithString("source",
			mcp.Description("Python source to outline instead of a file")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createOutlineHandler(outliner, rootDir, metrics))
}

// createOutlineHandler creates the handler function for the python_outline tool.
func createOutlineHandler(outliner outline.Outliner, rootDir string, metrics *CallMetrics) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		startTime := time.Now()
		fail := func(err error) (*mcp.CallToolResult, error) {
			metrics.RecordCall(time.Since(startTime), err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			metrics.RecordCall(time.Since(startTime), errors.New("invalid arguments format"))
			return errResult, nil
		}

		path, err := parseStringArg(argsMap, "path")
		if err != nil {
			return fail(err)
		}
		source, err := parseStringArg(argsMap, "source")
		if err != nil {
			return fail(err)
		}
		if (path == "") == (source == "") {
			return fail(errors.New("exactly one of path or source is required"))
		}

		input := []byte(source)
		if path != "" {
			if !filepath.IsAbs(path) {
				path = filepath.Join(rootDir, path)
			}
			input, err = os.ReadFile(path)
			if err != nil {
				return fail(fmt.Errorf("failed to read %s: %w", path, err))
			}
		}

		out, err := outliner.Outline(input)
		if err != nil {
			return fail(fmt.Errorf("failed to outline: %w", err))
		}

		took := time.Since(startTime)
		metrics.RecordCall(took, nil)

		return marshalToolResponse(&OutlineResponse{
			Path:    path,
			Outline: out,
			Metadata: OutlineResponseMetadata{
				TookMs: int(took.Milliseconds()),
			},
		})
	}
}

// OutlineResponse represents the JSON response schema for the python_outline tool.
type OutlineResponse struct {
	Path     string                  `json:"path,omitempty"`
	Outline  string                  `json:"outline"`
	Metadata OutlineResponseMetadata `json:"metadata"`
}

// OutlineResponseMetadata contains timing information.
type OutlineResponseMetadata struct {
	TookMs int `json:"took_ms"`
}

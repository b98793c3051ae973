package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/pyoutline/internal/outline"
)

// ServerVersion is reported to MCP clients.
const ServerVersion = "1.0.0"

// OutlineServer serves the outline tool over MCP stdio.
type OutlineServer struct {
	mcp     *server.MCPServer
	metrics *CallMetrics
}

// NewOutlineServer creates an MCP server named name exposing the outline tool.
func NewOutlineServer(name string, outliner outline.Outliner, rootDir string) (*OutlineServer, error) {
	if outliner == nil {
		return nil, fmt.Errorf("outliner is required")
	}

	mcpServer := server.NewMCPServer(
		name,
		ServerVersion,
		server.WithToolCapabilities(true),
	)
	metrics := NewCallMetrics()
	AddOutlineTool(mcpServer, outliner, rootDir, metrics)

	return &OutlineServer{mcp: mcpServer, metrics: metrics}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *OutlineServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.logMetrics()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
			return
		}
		// stdin closed
		errCh <- nil
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Metrics returns a snapshot of the tool calls served so far.
func (s *OutlineServer) Metrics() MetricsSnapshot {
	return s.metrics.GetMetrics()
}

func (s *OutlineServer) logMetrics() {
	m := s.metrics.GetMetrics()
	log.Printf("Served %d outline calls (%d failed)", m.TotalCalls, m.FailedCalls)
}

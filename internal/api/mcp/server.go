// Package mcp exposes the blog service as MCP tools, resources, and prompts.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/akshay23/spurs-blog-mcp-server/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Spurs Blog Assistant"
	// serverVersion identifies the MCP server version.
	serverVersion = "1.0.0"
)

// Server hosts the MCP server over the blog service.
type Server struct {
	svc       *service.Blog
	mcpServer *mcp.Server
}

// New creates a configured MCP server.
func New(svc *service.Blog) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	s := &Server{svc: svc, mcpServer: mcpServer}

	mcp.AddTool(mcpServer, playerInfoTool(), s.playerInfoHandler)
	mcp.AddTool(mcpServer, recentResultsTool(), s.recentResultsHandler)
	mcp.AddTool(mcpServer, searchArticlesTool(), s.searchArticlesHandler)

	mcpServer.AddResource(latestArticlesResource(), s.latestArticlesHandler)
	mcpServer.AddResourceTemplate(articleByIDResource(), s.articleByIDHandler)
	mcpServer.AddResource(recentGameResultsResource(), s.recentGameResultsHandler)
	mcpServer.AddResource(playersListResource(), s.playersListHandler)

	mcpServer.AddPrompt(playerComparisonPrompt(), playerComparisonHandler)
	mcpServer.AddPrompt(teamNewsPrompt(), teamNewsHandler)
	mcpServer.AddPrompt(nbaNewsPrompt(), nbaNewsHandler)

	return s
}

// Serve runs the MCP server on stdio until the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	return err
}

// textResult wraps plain text as a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult wraps plain text as a tool error.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

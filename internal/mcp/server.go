// Package mcp exposes surah lookup and ayah explanations to AI agents over
// the Model Context Protocol.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/mushaf/internal/explain"
	"github.com/ziadkadry99/mushaf/internal/quran"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Source is the Quran content the tools read.
type Source interface {
	ListSurahs(ctx context.Context) ([]quran.Surah, error)
	GetSurah(ctx context.Context, n int) (*quran.SurahDetail, error)
	GetEdition(ctx context.Context, n int, edition string) (*quran.SurahDetail, error)
}

// Server wraps an MCP server that exposes Quran reading tools.
type Server struct {
	source             Source
	explainer          *explain.Explainer
	translationEdition string
	mcp                *server.MCPServer
}

// NewServer creates a new MCP server. explainer may be nil, in which case
// explain_ayah reports that explanations are disabled.
func NewServer(source Source, explainer *explain.Explainer, translationEdition string) *Server {
	s := &Server{
		source:             source,
		explainer:          explainer,
		translationEdition: translationEdition,
	}

	s.mcp = server.NewMCPServer(
		"mushaf",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listSurahsTool, s.handleListSurahs)
	s.mcp.AddTool(getSurahTool, s.handleGetSurah)
	s.mcp.AddTool(explainAyahTool, s.handleExplainAyah)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/graphparity/internal/config"
	"github.com/agenthands/graphparity/internal/core"
	"github.com/agenthands/graphparity/internal/loader"
	"github.com/agenthands/graphparity/internal/report"
)

var (
	ErrGraphNotAllowed = errors.New("graph address is not allowed")
	ErrOutsideDataDir  = errors.New("path is outside the data directory")
)

type Server struct {
	Checker *core.Checker
	Report  report.Options
	// GraphURI is the one graph address a request may name as legacy input.
	// Empty means graph inputs are refused.
	GraphURI string
	// DataDir is the root every file input must resolve under.
	DataDir string
}

func NewServer(checker *core.Checker, cfg *config.Config) *Server {
	return &Server{
		Checker: checker,
		Report: report.Options{
			Samples: cfg.Report.Samples,
			NewSide: cfg.Report.NewSide,
		},
		GraphURI: cfg.Neo4j.URI,
		DataDir:  cfg.Server.DataDir,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Health)
	r.POST("/compare", s.Compare)

	return r
}

type CompareRequest struct {
	LegacyInput string `json:"legacy_input" binding:"required"`
	NewInput    string `json:"new_input" binding:"required"`
	Samples     *int   `json:"samples" binding:"omitempty,min=0"`
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Compare runs one comparison and answers with the JSON report. Inputs are
// limited to files under DataDir and, for the legacy side, the configured graph.
func (s *Server) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	legacy, err := s.resolve(req.LegacyInput, true)
	if err != nil {
		slog.Warn("rejected legacy input", "legacy_input", req.LegacyInput, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("legacy_input: %v", err)})
		return
	}
	next, err := s.resolve(req.NewInput, false)
	if err != nil {
		slog.Warn("rejected new input", "new_input", req.NewInput, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("new_input: %v", err)})
		return
	}

	res, err := s.Checker.Run(c.Request.Context(), legacy, next)
	if err != nil {
		slog.Error("comparison failed", "legacy_input", req.LegacyInput, "new_input", req.NewInput, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compare graphs"})
		return
	}
	res.LegacyInput, res.NewInput = req.LegacyInput, req.NewInput

	opts := s.Report
	if req.Samples != nil {
		opts.Samples = *req.Samples
	}
	c.JSON(http.StatusOK, report.Build(res, opts))
}

// resolve maps a request input to what the checker may open. Relative paths
// are taken from DataDir. Symlinks inside DataDir are followed as-is.
func (s *Server) resolve(input string, graph bool) (string, error) {
	if graph && loader.IsGraphURI(input) {
		if s.GraphURI == "" || input != s.GraphURI {
			return "", ErrGraphNotAllowed
		}
		return input, nil
	}

	root, err := filepath.Abs(s.DataDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory: %w", err)
	}
	path := input
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	path = filepath.Clean(path)

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrOutsideDataDir
	}
	return path, nil
}

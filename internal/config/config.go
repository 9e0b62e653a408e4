package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/agenthands/graphparity/internal/report"
)

type ReportConfig struct {
	Format  string `toml:"format"`
	Samples int    `toml:"samples"`
	// NewSide names the new producer in report headings ("Missing in Go").
	NewSide string `toml:"new_side"`
	Strict  bool   `toml:"strict"`
}

type LegacyConfig struct {
	NodesFile string `toml:"nodes_file"`
	EdgesFile string `toml:"edges_file"`
}

type Neo4jConfig struct {
	// URI is the only graph address the HTTP server accepts as a legacy input.
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
}

type ServerConfig struct {
	Port string `toml:"port"`
	// DataDir confines the files /compare may read.
	DataDir string `toml:"data_dir"`
}

type Config struct {
	LogLevel string       `toml:"log_level"`
	Report   ReportConfig `toml:"report"`
	Legacy   LegacyConfig `toml:"legacy"`
	Neo4j    Neo4jConfig  `toml:"neo4j"`
	Server   ServerConfig `toml:"server"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Report: ReportConfig{
			Format:  "text",
			Samples: report.DefaultSamples,
			NewSide: report.DefaultNewSide,
		},
		Legacy: LegacyConfig{
			NodesFile: "nodes.jsonl",
			EdgesFile: "edges.jsonl",
		},
		Neo4j: Neo4jConfig{
			User: "neo4j",
		},
		Server: ServerConfig{
			Port:    "8080",
			DataDir: ".",
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides config values with environment variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("GRAPHPARITY_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("GRAPHPARITY_FORMAT"); v != "" {
		c.Report.Format = v
	}
	if v := os.Getenv("GRAPHPARITY_SAMPLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GRAPHPARITY_SAMPLES '%s': %w", v, err)
		}
		c.Report.Samples = n
	}
	if v := os.Getenv("GRAPHPARITY_NEW_SIDE"); v != "" {
		c.Report.NewSide = v
	}
	if v := os.Getenv("GRAPHPARITY_STRICT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid GRAPHPARITY_STRICT '%s': %w", v, err)
		}
		c.Report.Strict = b
	}
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Neo4j.URI = v
	}
	if v := os.Getenv("NEO4J_USER"); v != "" {
		c.Neo4j.User = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Neo4j.Password = v
	}
	if v := os.Getenv("NEO4J_DATABASE"); v != "" {
		c.Neo4j.Database = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("GRAPHPARITY_DATA_DIR"); v != "" {
		c.Server.DataDir = v
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	switch c.Report.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported report format: %s", c.Report.Format)
	}
	if c.Report.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", c.Report.Samples)
	}
	return nil
}

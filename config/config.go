// Package config loads the gridpath configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/visual"
)

// EnvPath names the environment variable consulted when no -config flag is given.
const EnvPath = "GRIDPATH_CONFIG"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all gridpath configuration
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Search   SearchConfig   `yaml:"search"`
	Playback PlaybackConfig `yaml:"playback"`
	Server   ServerConfig   `yaml:"server"`
	Render   RenderConfig   `yaml:"render"`
}

// CellConfig is a board position.
type CellConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// BoardConfig describes the initial board. A non-empty Layout wins over the
// dimensions and role positions.
type BoardConfig struct {
	Height int         `yaml:"height"`
	Width  int         `yaml:"width"`
	Start  *CellConfig `yaml:"start"`
	End    *CellConfig `yaml:"end"`
	Layout []string    `yaml:"layout"`
}

// SearchConfig holds algorithm settings
type SearchConfig struct {
	Algorithm string `yaml:"algorithm"` // bfs, dijkstra, astar
	Frontier  string `yaml:"frontier"`  // scan, heap
}

// PlaybackConfig holds reveal intervals
type PlaybackConfig struct {
	VisitedDelay time.Duration `yaml:"visited_delay"`
	PathDelay    time.Duration `yaml:"path_delay"`
}

// ServerConfig holds server-specific settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RenderConfig holds PNG snapshot settings
type RenderConfig struct {
	CellSize int `yaml:"cell_size"` // pixels per cell
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve picks the config path: flagValue if set, else $GRIDPATH_CONFIG.
// An empty result means "use Default".
func Resolve(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvPath)
}

// LoadOrDefault loads the file Resolve(flagValue) names, or returns Default.
func LoadOrDefault(flagValue string) (*Config, error) {
	if path := Resolve(flagValue); path != "" {
		return Load(path)
	}
	return Default(), nil
}

func (c *Config) setDefaults() {
	if c.Board.Height == 0 {
		c.Board.Height = gridgraph.DefaultHeight
	}
	if c.Board.Width == 0 {
		c.Board.Width = gridgraph.DefaultWidth
	}
	if c.Search.Algorithm == "" {
		c.Search.Algorithm = string(search.Dijkstra)
	}
	if c.Search.Frontier == "" {
		c.Search.Frontier = frontier.Scan.String()
	}
	if c.Playback.VisitedDelay == 0 {
		c.Playback.VisitedDelay = visual.DefaultVisitedDelay
	}
	if c.Playback.PathDelay == 0 {
		c.Playback.PathDelay = visual.DefaultPathDelay
	}
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Render.CellSize == 0 {
		c.Render.CellSize = 20
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if len(c.Board.Layout) == 0 && (c.Board.Height <= 0 || c.Board.Width <= 0) {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Board.Height, c.Board.Width)
	}
	if _, err := search.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := frontier.ParseKind(c.Search.Frontier); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Playback.VisitedDelay < 0 || c.Playback.PathDelay < 0 {
		return fmt.Errorf("%w: playback delays must be non-negative", ErrInvalidConfig)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Render.CellSize < 0 {
		return fmt.Errorf("%w: render cell_size must be positive", ErrInvalidConfig)
	}
	if _, err := c.Grid(); err != nil {
		return fmt.Errorf("%w: board: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Grid builds the initial board.
func (c *Config) Grid() (*gridgraph.Grid, error) {
	if len(c.Board.Layout) > 0 {
		return gridgraph.FromRows(c.Board.Layout)
	}
	var opts []gridgraph.Option
	if c.Board.Start != nil {
		opts = append(opts, gridgraph.WithStart(gridgraph.Cell{Row: c.Board.Start.Row, Col: c.Board.Start.Col}))
	}
	if c.Board.End != nil {
		opts = append(opts, gridgraph.WithEnd(gridgraph.Cell{Row: c.Board.End.Row, Col: c.Board.End.Col}))
	}

	return gridgraph.NewGrid(c.Board.Height, c.Board.Width, opts...)
}

// Algorithm returns the configured default algorithm.
func (c *Config) Algorithm() search.Algorithm {
	alg, err := search.ParseAlgorithm(c.Search.Algorithm)
	if err != nil {
		return search.Dijkstra
	}
	return alg
}

// FrontierKind returns the configured frontier.
func (c *Config) FrontierKind() frontier.Kind {
	kind, _ := frontier.ParseKind(c.Search.Frontier)
	return kind
}

// Timing returns the configured reveal schedule.
func (c *Config) Timing() visual.Timing {
	return visual.Timing{VisitedDelay: c.Playback.VisitedDelay, PathDelay: c.Playback.PathDelay}
}

// Addr returns host:port for the server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

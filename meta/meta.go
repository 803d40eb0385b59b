// meta/meta.go
package meta

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GO_ROUTINES defines the number of games simulated at once.
const GO_ROUTINES = 8

// GAMES defines the number of games of a simulation run.
const GAMES = 30

// MAX_TURNS caps the turns of a simulated game.
const MAX_TURNS = 300

// MAX_ACTIONS caps the accepted actions of a simulated game.
const MAX_ACTIONS = 20000

type Config struct {
	ListenAddr     string   `yaml:"listen_addr"`
	PostgresURL    string   `yaml:"postgres_url"`
	LogLevel       string   `yaml:"log_level"`
	Seed           uint64   `yaml:"seed"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	RateLimit      float64  `yaml:"rate_limit"` // requests per second, 0 disables
	Burst          int      `yaml:"burst"`

	Simulation Simulation `yaml:"simulation"`
}

type Simulation struct {
	Games       int     `yaml:"games"`
	Players     int     `yaml:"players"`
	Goroutines  int     `yaml:"goroutines"`
	MaxTurns    int     `yaml:"max_turns"`
	Temperature float64 `yaml:"temperature"`
	OutputDir   string  `yaml:"output_dir"`
}

func Default() Config {
	return Config{
		ListenAddr: ":8080",
		LogLevel:   "info",
		RateLimit:  20,
		Burst:      40,
		Simulation: Simulation{
			Games:       GAMES,
			Players:     4,
			Goroutines:  GO_ROUTINES,
			MaxTurns:    MAX_TURNS,
			Temperature: 0.5,
			OutputDir:   "results",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies the
// COLONISATION_* environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if v, ok := os.LookupEnv("COLONISATION_LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}
	if v, ok := os.LookupEnv("COLONISATION_POSTGRES_URL"); ok {
		cfg.PostgresURL = v
	}
	if v, ok := os.LookupEnv("COLONISATION_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("COLONISATION_ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = strings.Split(v, ",")
	}
	if v, ok := os.LookupEnv("COLONISATION_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid COLONISATION_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	if cfg.Simulation.Players < 2 || cfg.Simulation.Players > 4 {
		return Config{}, fmt.Errorf("simulation needs 2 to 4 players, got %d", cfg.Simulation.Players)
	}
	if cfg.Simulation.Goroutines < 1 {
		cfg.Simulation.Goroutines = 1
	}
	return cfg, nil
}

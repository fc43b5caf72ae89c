package flock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config carries every tunable of the simulation. These are global
// parameters, not per-agent state; passing the struct around (instead of
// package constants) lets tests and the UI run with varied values.
type Config struct {
	// World Dimensions (arena width/height, also the window size)
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumBoids int `json:"numBoids"`

	// Interaction Radii
	VisualRange    float64 `json:"visualRange"`    // How far can they see?
	ProtectedRange float64 `json:"protectedRange"` // Personal space radius

	// Steering
	CenteringFactor float64 `json:"centeringFactor"` // Cohesion strength
	AvoidanceFactor float64 `json:"avoidanceFactor"` // Separation strength
	MatchingFactor  float64 `json:"matchingFactor"`  // Alignment strength
	TurnFactor      float64 `json:"turnFactor"`      // Edge turning strength
	ScoutBias       float64 `json:"scoutBias"`       // Horizontal drift of scouts

	// Speed band
	MinSpeed float64 `json:"minSpeed"`
	MaxSpeed float64 `json:"maxSpeed"`

	// Spawn rectangle (world coordinates, arena center is the origin)
	SpawnMinX float64 `json:"spawnMinX"`
	SpawnMaxX float64 `json:"spawnMaxX"`
	SpawnMinY float64 `json:"spawnMinY"`
	SpawnMaxY float64 `json:"spawnMaxY"`

	// Seed for the spawn RNG, so runs are reproducible
	Seed uint64 `json:"seed"`
}

// DefaultConfig returns the stock tuning of the flock.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:      1280,
		WorldHeight:     960,
		NumBoids:        250,
		VisualRange:     50.0,
		ProtectedRange:  10.0,
		CenteringFactor: 0.0005,
		AvoidanceFactor: 0.1,
		MatchingFactor:  0.15,
		TurnFactor:      1.0,
		ScoutBias:       0.05,
		MinSpeed:        5.5,
		MaxSpeed:        6.0,
		SpawnMinX:       -500,
		SpawnMaxX:       300,
		SpawnMinY:       -500,
		SpawnMaxY:       300,
		Seed:            42,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	f, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	// 3. Validate
	var v interface{}
	if err := json.NewDecoder(f).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Package requestid generates correlation IDs for requests that arrive
// without one.
package requestid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// Generator kinds accepted by Config.
const (
	KindUUID      = "uuid"
	KindSnowflake = "snowflake"
)

// Generator produces a unique identifier string.
type Generator interface {
	Generate() string
}

// UUID generates time-ordered version 7 UUID strings.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string.
func (u *UUID) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Snowflake generates decimal Snowflake IDs from a randomly chosen node.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake constructs a Snowflake generator with a random 10-bit node ID.
func NewSnowflake() (*Snowflake, error) {
	nodeID, err := randomNodeID()
	if err != nil {
		return nil, fmt.Errorf("node id: %w", err)
	}

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node: %w", err)
	}
	return &Snowflake{node: node}, nil
}

// Generate returns a new unique ID.
func (s *Snowflake) Generate() string {
	return s.node.Generate().String()
}

func randomNodeID() (int64, error) {
	var id int64
	if err := binary.Read(rand.Reader, binary.BigEndian, &id); err != nil {
		return 0, err
	}
	return id & (1<<10 - 1), nil
}

// Env maps environment variable names for request ID configuration.
type Env struct {
	Generator string
}

// Config selects the generator used for new correlation IDs.
type Config struct {
	Generator string `toml:"generator"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	if c.Generator == "" {
		c.Generator = KindUUID
	}
	if env != nil && env.Generator != "" {
		if v := os.Getenv(env.Generator); v != "" {
			c.Generator = v
		}
	}

	switch c.Generator {
	case KindUUID, KindSnowflake:
		return nil
	default:
		return fmt.Errorf("invalid generator: %s (must be uuid or snowflake)", c.Generator)
	}
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Generator != "" {
		c.Generator = overlay.Generator
	}
}

// New builds the generator named by cfg.
func New(cfg *Config) (Generator, error) {
	switch cfg.Generator {
	case KindSnowflake:
		return NewSnowflake()
	case KindUUID, "":
		return NewUUID(), nil
	default:
		return nil, fmt.Errorf("unknown generator: %s", cfg.Generator)
	}
}

package kzg10

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// SetupConfig is the on-disk profile describing the public parameters to
// generate. The degree bounds entry is either one of the mode names
// ("none", "all", "radix2") or an explicit list of bounds:
//
//	max_degree: 1024
//	degree_bounds: radix2
//	produce_g2_powers: true
type SetupConfig struct {
	MaxDegree       int                `yaml:"max_degree"`
	Bounds          DegreeBoundsConfig `yaml:"degree_bounds"`
	ProduceG2Powers bool               `yaml:"produce_g2_powers"`
}

// ParseSetupConfig reads a YAML setup profile.
func ParseSetupConfig(r io.Reader) (SetupConfig, error) {
	var cfg SetupConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return SetupConfig{}, err
	}
	if cfg.MaxDegree < 1 {
		return SetupConfig{}, ErrDegreeIsZero
	}
	return cfg, nil
}

// UnmarshalYAML accepts either a mode name or an explicit bound list.
func (c *DegreeBoundsConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var mode string
	if err := unmarshal(&mode); err == nil {
		switch mode {
		case "", "none":
			c.Mode = DegreeBoundsNone
		case "all":
			c.Mode = DegreeBoundsAll
		case "radix2":
			c.Mode = DegreeBoundsRadix2
		default:
			return fmt.Errorf("unknown degree bounds mode %q", mode)
		}
		c.List = nil
		return nil
	}

	var list []int
	if err := unmarshal(&list); err != nil {
		return err
	}
	c.Mode = DegreeBoundsList
	c.List = list
	return nil
}

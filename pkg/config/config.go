package config

import (
	"github.com/arthur-debert/flatlint/pkg/compose"
	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/options"
)

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Composition modes
const (
	ModeStandard  = "standard"
	ModeWorkspace = "workspace"
)

// Config is the merged result of every configuration source.
type Config struct {
	// Options is the composer Input
	Options  map[string]any `koanf:"options"`
	Output   Output         `koanf:"output"`
	Projects []Project      `koanf:"projects"`
}

// Output controls where and how the composed configuration is written.
type Output struct {
	// Format is json, yaml or toml; empty means detect from the terminal
	Format string `koanf:"format"`
	// Path is the output file; empty means stdout
	Path string `koanf:"path"`
	// Mode is standard or workspace
	Mode string `koanf:"mode"`
}

// Project is a workspace project entry.
type Project struct {
	Root    string         `koanf:"root"`
	Options map[string]any `koanf:"options"`
}

// Input returns the composer options.
func (c *Config) Input() options.Input {
	return options.Input(c.Options)
}

// ProjectInputs converts the project entries for the composer.
func (c *Config) ProjectInputs() []compose.ProjectInput {
	out := make([]compose.ProjectInput, 0, len(c.Projects))
	for _, p := range c.Projects {
		out = append(out, compose.ProjectInput{Root: p.Root, Options: options.Input(p.Options)})
	}
	return out
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", FormatJSON, FormatYAML, FormatTOML:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format).
			WithDetail("field", "output.format")
	}
	switch c.Output.Mode {
	case "", ModeStandard, ModeWorkspace:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown mode %q", c.Output.Mode).
			WithDetail("field", "output.mode")
	}
	for i, p := range c.Projects {
		if p.Root == "" {
			return errors.Newf(errors.ErrConfigValid, "project %d has no root", i).
				WithDetail("field", "projects")
		}
	}
	return nil
}

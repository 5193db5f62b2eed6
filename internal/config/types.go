package config

import (
	"fmt"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultEngineCommand = "pkgdb"

type Config struct {
	Engine          Engine `mapstructure:"engine" yaml:"engine" json:"engine"`
	Search          Search `mapstructure:"search" yaml:"search" json:"search"`
	GlobalManifest  string `mapstructure:"global_manifest" yaml:"global_manifest" json:"global_manifest,omitempty"`
	InlineManifests *bool  `mapstructure:"inline_manifests" yaml:"inline_manifests" json:"inline_manifests,omitempty"`
}

// Engine describes how the package database binary is invoked.
type Engine struct {
	Command              string   `mapstructure:"command" yaml:"command" json:"command,omitempty"`
	System               string   `mapstructure:"system" yaml:"system" json:"system,omitempty"`
	Quiet                *bool    `mapstructure:"quiet" yaml:"quiet" json:"quiet,omitempty"`
	ExperimentalFeatures []string `mapstructure:"experimental_features" yaml:"experimental_features" json:"experimental_features,omitempty"`
	Registries           []string `mapstructure:"registries" yaml:"registries" json:"registries,omitempty"`
	Options              []Option `mapstructure:"options" yaml:"options" json:"options,omitempty"`
}

type Search struct {
	// Strategy is "match" (regex over names and descriptions) or "match-name".
	Strategy string `mapstructure:"strategy" yaml:"strategy" json:"strategy,omitempty"`
}

// Option is a raw `--option name value` pair passed to the engine.
type Option struct {
	Name  string `mapstructure:"name" yaml:"name" json:"name"`
	Value string `mapstructure:"value" yaml:"value" json:"value"`
}

// UnmarshalYAML accepts either `name=value` or a {name, value} mapping.
func (o *Option) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		name, val, ok := strings.Cut(value.Value, "=")
		if !ok {
			return fmt.Errorf("line %d: option %q must be name=value", value.Line, value.Value)
		}
		o.Name = strings.TrimSpace(name)
		o.Value = strings.TrimSpace(val)
		return nil
	case yaml.MappingNode:
		var aux struct {
			Name  string `yaml:"name"`
			Value string `yaml:"value"`
		}
		if err := value.Decode(&aux); err != nil {
			return err
		}
		o.Name = aux.Name
		o.Value = aux.Value
		return nil
	default:
		return fmt.Errorf("invalid option node kind: %d", value.Kind)
	}
}

func (e Engine) CommandOrDefault() string {
	if e.Command == "" {
		return DefaultEngineCommand
	}
	return e.Command
}

// SystemOrDefault returns the configured system or the host's, in the
// `<arch>-<os>` form the engine uses (e.g. x86_64-linux, aarch64-darwin).
func (e Engine) SystemOrDefault() string {
	if e.System != "" {
		return e.System
	}
	return HostSystem()
}

func (e Engine) IsQuiet() bool { return e.Quiet != nil && *e.Quiet }

func (c Config) UseInlineManifests() bool { return c.InlineManifests != nil && *c.InlineManifests }

func HostSystem() string {
	arch := runtime.GOARCH
	switch arch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	case "386":
		arch = "i686"
	}
	return arch + "-" + runtime.GOOS
}

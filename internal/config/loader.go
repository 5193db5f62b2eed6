package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var current Config

func Get() Config { return current }

// LoadDefaultsAndFiles overlays every YAML file, in sorted order, on top of the
// defaults document. Scalars are overridden by later files; engine options are
// concatenated and must not repeat a name.
func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Config, error) {
	var base Config
	if len(defaultsYAML) > 0 {
		if err := yaml.Unmarshal(defaultsYAML, &base); err != nil {
			return Config{}, fmt.Errorf("defaults: %w", err)
		}
	}
	merged := base
	seen := map[string]string{}
	for _, o := range base.Engine.Options {
		seen[o.Name] = "defaults"
	}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		if err := checkOptionDuplicatesWithFiles(seen, part, f); err != nil {
			return Config{}, err
		}
		merged = mergeConfig(merged, part)
	}
	if err := ValidateNoDuplicates(merged); err != nil {
		return Config{}, err
	}
	current = merged
	return merged, nil
}

func ValidateNoDuplicates(cfg Config) error {
	s := map[string]struct{}{}
	for _, o := range cfg.Engine.Options {
		if _, ok := s[o.Name]; ok {
			return fmt.Errorf("duplicate engine option: %s", o.Name)
		}
		s[o.Name] = struct{}{}
	}
	return nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func mergeConfig(base, overlay Config) Config {
	out := base
	out.Engine = mergeEngine(base.Engine, overlay.Engine)
	if overlay.Search.Strategy != "" {
		out.Search.Strategy = overlay.Search.Strategy
	}
	if overlay.GlobalManifest != "" {
		out.GlobalManifest = overlay.GlobalManifest
	}
	if overlay.InlineManifests != nil {
		out.InlineManifests = overlay.InlineManifests
	}
	return out
}

func mergeEngine(a, b Engine) Engine {
	out := a
	if b.Command != "" {
		out.Command = b.Command
	}
	if b.System != "" {
		out.System = b.System
	}
	if b.Quiet != nil {
		out.Quiet = b.Quiet
	}
	if len(b.ExperimentalFeatures) > 0 {
		out.ExperimentalFeatures = b.ExperimentalFeatures
	}
	if len(b.Registries) > 0 {
		out.Registries = b.Registries
	}
	opts := make([]Option, 0, len(a.Options)+len(b.Options))
	opts = append(opts, a.Options...)
	opts = append(opts, b.Options...)
	out.Options = opts
	return out
}

func checkOptionDuplicatesWithFiles(seen map[string]string, part Config, file string) error {
	local := map[string]struct{}{}
	for _, o := range part.Engine.Options {
		if _, ok := local[o.Name]; ok {
			return fmt.Errorf("duplicate engine option '%s' found in %s", o.Name, file)
		}
		local[o.Name] = struct{}{}
	}
	for _, o := range part.Engine.Options {
		if prev, ok := seen[o.Name]; ok {
			return fmt.Errorf("duplicate engine option '%s' found in %s and %s", o.Name, prev, file)
		}
	}
	for _, o := range part.Engine.Options {
		seen[o.Name] = file
	}
	return nil
}

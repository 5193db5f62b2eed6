package pkgdb

import (
	"github.com/gopak/pkgq/internal/cmdline"
	"github.com/gopak/pkgq/internal/config"
)

// Quiet suppresses the engine's progress output.
type Quiet bool

var quietFlag = cmdline.Bool("--quiet", func(q Quiet) bool { return bool(q) })

func (q Quiet) Args() []string { return quietFlag.Tokens(q) }

// Refresh forces the engine to update its databases before searching.
type Refresh bool

var refreshFlag = cmdline.Bool("--refresh", func(r Refresh) bool { return bool(r) })

func (r Refresh) Args() []string { return refreshFlag.Tokens(r) }

// System is the platform results are evaluated for. Always passed.
type System string

var systemFlag = cmdline.Arg("--system", func(s System) string { return string(s) })

func (s System) Args() []string { return systemFlag.Tokens(s) }

// ExperimentalFeatures travel as one space separated value.
type ExperimentalFeatures []string

var featuresFlag = cmdline.List("--extra-experimental-features", func(f ExperimentalFeatures) []string { return f })

func (f ExperimentalFeatures) Args() []string { return featuresFlag.Tokens(f) }

// Registries restricts the search to the named registry inputs.
type Registries []string

var registriesFlag = cmdline.Args("--ga-registry-inputs", func(r Registries) []string { return r })

func (r Registries) Args() []string { return registriesFlag.Tokens(r) }

// Options are raw engine settings, each rendered as `--option <name> <value>`.
type Options []config.Option

var optionsFlag = cmdline.Custom(func(opts Options) []string {
	out := make([]string, 0, len(opts)*3)
	for _, o := range opts {
		out = append(out, "--option", o.Name, o.Value)
	}
	return out
})

func (o Options) Args() []string { return optionsFlag.Tokens(o) }

// Settings is the full set of engine flags, emitted in field order.
type Settings struct {
	Quiet                Quiet
	System               System
	ExperimentalFeatures ExperimentalFeatures
	Registries           Registries
	Options              Options
	Refresh              Refresh
}

func SettingsFromConfig(e config.Engine) Settings {
	return Settings{
		Quiet:                Quiet(e.IsQuiet()),
		System:               System(e.SystemOrDefault()),
		ExperimentalFeatures: ExperimentalFeatures(e.ExperimentalFeatures),
		Registries:           Registries(e.Registries),
		Options:              Options(e.Options),
	}
}

func (s Settings) Args() []string {
	return cmdline.Join(s.Quiet, s.System, s.ExperimentalFeatures, s.Registries, s.Options, s.Refresh)
}

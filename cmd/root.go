package cmd

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gopak/pkgq/internal/assets"
	"github.com/gopak/pkgq/internal/config"
	"github.com/gopak/pkgq/internal/logging"
	"github.com/gopak/pkgq/internal/manager"
	"github.com/gopak/pkgq/internal/manifest"
	"github.com/gopak/pkgq/internal/pkgdb"
	"github.com/gopak/pkgq/internal/search"
)

var (
	cfgFile      string
	cfgDir       string
	verbose      bool
	manifestPath string
	inline       bool
	version      = "dev"
)

var rootCmd = &cobra.Command{
	Use:           "pkgq",
	Short:         "Search and inspect packages available to an environment",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func ExecuteContext(ctx context.Context) error { return rootCmd.ExecuteContext(ctx) }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/pkgq); all *.yaml in that directory are merged")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed steps and commands")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "", "environment manifest (default "+manifest.DefaultManifestPath+")")
	rootCmd.PersistentFlags().BoolVar(&inline, "inline", false, "send the manifest to the engine as inline JSON and ignore the lockfile")
	rootCmd.Version = version
}

func configDir() string {
	if cfgFile != "" {
		return filepath.Dir(cfgFile)
	}
	dir, _ := os.UserConfigDir()
	if su := os.Getenv("SUDO_USER"); su != "" {
		if u, err := user.Lookup(su); err == nil && u.HomeDir != "" {
			dir = filepath.Join(u.HomeDir, ".config")
		}
	}
	return filepath.Join(dir, "pkgq")
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		low := strings.ToLower(e.Name())
		if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func initConfig() error {
	cfgDir = configDir()
	if err := assets.WriteDefaultConfigIfMissing(cfgDir); err != nil {
		return fmt.Errorf("config directory %s: %w", cfgDir, err)
	}
	files, err := yamlFiles(cfgDir)
	if err != nil {
		return err
	}
	cfg, err := config.LoadDefaultsAndFiles(assets.Defaults, files)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		return fmt.Errorf("schema error: %w", err)
	}
	logging.Init(cfgDir)
	logging.SetVerbose(verbose)
	return nil
}

func globalManifestPath(cfg config.Config) string {
	if cfg.GlobalManifest != "" {
		return cfg.GlobalManifest
	}
	return filepath.Join(cfgDir, manifest.GlobalManifestName)
}

// newManager wires the engine client and manifest sources from the loaded
// configuration.
func newManager(cmd *cobra.Command, refresh bool) (*manager.Manager, error) {
	cfg := config.Get()
	mode, err := search.ParseMatchMode(cfg.Search.Strategy)
	if err != nil {
		return nil, err
	}
	sources, err := manifest.Resolve(manifest.Options{
		ManifestPath:       manifestPath,
		GlobalManifestPath: globalManifestPath(cfg),
		Inline:             inline || cfg.UseInlineManifests(),
	})
	if err != nil {
		return nil, err
	}
	settings := pkgdb.SettingsFromConfig(cfg.Engine)
	settings.Refresh = pkgdb.Refresh(refresh)
	client := pkgdb.New(cfg.Engine.CommandOrDefault(), settings).WithStderr(cmd.ErrOrStderr())
	return manager.New(client, sources, mode).WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()), nil
}

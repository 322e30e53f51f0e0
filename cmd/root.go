package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/playdeck/content"
	"github.com/abhisek/playdeck/internal/catalog"
	"github.com/abhisek/playdeck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "playdeck",
	Short: "Tiny learning games for kids",
	Long:  "Playdeck is an arcade of short games about civics, money, health and the planet, played in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("content", "", "Directory of YAML games to use instead of the built-in ones (overrides PLAYDECK_CONTENT_DIR)")
	rootCmd.PersistentFlags().String("log", "", "Write debug logs to this file (overrides PLAYDECK_LOG)")
	rootCmd.PersistentFlags().Bool("sound", true, "Play sound cues (overrides PLAYDECK_SOUND)")
	rootCmd.PersistentFlags().Duration("delay", 0, "Pause after each answer, e.g. 800ms (overrides PLAYDECK_ADVANCE_DELAY)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig reads the environment, then applies any flags the user set.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentDir, _ = flags.GetString("content")
	}
	if flags.Changed("log") {
		cfg.LogPath, _ = flags.GetString("log")
	}
	if flags.Changed("sound") {
		cfg.Sound, _ = flags.GetBool("sound")
	}
	if flags.Changed("delay") {
		cfg.AdvanceDelay, _ = flags.GetDuration("delay")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// contentFS returns the configured content directory, or the built-in games.
func contentFS(dir string) fs.FS {
	if dir == "" {
		return content.FS()
	}
	return os.DirFS(dir)
}

// loadCatalog resolves the config and loads the catalog it points at.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	cat, err := catalog.Load(contentFS(cfg.ContentDir))
	if err != nil {
		return nil, cfg, fmt.Errorf("load games: %w", err)
	}
	return cat, cfg, nil
}

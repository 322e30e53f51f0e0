package cmd

import (
	"fmt"
	"io"
	"log"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/playdeck/internal/app"
	"github.com/abhisek/playdeck/internal/catalog"
	"github.com/abhisek/playdeck/internal/rewards"
	"github.com/abhisek/playdeck/internal/screens/play"
	"github.com/abhisek/playdeck/internal/sound"
)

// runApp loads the catalog, builds dependencies, and launches the TUI.
// startGame opens one game directly when non-empty.
func runApp(cmd *cobra.Command, startGame string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := catalog.Load(contentFS(cfg.ContentDir))
	if err != nil {
		return fmt.Errorf("load games: %w", err)
	}

	var player sound.Player = sound.Nop{}
	if cfg.Sound {
		player = sound.NewSpeaker()
	}
	defer player.Close()

	deps := play.Deps{
		Catalog:      cat,
		Wallet:       rewards.NewWallet(topicNames(cat)),
		Sound:        player,
		AdvanceDelay: cfg.AdvanceDelay,
	}
	return app.Run(app.Options{
		Deps:        deps,
		StartGame:   startGame,
		SkipWelcome: startGame != "",
	})
}

// setupLogging routes the standard logger to path, or discards it so log
// lines never land on the alternate screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "playdeck")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func topicNames(cat *catalog.Catalog) []string {
	var out []string
	for _, t := range cat.Topics() {
		out = append(out, string(t))
	}
	return out
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/playdeck/internal/catalog"
	"github.com/abhisek/playdeck/internal/game"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all games (optionally filtered by topic)",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		cat, _, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		var games []*game.Game
		if topic != "" {
			games = cat.ByTopic(catalog.Topic(topic))
			if len(games) == 0 {
				return fmt.Errorf("no games found for topic %q", topic)
			}
		} else {
			games = cat.Games()
		}

		// Header.
		fmt.Printf("%-28s  %-28s  %-16s  %-8s  %6s  %s\n",
			"ID", "Title", "Topic", "Kind", "Levels", "Next")
		fmt.Println(strings.Repeat("─", 110))

		for _, g := range games {
			title := g.Title
			if len(title) > 28 {
				title = title[:25] + "..."
			}
			next := "-"
			if n, ok := cat.Next(g.ID); ok {
				next = n.ID
			}
			fmt.Printf("%-28s  %-28s  %-16s  %-8s  %6d  %s\n",
				g.ID, title, catalog.Topic(g.Topic).DisplayName(), g.Kind, g.TotalLevels(), next)
		}

		fmt.Printf("\n%d games\n", len(games))
		return nil
	},
}

func init() {
	listCmd.Flags().String("topic", "", "Filter by topic (civics, entrepreneurship, health, sustainability)")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/playdeck/internal/game"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		fmt.Println("By topic:")
		questions := 0
		for _, t := range cat.Topics() {
			games := cat.ByTopic(t)
			n := 0
			for _, g := range games {
				n += g.TotalLevels()
			}
			questions += n
			fmt.Printf("  %s %-18s %2d games  %3d questions\n", t.Icon(), t.DisplayName(), len(games), n)
		}

		fmt.Println("\nBy kind:")
		kinds := make(map[game.Kind]int)
		for _, g := range cat.Games() {
			kinds[g.Kind]++
		}
		for _, k := range game.AllKinds() {
			fmt.Printf("  %s %-18s %2d games\n", k.Icon(), k.DisplayName(), kinds[k])
		}

		fmt.Printf("\n%d games, %d questions\n", cat.Len(), questions)
		return nil
	},
}

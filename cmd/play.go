package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play GAME_ID",
	Short: "Start a game directly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args[0])
	},
	ValidArgsFunction: completeGameIDs,
}

// completeGameIDs offers the IDs of the configured catalog for shell completion.
func completeGameIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cat, _, err := loadCatalog(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var ids []string
	for _, g := range cat.Games() {
		ids = append(ids, g.ID+"\t"+g.Title)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

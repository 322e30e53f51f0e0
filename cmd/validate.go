package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/playdeck/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate [DIR]",
	Short: "Check game files for schema and structure problems",
	Long: `Validate every YAML game in DIR (or the configured content directory,
or the built-in games) and report all problems found. Exits non-zero when
any game is broken.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		} else {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			dir = cfg.ContentDir
		}

		cat, err := catalog.Load(contentFS(dir))
		if err == nil {
			fmt.Printf("ok: %d games\n", cat.Len())
			return nil
		}

		problems := catalog.ContentErrors(err)
		if len(problems) == 0 {
			return err
		}
		for _, p := range problems {
			fmt.Println("✗", p.Error())
		}
		cmd.SilenceUsage = true
		return fmt.Errorf("%d problems found", len(problems))
	},
}

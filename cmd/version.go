package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abhisek/playdeck/content"
	"github.com/abhisek/playdeck/internal/catalog"
)

// version is set via -ldflags at build time. Module builds fall back to
// the version recorded in the binary.
var version = ""

func buildVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build and content format versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "playdeck", buildVersion())
		fmt.Fprintln(out, "content format", catalog.FormatVersion)

		cat, err := catalog.Load(content.FS())
		if err != nil {
			return fmt.Errorf("built-in games: %w", err)
		}
		fmt.Fprintf(out, "built-in games %d in %d topics\n", cat.Len(), len(cat.Topics()))
		return nil
	},
}

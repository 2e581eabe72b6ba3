package cmd

import (
	"github.com/omgnotthatguy/errtree/internal/inspect"
	"github.com/omgnotthatguy/errtree/pkg/context"
	"github.com/omgnotthatguy/errtree/pkg/log"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list PATTERN",
	Short: "list the error types found in a package pattern",
	Long: `list shows a flat inventory of every error type reachable from the
pattern, with its qualifying direct parents and whether it embeds more than
one error type
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt, err := inspect.FormatFromString(Output)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid format")
		}
		opts := []inspect.InspectOption{
			inspect.Dir(dir),
			inspect.BuildFlags(buildFlags),
			inspect.IncludeTests(includeTests),
			inspect.IncludeUnexported(includeUnexported),
		}
		if err := inspect.List(context.Context(), args[0],
			inspect.OutputFormat(fmt),
			inspect.WithInspectOptions(opts...)); err != nil {
			log.Fatal().Err(err).Msg("failed to list error types")
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

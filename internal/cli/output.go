package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-resolve/internal/app"
	"github.com/trebuchet-org/treb-resolve/internal/cli/render"
	"github.com/trebuchet-org/treb-resolve/internal/config"
)

// writeResult writes view in the structured format selected with --output,
// or calls table for the default human readable form
func writeResult(cmd *cobra.Command, a *app.App, view any, table func() error) error {
	if a.Config.Output == config.OutputTable {
		return table()
	}
	return render.Structured(cmd.OutOrStdout(), a.Config.Output, view)
}

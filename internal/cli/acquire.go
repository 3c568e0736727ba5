package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-resolve/internal/cli/render"
	"github.com/trebuchet-org/treb-resolve/internal/config"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// NewAcquireCmd creates the acquire command
func NewAcquireCmd() *cobra.Command {
	var flags deployFlags

	cmd := &cobra.Command{
		Use:   "acquire <artifact> [constructor args...]",
		Short: "Resolve the deployed instance, deploying one when none is recorded",
		Long: `Resolve the instance an artifact records for the connected network. When the
artifact has no entry for that network a new instance is deployed with the
given constructor arguments, as the deploy command would.`,
		Example: `  # Use the recorded MetaCoin or deploy one
  treb-resolve acquire MetaCoin 10000 -n local -y`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			libraries, err := config.ParseLibraries(flags.libraries)
			if err != nil {
				return err
			}

			result, err := app.AcquireContract.Run(cmd.Context(), usecase.AcquireContractParams{
				Artifact:  args[0],
				Args:      args[1:],
				Libraries: libraries,
				Record:    !flags.noRecord,
			})
			if err := stopProgress(cmd, app, err); err != nil {
				return err
			}

			return writeResult(cmd, app, render.NewContractView(result), func() error {
				return render.NewContractRenderer(cmd.OutOrStdout()).Render(result)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-resolve/internal/cli/render"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// NewDeployedCmd creates the deployed command
func NewDeployedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deployed <artifact>",
		Short: "Resolve the instance recorded for the connected network",
		Long: `Resolve the contract instance an artifact records for the network the node
serves. The artifact is a contract name, Source.sol:Name, or a path to an
artifact JSON file.`,
		Example: `  # Resolve MetaCoin on the local node
  treb-resolve deployed MetaCoin --rpc-url http://localhost:8545

  # Resolve on a network from treb.toml as JSON
  treb-resolve deployed src/Counter.sol:Counter -n sepolia -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ResolveDeployed.Run(cmd.Context(), usecase.ResolveDeployedParams{
				Artifact: args[0],
			})
			if err := stopProgress(cmd, app, err); err != nil {
				return err
			}

			return writeResult(cmd, app, render.NewContractView(result), func() error {
				return render.NewContractRenderer(cmd.OutOrStdout()).Render(result)
			})
		},
	}

	return cmd
}

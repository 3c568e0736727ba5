package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-resolve/internal/cli/render"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// NewNetworkCmd creates the network command
func NewNetworkCmd() *cobra.Command {
	var deployments bool

	cmd := &cobra.Command{
		Use:   "network",
		Short: "Show the network the node serves",
		Example: `  # Show the network identifier of a local node
  treb-resolve network --rpc-url http://localhost:8545

  # List artifacts recorded for sepolia
  treb-resolve network -n sepolia --deployments`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowNetwork.Run(cmd.Context(), usecase.ShowNetworkParams{
				Deployments: deployments,
			})
			if err := stopProgress(cmd, app, err); err != nil {
				return err
			}

			return writeResult(cmd, app, render.NewNetworkView(result), func() error {
				return render.NewNetworkRenderer(cmd.OutOrStdout()).Render(result)
			})
		},
	}

	cmd.Flags().BoolVar(&deployments, "deployments", false, "List artifacts with an entry for this network")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-resolve/internal/cli/render"
	"github.com/trebuchet-org/treb-resolve/internal/config"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// deployFlags are the transaction flags shared by deploy and acquire
type deployFlags struct {
	libraries []string
	noRecord  bool
}

func (f *deployFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.libraries, "library", "l", nil, "Link a library (Name=0xaddress), repeatable")
	cmd.Flags().String("from", "", "Sender account, unlocked on the node")
	cmd.Flags().Uint64("gas", 0, "Gas limit (estimated by the node when unset)")
	cmd.Flags().String("value", "", "Wei sent with the deployment")
	cmd.Flags().BoolVar(&f.noRecord, "no-record", false, "Do not write the new address into the artifact")
}

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		flags  deployFlags
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "deploy <artifact> [constructor args...]",
		Short: "Deploy a new instance of an artifact",
		Long: `Deploy a new instance of an artifact. Library placeholders in the bytecode
are linked from --library and the [libraries] table of treb.toml, constructor
arguments are encoded against the artifact's ABI, and the transaction is sent
with eth_sendTransaction.

Array arguments are given as JSON lists, e.g. '["0x..","0x.."]'.`,
		Example: `  # Deploy MetaCoin with an initial supply
  treb-resolve deploy MetaCoin 10000 --rpc-url http://localhost:8545

  # Link a library and skip confirmation
  treb-resolve deploy MetaCoin 10000 -l ConvertLib=0x1234... -y

  # Print the deployment transaction without sending it
  treb-resolve deploy MetaCoin 10000 --dry-run`,
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

			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{
				Artifact:  args[0],
				Args:      args[1:],
				Libraries: libraries,
				DryRun:    dryRun,
				Record:    !flags.noRecord,
			})
			if err := stopProgress(cmd, app, err); err != nil {
				return err
			}

			return writeResult(cmd, app, render.NewDeployView(result), func() error {
				return render.NewContractRenderer(cmd.OutOrStdout()).RenderDeploy(result)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Build the transaction without sending it")

	return cmd
}

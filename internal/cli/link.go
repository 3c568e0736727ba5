package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-resolve/internal/cli/render"
	"github.com/trebuchet-org/treb-resolve/internal/config"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// NewLinkCmd creates the link command
func NewLinkCmd() *cobra.Command {
	var libraries []string

	cmd := &cobra.Command{
		Use:   "link <artifact>",
		Short: "Print an artifact's bytecode with libraries linked",
		Long: `Splice library addresses into an artifact's bytecode and print the result.
Placeholders without a configured address are listed as unresolved.`,
		Example: `  treb-resolve link MetaCoin -l ConvertLib=0x1234...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			libs, err := config.ParseLibraries(libraries)
			if err != nil {
				return err
			}

			result, err := app.LinkBytecode.Run(cmd.Context(), usecase.LinkBytecodeParams{
				Artifact:  args[0],
				Libraries: libs,
			})
			if err != nil {
				return err
			}

			return writeResult(cmd, app, render.NewLinkView(result), func() error {
				return render.NewLinkRenderer(cmd.OutOrStdout()).Render(result)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&libraries, "library", "l", nil, "Link a library (Name=0xaddress), repeatable")

	return cmd
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-resolve/internal/app"
	"github.com/trebuchet-org/treb-resolve/internal/config"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var cancel context.CancelFunc

	rootCmd := &cobra.Command{
		Use:   "treb-resolve",
		Short: "Resolve and deploy compiled contracts on EVM networks",
		Long: `treb-resolve reads compiled contract artifacts (Truffle build/contracts or
Foundry out/) and either resolves the instance recorded for the connected
network or deploys a new one through the node's unlocked accounts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsApp(cmd.Name()) {
				return nil
			}

			v := config.SetupViper(config.FindProjectRoot(), cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}
			cmd.SetContext(ctx)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cancel != nil {
				cancel()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network from treb.toml to connect to")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC endpoint (http, ws or ipc), overrides --network")
	rootCmd.PersistentFlags().String("artifacts", "", "Directory holding compiled artifacts")
	rootCmd.PersistentFlags().StringP("output", "o", config.OutputTable, "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().Duration("timeout", 5*time.Minute, "Overall timeout for the command")
	rootCmd.PersistentFlags().Duration("poll-interval", time.Second, "Interval between receipt polls")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "inspect",
		Title: "Inspection Commands",
	})

	for _, cmd := range []*cobra.Command{NewDeployedCmd(), NewDeployCmd(), NewAcquireCmd()} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{NewLinkCmd(), NewNetworkCmd()} {
		cmd.GroupID = "inspect"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// needsApp reports whether a command runs against a configured project
func needsApp(cmdName string) bool {
	switch cmdName {
	case "version", "help", "completion", "__complete":
		return false
	}
	return true
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// stopProgress ends any running spinner when a use case fails
func stopProgress(cmd *cobra.Command, a *app.App, err error) error {
	if err != nil {
		a.Progress.OnProgress(cmd.Context(), usecase.ProgressEvent{Stage: usecase.StageCompleted})
	}
	return err
}

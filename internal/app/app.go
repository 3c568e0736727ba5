package app

import (
	"github.com/trebuchet-org/treb-resolve/internal/domain/config"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Progress usecase.ProgressSink

	// Use cases
	ResolveDeployed *usecase.ResolveDeployed
	DeployContract  *usecase.DeployContract
	AcquireContract *usecase.AcquireContract
	LinkBytecode    *usecase.LinkBytecode
	ShowNetwork     *usecase.ShowNetwork
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	progress usecase.ProgressSink,
	resolveDeployed *usecase.ResolveDeployed,
	deployContract *usecase.DeployContract,
	acquireContract *usecase.AcquireContract,
	linkBytecode *usecase.LinkBytecode,
	showNetwork *usecase.ShowNetwork,
) (*App, error) {
	return &App{
		Config:          cfg,
		Progress:        progress,
		ResolveDeployed: resolveDeployed,
		DeployContract:  deployContract,
		AcquireContract: acquireContract,
		LinkBytecode:    linkBytecode,
		ShowNetwork:     showNetwork,
	}, nil
}

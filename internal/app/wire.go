//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-resolve/internal/adapters"
	"github.com/trebuchet-org/treb-resolve/internal/config"
	"github.com/trebuchet-org/treb-resolve/internal/logging"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewResolveDeployed,
		usecase.NewDeployContract,
		usecase.NewAcquireContract,
		usecase.NewLinkBytecode,
		usecase.NewShowNetwork,

		// App
		NewApp,
	)
	return nil, nil
}

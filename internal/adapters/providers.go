package adapters

import (
	"log/slog"
	"os"

	"github.com/google/wire"
	"github.com/trebuchet-org/treb-resolve/internal/adapters/abiargs"
	"github.com/trebuchet-org/treb-resolve/internal/adapters/artifacts"
	"github.com/trebuchet-org/treb-resolve/internal/adapters/ethrpc"
	"github.com/trebuchet-org/treb-resolve/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-resolve/internal/adapters/progress"
	"github.com/trebuchet-org/treb-resolve/internal/config"
	domainconfig "github.com/trebuchet-org/treb-resolve/internal/domain/config"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// ProvideArtifactRepository provides the artifact repository rooted at the
// configured artifacts directory
func ProvideArtifactRepository(cfg *domainconfig.RuntimeConfig, log *slog.Logger) *artifacts.Repository {
	return artifacts.NewRepository(cfg.ArtifactsDir, log)
}

// ProvideProgressSink shows spinners on stderr for interactive table output
// and stays silent otherwise
func ProvideProgressSink(cfg *domainconfig.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.Output != config.OutputTable {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerProgressReporter(os.Stderr, cfg.Debug)
}

// ArtifactSet provides filesystem-based artifact access
var ArtifactSet = wire.NewSet(
	ProvideArtifactRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*artifacts.Repository)),
)

// ChainSet provides JSON-RPC node access
var ChainSet = wire.NewSet(
	ethrpc.NewConnector,
	wire.Bind(new(usecase.ChainConnector), new(*ethrpc.Connector)),

	abiargs.NewParser,
	wire.Bind(new(usecase.ArgumentParser), new(*abiargs.Parser)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ArtifactSelector), new(*interactive.SelectorAdapter)),

	interactive.NewConfirmAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideProgressSink,

	ArtifactSet,
	ChainSet,
	InteractiveSet,
)

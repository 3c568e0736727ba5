package config

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	ArtifactsDir string

	// Connection settings
	Network  string // name from treb.toml, empty when --rpc-url is used directly
	RPCURL   string
	Networks map[string]NetworkConfig

	// Transaction settings
	From      *common.Address
	Gas       uint64
	Value     *big.Int
	Libraries contract.Libraries

	// Execution settings
	PollInterval   time.Duration
	Timeout        time.Duration
	Debug          bool
	NonInteractive bool
	Yes            bool
	Output         string // table, json or yaml
}

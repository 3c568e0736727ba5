package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-resolve/internal/domain"
	"github.com/trebuchet-org/treb-resolve/internal/domain/config"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// Output formats accepted by --output
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// defaultArtifactDirs are probed in order when no artifacts directory is set
var defaultArtifactDirs = []string{
	filepath.Join("build", "contracts"),
	"out",
}

// projectMarkers identify a project root
var projectMarkers = []string{
	ProjectFileName,
	"truffle-config.js",
	"truffle.js",
	"foundry.toml",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	file, err := loadProjectFile(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Networks:       file.Networks,
		Gas:            v.GetUint64("gas"),
		PollInterval:   v.GetDuration("poll_interval"),
		Timeout:        v.GetDuration("timeout"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Yes:            v.GetBool("yes"),
		Output:         strings.ToLower(v.GetString("output")),
	}

	switch cfg.Output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q, expected table, json or yaml", cfg.Output)
	}

	cfg.ArtifactsDir = resolveArtifactsDir(projectRoot, v.GetString("artifacts"), file.Artifacts)

	from := file.From
	if err := resolveEndpoint(cfg, v, file, &from); err != nil {
		return nil, err
	}
	if flagFrom := v.GetString("from"); flagFrom != "" {
		from = flagFrom
	}
	if from != "" {
		address, err := parseAddress(from)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		cfg.From = &address
	}

	if value := v.GetString("value"); value != "" {
		wei, ok := math.ParseBig256(value)
		if !ok || wei.Sign() < 0 {
			return nil, fmt.Errorf("invalid value %q, expected an amount of wei", value)
		}
		cfg.Value = wei
	}

	cfg.Libraries = make(contract.Libraries, len(file.Libraries))
	for name, addr := range file.Libraries {
		address, err := parseAddress(addr)
		if err != nil {
			return nil, fmt.Errorf("library %s in %s: %w", name, ProjectFileName, err)
		}
		cfg.Libraries[name] = address
	}

	return cfg, nil
}

// resolveEndpoint picks the RPC endpoint. --rpc-url wins over --network.
func resolveEndpoint(cfg *config.RuntimeConfig, v *viper.Viper, file *config.ProjectFile, from *string) error {
	if rpcURL := v.GetString("rpc_url"); rpcURL != "" {
		cfg.RPCURL = rpcURL
		return nil
	}

	name := v.GetString("network")
	if name == "" {
		return nil
	}

	network, ok := file.Networks[name]
	if !ok {
		return fmt.Errorf("%w: %s (add [networks.%s] with rpc_url = \"${%s}\" to %s)",
			domain.ErrNetworkNotConfigured, name, name, GenerateEnvVarName(name), ProjectFileName)
	}

	cfg.Network = name
	cfg.RPCURL = network.RPCURL
	if network.From != "" {
		*from = network.From
	}
	return nil
}

func resolveArtifactsDir(projectRoot string, candidates ...string) string {
	for _, dir := range candidates {
		if dir != "" {
			return absJoin(projectRoot, dir)
		}
	}
	for _, dir := range defaultArtifactDirs {
		path := filepath.Join(projectRoot, dir)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return filepath.Join(projectRoot, defaultArtifactDirs[0])
}

func absJoin(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// FindProjectRoot walks up from the current directory to the first directory
// holding a project marker, falling back to the current directory.
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	for dir := cwd; ; {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("TREB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "5m")
	v.SetDefault("poll_interval", "1s")
	v.SetDefault("output", OutputTable)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

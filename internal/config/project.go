package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/treb-resolve/internal/domain/config"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// ProjectFileName is the per-project configuration file
const ProjectFileName = "treb.toml"

// loadProjectFile loads .env files and parses treb.toml, expanding ${VAR}
// references. A missing treb.toml yields an empty configuration.
func loadProjectFile(projectRoot string) (*config.ProjectFile, error) {
	// Load .env files first for variable expansion
	for _, envFile := range []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	} {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	file := &config.ProjectFile{}
	path := filepath.Join(projectRoot, ProjectFileName)
	if _, err := toml.DecodeFile(path, file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return file, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	file.Artifacts = os.ExpandEnv(file.Artifacts)
	file.From = os.ExpandEnv(file.From)
	for name, network := range file.Networks {
		raw := network.RPCURL
		network.RPCURL = os.ExpandEnv(raw)
		network.From = os.ExpandEnv(network.From)
		if network.RPCURL == "" {
			if envVar, ok := DetectEnvVar(raw); ok {
				return nil, fmt.Errorf("network %s: rpc_url references ${%s}, which is not set", name, envVar)
			}
		}
		file.Networks[name] = network
	}
	for name, addr := range file.Libraries {
		file.Libraries[name] = os.ExpandEnv(addr)
	}

	return file, nil
}

// ParseLibrary parses a "Name=0xaddress" library link
func ParseLibrary(link string) (string, common.Address, error) {
	name, addr, ok := strings.Cut(link, "=")
	if !ok || name == "" {
		return "", common.Address{}, fmt.Errorf("invalid library %q, expected Name=0xaddress", link)
	}
	address, err := parseAddress(addr)
	if err != nil {
		return "", common.Address{}, fmt.Errorf("library %s: %w", name, err)
	}
	return name, address, nil
}

// ParseLibraries parses a list of "Name=0xaddress" library links
func ParseLibraries(links []string) (contract.Libraries, error) {
	libs := make(contract.Libraries, len(links))
	for _, link := range links {
		name, address, err := ParseLibrary(link)
		if err != nil {
			return nil, err
		}
		libs[name] = address
	}
	return libs, nil
}

func parseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

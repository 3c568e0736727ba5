package config

// ProjectFile represents treb.toml
type ProjectFile struct {
	Artifacts string                   `toml:"artifacts,omitempty"`
	From      string                   `toml:"from,omitempty"`
	Networks  map[string]NetworkConfig `toml:"networks"`
	Libraries map[string]string        `toml:"libraries"`
}

// NetworkConfig represents a [networks.<name>] section in treb.toml
type NetworkConfig struct {
	RPCURL string `toml:"rpc_url"`
	From   string `toml:"from,omitempty"`
}

package artifacts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// artifactFile covers both the Truffle layout (bytecode as a string, networks
// table) and the Foundry layout (bytecode.object, no networks).
type artifactFile struct {
	ContractName string                  `json:"contractName"`
	ABI          json.RawMessage         `json:"abi"`
	Bytecode     json.RawMessage         `json:"bytecode"`
	Networks     map[string]networkEntry `json:"networks"`
}

type networkEntry struct {
	Address         string `json:"address"`
	TransactionHash string `json:"transactionHash,omitempty"`
}

type bytecodeObject struct {
	Object string `json:"object"`
}

// Parse decodes an artifact JSON document. path is used to name contracts
// whose artifact carries no contractName.
func Parse(path string, data []byte) (*contract.Artifact, error) {
	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	name := file.ContractName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	parsedABI, err := parseABI(file.ABI)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", name, err)
	}

	bytecode, err := parseBytecode(file.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bytecode of %s: %w", name, err)
	}

	networks := make(contract.Networks, len(file.Networks))
	for id, entry := range file.Networks {
		if !common.IsHexAddress(entry.Address) {
			return nil, fmt.Errorf("artifact %s: network %s has invalid address %q", name, id, entry.Address)
		}
		networks[id] = contract.Network{
			Address:         common.HexToAddress(entry.Address),
			TransactionHash: common.HexToHash(entry.TransactionHash),
		}
	}

	return &contract.Artifact{
		ContractName: name,
		ABI:          parsedABI,
		Bytecode:     bytecode,
		Networks:     networks,
	}, nil
}

func parseABI(raw json.RawMessage) (abi.ABI, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return abi.ABI{}, nil
	}
	return abi.JSON(bytes.NewReader(raw))
}

func parseBytecode(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	if raw[0] == '"' {
		var code string
		if err := json.Unmarshal(raw, &code); err != nil {
			return "", err
		}
		return code, nil
	}

	var obj bytecodeObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", err
	}
	return obj.Object, nil
}

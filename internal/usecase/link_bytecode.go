package usecase

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-resolve/internal/domain/config"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// LinkBytecodeParams contains parameters for linking an artifact's bytecode
type LinkBytecodeParams struct {
	Artifact  string
	Libraries contract.Libraries
}

// UnresolvedLibrary is a placeholder left in linked bytecode
type UnresolvedLibrary struct {
	Placeholder string
	// Name is empty for hashed placeholders
	Name string
}

// LinkBytecodeResult contains the linked bytecode of an artifact
type LinkBytecodeResult struct {
	Contract     string
	ArtifactPath string
	Bytecode     string
	Libraries    contract.Libraries
	Unresolved   []UnresolvedLibrary
}

// LinkBytecode splices library addresses into an artifact's bytecode
type LinkBytecode struct {
	cfg      *config.RuntimeConfig
	repo     ArtifactRepository
	selector ArtifactSelector
}

// NewLinkBytecode creates a new LinkBytecode use case
func NewLinkBytecode(cfg *config.RuntimeConfig, repo ArtifactRepository, selector ArtifactSelector) *LinkBytecode {
	return &LinkBytecode{
		cfg:      cfg,
		repo:     repo,
		selector: selector,
	}
}

// Run executes the use case. Remaining placeholders are reported, not
// treated as an error.
func (uc *LinkBytecode) Run(ctx context.Context, params LinkBytecodeParams) (*LinkBytecodeResult, error) {
	path, artifact, err := loadArtifact(ctx, uc.repo, uc.selector, params.Artifact)
	if err != nil {
		return nil, err
	}

	libs := lo.Assign(uc.cfg.Libraries, params.Libraries)
	linked := contract.Link(artifact.Bytecode, libs)

	return &LinkBytecodeResult{
		Contract:     artifact.ContractName,
		ArtifactPath: path,
		Bytecode:     linked,
		Libraries:    libs,
		Unresolved:   unresolvedLibraries(linked),
	}, nil
}

// unresolvedLibraries lists each distinct placeholder in code in order of
// first appearance
func unresolvedLibraries(code string) []UnresolvedLibrary {
	var unresolved []UnresolvedLibrary
	for {
		placeholder, ok := contract.FindPlaceholder(code)
		if !ok {
			return unresolved
		}
		name, _ := contract.PlaceholderName(placeholder)
		unresolved = append(unresolved, UnresolvedLibrary{Placeholder: placeholder, Name: name})
		code = strings.ReplaceAll(code, placeholder, "")
	}
}

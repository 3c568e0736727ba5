package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-resolve/internal/domain"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// ContractResult describes a contract instance resolved or created by a use case
type ContractResult struct {
	Contract        string
	ArtifactPath    string
	NetworkID       string
	Endpoint        string
	Address         common.Address
	TransactionHash common.Hash
	// Deployed is set when the instance was created by this run
	Deployed bool
	// Recorded is set when the address was written back into the artifact
	Recorded bool
}

// loadArtifact resolves ref to an artifact file, asking the selector to pick
// one when the name is ambiguous.
func loadArtifact(ctx context.Context, repo ArtifactRepository, selector ArtifactSelector, ref string) (string, *contract.Artifact, error) {
	path, err := repo.Resolve(ctx, ref)

	var ambiguous domain.AmbiguousArtifactErr
	if errors.As(err, &ambiguous) && selector != nil {
		path, err = selector.SelectArtifact(ctx, ambiguous.Paths, fmt.Sprintf("Multiple artifacts match %s", ref))
		if err != nil {
			return "", nil, fmt.Errorf("%w\n%w", ambiguous, err)
		}
	}
	if err != nil {
		return "", nil, err
	}

	artifact, err := repo.Load(ctx, path)
	if err != nil {
		return "", nil, err
	}
	return path, artifact, nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// ResolveDeployedParams contains parameters for resolving a deployed contract
type ResolveDeployedParams struct {
	// Artifact is a contract name, Source.sol:Name or a path to an artifact file
	Artifact string
}

// ResolveDeployed looks up the address an artifact records for the network
// the node is connected to.
type ResolveDeployed struct {
	repo      ArtifactRepository
	selector  ArtifactSelector
	connector ChainConnector
	progress  ProgressSink
	log       *slog.Logger
}

// NewResolveDeployed creates a new ResolveDeployed use case
func NewResolveDeployed(
	repo ArtifactRepository,
	selector ArtifactSelector,
	connector ChainConnector,
	progress ProgressSink,
	log *slog.Logger,
) *ResolveDeployed {
	return &ResolveDeployed{
		repo:      repo,
		selector:  selector,
		connector: connector,
		progress:  progress,
		log:       log,
	}
}

// Run executes the use case. A missing network entry is reported as a
// contract.Error of kind KindNotFound.
func (uc *ResolveDeployed) Run(ctx context.Context, params ResolveDeployedParams) (*ContractResult, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageLoading,
		Message: fmt.Sprintf("Loading artifact %s", params.Artifact),
		Spinner: true,
	})

	path, artifact, err := loadArtifact(ctx, uc.repo, uc.selector, params.Artifact)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageConnecting,
		Message: fmt.Sprintf("Connecting to %s", uc.connector.Endpoint()),
		Spinner: true,
	})

	conn, err := uc.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageResolving,
		Message: fmt.Sprintf("Resolving %s", artifact.ContractName),
		Spinner: true,
	})

	result, err := uc.resolve(ctx, conn, path, artifact)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	return result, nil
}

func (uc *ResolveDeployed) resolve(ctx context.Context, conn ChainConnection, path string, artifact *contract.Artifact) (*ContractResult, error) {
	resolver := contract.Deployed(ctx, conn, *artifact)
	inst, err := resolver.Wait(ctx)
	if err != nil {
		if ctx.Err() != nil {
			resolver.Cancel()
		}
		uc.log.Debug("deployed lookup failed", "artifact", artifact.ContractName, "error", err)
		return nil, err
	}
	networkID := inst.NetworkID()

	uc.log.Debug("resolved deployed instance",
		"artifact", artifact.ContractName, "network", networkID, "address", inst.Address().Hex())

	return &ContractResult{
		Contract:        artifact.ContractName,
		ArtifactPath:    path,
		NetworkID:       networkID,
		Endpoint:        uc.connector.Endpoint(),
		Address:         inst.Address(),
		TransactionHash: inst.TransactionHash(),
	}, nil
}

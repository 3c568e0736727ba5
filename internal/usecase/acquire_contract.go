package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// AcquireContractParams contains parameters for acquiring a contract
type AcquireContractParams struct {
	Artifact  string
	Args      []string
	Libraries contract.Libraries
	// Record writes a freshly deployed address into the artifact
	Record bool
}

// AcquireContract resolves the deployed instance of an artifact and deploys a
// new one when the artifact has no entry for the connected network.
type AcquireContract struct {
	repo      ArtifactRepository
	selector  ArtifactSelector
	connector ChainConnector
	resolve   *ResolveDeployed
	deploy    *DeployContract
	progress  ProgressSink
	log       *slog.Logger
}

// NewAcquireContract creates a new AcquireContract use case
func NewAcquireContract(
	repo ArtifactRepository,
	selector ArtifactSelector,
	connector ChainConnector,
	resolve *ResolveDeployed,
	deploy *DeployContract,
	progress ProgressSink,
	log *slog.Logger,
) *AcquireContract {
	return &AcquireContract{
		repo:      repo,
		selector:  selector,
		connector: connector,
		resolve:   resolve,
		deploy:    deploy,
		progress:  progress,
		log:       log,
	}
}

// Run executes the use case
func (uc *AcquireContract) Run(ctx context.Context, params AcquireContractParams) (*ContractResult, error) {
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
		Stage:   StageResolving,
		Message: fmt.Sprintf("Resolving %s on %s", artifact.ContractName, uc.connector.Endpoint()),
		Spinner: true,
	})

	conn, err := uc.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	result, err := uc.resolve.resolve(ctx, conn, path, artifact)
	conn.Close()

	if err == nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return result, nil
	}
	if !contract.IsNotFound(err) {
		return nil, err
	}

	uc.log.Debug("no recorded deployment, deploying", "artifact", artifact.ContractName, "error", err)
	uc.progress.Info(fmt.Sprintf("%s is not deployed on this network, deploying a new instance", artifact.ContractName))

	deployed, err := uc.deploy.deploy(ctx, path, artifact, DeployContractParams{
		Artifact:  path,
		Args:      params.Args,
		Libraries: params.Libraries,
		Record:    params.Record,
	})
	if err != nil {
		return nil, err
	}
	return &deployed.ContractResult, nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-resolve/internal/domain"
	"github.com/trebuchet-org/treb-resolve/internal/domain/config"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// DeployContractParams contains parameters for deploying a contract
type DeployContractParams struct {
	// Artifact is a contract name, Source.sol:Name or a path to an artifact file
	Artifact string
	// Args are the constructor arguments in their command line form
	Args []string
	// Libraries are merged over the libraries configured in treb.toml
	Libraries contract.Libraries
	// DryRun builds the transaction without connecting to a node
	DryRun bool
	// Record writes the created address into the artifact's networks table
	Record bool
}

// DeployContractResult contains the result of a deployment
type DeployContractResult struct {
	ContractResult
	DryRun  bool
	Request contract.TransactionRequest
}

// DeployContract publishes an artifact's bytecode and waits for the created
// instance.
type DeployContract struct {
	cfg       *config.RuntimeConfig
	repo      ArtifactRepository
	selector  ArtifactSelector
	connector ChainConnector
	parser    ArgumentParser
	confirmer Confirmer
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	repo ArtifactRepository,
	selector ArtifactSelector,
	connector ChainConnector,
	parser ArgumentParser,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		cfg:       cfg,
		repo:      repo,
		selector:  selector,
		connector: connector,
		parser:    parser,
		confirmer: confirmer,
		progress:  progress,
		log:       log,
	}
}

// Run executes the use case
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageLoading,
		Message: fmt.Sprintf("Loading artifact %s", params.Artifact),
		Spinner: true,
	})

	path, artifact, err := loadArtifact(ctx, uc.repo, uc.selector, params.Artifact)
	if err != nil {
		return nil, err
	}
	return uc.deploy(ctx, path, artifact, params)
}

func (uc *DeployContract) deploy(ctx context.Context, path string, artifact *contract.Artifact, params DeployContractParams) (*DeployContractResult, error) {
	args, err := uc.parser.Parse(artifact.ABI.Constructor.Inputs, params.Args)
	if err != nil {
		return nil, fmt.Errorf("invalid constructor arguments for %s: %w", artifact.ContractName, err)
	}

	// Linking and encoding problems surface before anything is sent.
	request, err := uc.request(artifact, args, params)
	if err != nil {
		return nil, err
	}

	if params.DryRun {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return &DeployContractResult{
			ContractResult: ContractResult{
				Contract:     artifact.ContractName,
				ArtifactPath: path,
				Endpoint:     uc.connector.Endpoint(),
			},
			DryRun:  true,
			Request: request,
		}, nil
	}

	if !uc.cfg.Yes {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageSubmitting})
		ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Deploy %s to %s", artifact.ContractName, uc.connector.Endpoint()))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrAborted
		}
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

	network := contract.RequestNetworkID(ctx, conn)
	defer network.Cancel()

	builder, err := uc.builder(conn, artifact, args, params)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageSubmitting,
		Message: fmt.Sprintf("Submitting %s deployment", artifact.ContractName),
		Spinner: true,
	})

	resolver, err := builder.Send(ctx)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageMining,
		Message: fmt.Sprintf("Waiting for %s to be mined", artifact.ContractName),
		Spinner: true,
	})

	inst, err := resolver.Wait(ctx)
	if err != nil {
		if hash, ok := resolver.TransactionHash(); ok {
			uc.log.Debug("deployment failed after submission", "tx", hash.Hex(), "error", err)
		}
		return nil, err
	}

	networkID, err := network.Wait(ctx)
	if err != nil {
		return nil, err
	}

	uc.log.Debug("contract deployed",
		"artifact", artifact.ContractName, "network", networkID,
		"address", inst.Address().Hex(), "tx", inst.TransactionHash().Hex())

	result := &DeployContractResult{
		ContractResult: ContractResult{
			Contract:        artifact.ContractName,
			ArtifactPath:    path,
			NetworkID:       networkID,
			Endpoint:        uc.connector.Endpoint(),
			Address:         inst.Address(),
			TransactionHash: inst.TransactionHash(),
			Deployed:        true,
		},
		Request: request,
	}

	if params.Record {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageRecording,
			Message: fmt.Sprintf("Recording %s in %s", artifact.ContractName, path),
			Spinner: true,
		})
		err := uc.repo.RecordDeployment(ctx, path, networkID, contract.Network{
			Address:         inst.Address(),
			TransactionHash: inst.TransactionHash(),
		})
		if err != nil {
			uc.progress.Error(fmt.Sprintf("Warning: failed to record deployment: %v", err))
		} else {
			result.Recorded = true
		}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	return result, nil
}

func (uc *DeployContract) request(artifact *contract.Artifact, args []any, params DeployContractParams) (contract.TransactionRequest, error) {
	builder, err := uc.builder(nil, artifact, args, params)
	if err != nil {
		return contract.TransactionRequest{}, err
	}
	return builder.Request()
}

func (uc *DeployContract) builder(t contract.Transport, artifact *contract.Artifact, args []any, params DeployContractParams) (*contract.DeployBuilder, error) {
	builder, err := contract.NewDeployBuilder(t, *artifact, args...)
	if err != nil {
		return nil, err
	}

	builder.Libraries(lo.Assign(uc.cfg.Libraries, params.Libraries))
	if uc.cfg.From != nil {
		builder.From(*uc.cfg.From)
	}
	if uc.cfg.Value != nil {
		builder.Value(uc.cfg.Value)
	}
	if uc.cfg.Gas != 0 {
		builder.Gas(uc.cfg.Gas)
	}
	return builder, nil
}

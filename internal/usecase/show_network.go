package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-resolve/internal/domain/config"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// ShowNetworkParams contains parameters for showing the connected network
type ShowNetworkParams struct {
	// Deployments also lists artifacts with an entry for the network
	Deployments bool
}

// ShowNetworkResult contains the identity of the connected network
type ShowNetworkResult struct {
	Network     string
	Endpoint    string
	NetworkID   string
	Configured  []string
	Deployments []NetworkDeployment
}

// NetworkDeployment is an artifact entry for the connected network
type NetworkDeployment struct {
	Contract string
	contract.Network
}

// ShowNetwork reports the identifier of the network the node serves
type ShowNetwork struct {
	cfg       *config.RuntimeConfig
	repo      ArtifactRepository
	connector ChainConnector
	progress  ProgressSink
}

// NewShowNetwork creates a new ShowNetwork use case
func NewShowNetwork(cfg *config.RuntimeConfig, repo ArtifactRepository, connector ChainConnector, progress ProgressSink) *ShowNetwork {
	return &ShowNetwork{
		cfg:       cfg,
		repo:      repo,
		connector: connector,
		progress:  progress,
	}
}

// Run executes the use case
func (uc *ShowNetwork) Run(ctx context.Context, params ShowNetworkParams) (*ShowNetworkResult, error) {
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

	networkID, err := contract.RequestNetworkID(ctx, conn).Wait(ctx)
	if err != nil {
		return nil, err
	}

	configured := lo.Keys(uc.cfg.Networks)
	sort.Strings(configured)

	result := &ShowNetworkResult{
		Network:    uc.cfg.Network,
		Endpoint:   uc.connector.Endpoint(),
		NetworkID:  networkID,
		Configured: configured,
	}

	if params.Deployments {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageLoading,
			Message: "Scanning artifacts",
			Spinner: true,
		})
		result.Deployments, err = uc.deployments(ctx, networkID)
		if err != nil {
			return nil, err
		}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	return result, nil
}

func (uc *ShowNetwork) deployments(ctx context.Context, networkID string) ([]NetworkDeployment, error) {
	names, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	deployments := []NetworkDeployment{}
	for _, name := range names {
		artifact, err := uc.repo.Load(ctx, name)
		if err != nil {
			// ambiguous names and unreadable files are skipped
			continue
		}
		if network, ok := artifact.Networks[networkID]; ok {
			deployments = append(deployments, NetworkDeployment{Contract: artifact.ContractName, Network: network})
		}
	}
	return deployments, nil
}

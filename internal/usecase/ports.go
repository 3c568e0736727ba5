package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// ArtifactRepository provides access to compiled contract artifacts
type ArtifactRepository interface {
	Load(ctx context.Context, ref string) (*contract.Artifact, error)
	Resolve(ctx context.Context, ref string) (string, error)
	List(ctx context.Context) ([]string, error)
	RecordDeployment(ctx context.Context, ref string, networkID string, network contract.Network) error
}

// ChainConnection is an open connection to a node
type ChainConnection interface {
	contract.Transport
	Close()
}

// ChainConnector opens connections to the configured node
type ChainConnector interface {
	Connect(ctx context.Context) (ChainConnection, error)
	// Endpoint describes the node Connect dials, for display
	Endpoint() string
}

// ArgumentParser converts command line strings into constructor arguments
type ArgumentParser interface {
	Parse(inputs abi.Arguments, raw []string) ([]any, error)
}

// ArtifactSelector handles interactive disambiguation of artifacts
type ArtifactSelector interface {
	SelectArtifact(ctx context.Context, paths []string, prompt string) (string, error)
}

// Confirmer asks the user to approve an action
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressStage identifies a step of a resolution or deployment
type ProgressStage string

const (
	StageLoading    ProgressStage = "loading"
	StageConnecting ProgressStage = "connecting"
	StageResolving  ProgressStage = "resolving"
	StageSubmitting ProgressStage = "submitting"
	StageMining     ProgressStage = "mining"
	StageRecording  ProgressStage = "recording"
	StageCompleted  ProgressStage = "completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ProgressStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}


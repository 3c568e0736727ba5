package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// ContractView is the structured form of a contract result
type ContractView struct {
	Contract        string `json:"contract" yaml:"contract"`
	Artifact        string `json:"artifact" yaml:"artifact"`
	Network         string `json:"network,omitempty" yaml:"network,omitempty"`
	Endpoint        string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Address         string `json:"address,omitempty" yaml:"address,omitempty"`
	TransactionHash string `json:"transactionHash,omitempty" yaml:"transactionHash,omitempty"`
	Deployed        bool   `json:"deployed" yaml:"deployed"`
	Recorded        bool   `json:"recorded" yaml:"recorded"`
}

// DeployView is the structured form of a deployment result
type DeployView struct {
	ContractView `yaml:",inline"`
	DryRun       bool   `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
	From         string `json:"from,omitempty" yaml:"from,omitempty"`
	Value        string `json:"value,omitempty" yaml:"value,omitempty"`
	Gas          uint64 `json:"gas,omitempty" yaml:"gas,omitempty"`
	Data         string `json:"data,omitempty" yaml:"data,omitempty"`
}

// NewContractView converts a contract result
func NewContractView(result *usecase.ContractResult) ContractView {
	view := ContractView{
		Contract: result.Contract,
		Artifact: result.ArtifactPath,
		Network:  result.NetworkID,
		Endpoint: result.Endpoint,
		Deployed: result.Deployed,
		Recorded: result.Recorded,
	}
	if result.Address != (common.Address{}) {
		view.Address = result.Address.Hex()
	}
	if result.TransactionHash != (common.Hash{}) {
		view.TransactionHash = result.TransactionHash.Hex()
	}
	return view
}

// NewDeployView converts a deployment result
func NewDeployView(result *usecase.DeployContractResult) DeployView {
	view := DeployView{
		ContractView: NewContractView(&result.ContractResult),
		DryRun:       result.DryRun,
		Gas:          result.Request.Gas,
	}
	if result.Request.From != nil {
		view.From = result.Request.From.Hex()
	}
	if result.Request.Value != nil {
		view.Value = result.Request.Value.String()
	}
	if result.DryRun {
		view.Data = hexutil.Encode(result.Request.Data)
	}
	return view
}

// ContractRenderer renders resolved and deployed contract instances
type ContractRenderer struct {
	out io.Writer
}

// NewContractRenderer creates a new contract renderer
func NewContractRenderer(out io.Writer) *ContractRenderer {
	return &ContractRenderer{out: out}
}

// Render renders a resolved or acquired instance
func (r *ContractRenderer) Render(result *usecase.ContractResult) error {
	verb := "Resolved"
	if result.Deployed {
		verb = "Deployed"
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s %s", verb, nameStyle.Sprint(result.Contract))))
	fmt.Fprintln(r.out, r.fields(result))
	return nil
}

// RenderDeploy renders a deployment, or the transaction a dry run would send
func (r *ContractRenderer) RenderDeploy(result *usecase.DeployContractResult) error {
	if !result.DryRun {
		return r.Render(&result.ContractResult)
	}

	view := NewDeployView(result)
	headerStyle.Fprintf(r.out, "Deployment of %s (dry run)\n", result.Contract)
	fmt.Fprintln(r.out, renderFields([][2]string{
		{"Artifact", relPath(result.ArtifactPath)},
		{"From", view.From},
		{"Value", view.Value},
		{"Gas", gasLabel(view.Gas)},
		{"Size", fmt.Sprintf("%d bytes", len(result.Request.Data))},
	}))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, view.Data)
	return nil
}

func (r *ContractRenderer) fields(result *usecase.ContractResult) string {
	view := NewContractView(result)
	recorded := ""
	if result.Recorded {
		recorded = "yes"
	}
	return renderFields([][2]string{
		{"Address", styled(addressStyle, view.Address)},
		{"Network", view.Network},
		{"Endpoint", view.Endpoint},
		{"Transaction", view.TransactionHash},
		{"Artifact", relPath(result.ArtifactPath)},
		{"Recorded", recorded},
	})
}

func gasLabel(gas uint64) string {
	if gas == 0 {
		return "estimated by node"
	}
	return fmt.Sprintf("%d", gas)
}

// relPath shortens path relative to the working directory when it lies below it
func relPath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(cwd, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

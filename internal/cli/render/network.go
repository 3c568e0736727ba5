package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// NetworkView is the structured form of a network result
type NetworkView struct {
	Network     string           `json:"network,omitempty" yaml:"network,omitempty"`
	Endpoint    string           `json:"endpoint" yaml:"endpoint"`
	NetworkID   string           `json:"networkId" yaml:"networkId"`
	Configured  []string         `json:"configured,omitempty" yaml:"configured,omitempty"`
	Deployments []DeploymentView `json:"deployments,omitempty" yaml:"deployments,omitempty"`
}

type DeploymentView struct {
	Contract        string `json:"contract" yaml:"contract"`
	Address         string `json:"address" yaml:"address"`
	TransactionHash string `json:"transactionHash,omitempty" yaml:"transactionHash,omitempty"`
}

// NewNetworkView converts a network result
func NewNetworkView(result *usecase.ShowNetworkResult) NetworkView {
	return NetworkView{
		Network:    result.Network,
		Endpoint:   result.Endpoint,
		NetworkID:  result.NetworkID,
		Configured: result.Configured,
		Deployments: lo.Map(result.Deployments, func(d usecase.NetworkDeployment, _ int) DeploymentView {
			view := DeploymentView{Contract: d.Contract, Address: d.Address.Hex()}
			if d.TransactionHash != (common.Hash{}) {
				view.TransactionHash = d.TransactionHash.Hex()
			}
			return view
		}),
	}
}

// NetworkRenderer renders the connected network
type NetworkRenderer struct {
	out io.Writer
}

// NewNetworkRenderer creates a new network renderer
func NewNetworkRenderer(out io.Writer) *NetworkRenderer {
	return &NetworkRenderer{out: out}
}

// Render renders the network identity followed by the artifacts deployed on it
func (r *NetworkRenderer) Render(result *usecase.ShowNetworkResult) error {
	fmt.Fprintln(r.out, "🌐 Connected Network:")
	fmt.Fprintln(r.out, renderFields([][2]string{
		{"Name", result.Network},
		{"Endpoint", result.Endpoint},
		{"Network ID", headerStyle.Sprint(result.NetworkID)},
	}))

	if len(result.Configured) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Configured networks:"), strings.Join(result.Configured, ", "))
	}

	if result.Deployments == nil {
		return nil
	}

	fmt.Fprintln(r.out)
	if len(result.Deployments) == 0 {
		fmt.Fprintf(r.out, "No artifacts are deployed on network %s\n", result.NetworkID)
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"CONTRACT", "ADDRESS", "TRANSACTION"})
	for _, d := range result.Deployments {
		tx := ""
		if d.TransactionHash != (common.Hash{}) {
			tx = d.TransactionHash.Hex()
		}
		t.AppendRow(table.Row{nameStyle.Sprint(d.Contract), addressStyle.Sprint(d.Address.Hex()), labelStyle.Sprint(tx)})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

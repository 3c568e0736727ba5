package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// LinkView is the structured form of a link result
type LinkView struct {
	Contract   string            `json:"contract" yaml:"contract"`
	Artifact   string            `json:"artifact" yaml:"artifact"`
	Bytecode   string            `json:"bytecode" yaml:"bytecode"`
	Libraries  map[string]string `json:"libraries,omitempty" yaml:"libraries,omitempty"`
	Unresolved []UnresolvedView  `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
}

type UnresolvedView struct {
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
}

// NewLinkView converts a link result
func NewLinkView(result *usecase.LinkBytecodeResult) LinkView {
	return LinkView{
		Contract: result.Contract,
		Artifact: result.ArtifactPath,
		Bytecode: result.Bytecode,
		Libraries: lo.MapValues(result.Libraries, func(addr common.Address, _ string) string {
			return addr.Hex()
		}),
		Unresolved: lo.Map(result.Unresolved, func(u usecase.UnresolvedLibrary, _ int) UnresolvedView {
			return UnresolvedView{Placeholder: u.Placeholder, Name: u.Name}
		}),
	}
}

// LinkRenderer renders linked bytecode
type LinkRenderer struct {
	out io.Writer
}

// NewLinkRenderer creates a new link renderer
func NewLinkRenderer(out io.Writer) *LinkRenderer {
	return &LinkRenderer{out: out}
}

// Render prints the linked libraries and unresolved placeholders, then the
// bytecode on its own line.
func (r *LinkRenderer) Render(result *usecase.LinkBytecodeResult) error {
	headerStyle.Fprintf(r.out, "Linked bytecode of %s\n", result.Contract)

	if len(result.Libraries) > 0 {
		names := lo.Keys(result.Libraries)
		sort.Strings(names)

		t := newTable()
		for _, name := range names {
			t.AppendRow(table.Row{"  " + nameStyle.Sprint(name), result.Libraries[name].Hex()})
		}
		fmt.Fprintln(r.out, labelStyle.Sprint("Libraries:"))
		fmt.Fprintln(r.out, t.Render())
	}

	for _, u := range result.Unresolved {
		name := u.Name
		if name == "" {
			name = "unknown library"
		}
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Unresolved placeholder %s (%s)", u.Placeholder, name)))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, result.Bytecode)
	return nil
}

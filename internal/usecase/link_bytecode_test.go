package usecase_test

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-resolve/internal/domain/config"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

func TestLinkBytecode(t *testing.T) {
	hashed := contract.HashedPlaceholder("src/Strings.sol:Strings")
	artifact := counterArtifact()
	artifact.Bytecode = "0x6080" + contract.Placeholder("MathLib") + "00" + hashed + contract.Placeholder("MathLib")

	tests := []struct {
		name           string
		configured     contract.Libraries
		libraries      contract.Libraries
		wantUnresolved []usecase.UnresolvedLibrary
	}{
		{
			name: "nothing linked",
			wantUnresolved: []usecase.UnresolvedLibrary{
				{Placeholder: contract.Placeholder("MathLib"), Name: "MathLib"},
				{Placeholder: hashed},
			},
		},
		{
			name:      "legacy placeholder linked from flags",
			libraries: contract.Libraries{"MathLib": mathLib},
			wantUnresolved: []usecase.UnresolvedLibrary{
				{Placeholder: hashed},
			},
		},
		{
			name:       "configured and flag libraries combine",
			configured: contract.Libraries{"src/Strings.sol:Strings": mathLib},
			libraries:  contract.Libraries{"MathLib": mathLib},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDeployFixture()
			f.expectArtifact(artifact)
			cfg := &config.RuntimeConfig{Libraries: tt.configured}

			uc := usecase.NewLinkBytecode(cfg, f.repo, new(MockSelector))
			result, err := uc.Run(context.Background(), usecase.LinkBytecodeParams{
				Artifact:  "Counter",
				Libraries: tt.libraries,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantUnresolved, result.Unresolved)
			if len(tt.wantUnresolved) == 0 {
				_, err := hex.DecodeString(result.Bytecode[2:])
				assert.NoError(t, err)
			}
		})
	}
}

package contract_test

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		lib  string
		want string
	}{
		{
			name: "short name is padded",
			lib:  "Foo",
			want: "__Foo___________________________________",
		},
		{
			name: "long name is cut",
			lib:  "contracts/math/VeryLongLibraryName.sol:Math",
			want: "__contracts/math/VeryLongLibraryName.sol",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contract.Placeholder(tt.lib)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 40)
		})
	}
}

func TestHashedPlaceholder(t *testing.T) {
	p := contract.HashedPlaceholder("src/Lib.sol:Lib")
	assert.Len(t, p, 40)
	assert.True(t, strings.HasPrefix(p, "__$"))
	assert.True(t, strings.HasSuffix(p, "$__"))
	assert.Equal(t, p, contract.HashedPlaceholder("src/Lib.sol:Lib"))
	assert.NotEqual(t, p, contract.HashedPlaceholder("src/Lib.sol:Other"))
}

func TestPlaceholderName(t *testing.T) {
	name, ok := contract.PlaceholderName(contract.Placeholder("Foo"))
	assert.True(t, ok)
	assert.Equal(t, "Foo", name)

	_, ok = contract.PlaceholderName(contract.HashedPlaceholder("src/Foo.sol:Foo"))
	assert.False(t, ok)
}

func TestLink(t *testing.T) {
	foo := common.HexToAddress("0xABCDabcdABCDabcdABCDabcdABCDabcdABCDabcd")
	bar := common.HexToAddress("0x2222222222222222222222222222222222222222")
	fooHex := "abcdabcdabcdabcdabcdabcdabcdabcdabcdabcd"

	t.Run("replaces every occurrence", func(t *testing.T) {
		code := "6080" + contract.Placeholder("Foo") + "60" + contract.Placeholder("Foo") + "00"
		linked := contract.Link(code, contract.Libraries{"Foo": foo})

		assert.Equal(t, "6080"+fooHex+"60"+fooHex+"00", linked)
		assert.NotContains(t, linked, contract.Placeholder("Foo"))
	})

	t.Run("replaces hashed placeholders", func(t *testing.T) {
		code := "0x6080" + contract.HashedPlaceholder("src/Foo.sol:Foo") + "00"
		linked := contract.Link(code, contract.Libraries{"src/Foo.sol:Foo": foo})

		assert.Equal(t, "0x6080"+fooHex+"00", linked)
	})

	t.Run("address is lowercase hex", func(t *testing.T) {
		linked := contract.Link(contract.Placeholder("Foo"), contract.Libraries{"Foo": foo})
		assert.Equal(t, strings.ToLower(linked), linked)
		assert.Len(t, linked, 40)
	})

	t.Run("code without placeholders is unchanged", func(t *testing.T) {
		code := "0x608060405234801561001057600080fd5b50"
		assert.Equal(t, code, contract.Link(code, contract.Libraries{"Foo": foo, "Bar": bar}))
		assert.Equal(t, code, contract.Link(code, nil))
	})

	t.Run("library without placeholder is a no-op", func(t *testing.T) {
		code := "60" + contract.Placeholder("Foo")
		linked := contract.Link(code, contract.Libraries{"Foo": foo, "Bar": bar})
		assert.Equal(t, "60"+fooHex, linked)
	})

	t.Run("deterministic and order independent", func(t *testing.T) {
		code := contract.Placeholder("Foo") + contract.Placeholder("Bar")
		libs := contract.Libraries{"Foo": foo, "Bar": bar}

		first := contract.Link(code, libs)
		second := contract.Link(code, libs)
		assert.Equal(t, first, second)

		stepwise := contract.Link(contract.Link(code, contract.Libraries{"Bar": bar}), contract.Libraries{"Foo": foo})
		assert.Equal(t, first, stepwise)
	})
}

func TestFindPlaceholder(t *testing.T) {
	_, ok := contract.FindPlaceholder("0x6080604052")
	assert.False(t, ok)

	p, ok := contract.FindPlaceholder("0x6080" + contract.Placeholder("Lib") + "00")
	require.True(t, ok)
	assert.Equal(t, contract.Placeholder("Lib"), p)

	hashed := contract.HashedPlaceholder("src/Lib.sol:Lib")
	p, ok = contract.FindPlaceholder("60" + hashed)
	require.True(t, ok)
	assert.Equal(t, hashed, p)

	p, ok = contract.FindPlaceholder("60__Li")
	require.True(t, ok)
	assert.Equal(t, "__Li", p)
}

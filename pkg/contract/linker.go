package contract

import (
	"encoding/hex"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
)

// placeholderLen is the width of a library placeholder in hex bytecode: the
// 20 bytes of an address, hex encoded.
const placeholderLen = 2 * common.AddressLength

// Libraries maps library names to the addresses they are deployed at.
type Libraries map[string]common.Address

// Placeholder returns the legacy placeholder solc emits for a library: "__"
// followed by the name, padded with underscores and cut to 40 characters.
func Placeholder(name string) string {
	p := "__" + name
	if len(p) >= placeholderLen {
		return p[:placeholderLen]
	}
	return p + strings.Repeat("_", placeholderLen-len(p))
}

// HashedPlaceholder returns the placeholder solc >= 0.5 emits for a fully
// qualified library name ("path/to/File.sol:Name").
func HashedPlaceholder(name string) string {
	hash := hex.EncodeToString(crypto.Keccak256([]byte(name)))
	return "__$" + hash[:34] + "$__"
}

// PlaceholderName recovers the library name from a legacy placeholder.
// Hashed placeholders cannot be reversed and report false.
func PlaceholderName(placeholder string) (string, bool) {
	if strings.HasPrefix(placeholder, "__$") {
		return "", false
	}
	name := strings.Trim(placeholder, "_")
	return name, name != ""
}

// Link substitutes every placeholder of every library in libs with the
// library's address. Libraries without a placeholder in code are ignored;
// code without placeholders is returned unchanged.
func Link(code string, libs Libraries) string {
	names := lo.Keys(libs)
	slices.Sort(names)

	for _, name := range names {
		addr := hex.EncodeToString(libs[name].Bytes())
		code = strings.ReplaceAll(code, Placeholder(name), addr)
		code = strings.ReplaceAll(code, HashedPlaceholder(name), addr)
	}
	return code
}

// FindPlaceholder returns the first library placeholder left in code. An
// underscore never occurs in hex, so the first "__" starts one.
func FindPlaceholder(code string) (string, bool) {
	idx := strings.Index(code, "__")
	if idx < 0 {
		return "", false
	}
	end := min(idx+placeholderLen, len(code))
	return code[idx:end], true
}

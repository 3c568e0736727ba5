package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Sentinel errors for domain operations
var (
	// ErrArtifactNotFound is returned when no artifact matches a reference
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrNetworkNotConfigured is returned when a network name is missing from treb.toml
	ErrNetworkNotConfigured = errors.New("network not configured")

	// ErrNoRPCURL is returned when neither --rpc-url nor --network is given
	ErrNoRPCURL = errors.New("no RPC endpoint configured, use --rpc-url or --network")

	// ErrAborted is returned when the user declines a broadcast
	ErrAborted = errors.New("aborted by user")
)

// ArtifactNotFoundErr reports a reference that matched no artifact
type ArtifactNotFoundErr struct {
	Ref         string
	Suggestions []string
}

func (e ArtifactNotFoundErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no artifact matches %q", e.Ref)
	}
	return fmt.Sprintf("no artifact matches %q, did you mean: %s?", e.Ref, strings.Join(e.Suggestions, ", "))
}

func (e ArtifactNotFoundErr) Is(target error) bool {
	return target == ErrArtifactNotFound
}

// AmbiguousArtifactErr reports a contract name present in several artifacts
type AmbiguousArtifactErr struct {
	Ref   string
	Paths []string
}

func (e AmbiguousArtifactErr) Error() string {
	lines := lo.Map(e.Paths, func(p string, _ int) string { return "  - " + p })
	return fmt.Sprintf("multiple artifacts found for %q - use Source.sol:Name or a path to disambiguate:\n%s",
		e.Ref, strings.Join(lines, "\n"))
}

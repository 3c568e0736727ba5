package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-resolve/internal/domain"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

// Repository discovers compiled artifacts below a root directory and records
// deployments back into them.
type Repository struct {
	root    string
	log     *slog.Logger
	mu      sync.RWMutex
	index   map[string][]string // contract name -> artifact paths
	indexed bool
}

// NewRepository creates a repository rooted at root
func NewRepository(root string, log *slog.Logger) *Repository {
	return &Repository{
		root:  root,
		log:   log,
		index: make(map[string][]string),
	}
}

// Load resolves ref to an artifact and parses it.
func (r *Repository) Load(ctx context.Context, ref string) (*contract.Artifact, error) {
	path, err := r.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	r.log.Debug("loading artifact", "ref", ref, "path", path)
	return Parse(path, data)
}

// Resolve maps ref to an artifact file. ref is either a path to a JSON file,
// a contract name, or "Source.sol:Name".
func (r *Repository) Resolve(ctx context.Context, ref string) (string, error) {
	if strings.HasSuffix(ref, ".json") {
		for _, candidate := range []string{ref, filepath.Join(r.root, ref)} {
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		return "", domain.ArtifactNotFoundErr{Ref: ref}
	}

	if err := r.buildIndex(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	name, source := ref, ""
	if before, after, ok := strings.Cut(ref, ":"); ok {
		source, name = before, after
	}

	paths := r.index[name]
	if source != "" {
		paths = lo.Filter(paths, func(p string, _ int) bool {
			return filepath.Base(filepath.Dir(p)) == source
		})
	}

	switch len(paths) {
	case 0:
		return "", domain.ArtifactNotFoundErr{Ref: ref, Suggestions: r.suggest(name)}
	case 1:
		return paths[0], nil
	default:
		return "", domain.AmbiguousArtifactErr{Ref: ref, Paths: paths}
	}
}

// List returns the names of all indexed contracts, sorted.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	if err := r.buildIndex(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.index)
	sort.Strings(names)
	return names, nil
}

// RecordDeployment stores network in the artifact's networks table under
// networkID. All other fields of the artifact are preserved.
func (r *Repository) RecordDeployment(ctx context.Context, ref string, networkID string, network contract.Network) error {
	path, err := r.Resolve(ctx, ref)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read artifact: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	networks := make(map[string]map[string]json.RawMessage)
	if raw, ok := doc["networks"]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &networks); err != nil {
			return fmt.Errorf("failed to parse networks of %s: %w", path, err)
		}
	}

	entry := networks[networkID]
	if entry == nil {
		entry = make(map[string]json.RawMessage)
	}
	entry["address"], _ = json.Marshal(network.Address.Hex())
	entry["transactionHash"], _ = json.Marshal(network.TransactionHash.Hex())
	networks[networkID] = entry

	doc["networks"], err = json.Marshal(networks)
	if err != nil {
		return fmt.Errorf("failed to encode networks: %w", err)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode artifact: %w", err)
	}

	r.log.Debug("recording deployment", "path", path, "network", networkID, "address", network.Address.Hex())
	return writeFileAtomic(path, append(out, '\n'))
}

// buildIndex walks root once and indexes artifacts by contract name
func (r *Repository) buildIndex() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return nil
	}

	if _, err := os.Stat(r.root); err != nil {
		return fmt.Errorf("artifacts directory %s: %w", r.root, err)
	}

	err := filepath.WalkDir(r.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" {
			return nil
		}

		name := strings.TrimSuffix(d.Name(), ".json")
		r.index[name] = append(r.index[name], path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to index artifacts: %w", err)
	}

	r.indexed = true
	r.log.Debug("indexed artifacts", "root", r.root, "count", len(r.index))
	return nil
}

// suggest returns up to three indexed names close to name
func (r *Repository) suggest(name string) []string {
	names := lo.Keys(r.index)
	sort.Strings(names)

	matches := fuzzy.Find(name, names)
	suggestions := make([]string, 0, 3)
	for _, m := range matches {
		if len(suggestions) == 3 {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

func writeFileAtomic(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".artifact-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), info.Mode().Perm()); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

var _ usecase.ArtifactRepository = (*Repository)(nil)

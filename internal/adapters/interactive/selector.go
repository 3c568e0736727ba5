package interactive

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/treb-resolve/internal/domain/config"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
	run    func(promptui.Select) (int, error)
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{
		config: cfg,
		run: func(s promptui.Select) (int, error) {
			index, _, err := s.Run()
			return index, err
		},
	}
}

// SelectArtifact selects one artifact file among paths
func (s *SelectorAdapter) SelectArtifact(ctx context.Context, paths []string, prompt string) (string, error) {
	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return "", fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(paths) == 0 {
		return "", fmt.Errorf("no artifacts provided for selection")
	}

	// If only one match, return it directly
	if len(paths) == 1 {
		return paths[0], nil
	}

	options := s.formatArtifactOptions(paths)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	index, err := s.run(promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	})
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return paths[index], nil
}

// formatArtifactOptions renders "Source.sol:Name (relative/path.json)"
func (s *SelectorAdapter) formatArtifactOptions(paths []string) []string {
	options := make([]string, len(paths))
	for i, path := range paths {
		rel := path
		if r, err := filepath.Rel(s.config.ProjectRoot, path); err == nil && !strings.HasPrefix(r, "..") {
			rel = r
		}

		name := strings.TrimSuffix(filepath.Base(path), ".json")
		source := filepath.Base(filepath.Dir(path))

		contractName := color.New(color.FgWhite, color.Bold).Sprintf("%s:%s", source, name)
		pathStr := color.New(color.FgBlue).Sprint(rel)
		options[i] = fmt.Sprintf("%s (%s)", contractName, pathStr)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactSelector = (*SelectorAdapter)(nil)

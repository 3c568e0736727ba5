package interactive

import (
	"context"
	"errors"

	"github.com/manifoldco/promptui"
	"github.com/trebuchet-org/treb-resolve/internal/domain/config"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// ConfirmAdapter asks yes/no questions on the terminal
type ConfirmAdapter struct {
	config *config.RuntimeConfig
	run    func(promptui.Prompt) error
}

// NewConfirmAdapter creates a new confirmation adapter
func NewConfirmAdapter(cfg *config.RuntimeConfig) *ConfirmAdapter {
	return &ConfirmAdapter{
		config: cfg,
		run: func(p promptui.Prompt) error {
			_, err := p.Run()
			return err
		},
	}
}

// Confirm asks the user a yes/no question. Without a terminal to ask on, the
// action is approved.
func (c *ConfirmAdapter) Confirm(ctx context.Context, label string) (bool, error) {
	if c.config.NonInteractive {
		return true, nil
	}

	err := c.run(promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, err
	}
}

var _ usecase.Confirmer = (*ConfirmAdapter)(nil)

package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/treb-resolve/internal/adapters/progress"
	"github.com/trebuchet-org/treb-resolve/internal/config"
	domainconfig "github.com/trebuchet-org/treb-resolve/internal/domain/config"
)

func TestProvideProgressSink(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domainconfig.RuntimeConfig
		spinner bool
	}{
		{name: "interactive table", cfg: domainconfig.RuntimeConfig{Output: config.OutputTable}, spinner: true},
		{name: "non-interactive", cfg: domainconfig.RuntimeConfig{Output: config.OutputTable, NonInteractive: true}},
		{name: "json output", cfg: domainconfig.RuntimeConfig{Output: config.OutputJSON}},
		{name: "yaml output", cfg: domainconfig.RuntimeConfig{Output: config.OutputYAML}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := ProvideProgressSink(&tt.cfg)
			if tt.spinner {
				assert.IsType(t, &progress.SpinnerProgressReporter{}, sink)
			} else {
				assert.IsType(t, &progress.NopSink{}, sink)
			}
		})
	}
}

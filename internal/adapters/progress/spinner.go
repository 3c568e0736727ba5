package progress

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
)

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	mu       sync.Mutex
	out      io.Writer
	spinner  *spinner.Spinner
	stages   []stageInfo
	timeline bool
}

type stageInfo struct {
	Stage     usecase.ProgressStage
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
// writing to out. With timeline set, the completed stages and their durations
// are printed once the operation completes.
func NewSpinnerProgressReporter(out io.Writer, timeline bool) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		out:      out,
		spinner:  s,
		timeline: timeline,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if n := len(r.stages); n == 0 || r.stages[n-1].Stage != event.Stage {
		if n > 0 {
			r.stages[n-1].EndTime = now
		}
		r.stages = append(r.stages, stageInfo{Stage: event.Stage, StartTime: now})
	}
	if event.Message != "" {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	if event.Stage == usecase.StageCompleted {
		r.spinner.Stop()
		r.stages[len(r.stages)-1].EndTime = now
		if r.timeline {
			fmt.Fprintln(r.out, r.timelineLocked())
		}
		return
	}

	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.print(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.print(color.New(color.FgRed), message)
}

func (r *SpinnerProgressReporter) print(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Stop spinner temporarily
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// Timeline renders the stages seen so far with their durations
func (r *SpinnerProgressReporter) Timeline() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timelineLocked()
}

func (r *SpinnerProgressReporter) timelineLocked() string {
	parts := make([]string, 0, len(r.stages))
	for _, stage := range r.stages {
		if stage.Stage == usecase.StageCompleted {
			continue
		}

		icon := "●"
		stageColor := color.New(color.FgYellow)
		duration := ""
		if !stage.EndTime.IsZero() {
			icon = "✓"
			stageColor = color.New(color.FgGreen)
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		}

		parts = append(parts, fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(stageName(stage.Stage)), duration))
	}
	return strings.Join(parts, " → ")
}

func stageName(stage usecase.ProgressStage) string {
	s := string(stage)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)

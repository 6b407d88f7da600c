// Package linear provides a synchronous renderer that prints a phase summary.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

// Renderer implements ports.Renderer.
// It records phases as they start and finish and prints one line per phase on Stop.
type Renderer struct {
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	order   []string
	phases  map[string]*phaseState
	stopped bool
}

type phaseState struct {
	name      string
	status    domain.PhaseStatus
	startTime time.Time
	duration  time.Duration
}

// NewRenderer creates a new Renderer writing to stderr.
func NewRenderer(stderr io.Writer) *Renderer {
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stderr: stderr,
		output: output.New(stderr),
		phases: make(map[string]*phaseState),
	}
}

// OnPhaseStart records a running phase.
func (r *Renderer) OnPhaseStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.phases[spanID]; !ok {
		r.order = append(r.order, spanID)
	}
	r.phases[spanID] = &phaseState{
		name:      name,
		status:    domain.PhaseStatusRunning,
		startTime: startTime,
	}
}

// OnPhaseComplete marks a phase as completed or failed.
func (r *Renderer) OnPhaseComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	phase, ok := r.phases[spanID]
	if !ok {
		return
	}

	if err != nil {
		phase.status = domain.PhaseStatusFailed
		return
	}
	phase.status = domain.PhaseStatusCompleted
	phase.duration = endTime.Sub(phase.startTime)
}

// Stop prints the phase summary. Subsequent calls do nothing.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped || len(r.order) == 0 {
		r.stopped = true
		return nil
	}
	r.stopped = true

	for _, spanID := range r.order {
		if _, err := fmt.Fprintln(r.stderr, r.formatLocked(r.phases[spanID])); err != nil {
			return err
		}
	}
	return nil
}

// formatLocked renders a single summary line.
// Must be called with r.mu held.
func (r *Renderer) formatLocked(phase *phaseState) string {
	switch phase.status {
	case domain.PhaseStatusCompleted:
		symbol := r.output.String(style.Check).Foreground(style.RGB(style.Success)).String()
		return fmt.Sprintf("%s %s %.2fs", symbol, phase.name, phase.duration.Seconds())
	case domain.PhaseStatusFailed:
		symbol := r.output.String(style.Cross).Foreground(style.RGB(style.Failure)).String()
		return fmt.Sprintf("%s %s", symbol, phase.name)
	default:
		name := r.output.String(phase.name).Faint().String()
		return fmt.Sprintf("%s %s", style.Arrow, name)
	}
}

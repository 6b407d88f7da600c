package ports

import "time"

// Renderer is the abstraction for phase progress output.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPhaseStart is called when a phase begins.
	// spanID: unique identifier for this phase execution
	// name: phase name
	// startTime: when the phase started
	OnPhaseStart(spanID, name string, startTime time.Time)

	// OnPhaseComplete is called when a phase finishes.
	// err is nil if the phase succeeded.
	OnPhaseComplete(spanID string, endTime time.Time, err error)

	// Stop flushes the collected phase summary.
	Stop() error
}

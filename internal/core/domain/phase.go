package domain

// Phase names one step of the orchestrator state machine.
type Phase string

const (
	// PhaseClean removes the previous build directory.
	PhaseClean Phase = "clean"
	// PhasePrepare ensures the build directory exists.
	PhasePrepare Phase = "prepare"
	// PhaseConfigure runs the cmake configure step.
	PhaseConfigure Phase = "configure"
	// PhaseCompile runs the cmake build step.
	PhaseCompile Phase = "compile"
	// PhaseRun launches the produced executable.
	PhaseRun Phase = "run"
)

// String returns the phase name.
func (p Phase) String() string {
	return string(p)
}

// PhaseStatus represents the lifecycle state of a phase.
type PhaseStatus string

const (
	// PhaseStatusRunning indicates the phase is currently executing.
	PhaseStatusRunning PhaseStatus = "running"
	// PhaseStatusCompleted indicates the phase finished successfully.
	PhaseStatusCompleted PhaseStatus = "completed"
	// PhaseStatusFailed indicates the phase finished with an error.
	PhaseStatusFailed PhaseStatus = "failed"
)

// IsTerminal checks if a status is a terminal state (Completed, Failed).
func (s PhaseStatus) IsTerminal() bool {
	switch s {
	case PhaseStatusCompleted, PhaseStatusFailed:
		return true
	default:
		return false
	}
}


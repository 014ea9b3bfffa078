package domain

// Phase is a step of the register → await → poll lookup flow.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRegistering
	PhaseAwaiting
	PhasePolling
	PhaseDone
	PhaseFailed
)

var phaseNames = map[Phase]string{
	PhaseIdle:        "idle",
	PhaseRegistering: "registering",
	PhaseAwaiting:    "awaiting",
	PhasePolling:     "polling",
	PhaseDone:        "done",
	PhaseFailed:      "failed",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition can follow p.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}

package glcontext

// State is the lifecycle state of a System.
type State int

const (
	// StateUninitialized means Init has not completed yet; no native
	// context is held.
	StateUninitialized State = iota

	// StateActive means a validated context is held and usable.
	StateActive

	// StateLost means the held context was lost asynchronously. The
	// System waits for a restoration signal; rendering must be skipped.
	StateLost

	// StateTornDown is terminal. Listeners are detached and the handle
	// released; no further transitions occur.
	StateTornDown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateActive:
		return "Active"
	case StateLost:
		return "Lost"
	case StateTornDown:
		return "TornDown"
	default:
		return "Unknown"
	}
}

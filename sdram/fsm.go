package sdram

import "math"

// refreshTrigger is the refresh counter value that forces a refresh cycle.
// The 8-bit counter wraps to zero on the edge that follows.
const refreshTrigger = math.MaxUint8

// nextState is the pure transition function of the controller. It is
// recomputed every cycle from the current state and inputs. In IDLE, a due
// refresh takes precedence over a pending write, which takes precedence over
// a pending read; a simultaneous write and read request resolves as a write.
// Every state outside the declared set recovers to IDLE.
func nextState(s State, in Inputs, refreshCounter uint8) State {
	switch s {
	case StateIdle:
		switch {
		case refreshCounter == refreshTrigger:
			return StateRefresh
		case in.WriteReq:
			return StateWrite
		case in.ReadReq:
			return StateRead
		default:
			return StateIdle
		}
	case StateActive:
		// Declared but never entered by any transition.
		return StateIdle
	case StateRead, StateWrite:
		return StatePrecharge
	case StatePrecharge, StateRefresh:
		return StateIdle
	default:
		return StateIdle
	}
}

// commandLevels returns the electrical levels of the cs/ras/cas/we lines for
// a state. All four strobes are active-low, so false means asserted. States
// outside the declared set get the deselected IDLE levels.
func commandLevels(s State) (cs, ras, cas, we bool) {
	switch s {
	case StateRead:
		return false, false, true, true
	case StateWrite, StatePrecharge:
		return false, false, true, false
	case StateRefresh:
		return false, false, false, true
	default:
		// IDLE, the dead ACTIVE state, and unknown encodings all keep
		// the device deselected.
		return true, true, true, true
	}
}

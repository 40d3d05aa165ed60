package sdram

// A State is one of the declared controller states. The controller treats
// every value outside the declared set as StateIdle.
type State uint8

// All declared controller states. StateActive is declared by the original
// design but never entered by any transition; it falls through to StateIdle.
const (
	StateIdle State = iota
	StateActive
	StateRead
	StateWrite
	StatePrecharge
	StateRefresh
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateActive:
		return "ACTIVE"
	case StateRead:
		return "READ"
	case StateWrite:
		return "WRITE"
	case StatePrecharge:
		return "PRECHARGE"
	case StateRefresh:
		return "REFRESH"
	default:
		return "IDLE"
	}
}

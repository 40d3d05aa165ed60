package sdram

// Bit widths of the address fields. The 24-bit request address carries a
// 13-bit row/column address in its low bits and a 2-bit bank select above
// them. The remaining high bits are dropped without validation.
const (
	AddrWidth   = 24
	RowColWidth = 13
	BankWidth   = 2

	AddrMask   = 1<<AddrWidth - 1
	RowColMask = 1<<RowColWidth - 1
	BankMask   = 1<<BankWidth - 1
)

// Inputs are the requester-side input pins of the controller, sampled every
// cycle. Reset is synchronous. WriteReq and ReadReq are level-sensitive and
// only honored while the controller is in IDLE; asserting a request while
// Busy is high is undefined behavior.
//
// DataIn is declared by the pin contract but is not wired to any output:
// the controller never drives the data bus. This is a known limitation of
// the reference design that is preserved, not fixed.
type Inputs struct {
	Reset    bool
	Addr     uint32
	DataIn   uint16
	WriteReq bool
	ReadReq  bool
}

// Outputs are the controller's output pins. CS, RAS, CAS and WE carry the
// electrical line levels of the active-low command strobes: false is
// asserted, true is the inactive level.
type Outputs struct {
	Busy     bool
	SDRAMClk bool

	CS  bool
	RAS bool
	CAS bool
	WE  bool

	// Addr is the 13-bit row/column address and Bank the 2-bit bank
	// select. Both hold their value and only change while the controller
	// is in READ or WRITE.
	Addr uint16
	Bank uint8

	// DataOut is the last value sampled from the shared data bus during a
	// READ cycle.
	DataOut uint16
}

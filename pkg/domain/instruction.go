package domain

// Instruction symbols. Any other rune is a no-op cell.
const (
	OpStart      = '$'
	OpTurnCCW    = '/'
	OpTurnCW     = '\\'
	OpWrap       = '='
	OpCopy       = '&'
	OpRotateCCW  = '{'
	OpRotateCW   = '}'
	OpRotate180  = '!'
	OpSkip       = '#'
	OpRead       = '?'
	OpWriteZero  = '0'
	OpWriteOne   = '1'
	OpHalt       = '@'
	BorderCorner = '+'
	BorderHoriz  = '-'
	BorderVert   = '|'
)

// EdgeModeFor returns the edge mode selected by an instruction symbol.
func EdgeModeFor(op rune) (EdgeMode, bool) {
	switch op {
	case OpWrap:
		return EdgeWrap, true
	case OpCopy:
		return EdgeCopy, true
	case OpRotateCCW:
		return EdgeRotateCCW, true
	case OpRotateCW:
		return EdgeRotateCW, true
	case OpRotate180:
		return EdgeRotate180, true
	}
	return 0, false
}

var opNames = map[rune]string{
	OpStart:     "start",
	OpTurnCCW:   "turn counter-clockwise",
	OpTurnCW:    "turn clockwise",
	OpWrap:      "edge: wrap",
	OpCopy:      "edge: copy",
	OpRotateCCW: "edge: rotate counter-clockwise",
	OpRotateCW:  "edge: rotate clockwise",
	OpRotate180: "edge: rotate 180",
	OpSkip:      "skip",
	OpRead:      "read",
	OpWriteZero: "write 0",
	OpWriteOne:  "write 1",
	OpHalt:      "halt",
}

// OpName describes an instruction symbol. It returns "nop" for cells that do nothing.
func OpName(op rune) string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "nop"
}

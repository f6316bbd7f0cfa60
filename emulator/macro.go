package emulator

// Accumulates the code words of one macro upload. The upload is a tiny
// state machine: idle until an entry is selected, then uploading until
// the argument run supplying code words completes
type MacroUpload struct {
	Uploading bool     // True between Begin and Take
	Entry     uint32   // Macro entry selected by the guest
	Code      []uint32 // Code words accumulated so far
}

func NewMacroUpload() *MacroUpload {
	return &MacroUpload{}
}

// Selects the macro entry to upload into. Any partially accumulated
// code is discarded: selecting a new entry resets the write cursor on
// real hardware
func (macro *MacroUpload) Begin(entry uint32) {
	macro.Uploading = true
	macro.Entry = entry
	macro.Code = macro.Code[:0]
}

// Appends a code word to the upload. Fails if no entry was selected
func (macro *MacroUpload) Push(value uint32) error {
	if !macro.Uploading {
		return ErrMacroCodeWithoutEntry
	}
	macro.Code = append(macro.Code, value)
	return nil
}

// Hands out the completed upload and resets the state to idle. The
// returned slice is owned by the caller
func (macro *MacroUpload) Take() (entry uint32, code []uint32) {
	entry = macro.Entry
	code = make([]uint32, len(macro.Code))
	copy(code, macro.Code)
	macro.Uploading = false
	macro.Entry = 0
	macro.Code = macro.Code[:0]
	return entry, code
}

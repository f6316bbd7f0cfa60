package emulator

// Submission mode of a command header, stored in bits [29:31] of the
// command word. It selects how the argument words following the header
// map to target methods
type SubmissionMode uint8

const (
	MODE_INCREASING_OLD     SubmissionMode = 0 // Increment the method with each argument (legacy encoding)
	MODE_INCREASING         SubmissionMode = 1 // Increment the method with each argument
	MODE_NON_INCREASING_OLD SubmissionMode = 2 // Same method for every argument (legacy encoding)
	MODE_NON_INCREASING     SubmissionMode = 3 // Same method for every argument
	MODE_INCREASE_ONCE      SubmissionMode = 4 // Increment the method once after the first argument
	MODE_INLINE             SubmissionMode = 5 // Value is embedded in the header, no argument words
)

// Returns whether the mode is one of the encodings defined by the
// hardware. Values 6 and 7 are invalid
func (mode SubmissionMode) Valid() bool {
	return mode <= MODE_INLINE
}

func (mode SubmissionMode) String() string {
	switch mode {
	case MODE_INCREASING_OLD:
		return "increasing (old)"
	case MODE_INCREASING:
		return "increasing"
	case MODE_NON_INCREASING_OLD:
		return "non-increasing (old)"
	case MODE_NON_INCREASING:
		return "non-increasing"
	case MODE_INCREASE_ONCE:
		return "increase-once"
	case MODE_INLINE:
		return "inline"
	}
	return "invalid"
}

// Methods below METHOD_COUNT are handled by the command processor
// itself instead of being forwarded to a bound engine
type BufferMethod uint32

const (
	METHOD_BIND_OBJECT        BufferMethod = 0x00  // Bind a subchannel to an engine
	METHOD_SET_MACRO_CODE     BufferMethod = 0x45  // Unknown, the guest sends it before macro uploads
	METHOD_SET_MACRO_CODE_ARG BufferMethod = 0x46  // One code word of the macro being uploaded
	METHOD_SET_MACRO_ENTRY    BufferMethod = 0x47  // Select the macro entry to upload into
	METHOD_COUNT              BufferMethod = 0x100 // First engine register index
)

// How the dispatcher must handle a method
type MethodClass uint8

const (
	CLASS_MACRO_ENTRY   MethodClass = iota // SetGraphMacroEntry
	CLASS_MACRO_ARG                        // SetGraphMacroCodeArg
	CLASS_BIND                             // BindObject
	CLASS_OTHER_CONTROL                    // Any other reserved control method
	CLASS_ENGINE                           // Register write forwarded to the bound engine
)

// Classifies a method into the class the dispatcher switches over
func ClassifyMethod(method uint32) MethodClass {
	switch BufferMethod(method) {
	case METHOD_SET_MACRO_ENTRY:
		return CLASS_MACRO_ENTRY
	case METHOD_SET_MACRO_CODE_ARG:
		return CLASS_MACRO_ARG
	case METHOD_BIND_OBJECT:
		return CLASS_BIND
	}
	if BufferMethod(method) < METHOD_COUNT {
		return CLASS_OTHER_CONTROL
	}
	return CLASS_ENGINE
}

// Decoded view of one 32 bit command word
type CommandHeader struct {
	Method     uint32         // Register index in the target engine, bits [0:12]
	Subchannel uint32         // Binding table slot this command targets, bits [13:15]
	ArgCount   uint32         // Argument words following the header, bits [16:28]
	Mode       SubmissionMode // Submission mode, bits [29:31]
	// Immediate stored in bits [16:28], only meaningful when `Mode`
	// is MODE_INLINE (it shares the bit range with `ArgCount`)
	InlineData uint32
}

// Decodes a raw command word. Total over all 32 bit inputs; mode
// validity is checked where the header is consumed
func DecodeCommandHeader(word uint32) CommandHeader {
	return CommandHeader{
		Method:     word & 0x1fff,
		Subchannel: (word >> 13) & 7,
		ArgCount:   (word >> 16) & 0x1fff,
		Mode:       SubmissionMode((word >> 29) & 7),
		InlineData: (word >> 16) & 0x1fff,
	}
}

// Builds a raw command word from its fields. Inverse of
// DecodeCommandHeader; for inline headers, pass the immediate as
// `argCount`
func BuildCommandHeader(method, subchannel, argCount uint32, mode SubmissionMode) uint32 {
	var word uint32
	word |= method & 0x1fff
	word |= (subchannel & 7) << 13
	word |= (argCount & 0x1fff) << 16
	word |= uint32(mode&7) << 29
	return word
}
